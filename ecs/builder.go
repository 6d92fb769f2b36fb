package ecs

type pendingComponent struct {
	id        ComponentID
	component Component
}

// Builder collects the components of a lazily created entity
type Builder struct {
	world      *World
	id         EntityID
	components []pendingComponent
}

// With adds a component to the entity being built
func (b *Builder) With(componentID ComponentID, component Component) *Builder {
	b.components = append(b.components, pendingComponent{id: componentID, component: component})
	return b
}

// Build queues the entity for creation at the next Maintain and returns its reserved ID
func (b *Builder) Build() EntityID {
	b.world.pendingCreates = append(b.world.pendingCreates, b)
	return b.id
}
