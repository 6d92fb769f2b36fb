package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-delve/ecs"
)

func TestEveryComponentIsRegistered(t *testing.T) {
	for id := Position; id <= WantsToRemoveItem; id++ {
		name, ok := GetComponentName(id)
		if !assert.True(t, ok, "component %d has no name", id) {
			continue
		}
		back, ok := GetComponentIDByName(name)
		assert.True(t, ok)
		assert.Equal(t, id, back)
	}
}

func TestComponentLookupIgnoresCase(t *testing.T) {
	id, ok := GetComponentIDByName("combatstats")
	assert.True(t, ok)
	assert.Equal(t, CombatStats, id)

	_, ok = GetComponentIDByName("Tile")
	assert.False(t, ok)

	_, ok = GetComponentName(ecs.ComponentID(999))
	assert.False(t, ok)
}

func TestViewshedAndStats(t *testing.T) {
	vs := NewViewshedComponent(8)
	assert.True(t, vs.Dirty)
	vs.VisibleTiles = []PositionComponent{{X: 1, Y: 2}}
	assert.True(t, vs.CanSee(1, 2))
	assert.False(t, vs.CanSee(2, 1))

	stats := &CombatStatsComponent{MaxHP: 30, HP: 25}
	stats.Heal(8)
	assert.Equal(t, 30, stats.HP)

	dmg := &SufferDamageComponent{Amounts: []int{3, 4}}
	assert.Equal(t, 7, dmg.Total())

	assert.NotEqual(t, NewMarkerComponent().ID, NewMarkerComponent().ID)
	assert.Equal(t, "shield", SlotShield.String())
}

func TestDisplayName(t *testing.T) {
	w := ecs.NewWorld()
	named := w.CreateEntity()
	w.AddComponent(named, Name, NewNameComponent("Goblin"))
	blank := w.CreateEntity()
	w.AddComponent(blank, Name, NewNameComponent(""))

	assert.Equal(t, "Goblin", DisplayName(w, named))
	assert.Equal(t, "something", DisplayName(w, blank))
	assert.Equal(t, "something", DisplayName(w, w.CreateEntity()))
}
