package saveload

import (
	"encoding/json"
	"fmt"
	"image/color"
	"sort"

	"github.com/oklog/ulid/v2"

	"ebiten-delve/components"
	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
)

// snapshotVersion is bumped whenever the file layout changes
const snapshotVersion = 1

// snapshot is the on-disk form of a run
type snapshot struct {
	Version  int            `json:"version"`
	Player   ulid.ULID      `json:"player"`
	Map      *dungeon.Map   `json:"map"`
	Entities []entityRecord `json:"entities"`
}

// entityRecord holds one marked entity keyed by its stable marker
type entityRecord struct {
	Marker     ulid.ULID                  `json:"marker"`
	Components map[string]json.RawMessage `json:"components"`
}

// renderableRecord replaces the color interfaces of RenderableComponent
type renderableRecord struct {
	Glyph       rune       `json:"glyph"`
	FG          color.RGBA `json:"fg"`
	BG          color.RGBA `json:"bg"`
	RenderOrder int        `json:"render_order"`
}

// ownerRecord replaces an owner entity ID with the owner's marker
type ownerRecord struct {
	Owner ulid.ULID                `json:"owner"`
	Slot  components.EquipmentSlot `json:"slot"`
}

// persisted lists the component types that survive a save. Intents and
// damage accumulators never outlive a tick, and Marker is the record key.
var persisted = map[ecs.ComponentID]func() ecs.Component{
	components.Position:        func() ecs.Component { return &components.PositionComponent{} },
	components.Name:            func() ecs.Component { return &components.NameComponent{} },
	components.Viewshed:        func() ecs.Component { return &components.ViewshedComponent{} },
	components.CombatStats:     func() ecs.Component { return &components.CombatStatsComponent{} },
	components.Player:          func() ecs.Component { return &components.PlayerComponent{} },
	components.Monster:         func() ecs.Component { return &components.MonsterComponent{} },
	components.BlocksTile:      func() ecs.Component { return &components.BlocksTileComponent{} },
	components.Item:            func() ecs.Component { return &components.ItemComponent{} },
	components.Consumable:      func() ecs.Component { return &components.ConsumableComponent{} },
	components.Ranged:          func() ecs.Component { return &components.RangedComponent{} },
	components.AreaOfEffect:    func() ecs.Component { return &components.AreaOfEffectComponent{} },
	components.InflictsDamage:  func() ecs.Component { return &components.InflictsDamageComponent{} },
	components.ProvidesHealing: func() ecs.Component { return &components.ProvidesHealingComponent{} },
	components.Confusion:       func() ecs.Component { return &components.ConfusionComponent{} },
	components.Equippable:      func() ecs.Component { return &components.EquippableComponent{} },
	components.MeleePowerBonus: func() ecs.Component { return &components.MeleePowerBonusComponent{} },
	components.DefenseBonus:    func() ecs.Component { return &components.DefenseBonusComponent{} },
	// Special cased below
	components.Renderable: nil,
	components.InBackpack: nil,
	components.Equipped:   nil,
}

// persistedIDs returns the persisted component IDs in ascending order
func persistedIDs() []ecs.ComponentID {
	ids := make([]ecs.ComponentID, 0, len(persisted))
	for id := range persisted {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// takeSnapshot captures the map and every marked entity
func takeSnapshot(world *ecs.World, m *dungeon.Map, player ecs.EntityID) (*snapshot, error) {
	markers := make(map[ecs.EntityID]ulid.ULID)
	for _, id := range world.Query(components.Marker) {
		marker, _ := ecs.GetAs[*components.MarkerComponent](world, id, components.Marker)
		markers[id] = marker.ID
	}

	playerMarker, ok := markers[player]
	if !ok {
		return nil, fmt.Errorf("player %d has no marker", player)
	}

	snap := &snapshot{Version: snapshotVersion, Player: playerMarker, Map: m}
	for _, id := range world.Query(components.Marker) {
		rec := entityRecord{Marker: markers[id], Components: make(map[string]json.RawMessage)}

		for _, cid := range persistedIDs() {
			component, ok := world.GetComponent(id, cid)
			if !ok {
				continue
			}
			value, err := encodeComponent(cid, component, markers)
			if err != nil {
				return nil, fmt.Errorf("entity %d: %w", id, err)
			}
			name, _ := components.GetComponentName(cid)
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("entity %d %s: %w", id, name, err)
			}
			rec.Components[name] = raw
		}

		snap.Entities = append(snap.Entities, rec)
	}
	return snap, nil
}

func encodeComponent(cid ecs.ComponentID, component ecs.Component, markers map[ecs.EntityID]ulid.ULID) (any, error) {
	switch c := component.(type) {
	case *components.RenderableComponent:
		return renderableRecord{Glyph: c.Glyph, FG: toRGBA(c.FG), BG: toRGBA(c.BG), RenderOrder: c.RenderOrder}, nil
	case *components.InBackpackComponent:
		owner, ok := markers[c.Owner]
		if !ok {
			return nil, fmt.Errorf("backpack owner %d has no marker", c.Owner)
		}
		return ownerRecord{Owner: owner}, nil
	case *components.EquippedComponent:
		owner, ok := markers[c.Owner]
		if !ok {
			return nil, fmt.Errorf("equipment owner %d has no marker", c.Owner)
		}
		return ownerRecord{Owner: owner, Slot: c.Slot}, nil
	default:
		return component, nil
	}
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// decodedEntity is a record turned back into components, owners still as markers
type decodedEntity struct {
	marker     ulid.ULID
	components map[ecs.ComponentID]ecs.Component
	backpack   *ownerRecord
	equipped   *ownerRecord
}

// decode checks and converts every record before the world is touched
func (s *snapshot) decode() ([]decodedEntity, error) {
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported save version %d", s.Version)
	}
	if s.Map == nil {
		return nil, fmt.Errorf("save has no map")
	}
	if err := validateMap(s.Map); err != nil {
		return nil, fmt.Errorf("save map: %w", err)
	}

	known := make(map[ulid.ULID]bool, len(s.Entities))
	for _, rec := range s.Entities {
		known[rec.Marker] = true
	}
	if !known[s.Player] {
		return nil, fmt.Errorf("save has no player entity")
	}

	decoded := make([]decodedEntity, 0, len(s.Entities))
	for _, rec := range s.Entities {
		d := decodedEntity{marker: rec.Marker, components: make(map[ecs.ComponentID]ecs.Component)}

		for name, raw := range rec.Components {
			cid, ok := components.GetComponentIDByName(name)
			if !ok {
				return nil, fmt.Errorf("entity %s: unknown component %q", rec.Marker, name)
			}
			if err := d.decodeComponent(cid, raw); err != nil {
				return nil, fmt.Errorf("entity %s %s: %w", rec.Marker, name, err)
			}
		}

		for _, owner := range []*ownerRecord{d.backpack, d.equipped} {
			if owner != nil && !known[owner.Owner] {
				return nil, fmt.Errorf("entity %s: owner %s not in save", rec.Marker, owner.Owner)
			}
		}
		decoded = append(decoded, d)
	}
	return decoded, nil
}

// validateMap checks that every per-tile slice covers the whole map
func validateMap(m *dungeon.Map) error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("bad dimensions %dx%d", m.Width, m.Height)
	}
	count := m.Width * m.Height
	for name, n := range map[string]int{
		"tiles":    len(m.Tiles),
		"revealed": len(m.RevealedTiles),
		"visible":  len(m.VisibleTiles),
		"blocked":  len(m.Blocked),
	} {
		if n != count {
			return fmt.Errorf("%s has %d entries, want %d", name, n, count)
		}
	}
	for idx := range m.Bloodstains {
		if idx < 0 || idx >= count {
			return fmt.Errorf("bloodstain at %d is off the map", idx)
		}
	}
	return nil
}

func (d *decodedEntity) decodeComponent(cid ecs.ComponentID, raw json.RawMessage) error {
	switch cid {
	case components.Renderable:
		var r renderableRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			return err
		}
		d.components[cid] = &components.RenderableComponent{Glyph: r.Glyph, FG: r.FG, BG: r.BG, RenderOrder: r.RenderOrder}
	case components.InBackpack:
		d.backpack = &ownerRecord{}
		return json.Unmarshal(raw, d.backpack)
	case components.Equipped:
		d.equipped = &ownerRecord{}
		return json.Unmarshal(raw, d.equipped)
	default:
		factory, ok := persisted[cid]
		if !ok || factory == nil {
			return fmt.Errorf("component is not persisted")
		}
		component := factory()
		if err := json.Unmarshal(raw, component); err != nil {
			return err
		}
		d.components[cid] = component
	}
	return nil
}
