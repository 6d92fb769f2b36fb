package systems

import (
	"fmt"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
)

// MeleeCombatSystem turns melee intents into accumulated damage
type MeleeCombatSystem struct{}

// NewMeleeCombatSystem creates a new melee combat system
func NewMeleeCombatSystem() *MeleeCombatSystem {
	return &MeleeCombatSystem{}
}

// Run resolves every WantsToMelee intent. The intent is always consumed.
func (s *MeleeCombatSystem) Run(ctx *Context) {
	world := ctx.World

	for _, attackerID := range world.Query(components.WantsToMelee) {
		intent, _ := ecs.GetAs[*components.WantsToMeleeComponent](world, attackerID, components.WantsToMelee)
		world.RemoveComponent(attackerID, components.WantsToMelee)
		s.ProcessCombat(ctx, attackerID, intent.Target)
	}
}

// ProcessCombat handles one attack and returns the damage dealt
func (s *MeleeCombatSystem) ProcessCombat(ctx *Context, attackerID, defenderID ecs.EntityID) int {
	world := ctx.World

	// Get attacker stats
	attackerStats, hasAttackerStats := ecs.GetAs[*components.CombatStatsComponent](world, attackerID, components.CombatStats)
	if !hasAttackerStats || attackerStats.HP <= 0 {
		return 0
	}

	// Get defender stats
	defenderStats, hasDefenderStats := ecs.GetAs[*components.CombatStatsComponent](world, defenderID, components.CombatStats)
	if !hasDefenderStats || defenderStats.HP <= 0 {
		ctx.Logger.Debug("melee target gone", "attacker", attackerID, "target", defenderID)
		return 0
	}

	attackerName := getEntityName(world, attackerID)
	defenderName := getEntityName(world, defenderID)

	power := attackerStats.Power + MeleePowerBonus(world, attackerID)
	defense := defenderStats.Defense + DefenseBonus(world, defenderID)
	damage := max(0, power-defense)

	if damage == 0 {
		ctx.Log.AddCombat(fmt.Sprintf("%s is unable to hurt %s.", attackerName, defenderName))
		return 0
	}

	ctx.Log.AddCombat(fmt.Sprintf("%s hits %s, for %d hp.", attackerName, defenderName, damage))
	InflictDamage(world, defenderID, damage)
	return damage
}
