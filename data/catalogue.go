package data

// defaultCatalogue is the built-in set of creatures and items
func defaultCatalogue() Catalogue {
	return Catalogue{
		Player: EntityTemplate{
			ID: "Player", Name: "Player", Glyph: "@", Color: "#ffff00",
			Health: 30, Power: 5, Defense: 2, VisionRange: 8,
		},
		Monsters: []EntityTemplate{
			{ID: "Goblin", Name: "Goblin", Glyph: "g", Color: "#ff0000",
				Health: 16, Power: 4, Defense: 1, VisionRange: 8, BlocksPath: true},
			{ID: "Orc", Name: "Orc", Glyph: "o", Color: "#ff0000",
				Health: 16, Power: 4, Defense: 1, VisionRange: 8, BlocksPath: true},
		},
		Items: []ItemTemplate{
			{ID: "Health Potion", Name: "Health Potion", Glyph: "!", Color: "#ff00ff",
				Consumable: true, Healing: 8},
			{ID: "Magic Missile Scroll", Name: "Magic Missile Scroll", Glyph: ")", Color: "#00ffff",
				Consumable: true, Range: 6, Damage: 8},
			{ID: "Fireball Scroll", Name: "Fireball Scroll", Glyph: ")", Color: "#ffa500",
				Consumable: true, Range: 6, Damage: 20, Radius: 3},
			{ID: "Confusion Scroll", Name: "Confusion Scroll", Glyph: ")", Color: "#ffc0cb",
				Consumable: true, Range: 6, ConfusionTurns: 4},
			{ID: "Dagger", Name: "Dagger", Glyph: "/", Color: "#00ffff",
				Slot: "melee", PowerBonus: 2},
			{ID: "Longsword", Name: "Longsword", Glyph: "/", Color: "#ffff00",
				Slot: "melee", PowerBonus: 4},
			{ID: "Shield", Name: "Shield", Glyph: "(", Color: "#00ffff",
				Slot: "shield", DefenseBonus: 1},
			{ID: "Tower Shield", Name: "Tower Shield", Glyph: "(", Color: "#ffff00",
				Slot: "shield", DefenseBonus: 3},
		},
	}
}
