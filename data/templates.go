// Package data holds the monster and item templates the spawners build entities from.
package data

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// EntityTemplate represents a template for creating creatures (the player and monsters)
type EntityTemplate struct {
	// Basic info
	ID   string `json:"id"`   // Unique identifier, also the spawn table name
	Name string `json:"name"` // Display name

	// Visual appearance
	Glyph string `json:"glyph"` // Single character drawn for the entity
	Color string `json:"color"` // Color in hex format (e.g. "#00FF00")

	// Stats
	Health      int `json:"health"`
	Power       int `json:"power"`
	Defense     int `json:"defense"`
	VisionRange int `json:"visionRange"`

	// Behavior
	BlocksPath bool `json:"blocksPath"` // Whether it occupies its tile for blocking
}

// ItemTemplate defines a template for creating items
type ItemTemplate struct {
	ID    string `json:"id"`    // Unique identifier, also the spawn table name
	Name  string `json:"name"`  // Display name
	Glyph string `json:"glyph"` // Single character drawn for the item
	Color string `json:"color"` // Item color in hex format

	// Use effects
	Consumable     bool `json:"consumable"`
	Range          int  `json:"range"`          // > 0 means the item must be aimed
	Radius         int  `json:"radius"`         // > 0 means the effect spreads around the target
	Damage         int  `json:"damage"`         // Damage dealt to each target
	Healing        int  `json:"healing"`        // Health restored to the user
	ConfusionTurns int  `json:"confusionTurns"` // Turns each target stays confused

	// Equipment
	Slot         string `json:"slot"` // "melee", "shield" or empty
	PowerBonus   int    `json:"powerBonus"`
	DefenseBonus int    `json:"defenseBonus"`
}

// Catalogue is the on-disk shape of a template file
type Catalogue struct {
	Player   EntityTemplate   `json:"player"`
	Monsters []EntityTemplate `json:"monsters"`
	Items    []ItemTemplate   `json:"items"`
}

// EntityTemplateManager manages all entity templates
type EntityTemplateManager struct {
	Player        *EntityTemplate
	Templates     map[string]*EntityTemplate
	ItemTemplates map[string]*ItemTemplate
}

// NewEntityTemplateManager creates a new template manager
func NewEntityTemplateManager() *EntityTemplateManager {
	return &EntityTemplateManager{
		Templates:     make(map[string]*EntityTemplate),
		ItemTemplates: make(map[string]*ItemTemplate),
	}
}

// DefaultTemplates returns the built-in player, monsters and items
func DefaultTemplates() *EntityTemplateManager {
	m := NewEntityTemplateManager()
	if err := m.Register(defaultCatalogue()); err != nil {
		// The built-in catalogue is static
		panic(err)
	}
	return m
}

// LoadTemplatesFromFile replaces the built-in catalogue with the one in a JSON file
func LoadTemplatesFromFile(filePath string) (*EntityTemplateManager, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	var catalogue Catalogue
	if err := json.Unmarshal(raw, &catalogue); err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", filePath, err)
	}

	m := NewEntityTemplateManager()
	if err := m.Register(catalogue); err != nil {
		return nil, fmt.Errorf("invalid template file %s: %w", filePath, err)
	}
	return m, nil
}

// Register validates and adds every template of a catalogue
func (m *EntityTemplateManager) Register(catalogue Catalogue) error {
	player := catalogue.Player
	if err := validateEntityTemplate(&player); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	m.Player = &player

	for i := range catalogue.Monsters {
		template := catalogue.Monsters[i]
		if err := validateEntityTemplate(&template); err != nil {
			return err
		}
		m.Templates[template.ID] = &template
	}

	for i := range catalogue.Items {
		template := catalogue.Items[i]
		if err := ValidateItemTemplate(&template); err != nil {
			return err
		}
		m.ItemTemplates[template.ID] = &template
	}
	return nil
}

// GetTemplate returns a template by ID
func (m *EntityTemplateManager) GetTemplate(id string) (*EntityTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// GetItemTemplate returns an item template by ID
func (m *EntityTemplateManager) GetItemTemplate(id string) (*ItemTemplate, bool) {
	template, ok := m.ItemTemplates[id]
	return template, ok
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}

// GlyphRune returns the first character of a glyph string, or '?' if it is empty
func GlyphRune(glyph string) rune {
	for _, r := range glyph {
		return r
	}
	return '?'
}

func validateEntityTemplate(template *EntityTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("entity template missing ID")
	}
	if template.Health <= 0 {
		return fmt.Errorf("entity template '%s' needs positive health", template.ID)
	}
	if template.Name == "" {
		template.Name = template.ID
	}
	return nil
}

// ValidateItemTemplate ensures that the item template has all required fields
func ValidateItemTemplate(template *ItemTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("item template missing ID")
	}
	if template.Name == "" {
		return fmt.Errorf("item template '%s' missing name", template.ID)
	}
	switch template.Slot {
	case "", "melee", "shield":
	default:
		return fmt.Errorf("item template '%s' has unknown slot '%s'", template.ID, template.Slot)
	}
	return nil
}
