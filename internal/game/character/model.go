// Package character defines the character-sheet domain model and the
// level- and attribute-driven derived formulas: power-point limits and
// rest recovery.
package character

import (
	"github.com/caosrpg/tabuleiro/internal/game/inventory"
	"github.com/caosrpg/tabuleiro/internal/game/modifier"
	"github.com/caosrpg/tabuleiro/internal/game/ruleset"
	"github.com/caosrpg/tabuleiro/internal/game/skill"
)

// Attributes holds the five core attribute values. The nominal range is
// 0-5; every formula tolerates values outside it.
type Attributes struct {
	Forca        int `yaml:"forca" json:"forca"`
	Agilidade    int `yaml:"agilidade" json:"agilidade"`
	Constituicao int `yaml:"constituicao" json:"constituicao"`
	Intelecto    int `yaml:"intelecto" json:"intelecto"`
	Presenca     int `yaml:"presenca" json:"presenca"`
}

// Value looks an attribute up by its sheet key. Unknown keys read as 0.
func (a Attributes) Value(name string) int {
	switch name {
	case "forca":
		return a.Forca
	case "agilidade":
		return a.Agilidade
	case "constituicao":
		return a.Constituicao
	case "intelecto":
		return a.Intelecto
	case "presenca":
		return a.Presenca
	}
	return 0
}

// ArmorInfo is the defense-relevant slice of equipped armor.
type ArmorInfo struct {
	Bonus int `yaml:"bonus" json:"bonus"`
	// AgilityCap limits the agility contribution to defense; nil means
	// the armor imposes no cap.
	AgilityCap *int `yaml:"agility_cap,omitempty" json:"agilityCap,omitempty"`
}

// Character is a snapshot of one character sheet. The formula packages
// only ever read it; derived values are recomputed from the snapshot on
// every call and returned to the caller.
type Character struct {
	Name       string               `yaml:"name" json:"name"`
	Level      int                  `yaml:"level" json:"level"`
	Size       ruleset.CreatureSize `yaml:"size" json:"size"`
	Background string               `yaml:"background,omitempty" json:"background,omitempty"`

	Attributes Attributes `yaml:"attributes" json:"attributes"`

	PV Points `yaml:"pv" json:"pv"`
	PP Points `yaml:"pp" json:"pp"`

	Skills []skill.Skill `yaml:"skills,omitempty" json:"skills,omitempty"`

	Armor       ArmorInfo           `yaml:"armor,omitempty" json:"armor,omitempty"`
	ShieldBonus int                 `yaml:"shield_bonus,omitempty" json:"shieldBonus,omitempty"`
	DefenseMods []modifier.Modifier `yaml:"defense_mods,omitempty" json:"defenseMods,omitempty"`

	Items    []inventory.Item `yaml:"items,omitempty" json:"items,omitempty"`
	Currency int              `yaml:"currency,omitempty" json:"currency,omitempty"`
}

// SkillByName returns the named skill entry, or false when the sheet has
// no such skill.
func (c *Character) SkillByName(name string) (skill.Skill, bool) {
	for _, s := range c.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return skill.Skill{}, false
}
