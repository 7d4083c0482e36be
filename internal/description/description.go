// Package description converts Tabletop Simulator unit descriptions between
// their markup text form and a typed record.
//
// The text form is a sequence of sections (stats, ranged weapons, melee
// weapons, abilities), each introduced by a header line and decorated with
// inline color tags. Parsing never fails: anything it cannot read degrades to
// empty values. Every function in this package is pure.
package description

import (
	"strings"
)

// Description is the full record for one unit profile
type Description struct {
	Stats         Stats    `json:"stats" yaml:"stats"`
	RangedWeapons []Weapon `json:"ranged_weapons,omitempty" yaml:"ranged_weapons,omitempty"`
	MeleeWeapons  []Weapon `json:"melee_weapons,omitempty" yaml:"melee_weapons,omitempty"`
	Abilities     []string `json:"abilities,omitempty" yaml:"abilities,omitempty"`
}

// Weapons returns the weapon list of the given kind
func (d *Description) Weapons(kind WeaponKind) []Weapon {
	if kind == Melee {
		return d.MeleeWeapons
	}
	return d.RangedWeapons
}

// SetWeapons replaces the weapon list of the given kind
func (d *Description) SetWeapons(kind WeaponKind, weapons []Weapon) {
	if kind == Melee {
		d.MeleeWeapons = weapons
	} else {
		d.RangedWeapons = weapons
	}
}

// Parse reads a description text into a record
func Parse(text string) Description {
	sections := Split(text)
	return Description{
		Stats:         DecodeStats(sections.Stats),
		RangedWeapons: DecodeWeapons(sections.Ranged, Ranged),
		MeleeWeapons:  DecodeWeapons(sections.Melee, Melee),
		Abilities:     DecodeAbilities(sections.Abilities),
	}
}

// Render writes a record in canonical form: stats always, then each
// non-empty section in order, one blank line between sections.
func Render(d Description) string {
	blocks := [][]string{EncodeStats(d.Stats)}
	if len(d.RangedWeapons) > 0 {
		blocks = append(blocks, EncodeWeapons(d.RangedWeapons, Ranged))
	}
	if len(d.MeleeWeapons) > 0 {
		blocks = append(blocks, EncodeWeapons(d.MeleeWeapons, Melee))
	}
	if len(d.Abilities) > 0 {
		blocks = append(blocks, EncodeAbilities(d.Abilities))
	}

	joined := make([]string, 0, len(blocks))
	for _, block := range blocks {
		joined = append(joined, strings.Join(trimTrailingBlank(block), "\n"))
	}
	return strings.Join(joined, "\n\n") + "\n"
}

// Normalize rewrites a description in canonical form
func Normalize(text string) string {
	return Render(Parse(text))
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
