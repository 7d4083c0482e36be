package description

import (
	"strings"
)

// Template returns a skeleton block for a section with X placeholders,
// ready to be filled in by hand.
func Template(section Section) string {
	var lines []string
	switch section {
	case SectionStats:
		lines = EncodeStats(Stats{M: `X"`, T: "X", Sv: "X+", W: "X", Ld: "X+", OC: "X"})
	case SectionRanged:
		lines = EncodeWeapons([]Weapon{{
			Name: "Weapon Name", Range: `X"`, A: "X", BS: "X+", S: "X", AP: "-X", D: "X", Abilities: "Keywords",
		}}, Ranged)
	case SectionMelee:
		lines = EncodeWeapons([]Weapon{{
			Name: "Weapon Name", A: "X", WS: "X+", S: "X", AP: "X", D: "X", Abilities: "Keywords",
		}}, Melee)
	case SectionAbilities:
		lines = EncodeAbilities([]string{"Ability Name 1", "Ability Name 2", "Ability Name 3"})
	default:
		return ""
	}
	return strings.Join(trimTrailingBlank(lines), "\n") + "\n"
}
