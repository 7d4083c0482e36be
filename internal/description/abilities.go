package description

import (
	"strings"

	"ttsedit/internal/markup"
)

const abilitiesHeaderColor = "dc61ed"

// DecodeAbilities returns the non-blank ability lines, stripped of markup.
// Any raw line containing "Abilities" is treated as the header and skipped.
func DecodeAbilities(lines []string) []string {
	var abilities []string
	for _, line := range lines {
		if strings.Contains(line, abilitiesKeyword) {
			continue
		}
		if clean := strings.TrimSpace(markup.Strip(line)); clean != "" {
			abilities = append(abilities, clean)
		}
	}
	return abilities
}

// EncodeAbilities writes the header followed by the abilities as given
func EncodeAbilities(abilities []string) []string {
	lines := make([]string, 0, len(abilities)+1)
	lines = append(lines, markup.Wrap(abilitiesHeaderColor, abilitiesKeyword))
	return append(lines, abilities...)
}
