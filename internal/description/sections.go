package description

import (
	"strings"

	"ttsedit/internal/markup"
)

// Section identifies one of the four recognized description blocks
type Section int

const (
	SectionStats Section = iota
	SectionRanged
	SectionMelee
	SectionAbilities
)

// AllSections lists the sections in render order
var AllSections = []Section{SectionStats, SectionRanged, SectionMelee, SectionAbilities}

func (s Section) String() string {
	switch s {
	case SectionStats:
		return "stats"
	case SectionRanged:
		return "ranged"
	case SectionMelee:
		return "melee"
	case SectionAbilities:
		return "abilities"
	}
	return "unknown"
}

// ParseSection maps a section name back to its Section
func ParseSection(name string) (Section, bool) {
	for _, s := range AllSections {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}
	return 0, false
}

// Header keywords matched against the markup-stripped line
const (
	rangedKeyword    = "Ranged weapons"
	meleeKeyword     = "Melee weapons"
	abilitiesKeyword = "Abilities"
)

// Sections holds the raw lines (markup intact) of each section, header line
// included. A missing section is an empty slice.
type Sections struct {
	Stats     []string
	Ranged    []string
	Melee     []string
	Abilities []string
}

// Lines returns the lines stored for a section
func (s *Sections) Lines(section Section) []string {
	switch section {
	case SectionStats:
		return s.Stats
	case SectionRanged:
		return s.Ranged
	case SectionMelee:
		return s.Melee
	case SectionAbilities:
		return s.Abilities
	}
	return nil
}

func (s *Sections) appendLine(section Section, line string) {
	switch section {
	case SectionStats:
		s.Stats = append(s.Stats, line)
	case SectionRanged:
		s.Ranged = append(s.Ranged, line)
	case SectionMelee:
		s.Melee = append(s.Melee, line)
	case SectionAbilities:
		s.Abilities = append(s.Abilities, line)
	}
}

// detectHeader classifies a markup-stripped line. The stats check is a plain
// substring test for "M", "T", "Sv" and "W" anywhere on the line, so any line
// that happens to contain all four starts a stats section.
func detectHeader(clean string) (Section, bool) {
	switch {
	case strings.Contains(clean, "M") && strings.Contains(clean, "T") &&
		strings.Contains(clean, "Sv") && strings.Contains(clean, "W"):
		return SectionStats, true
	case strings.Contains(clean, rangedKeyword):
		return SectionRanged, true
	case strings.Contains(clean, meleeKeyword):
		return SectionMelee, true
	case strings.Contains(clean, abilitiesKeyword):
		return SectionAbilities, true
	}
	return 0, false
}

// Split breaks a description into its sections. Lines before the first
// header are dropped.
func Split(text string) Sections {
	var sections Sections
	current := Section(-1)

	for _, line := range strings.Split(text, "\n") {
		if header, ok := detectHeader(markup.Strip(line)); ok {
			current = header
			sections.appendLine(current, line)
			continue
		}
		if current >= 0 {
			sections.appendLine(current, line)
		}
	}

	return sections
}
