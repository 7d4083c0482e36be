package description

import (
	"strings"

	"ttsedit/internal/markup"
)

// Stats is the six-value unit profile line. Values are opaque tokens.
type Stats struct {
	M  string `json:"M" yaml:"M"`
	T  string `json:"T" yaml:"T"`
	Sv string `json:"Sv" yaml:"Sv"`
	W  string `json:"W" yaml:"W"`
	Ld string `json:"Ld" yaml:"Ld"`
	OC string `json:"OC" yaml:"OC"`
}

// StatLabels are the stat names in line order
var StatLabels = []string{"M", "T", "Sv", "W", "Ld", "OC"}

const (
	statsColor  = "56f442"
	statsHeader = "[56f442] M    T   Sv    W    Ld   OC  [-]"
	statPadding = "   "
)

// Values returns the stats in StatLabels order
func (s Stats) Values() []string {
	return []string{s.M, s.T, s.Sv, s.W, s.Ld, s.OC}
}

// Get returns a stat by label
func (s Stats) Get(label string) string {
	if p := s.field(label); p != nil {
		return *p
	}
	return ""
}

// Set assigns a stat by label, ignoring unknown labels
func (s *Stats) Set(label, value string) {
	if p := s.field(label); p != nil {
		*p = value
	}
}

// IsZero reports whether every stat is empty
func (s Stats) IsZero() bool {
	return s == Stats{}
}

func (s *Stats) field(label string) *string {
	switch label {
	case "M":
		return &s.M
	case "T":
		return &s.T
	case "Sv":
		return &s.Sv
	case "W":
		return &s.W
	case "Ld":
		return &s.Ld
	case "OC":
		return &s.OC
	}
	return nil
}

// DecodeStats reads the values line (the line after the header). Missing
// lines or values leave the corresponding stats empty.
func DecodeStats(lines []string) Stats {
	var stats Stats
	if len(lines) < 2 {
		return stats
	}

	values := statColumns(markup.Strip(lines[1]))
	for i, label := range StatLabels {
		if i < len(values) {
			stats.Set(label, values[i])
		}
	}
	return stats
}

// statColumns prefers the layout EncodeStats writes, where every value is
// followed by exactly the stat padding. That layout keeps empty values in
// place. Anything else is split on whitespace runs.
func statColumns(clean string) []string {
	if strings.HasSuffix(clean, statPadding) {
		parts := strings.Split(strings.TrimSuffix(clean, statPadding), statPadding)
		if len(parts) == len(StatLabels) {
			for i, part := range parts {
				parts[i] = strings.TrimSpace(part)
			}
			if !strings.Contains(strings.Join(parts, ""), " ") {
				return parts
			}
		}
	}
	return strings.Fields(clean)
}

// EncodeStats writes the fixed header line and the padded values line
func EncodeStats(stats Stats) []string {
	var values strings.Builder
	for _, value := range stats.Values() {
		values.WriteString(value)
		values.WriteString(statPadding)
	}
	// The header opens a nested scope, so the values line closes twice
	values.WriteString(markup.EndMarker)
	values.WriteString(markup.EndMarker)

	return []string{statsHeader, values.String()}
}
