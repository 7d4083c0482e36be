package description

import (
	"regexp"
	"strings"

	"ttsedit/internal/markup"
)

// WeaponKind separates ranged from melee profiles
type WeaponKind int

const (
	Ranged WeaponKind = iota
	Melee
)

func (k WeaponKind) String() string {
	if k == Melee {
		return "melee"
	}
	return "ranged"
}

// MarshalText lets kinds travel as "ranged"/"melee" in JSON and YAML
func (k WeaponKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts "ranged" or "melee"; anything else is ranged
func (k *WeaponKind) UnmarshalText(text []byte) error {
	if strings.EqualFold(string(text), "melee") {
		*k = Melee
	} else {
		*k = Ranged
	}
	return nil
}

// Labels returns the stat labels a weapon of this kind carries, in line order
func (k WeaponKind) Labels() []string {
	if k == Melee {
		return []string{"A", "WS", "S", "AP", "D"}
	}
	return []string{"Range", "A", "BS", "S", "AP", "D"}
}

// sectionHeader is the header line for the kind's weapon list
func (k WeaponKind) sectionHeader() string {
	if k == Melee {
		return markup.Wrap(headerColor, meleeKeyword)
	}
	return markup.Wrap(headerColor, rangedKeyword)
}

// nameSuffix is appended to every weapon name line
func (k WeaponKind) nameSuffix() string {
	if k == Melee {
		return " (Melee Weapons)"
	}
	return " (Ranged Weapons)"
}

const (
	headerColor    = "e85545"
	nameColor      = "c6c930"
	abilitiesColor = "7bc596"
)

// Weapon is one weapon profile. Range and BS belong to ranged weapons, WS to
// melee weapons; the other kind's fields stay empty.
type Weapon struct {
	Name      string     `json:"name" yaml:"name"`
	Kind      WeaponKind `json:"kind" yaml:"kind"`
	Range     string     `json:"range,omitempty" yaml:"range,omitempty"`
	A         string     `json:"A" yaml:"A"`
	BS        string     `json:"BS,omitempty" yaml:"BS,omitempty"`
	WS        string     `json:"WS,omitempty" yaml:"WS,omitempty"`
	S         string     `json:"S" yaml:"S"`
	AP        string     `json:"AP" yaml:"AP"`
	D         string     `json:"D" yaml:"D"`
	Abilities string     `json:"abilities,omitempty" yaml:"abilities,omitempty"`
}

// Field is a labelled weapon stat
type Field struct {
	Label string
	Value string
}

// Fields returns the weapon's stats for its kind, in line order
func (w Weapon) Fields() []Field {
	labels := w.Kind.Labels()
	fields := make([]Field, 0, len(labels))
	for _, label := range labels {
		fields = append(fields, Field{Label: label, Value: w.Get(label)})
	}
	return fields
}

// Get returns a stat by label
func (w Weapon) Get(label string) string {
	if p := w.field(label); p != nil {
		return *p
	}
	return ""
}

// Set assigns a stat by label. Labels that do not belong to the weapon's
// kind are ignored so the field set never changes shape.
func (w *Weapon) Set(label, value string) {
	for _, l := range w.Kind.Labels() {
		if l == label {
			*w.field(label) = value
			return
		}
	}
}

func (w *Weapon) field(label string) *string {
	switch label {
	case "Range":
		return &w.Range
	case "A":
		return &w.A
	case "BS":
		return &w.BS
	case "WS":
		return &w.WS
	case "S":
		return &w.S
	case "AP":
		return &w.AP
	case "D":
		return &w.D
	}
	return nil
}

var (
	rangePattern = regexp.MustCompile(`^(\d+")`)

	// S: must not be the tail of BS: or WS:
	statPatterns = map[string]*regexp.Regexp{
		"A":  regexp.MustCompile(`A:(\S+)`),
		"BS": regexp.MustCompile(`BS:(\S+)`),
		"WS": regexp.MustCompile(`WS:(\S+)`),
		"S":  regexp.MustCompile(`(?:^|\W)S:(\S+)`),
		"AP": regexp.MustCompile(`AP:(\S+)`),
		"D":  regexp.MustCompile(`D:(\S+)`),
	}

	taggedAbilitiesPattern = regexp.MustCompile(`\[` + abilitiesColor + `\]\[([^\]]*)\]`)
	afterDamagePattern     = regexp.MustCompile(`D:\s*\S+\s+`)
	bracketPattern         = regexp.MustCompile(`\[([^\]]*)\]`)
)

// DecodeWeapons reads a weapon section. Index 0 is the section header; the
// remaining lines are consumed as (name line, stats line) pairs. A pair whose
// name line has no "(...)" is skipped and an odd trailing line is dropped.
func DecodeWeapons(lines []string, kind WeaponKind) []Weapon {
	var weapons []Weapon
	if len(lines) < 2 {
		return weapons
	}

	for i := 1; i < len(lines)-1; i += 2 {
		cleanName := markup.Strip(lines[i])
		if !strings.Contains(cleanName, "(") || !strings.Contains(cleanName, ")") {
			continue
		}

		weapon := Weapon{
			Name: strings.TrimSpace(cleanName[:strings.Index(cleanName, "(")]),
			Kind: kind,
		}
		decodeWeaponStats(&weapon, lines[i+1])
		weapons = append(weapons, weapon)
	}

	return weapons
}

// decodeWeaponStats fills the stats of weapon from its stats line. Every field
// is searched independently on the stripped line; abilities are searched on
// the raw line so the color tags can anchor the match.
func decodeWeaponStats(weapon *Weapon, statsLine string) {
	clean := markup.Strip(statsLine)

	for _, label := range weapon.Kind.Labels() {
		if label == "Range" {
			if match := rangePattern.FindStringSubmatch(clean); match != nil {
				weapon.Range = match[1]
			}
			continue
		}
		if match := statPatterns[label].FindStringSubmatch(clean); match != nil {
			weapon.Set(label, match[1])
		}
	}

	weapon.Abilities = extractAbilities(statsLine)
}

// extractAbilities looks for the light-green bracketed group first and falls
// back to the first bracketed group after the D: value.
func extractAbilities(statsLine string) string {
	if match := taggedAbilitiesPattern.FindStringSubmatch(statsLine); match != nil {
		return strings.TrimSpace(match[1])
	}

	if !strings.Contains(statsLine, "D:") {
		return ""
	}
	loc := afterDamagePattern.FindStringIndex(statsLine)
	if loc == nil {
		return ""
	}
	trailing := statsLine[loc[1]:]
	if strings.TrimSpace(trailing) == "" {
		return ""
	}
	if match := bracketPattern.FindStringSubmatch(trailing); match != nil {
		return strings.TrimSpace(match[1])
	}
	return ""
}

// EncodeWeapons writes the section header, a name line and a stats line per
// weapon, and a closing blank line.
func EncodeWeapons(weapons []Weapon, kind WeaponKind) []string {
	lines := make([]string, 0, 2+2*len(weapons))
	lines = append(lines, kind.sectionHeader())

	for _, weapon := range weapons {
		weapon.Kind = kind
		lines = append(lines, markup.Wrap(nameColor, weapon.Name+kind.nameSuffix()))
		lines = append(lines, encodeWeaponStats(weapon))
	}

	return append(lines, "")
}

func encodeWeaponStats(weapon Weapon) string {
	parts := make([]string, 0, 7)
	for _, field := range weapon.Fields() {
		if field.Label == "Range" {
			parts = append(parts, field.Value)
			continue
		}
		parts = append(parts, field.Label+":"+field.Value)
	}
	if weapon.Abilities != "" {
		parts = append(parts, markup.Tag(abilitiesColor)+"["+weapon.Abilities+"]"+markup.EndMarker)
	}
	return strings.Join(parts, " ")
}
