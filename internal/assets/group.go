package assets

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"ttsedit/internal/description"
)

// StandardProfile names the profile of a nickname without a " - " variant
const StandardProfile = "Standard"

var (
	// nicknames may carry any bracketed formatting, not only color tags
	nicknameTagPattern = regexp.MustCompile(`\[[^\]]*\]`)
	modelCountPattern  = regexp.MustCompile(`^\d+/\d+\s+`)
)

// Profile is one distinct (variant, description) pair within a unit.
// Indices lists every ObjectStates entry sharing it, first one first.
type Profile struct {
	Name        string
	Nickname    string
	Description string
	Indices     []int
}

// Count returns how many objects share the profile
func (p *Profile) Count() int {
	return len(p.Indices)
}

// Label is the profile name with its object count when shared
func (p *Profile) Label() string {
	if p.Count() > 1 {
		return fmt.Sprintf("%s (×%d)", p.Name, p.Count())
	}
	return p.Name
}

// Parsed returns the structured form of the description
func (p *Profile) Parsed() description.Description {
	return description.Parse(p.Description)
}

// Unit groups the profiles sharing a base name
type Unit struct {
	Name     string
	Profiles []*Profile
}

// ObjectCount returns the number of objects across all profiles
func (u *Unit) ObjectCount() int {
	n := 0
	for _, p := range u.Profiles {
		n += p.Count()
	}
	return n
}

// SplitNickname returns the base unit name and the variant of a nickname.
// Formatting tags and a leading "n/m " model count are removed first.
func SplitNickname(nickname string) (base, variant string) {
	clean := nicknameTagPattern.ReplaceAllString(nickname, "")
	clean = strings.TrimSpace(modelCountPattern.ReplaceAllString(clean, ""))

	base = clean
	if before, after, found := strings.Cut(clean, " - "); found {
		base = strings.TrimSpace(before)
		variant = strings.TrimSpace(after)
	}
	if variant == "" {
		variant = StandardProfile
	}
	return base, variant
}

// Group collects the document's objects into units. Objects with the same
// variant name and identical description text share one profile.
func Group(doc *Document) []*Unit {
	byName := make(map[string]*Unit)

	for i := 0; i < doc.Len(); i++ {
		nickname := doc.Nickname(i)
		base, variant := SplitNickname(nickname)
		text := doc.Description(i)

		unit, ok := byName[base]
		if !ok {
			unit = &Unit{Name: base}
			byName[base] = unit
		}

		if profile := unit.match(variant, text); profile != nil {
			profile.Indices = append(profile.Indices, i)
			continue
		}
		unit.Profiles = append(unit.Profiles, &Profile{
			Name:        variant,
			Nickname:    nickname,
			Description: text,
			Indices:     []int{i},
		})
	}

	units := make([]*Unit, 0, len(byName))
	for _, unit := range byName {
		units = append(units, unit)
	}

	fold := cases.Fold()
	sort.SliceStable(units, func(a, b int) bool {
		ka, kb := fold.String(units[a].Name), fold.String(units[b].Name)
		if ka != kb {
			return ka < kb
		}
		return units[a].Name < units[b].Name
	})
	return units
}

func (u *Unit) match(variant, text string) *Profile {
	for _, p := range u.Profiles {
		if p.Name == variant && p.Description == text {
			return p
		}
	}
	return nil
}
