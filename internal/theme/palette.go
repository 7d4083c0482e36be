package theme

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"ttsedit/internal/markup"
)

// PaletteColor is a named Tabletop Simulator color code
type PaletteColor struct {
	Code  string
	Name  string
	Color tcell.Color
}

// Known Tabletop Simulator description colors, in picker order
var knownCodes = []struct{ code, name string }{
	{"00ff16", "Green"},
	{"e85545", "Red"},
	{"c6c930", "Yellow"},
	{"7bc596", "Light Green"},
	{"dc61ed", "Purple"},
	{"56f442", "Bright Green"},
}

// Palette maps color codes found in descriptions to display colors.
// Codes are compared case-insensitively.
type Palette struct {
	mu     sync.RWMutex
	colors map[string]tcell.Color
	known  []PaletteColor
}

// NewPalette returns a palette with the known codes registered
func NewPalette() *Palette {
	p := &Palette{colors: make(map[string]tcell.Color)}
	for _, k := range knownCodes {
		color, _ := p.Register(k.code)
		p.known = append(p.known, PaletteColor{Code: k.code, Name: k.name, Color: color})
	}
	return p
}

// Register returns the display color for code, registering it on first use.
// Registering the same code again returns the same color. ok is false when
// code is not a six digit hex color.
func (p *Palette) Register(code string) (tcell.Color, bool) {
	if !markup.IsColorCode(code) {
		return tcell.ColorDefault, false
	}
	key := strings.ToLower(code)

	p.mu.RLock()
	color, exists := p.colors[key]
	p.mu.RUnlock()
	if exists {
		return color, true
	}

	value, err := strconv.ParseInt(key, 16, 32)
	if err != nil {
		return tcell.ColorDefault, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if color, exists := p.colors[key]; exists {
		return color, true
	}
	color = tcell.NewHexColor(int32(value))
	p.colors[key] = color
	return color, true
}

// Known returns the named codes in picker order
func (p *Palette) Known() []PaletteColor {
	known := make([]PaletteColor, len(p.known))
	copy(known, p.known)
	return known
}

// Name returns the display name of a known code, or the code itself
func (p *Palette) Name(code string) string {
	for _, k := range p.known {
		if strings.EqualFold(k.Code, code) {
			return k.Name
		}
	}
	return code
}

// Len returns the number of registered codes
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.colors)
}
