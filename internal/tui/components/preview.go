package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"ttsedit/internal/markup"
	"ttsedit/internal/theme"
)

// PreviewText converts description markup into tview color tags. Run text
// is escaped so brackets that are not color tags show up literally.
func PreviewText(text string, palette *theme.Palette) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		var b strings.Builder
		for _, run := range markup.Tokenize(line) {
			if run.Text == "" {
				continue
			}
			escaped := tview.Escape(run.Text)
			color, ok := palette.Register(run.Color)
			if run.Color == "" || !ok {
				b.WriteString(escaped)
				continue
			}
			fmt.Fprintf(&b, "[#%06x]%s[-]", color.Hex(), escaped)
		}
		out[i] = b.String()
	}

	return strings.Join(out, "\n")
}
