package markup

import (
	"strings"
)

// EndMarker closes the currently open color scope
const EndMarker = "[-]"

// ColorRun is a piece of line text together with the color tag active over it.
// An empty Color means no tag is active.
type ColorRun struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
}

// IsColorCode reports whether s is exactly six hex digits
func IsColorCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// Tag returns the opening tag for a color code
func Tag(code string) string {
	return "[" + code + "]"
}

// Wrap colors text with code and closes the scope again
func Wrap(code, text string) string {
	return Tag(code) + text + EndMarker
}

// tokenizer holds the scan state for a single line. Color scope never
// carries over between lines, so a new tokenizer is used per line.
type tokenizer struct {
	runs    []ColorRun
	pending strings.Builder
	color   string
}

// flush emits the pending run. Uncolored empty runs carry no information and
// are dropped; colored empty runs are kept so that back-to-back tags still
// register.
func (t *tokenizer) flush() {
	if t.pending.Len() == 0 && t.color == "" {
		return
	}
	t.runs = append(t.runs, ColorRun{Text: t.pending.String(), Color: t.color})
	t.pending.Reset()
}

// Tokenize splits a single line into color runs.
//
// A tag is "[" payload "]" where payload is "-" (end marker) or exactly six
// hex digits. Anything else is plain text: the "[" is kept literally and
// scanning resumes right after it. A "[" with no "]" later on the line turns
// the rest of the line into plain text.
func Tokenize(line string) []ColorRun {
	t := &tokenizer{}
	pos := 0

	for pos < len(line) {
		open := strings.IndexByte(line[pos:], '[')
		if open == -1 {
			t.pending.WriteString(line[pos:])
			break
		}
		open += pos
		t.pending.WriteString(line[pos:open])

		closing := strings.IndexByte(line[open+1:], ']')
		if closing == -1 {
			t.pending.WriteString(line[open:])
			break
		}
		closing += open + 1

		payload := line[open+1 : closing]
		switch {
		case payload == "-":
			t.flush()
			t.color = ""
			pos = closing + 1
		case IsColorCode(payload):
			t.flush()
			t.color = payload
			pos = closing + 1
		default:
			t.pending.WriteByte('[')
			pos = open + 1
		}
	}

	t.flush()
	return t.runs
}

// Strip removes every color tag from a line, keeping malformed tags as text.
// Removing a tag can join two fragments into a new tag ("[ab[-]cdef]"), so
// stripping repeats until the line no longer changes.
func Strip(line string) string {
	for {
		stripped := stripOnce(line)
		if stripped == line {
			return stripped
		}
		line = stripped
	}
}

func stripOnce(line string) string {
	if strings.IndexByte(line, '[') == -1 {
		return line
	}
	var result strings.Builder
	for _, run := range Tokenize(line) {
		result.WriteString(run.Text)
	}
	return result.String()
}

// Render writes runs back as markup text. Each colored run is wrapped in its
// own tag and end marker.
func Render(runs []ColorRun) string {
	var result strings.Builder
	for _, run := range runs {
		if run.Color == "" {
			result.WriteString(run.Text)
			continue
		}
		result.WriteString(Wrap(run.Color, run.Text))
	}
	return result.String()
}
