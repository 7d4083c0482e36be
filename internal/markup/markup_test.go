package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_BasicTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []ColorRun
	}{
		{
			name:     "no tags",
			input:    "Leader",
			expected: []ColorRun{{Text: "Leader"}},
		},
		{
			name:  "color then end marker",
			input: "[e85545]Ranged weapons[-]",
			expected: []ColorRun{
				{Text: "Ranged weapons", Color: "e85545"},
			},
		},
		{
			name:  "text around a tag",
			input: `12" A:1 D:1 [7bc596]Pistol[-] tail`,
			expected: []ColorRun{
				{Text: `12" A:1 D:1 `},
				{Text: "Pistol", Color: "7bc596"},
				{Text: " tail"},
			},
		},
		{
			name:  "color without end marker runs to end of line",
			input: "[c6c930]Bolt Pistol",
			expected: []ColorRun{
				{Text: "Bolt Pistol", Color: "c6c930"},
			},
		},
		{
			name:  "upper case hex is a tag",
			input: "[C6C930]x[-]",
			expected: []ColorRun{
				{Text: "x", Color: "C6C930"},
			},
		},
		{
			name:     "empty line",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_BackToBackColors(t *testing.T) {
	runs := Tokenize("[e85545][c6c930]Name[-]")

	// both register, only the later one carries text
	assert.Equal(t, []ColorRun{
		{Text: "", Color: "e85545"},
		{Text: "Name", Color: "c6c930"},
	}, runs)
}

func TestTokenize_DoubleEndMarker(t *testing.T) {
	runs := Tokenize(`6"   3   [-][-]`)
	assert.Equal(t, []ColorRun{{Text: `6"   3   `}}, runs)
}

func TestTokenize_MalformedTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []ColorRun
	}{
		{
			name:     "payload not hex",
			input:    "abc[xyz]def",
			expected: []ColorRun{{Text: "abc[xyz]def"}},
		},
		{
			name:     "payload wrong length",
			input:    "[12345]x",
			expected: []ColorRun{{Text: "[12345]x"}},
		},
		{
			name:     "unterminated bracket",
			input:    "[e85545]open [never closed",
			expected: []ColorRun{{Text: "open [never closed", Color: "e85545"}},
		},
		{
			name:  "literal bracket before a real tag",
			input: "[[56f442]x",
			expected: []ColorRun{
				{Text: "["},
				{Text: "x", Color: "56f442"},
			},
		},
		{
			name:     "bracketed ability text stays text",
			input:    "[Pistol]",
			expected: []ColorRun{{Text: "[Pistol]"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_ScopeDoesNotCrossLines(t *testing.T) {
	first := Tokenize("[e85545]open")
	second := Tokenize("plain")

	assert.Equal(t, "e85545", first[0].Color)
	assert.Equal(t, "", second[0].Color)
}

func TestStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[56f442] M    T   Sv    W    Ld   OC  [-]", " M    T   Sv    W    Ld   OC  "},
		{`12" A:1 [7bc596][Pistol][-]`, `12" A:1 [Pistol]`},
		{"abc[xyz]def", "abc[xyz]def"},
		{"no markup", "no markup"},
		{"[-][-]", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip(tt.input))
		})
	}
}

func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{
		"[e85545]Ranged weapons[-]",
		"abc[xyz]def",
		"[[-]-]",
		"[ab[-]cdef]tail",
		"[[[56f442]]]",
		"[unterminated",
		`12" A:1 BS:3+ S:4 AP:0 D:1 [7bc596][Pistol][-]`,
	}

	for _, input := range inputs {
		once := Strip(input)
		assert.Equal(t, once, Strip(once), "input %q", input)
	}
}

func TestRender(t *testing.T) {
	runs := []ColorRun{
		{Text: "Bolt Pistol", Color: "c6c930"},
		{Text: " plain "},
		{Text: "", Color: "e85545"},
	}
	assert.Equal(t, "[c6c930]Bolt Pistol[-] plain [e85545][-]", Render(runs))
}

func TestRender_RoundTrip(t *testing.T) {
	cases := [][]ColorRun{
		{{Text: "Ranged weapons", Color: "e85545"}},
		{{Text: "lead "}, {Text: "green", Color: "7bc596"}, {Text: " tail"}},
		{{Text: "", Color: "e85545"}, {Text: "Name", Color: "c6c930"}},
		{{Text: "a", Color: "ABCDEF"}, {Text: "b", Color: "abcdef"}},
		{{Text: `6"   3   3+`}},
	}

	for _, runs := range cases {
		rendered := Render(runs)
		assert.Equal(t, runs, Tokenize(rendered), "rendered %q", rendered)
		assert.Equal(t, rendered, Render(Tokenize(rendered)))
	}
}

func TestIsColorCode(t *testing.T) {
	assert.True(t, IsColorCode("7bc596"))
	assert.True(t, IsColorCode("ABCDEF"))
	assert.False(t, IsColorCode("-"))
	assert.False(t, IsColorCode("7bc59"))
	assert.False(t, IsColorCode("7bc5967"))
	assert.False(t, IsColorCode("zzzzzz"))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "[dc61ed]Abilities[-]", Wrap("dc61ed", "Abilities"))
	assert.Equal(t, "[56f442]", Tag("56f442"))
}
