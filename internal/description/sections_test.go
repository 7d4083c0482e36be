package description

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const intercessorSergeant = `[56f442] M    T   Sv    W    Ld   OC  [-]
6"   3   3+   2    7+   1   [-][-]

[e85545]Ranged weapons[-]
[c6c930]Bolt Pistol (Ranged Weapons)[-]
12" A:1 BS:3+ S:4 AP:0 D:1 [7bc596][Pistol][-]

[dc61ed]Abilities[-]
Leader`

func TestSplit_AllSections(t *testing.T) {
	text := intercessorSergeant + "\n\n[e85545]Melee weapons[-]\n[c6c930]Power Fist (Melee Weapons)[-]\nA:3 WS:3+ S:8 AP:-2 D:2"

	sections := Split(text)

	require.Len(t, sections.Stats, 3)
	assert.Equal(t, "[56f442] M    T   Sv    W    Ld   OC  [-]", sections.Stats[0])
	assert.Equal(t, "", sections.Stats[2])

	require.Len(t, sections.Ranged, 4)
	assert.Equal(t, "[e85545]Ranged weapons[-]", sections.Ranged[0])

	assert.Equal(t, []string{"[dc61ed]Abilities[-]", "Leader", ""}, sections.Abilities)

	require.Len(t, sections.Melee, 3)
	assert.Equal(t, "A:3 WS:3+ S:8 AP:-2 D:2", sections.Melee[2])
}

func TestSplit_DropsLinesBeforeFirstHeader(t *testing.T) {
	sections := Split("Intercessor Sergeant\nsome notes\n[dc61ed]Abilities[-]\nLeader")

	assert.Empty(t, sections.Stats)
	assert.Empty(t, sections.Ranged)
	assert.Empty(t, sections.Melee)
	assert.Equal(t, []string{"[dc61ed]Abilities[-]", "Leader"}, sections.Abilities)
}

func TestSplit_MissingSectionsAreEmpty(t *testing.T) {
	sections := Split("")

	for _, section := range AllSections {
		assert.Empty(t, sections.Lines(section), section.String())
	}
}

func TestSplit_HeaderDetectionUsesStrippedText(t *testing.T) {
	// tags break up the keyword in the raw line but not in the stripped one
	sections := Split("[e85545]Ranged[-] [c6c930]weapons[-]\nx")
	assert.Equal(t, []string{"[e85545]Ranged[-] [c6c930]weapons[-]", "x"}, sections.Ranged)

	// a malformed tag stays in the stripped text and hides the keyword
	sections = Split("Ranged[oops] weapons\nx")
	assert.Empty(t, sections.Ranged)
}

func TestSplit_StatsHeuristicIsLoose(t *testing.T) {
	// Any line containing M, T, Sv and W switches to the stats section
	text := "[dc61ed]Abilities[-]\nMark of the Warp: Sv bonus on a T roll"

	sections := Split(text)

	assert.Equal(t, []string{"[dc61ed]Abilities[-]"}, sections.Abilities)
	assert.Equal(t, []string{"Mark of the Warp: Sv bonus on a T roll"}, sections.Stats)
}

func TestSplit_WeaponNameLinesAreNotHeaders(t *testing.T) {
	text := "[e85545]Melee weapons[-]\n[c6c930]Thunder Hammer (Melee Weapons)[-]\nA:3 WS:4+ S:8 AP:-2 D:2"

	sections := Split(text)

	assert.Len(t, sections.Melee, 3)
	assert.Empty(t, sections.Stats)
}

func TestParseSection(t *testing.T) {
	section, ok := ParseSection("Melee")
	assert.True(t, ok)
	assert.Equal(t, SectionMelee, section)

	_, ok = ParseSection("psychic")
	assert.False(t, ok)
}
