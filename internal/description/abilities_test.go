package description

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAbilities(t *testing.T) {
	lines := []string{
		"[dc61ed]Abilities[-]",
		"Leader",
		"",
		"   ",
		"[ffffff]Oath of Moment[-]",
		"  Rites of Battle  ",
	}

	assert.Equal(t, []string{"Leader", "Oath of Moment", "Rites of Battle"}, DecodeAbilities(lines))
}

func TestDecodeAbilities_SkipsAnyLineMentioningTheHeader(t *testing.T) {
	lines := []string{"[dc61ed]Abilities[-]", "Shares Abilities with its bodyguard", "Leader"}
	assert.Equal(t, []string{"Leader"}, DecodeAbilities(lines))
}

func TestDecodeAbilities_Empty(t *testing.T) {
	assert.Empty(t, DecodeAbilities(nil))
	assert.Empty(t, DecodeAbilities([]string{"[dc61ed]Abilities[-]"}))
}

func TestEncodeAbilities(t *testing.T) {
	lines := EncodeAbilities([]string{"Leader", "[ffffff]Deep Strike[-]"})
	assert.Equal(t, []string{"[dc61ed]Abilities[-]", "Leader", "[ffffff]Deep Strike[-]"}, lines)
}
