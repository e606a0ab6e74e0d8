package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSkidByHeight(t *testing.T) {
	st, except, err := ResolveSkid("Default", 2.0)
	assert.NoError(t, err)
	assert.False(t, except)
	assert.Equal(t, SkidAngle75, st)

	st, _, err = ResolveSkid("", 3.0)
	assert.NoError(t, err)
	assert.Equal(t, SkidChannel125, st)

	st, _, err = ResolveSkid("Default", 5.0)
	assert.NoError(t, err)
	assert.Equal(t, SkidChannel150, st)
}

func TestResolveSkidExplicit(t *testing.T) {
	st, except, err := ResolveSkid("Channel 150", 2.0)
	assert.NoError(t, err)
	assert.False(t, except)
	assert.Equal(t, SkidChannel150, st)
}

func TestResolveSkidExcept(t *testing.T) {
	st, except, err := ResolveSkid("Except SKB", 3.0)
	assert.NoError(t, err)
	assert.True(t, except)
	assert.Equal(t, SkidChannel125, st)
}

func TestResolveSkidUnknown(t *testing.T) {
	_, _, err := ResolveSkid("Channel 999", 3.0)
	assert.ErrorIs(t, err, ErrUnresolvedOption)
}

func TestParseBoltOption(t *testing.T) {
	// Empty defaults to the HDG/SS304 combination.
	m, err := ParseBoltOption("")
	assert.NoError(t, err)
	assert.Equal(t, "HDG", m.External)
	assert.Equal(t, "SS304", m.Internal)

	// SS316 internal resolves to SS304 part numbers.
	m, err = ParseBoltOption("EXT:SS316/INT:SS316")
	assert.NoError(t, err)
	assert.Equal(t, "SS304", m.External)
	assert.Equal(t, "SS304", m.Internal)

	m, err = ParseBoltOption("Except All Bolts")
	assert.NoError(t, err)
	assert.True(t, m.SkipAll)

	m, err = ParseBoltOption("Except Panel Assemble Bolts")
	assert.NoError(t, err)
	assert.True(t, m.SkipExternal)
	assert.Equal(t, "SS304", m.Internal)

	_, err = ParseBoltOption("EXT:TITANIUM")
	assert.ErrorIs(t, err, ErrUnresolvedOption)
}

func TestInsulated(t *testing.T) {
	assert.True(t, Insulated("Insulated"))
	assert.True(t, Insulated("Insulated(Roof,Side)"))
	assert.False(t, Insulated("Non-Insulated"))
	assert.False(t, Insulated(""))
}

func TestTieRodSpecPrefix(t *testing.T) {
	assert.Equal(t, "12M", TieRodSpecPrefix(""))
	assert.Equal(t, "12M", TieRodSpecPrefix("M12"))
	assert.Equal(t, "16M", TieRodSpecPrefix("M16"))
}
