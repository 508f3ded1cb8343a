package data

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoads(t *testing.T) {
	set, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, set.Kinds)
	assert.NotEmpty(t, set.Artifacts)
	assert.NotEmpty(t, set.Races)
	assert.NotEmpty(t, set.PitsOfRoom("pit"))
	assert.NotEmpty(t, set.PitsOfRoom("nest"))

	for _, typ := range []string{"room template", "lesser vault", "medium vault", "greater vault"} {
		assert.NotEmpty(t, set.LayoutsOfType(typ), typ)
	}
}

func TestLayoutsAreRectangular(t *testing.T) {
	set := MustDefault()
	for _, l := range set.Layouts {
		require.NotZero(t, l.Height(), l.Name)
		for i, row := range l.Rows {
			assert.Len(t, row, l.Width(), "%s row %d", l.Name, i)
		}
		centre := l.Rows[l.Height()/2][l.Width()/2]
		assert.NotContains(t, "%#X ", string(centre), "%s centre is a wall", l.Name)
	}
}

func TestQuestorsPresent(t *testing.T) {
	set := MustDefault()
	questors := 0
	for _, r := range set.Races {
		if r.Questor {
			questors++
			assert.True(t, r.Unique, r.Name)
		}
	}
	assert.Equal(t, 2, questors)
}

func TestLoadRejectsUnknownArtifactBase(t *testing.T) {
	fsys := fstest.MapFS{
		"objects.toml": {Data: []byte(`
[[kind]]
name = "Dagger"
tval = "sword"

[[artifact]]
name = "'Sting'"
base = "Short Sword"
`)},
		"monsters.toml": {Data: []byte("")},
		"rooms.toml":    {Data: []byte("")},
	}
	_, err := Load(fsys)
	assert.ErrorContains(t, err, "unknown base kind")
}

func TestLoadPadsLayoutRows(t *testing.T) {
	fsys := fstest.MapFS{
		"objects.toml":  {Data: []byte("")},
		"monsters.toml": {Data: []byte("")},
		"rooms.toml": {Data: []byte(`
[[layout]]
name = "ragged"
type = "room template"
text = '''
%%%%%
%...%
%%%
'''
`)},
	}
	set, err := Load(fsys)
	require.NoError(t, err)
	l := set.Layouts[0]
	assert.Equal(t, 3, l.Height())
	assert.Equal(t, 5, l.Width())
	assert.Equal(t, "%%%  ", l.Rows[2])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	assert.Error(t, err)
}
