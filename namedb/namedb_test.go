package namedb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyFallbacks(t *testing.T) {
	db := Empty()
	require.Equal(t, "Species 25", db.Species(25))
	require.Equal(t, "Move 94", db.Move(94))
	require.Equal(t, "Hardy", db.Nature(0))
	require.Equal(t, "Quirky", db.Nature(24))
	require.Equal(t, "Nature 25", db.Nature(25))
}

func TestDecodeText(t *testing.T) {
	db := Empty()

	// "RED" + terminator + trailing junk that must be ignored.
	require.Equal(t, "RED", db.DecodeText([]byte{0xCC, 0xBF, 0xBE, 0xFF, 0xBB, 0xBB}))
	require.Equal(t, "Abc 12", db.DecodeText([]byte{0xBB, 0xD6, 0xD7, 0x00, 0xA2, 0xA3, 0xFF}))
	require.Equal(t, "", db.DecodeText([]byte{0xFF}))
	require.Equal(t, "", db.DecodeText(nil))
}

func TestDecodeTextUnmappedByte(t *testing.T) {
	db := Empty()
	require.Equal(t, "A?B", db.DecodeText([]byte{0xBB, 0x9E, 0xBC, 0xFF}))
}

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("pokemon_species.json", `{"25": "Pikachu", "208": "Steelix"}`)
	write("pokemon_moves.json", `{"94": "Psychic"}`)
	write("pokemon_charmap.json", `{"187": "X"}`)
	// Natures file intentionally absent: built-in table stays in effect.

	db, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "Pikachu", db.Species(25))
	require.Equal(t, "Steelix", db.Species(208))
	require.Equal(t, "Species 1", db.Species(1))
	require.Equal(t, "Psychic", db.Move(94))
	require.Equal(t, "Jolly", db.Nature(13))

	// A loaded charmap replaces the default wholesale; 0xBB (187) is now "X"
	// and the default letters are gone.
	require.Equal(t, "X?", db.DecodeText([]byte{0xBB, 0xBC, 0xFF}))
}

func TestLoadEmptyDir(t *testing.T) {
	db, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "Species 1", db.Species(1))
	require.Equal(t, "Hardy", db.Nature(0))
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pokemon_species.json"), []byte(`not json`), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoadBadKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pokemon_charmap.json"), []byte(`{"999": "x"}`), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
