package namedb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// Table file names expected inside a data directory. These match the files
// produced by the pokeemerald header extractor.
const (
	speciesFile = "pokemon_species.json"
	movesFile   = "pokemon_moves.json"
	naturesFile = "pokemon_natures.json"
	charmapFile = "pokemon_charmap.json"
)

// Load builds a DB from the JSON tables in dir. Missing files are tolerated
// (the built-in defaults stay in effect for that table); malformed files are
// not.
func Load(dir string) (*DB, error) {
	db := Empty()

	if err := loadTable(filepath.Join(dir, speciesFile), db.species); err != nil {
		return nil, err
	}
	if err := loadTable(filepath.Join(dir, movesFile), db.moves); err != nil {
		return nil, err
	}
	if err := loadTable(filepath.Join(dir, naturesFile), db.natures); err != nil {
		return nil, err
	}

	chars, err := loadCharmap(filepath.Join(dir, charmapFile))
	if err != nil {
		return nil, err
	}
	if chars != nil {
		db.chars = chars
	}
	return db, nil
}

// loadTable merges a {"id": "name"} JSON file into dst.
func loadTable(path string, dst map[int]string) error {
	raw, err := readTable(path)
	if err != nil || raw == nil {
		return err
	}
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("namedb: %s: bad key %q", filepath.Base(path), k)
		}
		dst[id] = v
	}
	return nil
}

func loadCharmap(path string) (map[byte]string, error) {
	raw, err := readTable(path)
	if err != nil || raw == nil {
		return nil, err
	}
	chars := make(map[byte]string, len(raw))
	for k, v := range raw {
		code, err := strconv.Atoi(k)
		if err != nil || code < 0 || code > 0xFF {
			return nil, fmt.Errorf("namedb: %s: bad key %q", filepath.Base(path), k)
		}
		chars[byte(code)] = v
	}
	return chars, nil
}

func readTable(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("namedb: %w", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("namedb: %s: %w", filepath.Base(path), err)
	}
	return raw, nil
}
