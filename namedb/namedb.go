// Package namedb is the read-only id -> display-name service consumed after
// decoding. The decode pipeline itself never depends on lookup success:
// every accessor falls back to a numeric rendering, and text decoding maps
// unknown bytes to a placeholder instead of failing.
package namedb

import "fmt"

// Terminator ends every charmap-encoded string field.
const Terminator = 0xFF

// DB resolves species, move and nature ids to display names and decodes the
// save format's proprietary character encoding. The zero value is not
// usable; construct with Empty or Load.
type DB struct {
	species map[int]string
	moves   map[int]string
	natures map[int]string
	chars   map[byte]string
}

// Empty returns a DB with no external tables loaded. Species and moves
// render numerically; natures and text decoding use the built-in defaults.
func Empty() *DB {
	return &DB{
		species: map[int]string{},
		moves:   map[int]string{},
		natures: defaultNatures(),
		chars:   defaultCharmap(),
	}
}

// Species returns the display name for a species id.
func (db *DB) Species(id int) string {
	if name, ok := db.species[id]; ok {
		return name
	}
	return fmt.Sprintf("Species %d", id)
}

// Move returns the display name for a move id.
func (db *DB) Move(id int) string {
	if name, ok := db.moves[id]; ok {
		return name
	}
	return fmt.Sprintf("Move %d", id)
}

// Nature returns the display name for a nature index.
func (db *DB) Nature(id int) string {
	if name, ok := db.natures[id]; ok {
		return name
	}
	return fmt.Sprintf("Nature %d", id)
}

// DecodeText translates a charmap-encoded field into a display string. The
// walk stops at the 0xFF terminator; unmapped bytes render as "?" without
// aborting.
func (db *DB) DecodeText(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == Terminator {
			break
		}
		if s, ok := db.chars[c]; ok {
			out = append(out, s...)
		} else {
			out = append(out, '?')
		}
	}
	return string(out)
}
