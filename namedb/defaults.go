package namedb

// defaultNatures is the fixed 25-entry nature table; the ordering is part of
// the format (nature = (personality & 0xFF) % 25).
func defaultNatures() map[int]string {
	return map[int]string{
		0: "Hardy", 1: "Lonely", 2: "Brave", 3: "Adamant", 4: "Naughty",
		5: "Bold", 6: "Docile", 7: "Relaxed", 8: "Impish", 9: "Lax",
		10: "Timid", 11: "Hasty", 12: "Serious", 13: "Jolly", 14: "Naive",
		15: "Modest", 16: "Mild", 17: "Quiet", 18: "Bashful", 19: "Rash",
		20: "Calm", 21: "Gentle", 22: "Sassy", 23: "Careful", 24: "Quirky",
	}
}

// defaultCharmap covers the western character set's letters, digits and
// common punctuation. A loaded table overrides it wholesale.
func defaultCharmap() map[byte]string {
	m := map[byte]string{
		0x00: " ",
		0xAB: "!", 0xAC: "?", 0xAD: ".", 0xAE: "-",
		0xB0: "…", 0xB1: "“", 0xB2: "”", 0xB3: "‘", 0xB4: "’",
		0xB5: "♂", 0xB6: "♀", 0xB8: ",", 0xBA: "/",
		0xF0: ":",
	}
	for i := byte(0); i < 10; i++ {
		m[0xA1+i] = string(rune('0' + i))
	}
	for i := byte(0); i < 26; i++ {
		m[0xBB+i] = string(rune('A' + i))
		m[0xD5+i] = string(rune('a' + i))
	}
	return m
}
