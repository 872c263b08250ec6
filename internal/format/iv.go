package format

// IVMask extracts one 5-bit individual value group.
const IVMask = 0x1F

// UnpackIVs splits the packed 32-bit field into six 5-bit individual values,
// low-to-high: HP, Attack, Defense, Speed, Sp.Attack, Sp.Defense.
func UnpackIVs(iv uint32) [6]uint8 {
	var out [6]uint8
	for i := range out {
		out[i] = uint8((iv >> (5 * i)) & IVMask)
	}
	return out
}

// PackIVs is the inverse of UnpackIVs. Values above 31 are masked.
func PackIVs(ivs [6]uint8) uint32 {
	var out uint32
	for i, v := range ivs {
		out |= uint32(v&IVMask) << (5 * i)
	}
	return out
}
