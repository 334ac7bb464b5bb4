package table

// validity is a bit-packed validity mask: 64 rows per word, a set bit
// means the row holds a value. A nil *validity means all rows are valid.
type validity struct {
	words []uint64
	n     int
}

func newValidity(valid []bool) *validity {
	v := &validity{
		words: make([]uint64, (len(valid)+63)/64),
		n:     len(valid),
	}
	for i, ok := range valid {
		if ok {
			v.words[i/64] |= 1 << (i % 64)
		}
	}
	return v
}

func (v *validity) get(i int) bool {
	return v.words[i/64]&(1<<(i%64)) != 0
}

func (v *validity) memoryUsage() int64 {
	return int64(len(v.words) * 8)
}

// hasNulls reports whether valid contains at least one false entry.
func hasNulls(valid []bool) bool {
	for _, ok := range valid {
		if !ok {
			return true
		}
	}
	return false
}

// maskFor returns a validity mask for valid, or nil when every row is
// valid. Column constructors drop the bitmap entirely for fully-valid
// input so null-free columns pay nothing.
func maskFor(valid []bool) *validity {
	if valid == nil || !hasNulls(valid) {
		return nil
	}
	return newValidity(valid)
}
