package dirent

// Skip is a run of bytes no record accounts for.
type Skip struct {
	Start  int
	Length int
}

// End returns the position right after the run.
func (s Skip) End() int {
	return s.Start + s.Length
}

// Skips derives the unmatched runs before each record, measured from the
// previous record's end (or the start of the buffer). Empty runs are
// left out.
func Skips(records []Dirent) []Skip {
	var res []Skip

	prevEnd := 0
	for _, d := range records {
		if n := d.Offset - prevEnd; n > 0 {
			res = append(res, Skip{Start: prevEnd, Length: n})
		}
		prevEnd = d.End
	}
	return res
}

// TrailingFill counts the bytes of a buffer of length bufLen past the
// last record, or the whole buffer when there is none. It isn't a skip.
func TrailingFill(records []Dirent, bufLen int) int {
	lastEnd := 0
	if len(records) > 0 {
		lastEnd = records[len(records)-1].End
	}
	if bufLen < lastEnd {
		return 0
	}
	return bufLen - lastEnd
}

// SkippedBytes sums the lengths of all runs.
func SkippedBytes(skips []Skip) int {
	total := 0
	for _, s := range skips {
		total += s.Length
	}
	return total
}

// Lengths returns the run lengths alone.
func Lengths(skips []Skip) []int {
	res := make([]int, 0, len(skips))
	for _, s := range skips {
		res = append(res, s.Length)
	}
	return res
}
