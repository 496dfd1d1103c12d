package diff

import "github.com/shadtest/direntdiff/dirent"

// Compare checks two scanned record sequences against each other.
// Checks run in a fixed order and each one reports everything it finds;
// only a record count mismatch stops the positional checks, which need
// both sequences to line up index by index.
func Compare(left, right []dirent.Dirent, leftSkips, rightSkips []dirent.Skip) *Report {
	r := &Report{
		LeftRecords:  len(left),
		RightRecords: len(right),
	}

	leftNames := names(left)
	rightNames := names(right)

	if dups := duplicates(leftNames); len(dups) > 0 {
		r.add(DuplicateNames{Side: Left, Names: dups})
	}
	if dups := duplicates(rightNames); len(dups) > 0 {
		r.add(DuplicateNames{Side: Right, Names: dups})
	}

	compareNameSets(r, leftNames, rightNames)

	if len(left) != len(right) {
		r.add(CardinalityMismatch{LeftCount: len(left), RightCount: len(right)})
		return r
	}

	for i := range left {
		if left[i].Offset != right[i].Offset {
			r.add(OffsetMismatch{Index: i, LeftOffset: left[i].Offset, RightOffset: right[i].Offset})
		}
	}

	numSkips := len(leftSkips)
	if len(rightSkips) > numSkips {
		numSkips = len(rightSkips)
	}
	for i := 0; i < numSkips; i++ {
		l, rr := skipAt(leftSkips, i), skipAt(rightSkips, i)
		if l != rr {
			r.add(SkipMismatch{Index: i, LeftSkip: l, RightSkip: rr})
		}
	}

	for i := range left {
		if !left[i].Equal(right[i]) {
			r.add(RecordMismatch{
				Index:       i,
				LeftOffset:  left[i].Offset,
				RightOffset: right[i].Offset,
				LeftName:    string(left[i].Name),
				RightName:   string(right[i].Name),
			})
		}
	}

	return r
}

// CompareBuffers scans both dumps with the template of layout and
// compares the results. Two empty dumps trivially agree, and dumps of
// different lengths are only reported as such.
func CompareBuffers(left, right []byte, layout dirent.Layout) *Report {
	if len(left) == 0 && len(right) == 0 {
		return &Report{}
	}

	if len(left) != len(right) {
		r := &Report{}
		r.add(SizeMismatch{LeftSize: len(left), RightSize: len(right)})
		return r
	}

	scanner := dirent.NewScanner(layout)
	leftRecords := scanner.Scan(left)
	rightRecords := scanner.Scan(right)

	r := Compare(leftRecords, rightRecords, dirent.Skips(leftRecords), dirent.Skips(rightRecords))
	r.LeftUnmatched = len(leftRecords) == 0
	r.RightUnmatched = len(rightRecords) == 0
	r.LeftTrailingFill = dirent.TrailingFill(leftRecords, len(left))
	r.RightTrailingFill = dirent.TrailingFill(rightRecords, len(right))
	return r
}

// compareNameSets reports names that only one of the sides has, in both
// directions. The summary only shows up when the union of both name sets
// is larger than either side's record count, the names are listed
// regardless since duplicates can hide them from the counts.
func compareNameSets(r *Report, leftNames, rightNames []string) {
	leftSet := set(leftNames)
	rightSet := set(rightNames)

	union := len(leftSet)
	for name := range rightSet {
		if _, ok := leftSet[name]; !ok {
			union++
		}
	}

	if union != len(leftNames) || union != len(rightNames) {
		r.add(ExclusivitySummary{
			LeftCount:   len(leftNames),
			RightCount:  len(rightNames),
			UniqueCount: union,
		})
	}

	for _, name := range unique(leftNames) {
		if _, ok := rightSet[name]; !ok {
			r.add(ExclusiveName{Side: Left, Name: name})
		}
	}
	for _, name := range unique(rightNames) {
		if _, ok := leftSet[name]; !ok {
			r.add(ExclusiveName{Side: Right, Name: name})
		}
	}
}

func names(records []dirent.Dirent) []string {
	res := make([]string, 0, len(records))
	for _, d := range records {
		res = append(res, string(d.Name))
	}
	return res
}

func set(names []string) map[string]struct{} {
	res := make(map[string]struct{}, len(names))
	for _, name := range names {
		res[name] = struct{}{}
	}
	return res
}

// unique keeps the first occurrence of every name.
func unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var res []string
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res
}

// duplicates lists names seen more than once, in order of their second
// occurrence.
func duplicates(names []string) []string {
	counts := make(map[string]int, len(names))
	var res []string
	for _, name := range names {
		counts[name]++
		if counts[name] == 2 {
			res = append(res, name)
		}
	}
	return res
}

func skipAt(skips []dirent.Skip, i int) int {
	if i < len(skips) {
		return skips[i].Length
	}
	return 0
}
