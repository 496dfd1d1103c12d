package diff_test

import (
	"testing"

	"github.com/shadtest/direntdiff/diff"
	"github.com/stretchr/testify/assert"
)

func Test_FindingStrings(t *testing.T) {
	assert.Equal(t, "Size mismatch: L:10<=>R:12", diff.SizeMismatch{LeftSize: 10, RightSize: 12}.String())
	assert.Equal(t, `Right has repeating filenames: ["a"]`, diff.DuplicateNames{Side: diff.Right, Names: []string{"a"}}.String())
	assert.Equal(t, "Unique differences between files: L:3<->R:2\tTotal:3",
		diff.ExclusivitySummary{LeftCount: 3, RightCount: 2, UniqueCount: 3}.String())
	assert.Equal(t, `Left exclusive: "c"`, diff.ExclusiveName{Side: diff.Left, Name: "c"}.String())
	assert.Equal(t, "Inconsistent offsets at #1: L:12<=>R:16", diff.OffsetMismatch{Index: 1, LeftOffset: 12, RightOffset: 16}.String())
	assert.Equal(t, "Inconsistent skipped bytes at #0: L:22<=>R:2", diff.SkipMismatch{Index: 0, LeftSkip: 22, RightSkip: 2}.String())
	assert.Equal(t, `Inconsistent record at #0: L:"aa"@0<=>R:"bb"@4`,
		diff.RecordMismatch{Index: 0, LeftOffset: 0, RightOffset: 4, LeftName: "aa", RightName: "bb"}.String())
	assert.Equal(t, "Record count mismatch: L:3<=>R:2", diff.CardinalityMismatch{LeftCount: 3, RightCount: 2}.String())

	assert.Equal(t, "offset", diff.KindOffset.String())
	assert.Equal(t, "kind(99)", diff.Kind(99).String())
	assert.Equal(t, "left", diff.Left.String())
	assert.Equal(t, diff.Left, diff.Right.Other())
}

func Test_Swap(t *testing.T) {
	findings := []diff.Finding{
		diff.SizeMismatch{LeftSize: 1, RightSize: 2},
		diff.DuplicateNames{Side: diff.Left, Names: []string{"x"}},
		diff.ExclusivitySummary{LeftCount: 1, RightCount: 2, UniqueCount: 3},
		diff.ExclusiveName{Side: diff.Right, Name: "y"},
		diff.CardinalityMismatch{LeftCount: 1, RightCount: 2},
		diff.OffsetMismatch{Index: 4, LeftOffset: 1, RightOffset: 2},
		diff.SkipMismatch{Index: 5, LeftSkip: 1, RightSkip: 2},
		diff.RecordMismatch{Index: 6, LeftOffset: 1, RightOffset: 2, LeftName: "l", RightName: "r"},
	}

	for _, f := range findings {
		assert.Equal(t, f, f.Swap().Swap(), "%s swaps back", f.Kind())
		assert.Equal(t, f.Kind(), f.Swap().Kind())
	}

	assert.Equal(t, diff.OffsetMismatch{Index: 4, LeftOffset: 2, RightOffset: 1}, findings[5].Swap())
	assert.Equal(t, diff.ExclusiveName{Side: diff.Left, Name: "y"}, findings[3].Swap())

	r := &diff.Report{LeftUnmatched: true, LeftRecords: 0, RightRecords: 3, Findings: findings}
	s := r.Swap()
	assert.False(t, s.LeftUnmatched)
	assert.True(t, s.RightUnmatched)
	assert.Equal(t, 3, s.LeftRecords)
	assert.Len(t, s.Findings, len(findings))
	assert.Equal(t, 1, s.Count(diff.KindRecord))
}
