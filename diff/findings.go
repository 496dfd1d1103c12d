// Package diff compares the records scanned out of two dumps and
// collects every discrepancy as data.
package diff

import "fmt"

// Side names which dump a finding is about.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Right {
		return Left
	}
	return Right
}

// Kind identifies a type of finding.
type Kind int

const (
	KindSize Kind = iota
	KindDuplicateNames
	KindExclusivity
	KindExclusiveName
	KindCardinality
	KindOffset
	KindSkip
	KindRecord
)

var kindNames = []string{
	"size",
	"duplicate-names",
	"exclusivity",
	"exclusive-name",
	"cardinality",
	"offset",
	"skip",
	"record",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Finding is one reported discrepancy.
type Finding interface {
	Kind() Kind
	String() string

	// Swap returns the finding as it would read with left and right exchanged.
	Swap() Finding
}

// SizeMismatch means the raw buffers differ in length; nothing else is
// checked for that pair.
type SizeMismatch struct {
	LeftSize  int
	RightSize int
}

func (f SizeMismatch) Kind() Kind { return KindSize }
func (f SizeMismatch) Swap() Finding {
	return SizeMismatch{LeftSize: f.RightSize, RightSize: f.LeftSize}
}
func (f SizeMismatch) String() string {
	return fmt.Sprintf("Size mismatch: L:%d<=>R:%d", f.LeftSize, f.RightSize)
}

// DuplicateNames means one side lists the same name more than once.
type DuplicateNames struct {
	Side  Side
	Names []string
}

func (f DuplicateNames) Kind() Kind { return KindDuplicateNames }
func (f DuplicateNames) Swap() Finding {
	return DuplicateNames{Side: f.Side.Other(), Names: f.Names}
}
func (f DuplicateNames) String() string {
	return fmt.Sprintf("%s has repeating filenames: %q", capitalize(f.Side), f.Names)
}

// ExclusivitySummary means the union of names of both sides is larger
// than one of them.
type ExclusivitySummary struct {
	LeftCount   int
	RightCount  int
	UniqueCount int
}

func (f ExclusivitySummary) Kind() Kind { return KindExclusivity }
func (f ExclusivitySummary) Swap() Finding {
	return ExclusivitySummary{LeftCount: f.RightCount, RightCount: f.LeftCount, UniqueCount: f.UniqueCount}
}
func (f ExclusivitySummary) String() string {
	return fmt.Sprintf("Unique differences between files: L:%d<->R:%d\tTotal:%d", f.LeftCount, f.RightCount, f.UniqueCount)
}

// ExclusiveName is a name only Side has.
type ExclusiveName struct {
	Side Side
	Name string
}

func (f ExclusiveName) Kind() Kind { return KindExclusiveName }
func (f ExclusiveName) Swap() Finding {
	return ExclusiveName{Side: f.Side.Other(), Name: f.Name}
}
func (f ExclusiveName) String() string {
	return fmt.Sprintf("%s exclusive: %q", capitalize(f.Side), f.Name)
}

// CardinalityMismatch means both sides have a different record count.
// Positional checks are skipped when it is reported.
type CardinalityMismatch struct {
	LeftCount  int
	RightCount int
}

func (f CardinalityMismatch) Kind() Kind { return KindCardinality }
func (f CardinalityMismatch) Swap() Finding {
	return CardinalityMismatch{LeftCount: f.RightCount, RightCount: f.LeftCount}
}
func (f CardinalityMismatch) String() string {
	return fmt.Sprintf("Record count mismatch: L:%d<=>R:%d", f.LeftCount, f.RightCount)
}

type OffsetMismatch struct {
	Index       int
	LeftOffset  int
	RightOffset int
}

func (f OffsetMismatch) Kind() Kind { return KindOffset }
func (f OffsetMismatch) Swap() Finding {
	return OffsetMismatch{Index: f.Index, LeftOffset: f.RightOffset, RightOffset: f.LeftOffset}
}
func (f OffsetMismatch) String() string {
	return fmt.Sprintf("Inconsistent offsets at #%d: L:%d<=>R:%d", f.Index, f.LeftOffset, f.RightOffset)
}

// SkipMismatch compares the Index-th skipped run of both sides. A side
// with fewer runs counts as skipping 0 bytes there.
type SkipMismatch struct {
	Index     int
	LeftSkip  int
	RightSkip int
}

func (f SkipMismatch) Kind() Kind { return KindSkip }
func (f SkipMismatch) Swap() Finding {
	return SkipMismatch{Index: f.Index, LeftSkip: f.RightSkip, RightSkip: f.LeftSkip}
}
func (f SkipMismatch) String() string {
	return fmt.Sprintf("Inconsistent skipped bytes at #%d: L:%d<=>R:%d", f.Index, f.LeftSkip, f.RightSkip)
}

type RecordMismatch struct {
	Index       int
	LeftOffset  int
	RightOffset int
	LeftName    string
	RightName   string
}

func (f RecordMismatch) Kind() Kind { return KindRecord }
func (f RecordMismatch) Swap() Finding {
	return RecordMismatch{
		Index:       f.Index,
		LeftOffset:  f.RightOffset,
		RightOffset: f.LeftOffset,
		LeftName:    f.RightName,
		RightName:   f.LeftName,
	}
}
func (f RecordMismatch) String() string {
	return fmt.Sprintf("Inconsistent record at #%d: L:%q@%d<=>R:%q@%d", f.Index, f.LeftName, f.LeftOffset, f.RightName, f.RightOffset)
}

func capitalize(s Side) string {
	if s == Right {
		return "Right"
	}
	return "Left"
}
