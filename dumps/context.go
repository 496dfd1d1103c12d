package dumps

import (
	"io"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/itchio/headway/state"
	"github.com/itchio/screw"
	"github.com/pkg/errors"
	"github.com/shadtest/direntdiff/counter"
	"github.com/shadtest/direntdiff/diff"
	"github.com/shadtest/direntdiff/dirent"
	"github.com/shadtest/direntdiff/tlc"
)

// CompareContext compares every dump of LeftDir (the reference) with
// the dump of the same name in RightDir (the reimplementation).
type CompareContext struct {
	LeftDir  string
	RightDir string

	// Include restricts the run to dump names matching a doublestar pattern
	Include string

	// SkipPacked leaves out dumps of the packed subsystem
	SkipPacked bool

	// FailFast stops after the first pair that doesn't pass
	FailFast bool

	Consumer *state.Consumer
}

// Validate checks the context before a run.
func (cc *CompareContext) Validate() error {
	return validation.ValidateStruct(cc,
		validation.Field(&cc.LeftDir, validation.Required),
		validation.Field(&cc.RightDir, validation.Required),
		validation.Field(&cc.Include, validation.By(validPattern)),
	)
}

func validPattern(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !doublestar.ValidatePattern(s) {
		return ErrInvalidPattern
	}
	return nil
}

// PairResult is the outcome for one pair of dumps.
type PairResult struct {
	Pair     Pair
	Layout   dirent.Layout
	Precheck Precheck

	// Report is nil when the precheck found both dumps identical.
	Report *diff.Report
}

// Identical reports whether both dumps hold the same bytes.
func (pr *PairResult) Identical() bool {
	return pr.Precheck.Identical()
}

// Passed reports whether nothing was found for this pair.
func (pr *PairResult) Passed() bool {
	return pr.Identical() || pr.Report == nil || pr.Report.Clean()
}

// Summary is the outcome of a whole run.
type Summary struct {
	Results []*PairResult

	LeftOnly  []string
	RightOnly []string
	Ignored   []string

	// Skipped lists pairs left out by SkipPacked
	Skipped []string
}

// Failed counts the pairs that didn't pass.
func (s *Summary) Failed() int {
	n := 0
	for _, res := range s.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// Run lists both directories and compares every pair. Failing to list
// or read dumps aborts the run; discrepancies never do.
func (cc *CompareContext) Run() (*Summary, error) {
	err := cc.Validate()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	consumer := cc.Consumer
	if consumer == nil {
		consumer = &state.Consumer{}
	}

	leftContainer, err := tlc.Walk(cc.LeftDir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "listing left directory")
	}
	rightContainer, err := tlc.Walk(cc.RightDir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "listing right directory")
	}
	consumer.Debugf("Left: %s (%s)", cc.LeftDir, leftContainer.Stats())
	consumer.Debugf("Right: %s (%s)", cc.RightDir, rightContainer.Stats())

	pairing, err := PairUp(leftContainer, rightContainer, cc.Include)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		LeftOnly:  pairing.LeftOnly,
		RightOnly: pairing.RightOnly,
		Ignored:   pairing.Ignored,
	}
	for _, name := range pairing.LeftOnly {
		consumer.Warnf("%s: missing from %s", name, cc.RightDir)
	}
	for _, name := range pairing.RightOnly {
		consumer.Warnf("%s: missing from %s", name, cc.LeftDir)
	}

	for _, pair := range pairing.Pairs {
		if cc.SkipPacked && pair.Hints.Packed {
			consumer.Debugf("%s: packed subsystem dump, skipping", pair.Name)
			summary.Skipped = append(summary.Skipped, pair.Name)
			continue
		}

		res, err := cc.comparePair(consumer, pair)
		if err != nil {
			return nil, err
		}
		summary.Results = append(summary.Results, res)

		if cc.FailFast && !res.Passed() {
			consumer.Infof("%s: stopping at first failure", pair.Name)
			break
		}
	}

	return summary, nil
}

func (cc *CompareContext) comparePair(consumer *state.Consumer, pair Pair) (*PairResult, error) {
	consumer.ProgressLabel(pair.Name)

	left, err := readDump(consumer, filepath.Join(cc.LeftDir, filepath.FromSlash(pair.Name)), pair.Left.Size)
	if err != nil {
		return nil, err
	}
	right, err := readDump(consumer, filepath.Join(cc.RightDir, filepath.FromSlash(pair.Name)), pair.Right.Size)
	if err != nil {
		return nil, err
	}

	res := &PairResult{
		Pair:     pair,
		Layout:   pair.Hints.Layout(),
		Precheck: NewPrecheck(left, right),
	}

	if res.Precheck.Identical() {
		consumer.Debugf("%s: identical (%s)", pair.Name, res.Precheck.LeftDigest)
		return res, nil
	}

	res.Report = diff.CompareBuffers(left, right, res.Layout)
	consumer.Debugf("%s: %d findings with %s layout", pair.Name, len(res.Report.Findings), res.Layout)
	return res, nil
}

func readDump(consumer *state.Consumer, path string, size int64) ([]byte, error) {
	f, err := screw.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	cr := counter.NewReaderProgress(size, consumer.Progress, f)
	buf, err := io.ReadAll(cr)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return buf, nil
}
