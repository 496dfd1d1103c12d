package dumps

import (
	"github.com/itchio/headway/state"
	"github.com/itchio/headway/united"
)

// Print writes a human-readable account of a run through the consumer.
func Print(consumer *state.Consumer, summary *Summary) {
	for _, res := range summary.Results {
		PrintResult(consumer, res)
	}

	consumer.Infof("")
	consumer.Infof("%d pairs compared, %d failed, %d skipped, %d unpaired",
		len(summary.Results), summary.Failed(), len(summary.Skipped),
		len(summary.LeftOnly)+len(summary.RightOnly))
}

// PrintResult writes the outcome of one pair.
func PrintResult(consumer *state.Consumer, res *PairResult) {
	p := res.Precheck

	consumer.Infof("")
	consumer.Infof("<<<< Testing file %s (%s, %s layout) >>>>", res.Pair.Name, res.Pair.Hints.Capture(), res.Layout)
	consumer.Infof("Size:\t%v\t%s\t%s", p.SizeMatch(), united.FormatBytes(p.LeftSize), united.FormatBytes(p.RightSize))
	consumer.Infof("Digest:\t%v\t%s\t%s", p.DigestMatch(), p.LeftDigest.Encoded(), p.RightDigest.Encoded())

	r := res.Report
	if r == nil {
		return
	}

	consumer.Debugf("Trailing fill:\t%d\t%d", r.LeftTrailingFill, r.RightTrailingFill)
	if r.LeftUnmatched {
		consumer.Warnf("Left: can't match file entries")
	}
	if r.RightUnmatched {
		consumer.Warnf("Right: can't match file entries")
	}
	for _, f := range r.Findings {
		consumer.Warnf("%s", f)
	}
	if r.Clean() {
		consumer.Infof("Records match (%d entries)", r.LeftRecords)
	}
}
