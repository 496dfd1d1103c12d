package diff

// Report is everything found while comparing one pair of dumps.
type Report struct {
	// LeftUnmatched and RightUnmatched are set when a non-empty buffer
	// yielded no record at all.
	LeftUnmatched  bool
	RightUnmatched bool

	LeftRecords  int
	RightRecords int

	// Bytes after the last record. Informational, never a finding.
	LeftTrailingFill  int
	RightTrailingFill int

	Findings []Finding
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// Clean reports whether nothing at all was found.
func (r *Report) Clean() bool {
	return len(r.Findings) == 0 && !r.LeftUnmatched && !r.RightUnmatched
}

// Count returns how many findings of a kind were collected.
func (r *Report) Count(kind Kind) int {
	n := 0
	for _, f := range r.Findings {
		if f.Kind() == kind {
			n++
		}
	}
	return n
}

// Of returns the findings of a kind, in report order.
func (r *Report) Of(kind Kind) []Finding {
	var res []Finding
	for _, f := range r.Findings {
		if f.Kind() == kind {
			res = append(res, f)
		}
	}
	return res
}

// Swap returns the report as it would read with left and right exchanged.
func (r *Report) Swap() *Report {
	res := &Report{
		LeftUnmatched:  r.RightUnmatched,
		RightUnmatched: r.LeftUnmatched,
		LeftRecords:    r.RightRecords,
		RightRecords:   r.LeftRecords,

		LeftTrailingFill:  r.RightTrailingFill,
		RightTrailingFill: r.LeftTrailingFill,
	}
	for _, f := range r.Findings {
		res.add(f.Swap())
	}
	return res
}
