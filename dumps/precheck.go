package dumps

import (
	digest "github.com/opencontainers/go-digest"
)

// Precheck is the cheap whole-buffer comparison done before scanning.
type Precheck struct {
	LeftSize  int64
	RightSize int64

	LeftDigest  digest.Digest
	RightDigest digest.Digest
}

func NewPrecheck(left, right []byte) Precheck {
	return Precheck{
		LeftSize:    int64(len(left)),
		RightSize:   int64(len(right)),
		LeftDigest:  digest.FromBytes(left),
		RightDigest: digest.FromBytes(right),
	}
}

func (p Precheck) SizeMatch() bool {
	return p.LeftSize == p.RightSize
}

func (p Precheck) DigestMatch() bool {
	return p.LeftDigest == p.RightDigest
}

// Identical reports whether both dumps hold the same bytes.
func (p Precheck) Identical() bool {
	return p.SizeMatch() && p.DigestMatch()
}
