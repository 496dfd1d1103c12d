package dumps

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/shadtest/direntdiff/tlc"
)

// Pair is a dump present under the same name on both sides.
type Pair struct {
	Name  string
	Left  tlc.File
	Right tlc.File
	Hints Hints
}

// Pairing is the result of matching two dump directories.
type Pairing struct {
	Pairs []Pair

	// Dumps found on one side only
	LeftOnly  []string
	RightOnly []string

	// Files that aren't dirent dumps or don't match the include pattern
	Ignored []string
}

// PairUp matches dumps by identical name. When include is non-empty,
// only names matching that doublestar pattern are considered.
func PairUp(left, right *tlc.Container, include string) (*Pairing, error) {
	if include != "" && !doublestar.ValidatePattern(include) {
		return nil, errors.WithStack(ErrInvalidPattern)
	}

	accept := func(name string) (Hints, bool, error) {
		if include != "" {
			ok, err := doublestar.Match(include, name)
			if err != nil {
				return Hints{}, false, errors.WithStack(err)
			}
			if !ok {
				return Hints{}, false, nil
			}
		}
		h, ok := ParseName(name)
		return h, ok, nil
	}

	res := &Pairing{}
	for _, lf := range left.Files {
		hints, ok, err := accept(lf.Path)
		if err != nil {
			return nil, err
		}
		if !ok {
			res.Ignored = append(res.Ignored, lf.Path)
			continue
		}

		rf, found := right.Lookup(lf.Path)
		if !found {
			res.LeftOnly = append(res.LeftOnly, lf.Path)
			continue
		}

		res.Pairs = append(res.Pairs, Pair{
			Name:  lf.Path,
			Left:  lf,
			Right: *rf,
			Hints: hints,
		})
	}

	for _, rf := range right.Files {
		_, ok, err := accept(rf.Path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if _, found := left.Lookup(rf.Path); !found {
			res.RightOnly = append(res.RightOnly, rf.Path)
		}
	}

	return res, nil
}
