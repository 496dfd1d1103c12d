// Package wtest holds helpers shared by the test suites: failing fast on
// errors and building synthetic dumps.
package wtest

import (
	"testing"

	"github.com/pkg/errors"
)

// Must shows a complete error stack and fails a test immediately
// if err is non-nil
func Must(t *testing.T, err error) {
	if err != nil {
		t.Helper()
		t.Errorf("%+v", errors.WithStack(err))
		t.FailNow()
	}
}
