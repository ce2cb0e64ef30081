package export

import (
	"errors"
	"fmt"
)

// ErrMissingInformation is returned before any work starts when the
// document has no full name to title the artifact with.
var ErrMissingInformation = errors.New("missing information: please enter at least your name before exporting")

// Failure reports an export that was abandoned at Stage. No artifact is
// published when a Failure is returned.
type Failure struct {
	Stage string
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("export failed at %s: %v", f.Stage, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

func fail(stage string, err error) error {
	return &Failure{Stage: stage, Err: err}
}
