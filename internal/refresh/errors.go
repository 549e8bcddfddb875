package refresh

import (
	"errors"
	"fmt"
)

// ErrRunInProgress is returned when a refresh is requested while another one
// is still running in this process.
var ErrRunInProgress = errors.New("a materialized view refresh is already running")

// RefreshError reports the step that aborted a run. Views before it stay
// refreshed; views after it were not attempted.
type RefreshError struct {
	View string
	Step int
	Err  error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("refresh step %d (%s): %v", e.Step, e.View, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}
