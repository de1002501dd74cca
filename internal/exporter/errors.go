package exporter

import "fmt"

// PreconditionError signals that export was refused before any construction
// started: a required session field is missing or there is no data to write.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("export refused: %s", e.Reason)
}

// BuildError signals a failure while assembling the output workbook. The
// whole export is aborted; no partial file is produced.
type BuildError struct {
	Stage string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("export build failed (%s): %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
