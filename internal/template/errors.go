package template

import "fmt"

// LoadError signals a failed template fetch or decode. Existing rows are
// left untouched by the caller; the load is fail-stop with no partial state.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("template load failed: %v", e.Err)
	}
	return fmt.Sprintf("template load failed (%s): %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
