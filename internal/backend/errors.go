package backend

import "fmt"

// ErrUnavailable indicates an engine could not be loaded: the model
// artifact is missing or unreadable, or the engine failed to initialize.
type ErrUnavailable struct {
	Engine string
	Err    error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s unavailable: %v", e.Engine, e.Err)
	}
	return fmt.Sprintf("backend %s unavailable", e.Engine)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrGeneration indicates a loaded engine failed while generating.
type ErrGeneration struct {
	Engine string
	Err    error
}

func (e *ErrGeneration) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s generation failed: %v", e.Engine, e.Err)
	}
	return fmt.Sprintf("backend %s generation failed", e.Engine)
}

func (e *ErrGeneration) Unwrap() error { return e.Err }
