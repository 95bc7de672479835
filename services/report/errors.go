package report

import (
	"errors"
	"fmt"
)

var (
	// ErrExportFailed marks store faults hit while gathering report data.
	ErrExportFailed = errors.New("report export failed")
	// ErrRenderFailed marks faults of the document engine itself.
	ErrRenderFailed = errors.New("report rendering failed")
)

// ExportError wraps a data access failure on the export path.
type ExportError struct {
	Step string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrExportFailed, e.Step, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

func (e *ExportError) Is(target error) bool { return target == ErrExportFailed }

// RenderError wraps a failure of the PDF engine.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRenderFailed, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Is(target error) bool { return target == ErrRenderFailed }
