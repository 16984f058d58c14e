package dem

import "fmt"

// IOError is returned when the raster source cannot be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("reading DEM: %v", e.Err)
	}
	return fmt.Sprintf("reading DEM %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError is returned when the raster header is missing, malformed or when the
// data section holds fewer samples than the header declares.
// Line is 1-based, 0 means the error is not tied to a single line.
type FormatError struct {
	Line int
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "invalid ESRI ASCII grid: " + msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// EmptyDataError is returned when a raster has no valid (non no-data) samples,
// so no elevation range exists.
type EmptyDataError struct {
	Samples int
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("DEM has no valid elevation samples (%d samples, all no-data)", e.Samples)
}
