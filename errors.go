package pixdraw

import "errors"

// Sentinel errors for pixdraw package.
var (
	// ErrInvalidArgument is returned for missing buffers and degenerate
	// counts, such as a polygon with fewer than two points.
	ErrInvalidArgument = errors.New("pixdraw: invalid argument")

	// ErrInvalidClipRegion is returned when a clipping region has
	// min >= max on either axis.
	ErrInvalidClipRegion = errors.New("pixdraw: invalid clipping region")

	// ErrOutOfBounds is returned when a clipping region exceeds the
	// addressable clip area, or a circle center lies outside the clip.
	ErrOutOfBounds = errors.New("pixdraw: out of bounds")

	// ErrInvalidChar is returned for characters outside ' ' through '~'.
	ErrInvalidChar = errors.New("pixdraw: invalid character")
)

// Outcome reports what a draw call did.
type Outcome uint8

const (
	// NothingDrawn means every constituent write was clipped away or masked
	// off. It is not a failure.
	NothingDrawn Outcome = iota

	// Drawn means at least one pixel reached the surface.
	Drawn

	// Failed is always paired with a non-nil error.
	Failed
)

var outcomeNames = [...]string{
	NothingDrawn: "NothingDrawn",
	Drawn:        "Drawn",
	Failed:       "Failed",
}

// String returns the name of the outcome.
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "Outcome(?)"
}

// drawnIf maps the "did anything draw" flag of a composite to its outcome.
func drawnIf(drew bool) Outcome {
	if drew {
		return Drawn
	}
	return NothingDrawn
}

// SurfaceError wraps an error returned by the surface. Composite draws
// return it unchanged from the first sub-draw that failed.
type SurfaceError struct {
	// Op is the surface call that failed.
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return "pixdraw: surface " + e.Op + ": " + e.Err.Error()
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}
