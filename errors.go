package trlevel

import (
	"errors"
	"fmt"
)

// Error kinds. A *DecodeError unwraps to exactly one of these, so callers test
// for a kind with errors.Is.
var (
	ErrUnsupportedVersion        = errors.New("unsupported version")
	ErrTruncatedInput            = errors.New("truncated input")
	ErrOutOfBounds               = errors.New("offset out of bounds")
	ErrRoomDataLengthMismatch    = errors.New("room data length mismatch")
	ErrDerivedLengthInvariant    = errors.New("derived length invariant violation")
	ErrCorruptMeshPointer        = errors.New("corrupt mesh pointer")
	ErrCorruptFloorDataIndex     = errors.New("corrupt floor data index")
	ErrCorruptBoxIndex           = errors.New("corrupt box index")
	ErrCorruptRoomReference      = errors.New("corrupt room reference")
	ErrCorruptEntityReference    = errors.New("corrupt entity reference")
	ErrCorruptAnimationReference = errors.New("corrupt animation reference")
)

// DecodeError is returned for every failure. Offset is the byte position in the
// input where the failing read started, or where the offending record lives
// for errors found while resolving references.
type DecodeError struct {
	Kind   error
	Offset int
	Stage  Stage
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("trlevel: %v: %v at offset %#x", e.Stage, e.Kind, e.Offset)
	}
	return fmt.Sprintf("trlevel: %v: %v at offset %#x: %s", e.Stage, e.Kind, e.Offset, e.Detail)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}

func newError(kind error, offset int, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// withStage stamps the stage onto a *DecodeError that doesn't have one yet.
func withStage(err error, s Stage) error {
	var de *DecodeError
	if errors.As(err, &de) && de.Stage == StageUnknown {
		de.Stage = s
	}
	return err
}

// annotate prefixes the detail of a *DecodeError with where it happened.
func annotate(err error, format string, args ...any) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return fmt.Errorf(format+": %w", append(args, err)...)
	}
	where := fmt.Sprintf(format, args...)
	if de.Detail == "" {
		de.Detail = where
	} else {
		de.Detail = where + ": " + de.Detail
	}
	return err
}
