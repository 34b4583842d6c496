package character

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy surfaced to the user as notices.
var (
	ErrValidation              = errors.New("please fill all fields")
	ErrIndexOutOfRange         = errors.New("selection is out of range")
	ErrStoreUnavailable        = errors.New("character store is unreadable")
	ErrPresetSourceUnavailable = errors.New("presets file not found")
)

// ValidationError lists the fields that failed the non-empty check.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (missing: %s)", ErrValidation, strings.Join(e.Fields, ", "))
}

// Is lets callers match with errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IndexError reports a stale or missing position.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, %d record(s)", ErrIndexOutOfRange, e.Index, e.Length)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// CheckIndex returns an *IndexError unless 0 <= index < length.
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{Index: index, Length: length}
	}
	return nil
}
