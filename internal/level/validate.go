package level

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no asset exists for a level number.
var ErrNotFound = errors.New("level: not found")

// MaxCells bounds the area of a level grid.
const MaxCells = 1 << 16

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate performs the strict checks that CellLabelAt deliberately skips.
// Checks:
//   - level number is positive
//   - dimensions pass CheckSize
//   - move budget is not negative
//   - cell count equals Width*Height
//   - every label is known
func (r *Record) Validate() error {
	if r == nil {
		return ValidationError{Code: "NIL_RECORD", Message: "record is nil"}
	}
	if r.Number <= 0 {
		return ValidationError{
			Code:    "INVALID_NUMBER",
			Message: fmt.Sprintf("level number %d must be positive", r.Number),
		}
	}
	if err := CheckSize(r.Width, r.Height); err != nil {
		return err
	}
	if r.MoveBudget < 0 {
		return ValidationError{
			Code:    "INVALID_MOVES",
			Message: fmt.Sprintf("move count %d is negative", r.MoveBudget),
		}
	}
	if want := r.Width * r.Height; len(r.cells) != want {
		return ValidationError{
			Code:    "CELL_COUNT",
			Message: fmt.Sprintf("grid has %d cells, expected %d", len(r.cells), want),
		}
	}
	for i, label := range r.cells {
		if !IsKnownLabel(label) {
			return ValidationError{
				Code: "UNKNOWN_LABEL",
				Message: fmt.Sprintf("cell %d (col %d, row %d) has unknown label %q",
					i, i%r.Width, i/r.Width, label),
			}
		}
	}
	return nil
}

// CheckSize rejects grid dimensions that are not positive or whose area
// exceeds MaxCells. The product is never computed, so it cannot overflow.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("grid size %dx%d must be positive", width, height),
		}
	}
	if width > MaxCells/height {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("grid size %dx%d exceeds %d cells", width, height, MaxCells),
		}
	}
	return nil
}
