package checksum

import (
	"errors"
	"fmt"
)

// errorCategory is the noun used in UnrecognizedAlgorithmError messages.
const errorCategory = "compression"

// ErrUnrecognizedAlgorithm is matched by every UnrecognizedAlgorithmError via errors.Is.
var ErrUnrecognizedAlgorithm = errors.New("unrecognised algorithm")

// UnrecognizedAlgorithmError is returned when a name matches no accepted spelling.
type UnrecognizedAlgorithmError struct {
	Input    string // The rejected name, exactly as given.
	Category string // Noun describing the kind of algorithm expected.
}

func (e *UnrecognizedAlgorithmError) Error() string {
	return fmt.Sprintf("\"%s\" is not a recognised %s algorithm", e.Input, e.Category)
}

func (e *UnrecognizedAlgorithmError) Is(target error) bool {
	return target == ErrUnrecognizedAlgorithm
}

// IsUnrecognizedAlgorithm checks if a given error is an UnrecognizedAlgorithmError.
func IsUnrecognizedAlgorithm(err error) bool {
	var ue *UnrecognizedAlgorithmError
	return errors.As(err, &ue)
}

// AsUnrecognizedAlgorithm extracts an UnrecognizedAlgorithmError from err, or returns nil.
func AsUnrecognizedAlgorithm(err error) *UnrecognizedAlgorithmError {
	var ue *UnrecognizedAlgorithmError
	if errors.As(err, &ue) {
		return ue
	}
	return nil
}
