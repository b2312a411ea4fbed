package kmap

import "fmt"

// TooFewInputsError is returned when a Karnaugh map is requested for a function of less than 2 inputs.
type TooFewInputsError struct {
	NumInputs int // Number of inputs of the rejected truth table
}

func (e *TooFewInputsError) Error() string {
	return fmt.Sprintf("Karnaugh map generation requires a function of at least 2 variables, got %d", e.NumInputs)
}
