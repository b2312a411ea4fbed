package bf

import "fmt"

// MaxVars is the maximum number of variables of a formula that can be evaluated by Evaluate.
const MaxVars = 20

// ConstructionError is returned when a TruthTable cannot be built from the given data.
type ConstructionError struct {
	Msg string
}

func (e *ConstructionError) Error() string {
	return "invalid truth table: " + e.Msg
}

// A TruthTable associates each possible assignment of a list of variables with a boolean result.
// Assignment i gives to the kth variable the value of bit n-1-k of i, n being the number of variables:
// the first variable is the most significant bit.
type TruthTable struct {
	vars    []string
	results []bool
}

// NewTruthTable returns the truth table of a function over the given variables.
// results must contain 2^len(vars) values, and variable names must be unique.
func NewTruthTable(vars []string, results []bool) (*TruthTable, error) {
	if len(vars) > MaxVars {
		return nil, &ConstructionError{Msg: fmt.Sprintf("%d variables, at most %d are supported", len(vars), MaxVars)}
	}
	if len(results) != 1<<len(vars) {
		return nil, &ConstructionError{Msg: fmt.Sprintf("%d results for %d variables, expected %d", len(results), len(vars), 1<<len(vars))}
	}
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return nil, &ConstructionError{Msg: fmt.Sprintf("duplicate variable %q", v)}
		}
		seen[v] = true
	}
	t := &TruthTable{vars: make([]string, len(vars)), results: make([]bool, len(results))}
	copy(t.vars, vars)
	copy(t.results, results)
	return t, nil
}

// Evaluate returns the truth table of f, over its variables taken in order of first appearance.
func Evaluate(f Formula) (*TruthTable, error) {
	vars := Vars(f)
	if len(vars) > MaxVars {
		return nil, &ConstructionError{Msg: fmt.Sprintf("formula has %d variables, at most %d are supported", len(vars), MaxVars)}
	}
	t := &TruthTable{vars: vars, results: make([]bool, 1<<len(vars))}
	model := make(map[string]bool, len(vars))
	for i := range t.results {
		t.fill(i, model)
		t.results[i] = f.Eval(model)
	}
	return t, nil
}

// fill sets in model the values the variables take in the ith assignment.
func (t *TruthTable) fill(i int, model map[string]bool) {
	n := len(t.vars)
	for k, v := range t.vars {
		model[v] = (i>>uint(n-1-k))&1 == 1
	}
}

// NumInputs returns the number of variables of the table.
func (t *TruthTable) NumInputs() int {
	return len(t.vars)
}

// Result returns the result of the function for the ith assignment.
func (t *TruthTable) Result(i int) bool {
	return t.results[i]
}

// Vars returns the names of the variables of the table, most significant first.
func (t *TruthTable) Vars() []string {
	res := make([]string, len(t.vars))
	copy(res, t.vars)
	return res
}

// Assignment returns the values the variables take in the ith assignment.
func (t *TruthTable) Assignment(i int) map[string]bool {
	model := make(map[string]bool, len(t.vars))
	t.fill(i, model)
	return model
}

// NbTrue returns the number of assignments for which the function is true.
func (t *TruthTable) NbTrue() int {
	nb := 0
	for _, r := range t.results {
		if r {
			nb++
		}
	}
	return nb
}
