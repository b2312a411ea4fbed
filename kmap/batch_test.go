package kmap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAll(t *testing.T) {
	var tables []TruthTable
	for nbVars := 2; nbVars <= 8; nbVars++ {
		nbVars := nbVars
		tables = append(tables, tableOf(nbVars, func(i int) bool { return i%nbVars == 0 }))
	}
	for _, workers := range []int{0, 1, 3} {
		res, err := ComputeAll(context.Background(), tables, workers)
		require.NoError(t, err)
		require.Len(t, res, len(tables))
		for i, r := range res {
			assert.Equal(t, tables[i].NumInputs(), r.Grid.NumInputs(), "result %d out of order", i)
			assert.NotEmpty(t, r.Groups)
		}
	}
}

func TestComputeAllTooFewInputs(t *testing.T) {
	tables := []TruthTable{
		tableOf(3, func(int) bool { return true }),
		boolTable{true, false},
	}
	_, err := ComputeAll(context.Background(), tables, 2)
	var tfi *TooFewInputsError
	require.True(t, errors.As(err, &tfi), "expected TooFewInputsError, got %v", err)
	assert.Equal(t, 1, tfi.NumInputs)
}

func TestComputeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ComputeAll(ctx, []TruthTable{tableOf(2, func(int) bool { return true })}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeAllEmpty(t *testing.T) {
	res, err := ComputeAll(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, res)
}
