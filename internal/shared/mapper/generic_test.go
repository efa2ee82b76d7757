package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    uint
	Value int
}

func TestMapSlice(t *testing.T) {
	assert.Equal(t, []string{}, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
}

func TestMapSlicePtrWithID(t *testing.T) {
	double := func(r *row) (*int, error) {
		if r.Value < 0 {
			return nil, errors.New("negative")
		}
		v := r.Value * 2
		return &v, nil
	}
	id := func(r *row) uint { return r.ID }

	t.Run("skips nil items", func(t *testing.T) {
		out, err := MapSlicePtrWithID([]*row{{ID: 1, Value: 2}, nil, {ID: 3, Value: 5}}, double, id)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, 4, *out[0])
		assert.Equal(t, 10, *out[1])
	})

	t.Run("names failing id", func(t *testing.T) {
		_, err := MapSlicePtrWithID([]*row{{ID: 9, Value: -1}}, double, id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item ID 9")
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		out, err := MapSlicePtrWithID[row, int, uint](nil, double, id)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
