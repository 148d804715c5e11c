package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationParams(t *testing.T) {
	p, err := NewPaginationParams(0, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Offset)
	assert.Equal(t, int64(50), p.Limit)

	_, err = NewPaginationParams(-1, 50)
	assert.Error(t, err)

	_, err = NewPaginationParams(0, 0)
	assert.Error(t, err)

	_, err = NewPaginationParams(0, MaxPageLimit+1)
	assert.Error(t, err)
}

func TestDefaultPagination(t *testing.T) {
	p := DefaultPagination()
	assert.Equal(t, int64(0), p.Offset)
	assert.Equal(t, int64(DefaultPageLimit), p.Limit)
}

func TestPaginatedResultHasNext(t *testing.T) {
	p, err := NewPaginationParams(0, 10)
	require.NoError(t, err)

	res := NewPaginatedResult([]int{1, 2, 3}, 25, p)
	assert.True(t, res.HasNext)
	assert.Equal(t, int64(25), res.TotalCount)

	p, err = NewPaginationParams(20, 10)
	require.NoError(t, err)
	res = NewPaginatedResult([]int{1, 2, 3}, 25, p)
	assert.False(t, res.HasNext)
}
