package vec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrAwesomeRocks/libds/api"
	"github.com/MrAwesomeRocks/libds/vec"
)

func TestInsertSplicesAtEveryPosition(t *testing.T) {
	base := []int{1, 2, 3, 4}
	for pos := 0; pos <= len(base); pos++ {
		v := vec.Of(base...)
		oldCap := v.Cap()

		got, err := v.Insert(pos, 99)
		require.NoError(t, err, "pos %d", pos)
		assert.Equal(t, pos, got)
		assert.Equal(t, len(base)+1, v.Len())
		assert.GreaterOrEqual(t, v.Cap(), oldCap)

		want := append(append(append([]int{}, base[:pos]...), 99), base[pos:]...)
		assert.Equal(t, want, v.Data(), "pos %d", pos)
	}
}

func TestInsertGrowthScenario(t *testing.T) {
	v := vec.Of(1, 2, 3)
	require.Equal(t, 3, v.Cap())

	_, err := v.Insert(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, v.Data())
	assert.Equal(t, 4, v.Cap())

	_, err = v.Insert(v.Len(), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Data())
	assert.Equal(t, 6, v.Cap())

	_, err = v.Insert(2, 555)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 555, 2, 3, 4}, v.Data())
	// Room was already available: capacity untouched.
	assert.Equal(t, 6, v.Cap())
}

func TestInsertOutOfRange(t *testing.T) {
	v := vec.Of(1, 2)
	_, err := v.Insert(3, 9)
	assert.ErrorIs(t, err, api.ErrOutOfRange)
	_, err = v.Insert(-1, 9)
	assert.ErrorIs(t, err, api.ErrOutOfRange)
	assert.Equal(t, []int{1, 2}, v.Data())
}

func TestInsertN(t *testing.T) {
	v := vec.Of(1, 4)
	pos, err := v.InsertN(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []int{1, 0, 0, 4}, v.Data())

	_, err = v.InsertN(0, -1, 0)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	pos, err = v.InsertN(2, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Equal(t, []int{1, 0, 0, 4}, v.Data())
}

func TestInsertSlice(t *testing.T) {
	v := vec.Of(1, 5)
	pos, err := v.InsertSlice(1, []int{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Data())

	pos, err = v.InsertSlice(v.Len(), []int{6})
	require.NoError(t, err)
	assert.Equal(t, 5, pos)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, v.Data())
}

func TestInsertSliceBulkGrowth(t *testing.T) {
	v := vec.Of(1, 2)
	// Needs 12 slots from capacity 2: 2 -> 3 -> 4 -> 6 -> 9 -> 13,
	// stepping through the policy rather than jumping to 12.
	_, err := v.InsertSlice(2, []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	require.NoError(t, err)
	assert.Equal(t, 12, v.Len())
	assert.Equal(t, 13, v.Cap())
}

func TestAppend(t *testing.T) {
	v := vec.New[int]()
	require.NoError(t, v.Append(1, 2, 3))
	require.NoError(t, v.Append())
	assert.Equal(t, []int{1, 2, 3}, v.Data())
}

func TestPushAmortizedGrowth(t *testing.T) {
	v := vec.WithCapacity[int](0)
	caps := []int{}
	last := -1
	for i := 0; i < 1000; i++ {
		require.NoError(t, v.Push(i))
		if v.Cap() != last {
			last = v.Cap()
			caps = append(caps, last)
		}
	}
	require.Equal(t, 1000, v.Len())
	for i := 0; i < 1000; i++ {
		assert.Equal(t, i, v.Get(i))
	}
	// Geometric schedule: each step is the 1.5x successor of the last.
	for i := 1; i < len(caps); i++ {
		prev := caps[i-1]
		want := prev + prev/2
		if prev < 2 {
			want = 2
		}
		assert.Equal(t, want, caps[i])
	}
}
