package chunk

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	t.Parallel()

	t.Run("zero process count runs serially with one chunk", func(t *testing.T) {
		p := NewPool(0)
		require.Equal(t, 1, p.Workers())
		require.Equal(t, 10, p.KeyChunkSize(10, 1))
	})

	t.Run("positive process count maps to workers", func(t *testing.T) {
		p := NewPool(4)
		require.Equal(t, 4, p.Workers())
	})

	t.Run("negative process count subtracts from available cores", func(t *testing.T) {
		p := NewPool(-1)
		require.Equal(t, max(runtime.NumCPU()-1, 1), p.Workers())
	})

	t.Run("never resolves below one worker", func(t *testing.T) {
		p := NewPool(-100000)
		require.Equal(t, 1, p.Workers())
	})
}

func TestKeyChunkSize(t *testing.T) {
	t.Parallel()

	t.Run("targets three chunks per worker", func(t *testing.T) {
		p := NewPool(2)
		// 600 keys over divider 6
		require.Equal(t, 100, p.KeyChunkSize(600, 1))
	})

	t.Run("rounds the division up", func(t *testing.T) {
		p := NewPool(2)
		require.Equal(t, 101, p.KeyChunkSize(601, 1))
	})

	t.Run("clamps up to the operator minimum", func(t *testing.T) {
		p := NewPool(2)
		require.Equal(t, 400, p.KeyChunkSize(600, 400))
	})

	t.Run("returns zero for empty work", func(t *testing.T) {
		p := NewPool(2)
		require.Equal(t, 0, p.KeyChunkSize(0, 400))
	})
}

func TestRowChunkSize(t *testing.T) {
	t.Parallel()

	t.Run("uses the fixed size for large inputs", func(t *testing.T) {
		p := NewPool(4)
		require.Equal(t, 1000, p.RowChunkSize(5000, 1000))
	})

	t.Run("divides small inputs evenly across workers", func(t *testing.T) {
		p := NewPool(4)
		// 3999 rows < 1000*4, so ceil(3999/4)
		require.Equal(t, 1000, p.RowChunkSize(3999, 1000))
		require.Equal(t, 25, p.RowChunkSize(100, 1000))
	})

	t.Run("returns zero for empty work", func(t *testing.T) {
		p := NewPool(4)
		require.Equal(t, 0, p.RowChunkSize(0, 1000))
	})
}

func TestSplit(t *testing.T) {
	t.Parallel()

	t.Run("splits into even chunks with a short tail", func(t *testing.T) {
		items := []string{"a", "b", "c", "d", "e"}
		chunks := Split(items, 2)
		require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, chunks)
	})

	t.Run("single chunk when size covers everything", func(t *testing.T) {
		items := []int{1, 2, 3}
		require.Equal(t, [][]int{{1, 2, 3}}, Split(items, 10))
	})

	t.Run("empty input yields no chunks", func(t *testing.T) {
		require.Nil(t, Split([]int{}, 3))
	})

	t.Run("non-positive size yields no chunks", func(t *testing.T) {
		require.Nil(t, Split([]int{1, 2}, 0))
	})
}
