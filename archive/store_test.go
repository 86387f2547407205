package archive

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdmkit/dvec"
	"github.com/tdmkit/dvec/codec"
	"github.com/tdmkit/dvec/internal/logger"
	dvectest "github.com/tdmkit/dvec/testing"
	"github.com/tdmkit/dvec/types"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "archive.db"), WithLogger(logger.NewTest(t)))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	return s
}

func newVector(t *testing.T) *dvec.Vector {
	t.Helper()

	v, err := dvec.New(dvectest.ZoningThree(t), dvectest.SegPM(t), map[string][]float64{
		"1_car": {10, 20, 0},
		"2_bus": {1, 2, 3},
	})
	require.NoError(t, err)

	return v
}

func newResolver(t *testing.T) types.Resolver {
	t.Helper()

	reg := dvec.NewRegistry()
	reg.RegisterZoning(dvectest.ZoningThree(t))
	reg.RegisterSegmentation(dvectest.SegPM(t))

	return reg
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips a vector", func(t *testing.T) {
		s := newStore(t)
		v := newVector(t)

		entry, err := s.Put(ctx, "hb_productions", v)
		require.NoError(t, err)
		require.NotEmpty(t, entry.ID)
		require.Equal(t, "hb_productions", entry.Name)
		require.Equal(t, "three", entry.Zoning)
		require.Equal(t, "p_m", entry.Segmentation)
		require.Empty(t, entry.TimeFormat)
		require.Len(t, entry.Digest, 16)
		require.Positive(t, entry.Size)
		require.False(t, entry.CreatedAt.IsZero())

		got, err := s.Get(ctx, entry.ID, newResolver(t))
		require.NoError(t, err)
		for _, key := range v.SegmentKeys() {
			want, err := v.Value(key)
			require.NoError(t, err)
			vals, err := got.Value(key)
			require.NoError(t, err)
			require.Equal(t, want, vals, "segment %q", key)
		}
	})

	t.Run("unknown IDs fail", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get(ctx, "missing", newResolver(t))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("requires a name and a vector", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Put(ctx, "", newVector(t))
		require.ErrorIs(t, err, ErrNameRequired)

		_, err = s.Put(ctx, "unnamed", nil)
		require.ErrorIs(t, err, dvec.ErrNilVector)
	})

	t.Run("accepts pre-encoded payloads", func(t *testing.T) {
		s := newStore(t)
		v := newVector(t)

		var buf bytes.Buffer
		require.NoError(t, v.Encode(&buf))

		entry, err := s.PutEncoded(ctx, "encoded", buf.Bytes())
		require.NoError(t, err)
		require.Equal(t, "p_m", entry.Segmentation)
		require.Equal(t, int64(buf.Len()), entry.Size)

		got, err := s.Get(ctx, entry.ID, newResolver(t))
		require.NoError(t, err)
		require.InDelta(t, v.Total(), got.Total(), 1e-9)
	})

	t.Run("rejects blobs that are not vector payloads", func(t *testing.T) {
		s := newStore(t)

		_, err := s.PutEncoded(ctx, "junk", []byte("not a vector"))
		require.ErrorIs(t, err, codec.ErrBadMagic)
	})

	t.Run("detects corrupted payloads", func(t *testing.T) {
		s := newStore(t)

		entry, err := s.Put(ctx, "demand", newVector(t))
		require.NoError(t, err)

		_, err = s.db.ExecContext(ctx,
			`UPDATE vectors SET payload = X'00' WHERE id = ?`, entry.ID)
		require.NoError(t, err)

		_, err = s.Get(ctx, entry.ID, newResolver(t))
		require.ErrorIs(t, err, ErrDigestMismatch)
	})
}

func TestStore_Export(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	v := newVector(t)

	entry, err := s.Put(ctx, "demand", v)
	require.NoError(t, err)

	var buf bytes.Buffer
	exported, err := s.Export(ctx, entry.ID, &buf)
	require.NoError(t, err)
	require.Equal(t, entry.ID, exported.ID)
	require.Equal(t, int64(buf.Len()), exported.Size)

	got, err := dvec.Decode(&buf, newResolver(t))
	require.NoError(t, err)
	require.InDelta(t, v.Total(), got.Total(), 1e-9)
}

func TestStore_StatListDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	first, err := s.Put(ctx, "productions", newVector(t))
	require.NoError(t, err)
	second, err := s.Put(ctx, "productions", newVector(t))
	require.NoError(t, err)
	other, err := s.Put(ctx, "attractions", newVector(t))
	require.NoError(t, err)

	t.Run("Stat reads one entry without the payload", func(t *testing.T) {
		entry, err := s.Stat(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, first.ID, entry.ID)
		require.Equal(t, "productions", entry.Name)

		_, err = s.Stat(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List filters by name", func(t *testing.T) {
		entries, err := s.List(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		entries, err = s.List(ctx, "attractions", 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, other.ID, entries[0].ID)

		entries, err = s.List(ctx, "productions", 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, entry := range entries {
			require.Equal(t, "productions", entry.Name)
		}
	})

	t.Run("List honors the limit", func(t *testing.T) {
		entries, err := s.List(ctx, "", 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("Delete removes the entry", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, second.ID))

		_, err := s.Stat(ctx, second.ID)
		require.ErrorIs(t, err, ErrNotFound)

		require.ErrorIs(t, s.Delete(ctx, second.ID), ErrNotFound)

		entries, err := s.List(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
	})
}
