package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldFilter_MutuallyExclusive(t *testing.T) {
	t.Parallel()

	_, err := NewFieldFilter([]string{"name"}, []string{"party"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestFieldFilter_Apply(t *testing.T) {
	t.Parallel()

	rec := Record{"name": "Jane Doe", "party": "Independent", "phone": "202-555-0100"}

	t.Run("keep retains exactly the intersection", func(t *testing.T) {
		t.Parallel()
		f, err := NewFieldFilter([]string{"name", "fax"}, nil)
		require.NoError(t, err)

		got := f.Apply(rec)
		assert.Equal(t, Record{"name": "Jane Doe"}, got)
		assert.False(t, got.Has("fax"), "filtering must not introduce columns")
	})

	t.Run("delete drops only the named columns", func(t *testing.T) {
		t.Parallel()
		f, err := NewFieldFilter(nil, []string{"phone"})
		require.NoError(t, err)

		got := f.Apply(rec)
		assert.Equal(t, Record{"name": "Jane Doe", "party": "Independent"}, got)
	})

	t.Run("nil filter passes the record through", func(t *testing.T) {
		t.Parallel()
		var f *FieldFilter
		assert.Equal(t, rec, f.Apply(rec))
	})

	t.Run("unconstrained filter passes the record through", func(t *testing.T) {
		t.Parallel()
		f, err := NewFieldFilter(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, rec, f.Apply(rec))
	})

	t.Run("original record is not mutated", func(t *testing.T) {
		t.Parallel()
		f, err := NewFieldFilter([]string{"name"}, nil)
		require.NoError(t, err)

		_ = f.Apply(rec)
		assert.Len(t, rec, 3)
	})
}

func TestFieldFilter_Validate(t *testing.T) {
	t.Parallel()

	available := []string{"name", "party", "state", "bioguide_id"}

	t.Run("known names pass", func(t *testing.T) {
		t.Parallel()
		f, err := NewFieldFilter([]string{"name", "party"}, nil)
		require.NoError(t, err)
		assert.NoError(t, f.Validate(available))
	})

	t.Run("unknown keep names are listed with available columns", func(t *testing.T) {
		t.Parallel()
		f, err := NewFieldFilter([]string{"name", "fax", "email"}, nil)
		require.NoError(t, err)

		err = f.Validate(available)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email, fax")
		assert.Contains(t, err.Error(), "available fields: bioguide_id, name, party, state")
	})

	t.Run("unknown delete names fail too", func(t *testing.T) {
		t.Parallel()
		f, err := NewFieldFilter(nil, []string{"twitter"})
		require.NoError(t, err)

		err = f.Validate(available)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid delete field(s): twitter")
	})

	t.Run("nil filter validates", func(t *testing.T) {
		t.Parallel()
		var f *FieldFilter
		assert.NoError(t, f.Validate(available))
	})
}

func TestFieldFilter_Describe(t *testing.T) {
	t.Parallel()

	keep, err := NewFieldFilter([]string{"party", "name"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "keeping only: name, party", keep.Describe())

	del, err := NewFieldFilter(nil, []string{"phone"})
	require.NoError(t, err)
	assert.Equal(t, "excluding: phone", del.Describe())

	empty, err := NewFieldFilter(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", empty.Describe())
}
