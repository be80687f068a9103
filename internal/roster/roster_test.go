package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civiclookup/civiclookup/internal/model"
)

func TestLookup_Senators(t *testing.T) {
	t.Parallel()

	lookup := NewLookup()
	lookup.States["CA"] = &StateEntry{Senators: []model.Record{
		{"full_name": "Senator One", "state": "CA"},
		{"full_name": "Senator Two", "state": "CA"},
	}}

	assert.Len(t, lookup.Senators("CA"), 2)
	assert.Nil(t, lookup.Senators("ZZ"))

	var nilLookup *Lookup
	assert.Nil(t, nilLookup.Senators("CA"))
}

func TestLookup_Representative(t *testing.T) {
	t.Parallel()

	lookup := NewLookup()
	lookup.Districts["CA-12"] = &DistrictSeat{Representative: model.Record{"full_name": "Rep Twelve"}}
	lookup.Districts["VT-0"] = &DistrictSeat{Representative: model.Record{"full_name": "At Large"}}

	t.Run("exact district id", func(t *testing.T) {
		t.Parallel()
		rep, ok := lookup.Representative("CA-12")
		require.True(t, ok)
		assert.Equal(t, "Rep Twelve", rep["full_name"])
	})

	t.Run("at-large id falls back to district 0", func(t *testing.T) {
		t.Parallel()
		rep, ok := lookup.Representative("VT-AL")
		require.True(t, ok)
		assert.Equal(t, "At Large", rep["full_name"])
	})

	t.Run("unknown district", func(t *testing.T) {
		t.Parallel()
		_, ok := lookup.Representative("TX-99")
		assert.False(t, ok)
	})

	t.Run("nil lookup", func(t *testing.T) {
		t.Parallel()
		var nilLookup *Lookup
		_, ok := nilLookup.Representative("CA-12")
		assert.False(t, ok)
	})
}

func TestLookup_SaveLoad(t *testing.T) {
	t.Parallel()

	lookup := NewLookup()
	lookup.States["VT"] = &StateEntry{Senators: []model.Record{
		{"full_name": "Senator One", "party": "Independent", "state": "VT"},
	}}
	lookup.Districts["VT-0"] = &DistrictSeat{
		Representative: model.Record{"full_name": "At Large", "party": "Democratic", "state": "VT", "district": "0"},
	}

	path := filepath.Join(t.TempDir(), "nested", "legislators-lookup.json")
	require.NoError(t, lookup.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Senators("VT"), 1)

	rep, ok := loaded.Representative("VT-AL")
	require.True(t, ok)
	assert.Equal(t, "At Large", rep["full_name"])
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadOrEmpty(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty lookup", func(t *testing.T) {
		t.Parallel()
		lookup := LoadOrEmpty(filepath.Join(t.TempDir(), "nope.json"))
		require.NotNil(t, lookup)
		assert.Empty(t, lookup.States)
		assert.Empty(t, lookup.Districts)
	})

	t.Run("corrupt file yields empty lookup", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "legislators-lookup.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		lookup := LoadOrEmpty(path)
		require.NotNil(t, lookup)
		assert.Empty(t, lookup.States)
	})

	t.Run("valid file loads", func(t *testing.T) {
		t.Parallel()
		src := NewLookup()
		src.States["NY"] = &StateEntry{Senators: []model.Record{{"full_name": "Senator One"}}}
		path := filepath.Join(t.TempDir(), "legislators-lookup.json")
		require.NoError(t, src.Save(path))

		lookup := LoadOrEmpty(path)
		assert.Len(t, lookup.Senators("NY"), 1)
	})
}
