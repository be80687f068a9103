// Package roster maintains the congressional legislator cache: a CSV feed of
// current members downloaded on a 24-hour policy and reshaped into a lookup
// table of senators by state and House seats by district.
package roster

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/civiclookup/civiclookup/internal/model"
)

const (
	// DefaultCSVURL is the canonical feed of current members of Congress.
	DefaultCSVURL = "https://unitedstates.github.io/congress-legislators/legislators-current.csv"

	// CSVName is the cached feed filename inside the cache directory.
	CSVName = "legislators-current.csv"

	// LookupName is the built lookup table filename inside the cache directory.
	LookupName = "legislators-lookup.json"
)

// Lookup is the roster reshaped for constant-time resolution. States maps a
// state code to its senators; Districts maps ids like "CA-12" to the House
// seat. At-large seats are stored under district 0 ("VT-0").
type Lookup struct {
	States    map[string]*StateEntry   `json:"states"`
	Districts map[string]*DistrictSeat `json:"districts"`
}

// StateEntry holds the senators serving one state.
type StateEntry struct {
	Senators []model.Record `json:"senators"`
}

// DistrictSeat holds the House member for one district.
type DistrictSeat struct {
	Representative model.Record `json:"representative"`
}

// NewLookup returns an empty lookup with initialized maps.
func NewLookup() *Lookup {
	return &Lookup{
		States:    map[string]*StateEntry{},
		Districts: map[string]*DistrictSeat{},
	}
}

// Senators returns the cached senators for a state code, or nil when the
// roster has no entry for it.
func (l *Lookup) Senators(state string) []model.Record {
	if l == nil {
		return nil
	}
	entry, ok := l.States[state]
	if !ok {
		return nil
	}
	return entry.Senators
}

// Representative returns the cached House member for a district id like
// "CA-12". At-large ids ("VT-AL") fall back to the district-0 storage key.
func (l *Lookup) Representative(districtID string) (model.Record, bool) {
	if l == nil {
		return nil, false
	}
	if seat, ok := l.Districts[districtID]; ok && seat.Representative != nil {
		return seat.Representative, true
	}
	if strings.HasSuffix(districtID, "-AL") {
		alt := strings.TrimSuffix(districtID, "AL") + "0"
		if seat, ok := l.Districts[alt]; ok && seat.Representative != nil {
			return seat.Representative, true
		}
	}
	return nil, false
}

// Save writes the lookup as indented JSON, creating parent directories as
// needed.
func (l *Lookup) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrap(err, "roster: create cache dir")
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return eris.Wrap(err, "roster: marshal lookup")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "roster: write lookup %s", path)
	}
	return nil
}

// Load reads a lookup table previously written by Save.
func Load(path string) (*Lookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "roster: read lookup %s", path)
	}

	lookup := NewLookup()
	if err := json.Unmarshal(data, lookup); err != nil {
		return nil, eris.Wrapf(err, "roster: parse lookup %s", path)
	}
	if lookup.States == nil {
		lookup.States = map[string]*StateEntry{}
	}
	if lookup.Districts == nil {
		lookup.Districts = map[string]*DistrictSeat{}
	}
	return lookup, nil
}

// LoadOrEmpty loads the lookup table, falling back to an empty roster when
// the file is missing or unreadable. Lookups still work against an empty
// roster, they just resolve to placeholder legislators.
func LoadOrEmpty(path string) *Lookup {
	log := zap.L().With(zap.String("path", path))

	if _, err := os.Stat(path); err != nil {
		log.Warn("legislator lookup not found, run the update command to build it")
		return NewLookup()
	}

	lookup, err := Load(path)
	if err != nil {
		log.Warn("failed to load legislator lookup", zap.Error(err))
		return NewLookup()
	}

	log.Debug("loaded legislator lookup",
		zap.Int("states", len(lookup.States)),
		zap.Int("districts", len(lookup.Districts)),
	)
	return lookup
}
