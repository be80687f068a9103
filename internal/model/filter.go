package model

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// FieldFilter restricts which columns survive into built caches and lookup
// results. Keep and Delete are mutually exclusive; a filter with neither
// passes every column through unchanged.
type FieldFilter struct {
	Keep   map[string]bool
	Delete map[string]bool
}

// NewFieldFilter builds a filter from optional keep/delete column lists.
// Supplying both lists is an error.
func NewFieldFilter(keep, del []string) (*FieldFilter, error) {
	if len(keep) > 0 && len(del) > 0 {
		return nil, eris.New("model: keep and delete field lists are mutually exclusive")
	}
	f := &FieldFilter{}
	if len(keep) > 0 {
		f.Keep = toSet(keep)
	}
	if len(del) > 0 {
		f.Delete = toSet(del)
	}
	return f, nil
}

// Apply returns the record restricted by the filter. A nil or unconstrained
// filter returns the record as-is. Filtering never introduces columns: keep
// mode retains exactly the intersection of requested and present columns,
// delete mode drops the named columns and retains the rest.
func (f *FieldFilter) Apply(rec Record) Record {
	if f == nil || (len(f.Keep) == 0 && len(f.Delete) == 0) {
		return rec
	}
	out := make(Record, len(rec))
	if len(f.Keep) > 0 {
		for k, v := range rec {
			if f.Keep[k] {
				out[k] = v
			}
		}
		return out
	}
	for k, v := range rec {
		if !f.Delete[k] {
			out[k] = v
		}
	}
	return out
}

// Validate checks every filter name against the available columns and reports
// the unknown ones together with the columns that do exist. Meant to run
// before any rows are processed so a typo fails fast.
func (f *FieldFilter) Validate(available []string) error {
	if f == nil {
		return nil
	}
	avail := toSet(available)
	if bad := unknown(f.Keep, avail); len(bad) > 0 {
		return eris.Errorf("model: invalid keep field(s): %s (available fields: %s)",
			strings.Join(bad, ", "), strings.Join(sortedKeys(avail), ", "))
	}
	if bad := unknown(f.Delete, avail); len(bad) > 0 {
		return eris.Errorf("model: invalid delete field(s): %s (available fields: %s)",
			strings.Join(bad, ", "), strings.Join(sortedKeys(avail), ", "))
	}
	return nil
}

// Describe returns a short human-readable summary of the filter, such as
// "keeping only: name, party", or "" for an unconstrained filter.
func (f *FieldFilter) Describe() string {
	switch {
	case f == nil:
		return ""
	case len(f.Keep) > 0:
		return "keeping only: " + strings.Join(sortedKeys(f.Keep), ", ")
	case len(f.Delete) > 0:
		return "excluding: " + strings.Join(sortedKeys(f.Delete), ", ")
	default:
		return ""
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func unknown(requested, available map[string]bool) []string {
	var bad []string
	for name := range requested {
		if !available[name] {
			bad = append(bad, name)
		}
	}
	sort.Strings(bad)
	return bad
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
