package model

// DistrictEntry groups the federal legislators serving one congressional
// district: the state's two senators (none for territories) and the House
// member or non-voting delegate for the seat.
type DistrictEntry struct {
	Senators        []Record `json:"senators" yaml:"senators"`
	Representatives []Record `json:"representatives" yaml:"representatives"`
}

// Result is the outcome of one address lookup. Districts is keyed by
// identifiers like "CA-12" or "VT-AL". Error carries a soft failure message
// when resolution found nothing; it never accompanies a non-empty district
// set in practice but survives filtering either way.
type Result struct {
	Districts map[string]*DistrictEntry `json:"districts" yaml:"districts"`
	Error     string                    `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewResult returns an empty result whose district map marshals as {} rather
// than null.
func NewResult() *Result {
	return &Result{Districts: map[string]*DistrictEntry{}}
}

// FilterFields returns a copy of the result with the filter applied to every
// senator and representative record. Entries come back with non-nil slices so
// empty lists serialize as [] and the error field carries over untouched.
func (r *Result) FilterFields(f *FieldFilter) *Result {
	out := &Result{
		Districts: make(map[string]*DistrictEntry, len(r.Districts)),
		Error:     r.Error,
	}
	for id, entry := range r.Districts {
		filtered := &DistrictEntry{
			Senators:        make([]Record, 0, len(entry.Senators)),
			Representatives: make([]Record, 0, len(entry.Representatives)),
		}
		for _, sen := range entry.Senators {
			filtered.Senators = append(filtered.Senators, f.Apply(sen))
		}
		for _, rep := range entry.Representatives {
			filtered.Representatives = append(filtered.Representatives, f.Apply(rep))
		}
		out.Districts[id] = filtered
	}
	return out
}
