package model

// Record holds one legislator as column-name to value pairs. Records sourced
// from the roster CSV carry that file's columns verbatim; records synthesized
// by the district mapper carry the normalized name/party/role subset.
type Record map[string]string

// Has reports whether the record carries the given column at all, which is
// distinct from carrying it with an empty value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}
