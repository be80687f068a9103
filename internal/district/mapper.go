// Package district turns Open Civic Data division identifiers into
// congressional district entries, merging in legislators from the cached
// roster and falling back to placeholders when the roster has no answer.
package district

import (
	"sort"
	"strings"

	"github.com/civiclookup/civiclookup/internal/model"
	"github.com/civiclookup/civiclookup/internal/roster"
	"github.com/civiclookup/civiclookup/pkg/civic"
)

// Map resolves a divisions response against the roster. Keys of the returned
// map are district ids ("CA-12", "VT-AL", "DC-AL"); bare-state identifiers
// contribute senators but never appear as keys themselves. The same inputs
// always produce the same output regardless of division iteration order.
func Map(resp *civic.DivisionsResponse, ro *roster.Lookup) map[string]*model.DistrictEntry {
	out := map[string]*model.DistrictEntry{}
	if resp == nil {
		return out
	}

	var (
		bareStates  []string
		codes       []string
		cdDistricts = map[string]string{} // district id -> state code
		hasCD       = map[string]bool{}   // state code -> any /cd: division seen
	)
	for ocdID := range resp.Divisions {
		if state, ok := bareStateCode(ocdID); ok {
			bareStates = append(bareStates, state)
			continue
		}
		if code, ok := districtCode(ocdID); ok {
			codes = append(codes, code)
			continue
		}
		if state, num, ok := cdParts(ocdID); ok {
			id := state + "-" + strings.ToUpper(num)
			if strings.EqualFold(num, "al") {
				id = state + "-AL"
			}
			cdDistricts[id] = state
			hasCD[state] = true
		}
	}
	sort.Strings(bareStates)
	sort.Strings(codes)

	senatorCache := map[string][]model.Record{}
	senatorsFor := func(state string) []model.Record {
		if IsTerritory(state) {
			return []model.Record{}
		}
		if sens, ok := senatorCache[state]; ok {
			return sens
		}
		sens := normalizeSenators(ro.Senators(state), state)
		if len(sens) == 0 {
			sens = placeholderSenators(state)
		}
		senatorCache[state] = sens
		return sens
	}

	// Explicit congressional district divisions.
	for id, state := range cdDistricts {
		out[id] = &model.DistrictEntry{
			Senators:        senatorsFor(state),
			Representatives: []model.Record{representativeFor(ro, id, state)},
		}
	}

	// District divisions outside any state, e.g. district:dc. Senators stay
	// empty; territory codes carry their non-voting role titles.
	for _, code := range codes {
		id := code + "-AL"
		if _, ok := out[id]; ok {
			continue
		}
		out[id] = &model.DistrictEntry{
			Senators:        []model.Record{},
			Representatives: []model.Record{representativeFor(ro, id, code)},
		}
	}

	// A bare-state division with no /cd: division anywhere in the response
	// means an at-large seat.
	for _, state := range bareStates {
		if hasCD[state] {
			continue
		}
		id := state + "-AL"
		if _, ok := out[id]; ok {
			continue
		}
		out[id] = &model.DistrictEntry{
			Senators:        senatorsFor(state),
			Representatives: []model.Record{representativeFor(ro, id, state)},
		}
	}

	return out
}

// bareStateCode matches identifiers that end at the state segment, like
// "ocd-division/country:us/state:vt".
func bareStateCode(ocdID string) (string, bool) {
	rest, ok := textAfter(ocdID, "state:")
	if !ok || strings.Contains(rest, "/") {
		return "", false
	}
	return strings.ToUpper(rest), true
}

// districtCode matches federal district divisions like
// "ocd-division/country:us/district:dc".
func districtCode(ocdID string) (string, bool) {
	rest, ok := textAfter(strings.ToLower(ocdID), "district:")
	if !ok {
		return "", false
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	return strings.ToUpper(rest), true
}

// cdParts matches congressional district divisions like
// "ocd-division/country:us/state:ca/cd:12".
func cdParts(ocdID string) (state, num string, ok bool) {
	if !strings.Contains(ocdID, "/cd:") {
		return "", "", false
	}
	rest, found := textAfter(ocdID, "state:")
	if !found {
		return "", "", false
	}
	state = strings.ToUpper(strings.SplitN(rest, "/", 2)[0])
	num, _ = textAfter(ocdID, "cd:")
	if i := strings.Index(num, "/"); i >= 0 {
		num = num[:i]
	}
	return state, num, num != ""
}

func textAfter(s, marker string) (string, bool) {
	i := strings.Index(s, marker)
	if i < 0 {
		return "", false
	}
	return s[i+len(marker):], true
}

// representativeFor resolves the House seat for a district, preferring the
// roster and falling back to a placeholder. Territory codes carry their
// non-voting role titles.
func representativeFor(ro *roster.Lookup, districtID, code string) model.Record {
	role := "Representative"
	if IsTerritory(code) {
		role = TerritoryRole(code)
	}
	if rec, ok := ro.Representative(districtID); ok {
		return normalizeRecord(rec, role, "district", districtID)
	}
	name := "Representative for " + districtID
	if IsTerritory(code) {
		name = role + " for " + code
	}
	return model.Record{"name": name, "role": role, "district": districtID}
}

func normalizeSenators(cached []model.Record, state string) []model.Record {
	sens := make([]model.Record, 0, len(cached))
	for _, rec := range cached {
		sens = append(sens, normalizeRecord(rec, "Senator", "state", state))
	}
	return sens
}

// normalizeRecord reduces a raw roster record to the output shape: name,
// party, role, placement, bioguide_id. The roster may have been built with a
// field filter, so name parts and party can be absent.
func normalizeRecord(rec model.Record, role, placeKey, place string) model.Record {
	name := rec["full_name"]
	if name == "" {
		name = strings.TrimSpace(rec["first_name"] + " " + rec["last_name"])
	}
	party := rec["party"]
	if party == "" {
		party = "Unknown"
	}
	return model.Record{
		"name":        name,
		"party":       party,
		"role":        role,
		placeKey:      place,
		"bioguide_id": rec["bioguide_id"],
	}
}

func placeholderSenators(state string) []model.Record {
	return []model.Record{
		{"name": "Senator 1 for " + state, "role": "Senator", "state": state},
		{"name": "Senator 2 for " + state, "role": "Senator", "state": state},
	}
}
