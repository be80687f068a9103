package district

import "strconv"

// StateNames maps postal codes to full names for the 50 states, DC, and the
// five inhabited territories. The full name is what the ZIP fallback feeds
// back into the resolver.
var StateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
	"DC": "District of Columbia", "PR": "Puerto Rico", "GU": "Guam",
	"VI": "U.S. Virgin Islands", "MP": "Northern Mariana Islands", "AS": "American Samoa",
}

// StateName returns the full name for a state or territory code.
func StateName(code string) (string, bool) {
	name, ok := StateNames[code]
	return name, ok
}

// territories are the codes seated by a non-voting House member and no
// senators.
var territories = map[string]bool{
	"DC": true, "PR": true, "GU": true, "VI": true, "MP": true, "AS": true,
}

// IsTerritory reports whether the code is a territory rather than a state.
func IsTerritory(code string) bool {
	return territories[code]
}

// TerritoryRole returns the House role title for a territory's seat.
func TerritoryRole(code string) string {
	if code == "PR" {
		return "Resident Commissioner (Non-Voting)"
	}
	return "Delegate (Non-Voting)"
}

// zipRange is an inclusive numeric range assigned to one state or territory.
// zipPrefixRanges holds 3-digit ZIP prefixes; zipOverrides holds whole ZIPs.
type zipRange struct {
	lo, hi int
	state  string
}

// zipPrefixRanges is the USPS allocation of 3-digit ZIP prefixes. Prefixes
// with no entry (military APO/FPO blocks, retired blocks, Pacific island
// nations) resolve to nothing.
var zipPrefixRanges = []zipRange{
	{5, 5, "NY"}, {6, 7, "PR"}, {8, 8, "VI"}, {9, 9, "PR"},
	{10, 27, "MA"}, {28, 29, "RI"}, {30, 38, "NH"}, {39, 49, "ME"},
	{50, 54, "VT"}, {55, 55, "MA"}, {56, 59, "VT"},
	{60, 69, "CT"}, {70, 89, "NJ"},
	{100, 149, "NY"}, {150, 196, "PA"}, {197, 199, "DE"},
	{200, 200, "DC"}, {201, 201, "VA"}, {202, 205, "DC"}, {206, 219, "MD"},
	{220, 246, "VA"}, {247, 268, "WV"}, {270, 289, "NC"}, {290, 299, "SC"},
	{300, 319, "GA"}, {320, 339, "FL"}, {341, 342, "FL"}, {344, 349, "FL"},
	{350, 369, "AL"}, {370, 385, "TN"}, {386, 397, "MS"}, {398, 399, "GA"},
	{400, 427, "KY"}, {430, 459, "OH"}, {460, 479, "IN"}, {480, 499, "MI"},
	{500, 528, "IA"}, {530, 549, "WI"}, {550, 567, "MN"}, {570, 577, "SD"},
	{580, 588, "ND"}, {590, 599, "MT"},
	{600, 629, "IL"}, {630, 658, "MO"}, {660, 679, "KS"}, {680, 693, "NE"},
	{700, 714, "LA"}, {716, 729, "AR"}, {730, 732, "OK"}, {733, 733, "TX"},
	{734, 749, "OK"}, {750, 799, "TX"}, {800, 816, "CO"}, {820, 831, "WY"},
	{832, 838, "ID"}, {840, 847, "UT"}, {850, 865, "AZ"}, {870, 884, "NM"},
	{885, 885, "TX"}, {889, 898, "NV"}, {900, 961, "CA"}, {967, 968, "HI"},
	{970, 979, "OR"}, {980, 994, "WA"}, {995, 999, "AK"},
}

// zipOverrides lists whole-ZIP ranges that deviate from their 3-digit block:
// islands routed through a neighboring state and the Pacific territories
// sharing the 969 prefix.
var zipOverrides = []zipRange{
	{6390, 6390, "NY"},   // Fishers Island, inside CT's 063
	{96799, 96799, "AS"}, // Pago Pago, inside HI's 967
	{96910, 96932, "GU"},
	{96950, 96952, "MP"},
}

// ZIPState returns the state or territory a 5-digit ZIP code belongs to.
func ZIPState(zip string) (string, bool) {
	if len(zip) != 5 {
		return "", false
	}
	n, err := strconv.Atoi(zip)
	if err != nil || n < 0 {
		return "", false
	}

	for _, r := range zipOverrides {
		if n >= r.lo && n <= r.hi {
			return r.state, true
		}
	}
	prefix := n / 100
	for _, r := range zipPrefixRanges {
		if prefix >= r.lo && prefix <= r.hi {
			return r.state, true
		}
	}
	return "", false
}
