// Package format renders lookup results as text, JSON, or YAML.
package format

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/civiclookup/civiclookup/internal/model"
)

const separator = "----------------------------------------"

// Text renders the result as readable text: a heading per district, senator
// and representative bullets, and a trailing note when a soft error is set.
// District headings come out in sorted order.
func Text(res *model.Result) string {
	if len(res.Districts) == 0 {
		return "No congressional districts found.\n"
	}

	ids := make([]string, 0, len(res.Districts))
	for id := range res.Districts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []string
	for _, id := range ids {
		entry := res.Districts[id]
		out = append(out, "District: "+id)

		if len(entry.Senators) > 0 {
			out = append(out, "\nSenators:")
			for _, sen := range entry.Senators {
				out = append(out, bullet(sen))
			}
		}

		if len(entry.Representatives) > 0 {
			out = append(out, "\nRepresentatives:")
			for _, rep := range entry.Representatives {
				out = append(out, bullet(rep))
			}
		}

		out = append(out, "\n"+separator+"\n")
	}

	if res.Error != "" {
		out = append(out, "Note: "+res.Error)
	}

	return strings.Join(out, "\n")
}

// bullet renders one legislator line. The party suffix appears only when the
// record carries a party column at all, so placeholders print bare names.
func bullet(rec model.Record) string {
	name, ok := rec["name"]
	if !ok {
		name = "Unknown"
	}
	if party, ok := rec["party"]; ok {
		return "  • " + name + " (" + party + ")"
	}
	return "  • " + name
}

// JSON renders the result as two-space indented JSON.
func JSON(res *model.Result) ([]byte, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "format: marshal JSON")
	}
	return data, nil
}

// YAML renders the result in block style.
func YAML(res *model.Result) ([]byte, error) {
	data, err := yaml.Marshal(res)
	if err != nil {
		return nil, eris.Wrap(err, "format: marshal YAML")
	}
	return data, nil
}

// Render dispatches on the output format name. A YAML marshal failure
// degrades to JSON with a logged warning rather than failing the lookup.
func Render(res *model.Result, format string) ([]byte, error) {
	switch format {
	case "text":
		return []byte(Text(res)), nil
	case "json":
		return JSON(res)
	case "yaml":
		data, err := YAML(res)
		if err != nil {
			zap.L().Warn("YAML rendering failed, falling back to JSON", zap.Error(err))
			return JSON(res)
		}
		return data, nil
	default:
		return nil, eris.Errorf("format: unknown output format %q", format)
	}
}
