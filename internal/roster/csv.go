package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/civiclookup/civiclookup/internal/model"
)

// ParseCSV reads the legislators feed into one Record per row, keyed by the
// header columns. Short rows are padded with empty values.
func ParseCSV(r io.Reader) ([]string, []model.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, eris.Wrap(err, "roster: read CSV header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []model.Record
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, eris.Wrap(err, "roster: read CSV row")
		}

		row := make(model.Record, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// Build reshapes CSV rows into the lookup table. A row with an empty district
// column is a senator; any numeric district, including 0 for at-large seats,
// is a House member. The filter restricts which columns each stored record
// keeps, and the last row wins a duplicate district key.
func Build(rows []model.Record, filter *model.FieldFilter) *Lookup {
	lookup := NewLookup()

	for _, row := range rows {
		state := row["state"]
		if state == "" {
			state = row["state_code"]
		}
		if state == "" {
			zap.L().Warn("skipping legislator row without a state")
			continue
		}

		stored := filter.Apply(row)
		dist := strings.TrimSpace(row["district"])

		if dist == "" {
			entry := lookup.States[state]
			if entry == nil {
				entry = &StateEntry{}
				lookup.States[state] = entry
			}
			entry.Senators = append(entry.Senators, stored)
			continue
		}

		n, err := strconv.Atoi(dist)
		if err != nil {
			zap.L().Warn("skipping legislator row with non-numeric district",
				zap.String("state", state),
				zap.String("district", dist),
			)
			continue
		}
		lookup.Districts[fmt.Sprintf("%s-%d", state, n)] = &DistrictSeat{Representative: stored}
	}

	return lookup
}
