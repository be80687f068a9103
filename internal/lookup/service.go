// Package lookup orchestrates one address resolution end to end: bias the
// address, resolve divisions through the civic API, map them against the
// roster, and fall back from a bare ZIP to its state before giving up.
package lookup

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/civiclookup/civiclookup/internal/district"
	"github.com/civiclookup/civiclookup/internal/model"
	"github.com/civiclookup/civiclookup/internal/roster"
	"github.com/civiclookup/civiclookup/pkg/civic"
)

// Service resolves addresses to congressional district information.
type Service struct {
	civic  civic.Client
	roster *roster.Lookup
}

// New creates a Service over a civic client and a loaded roster.
func New(client civic.Client, ro *roster.Lookup) *Service {
	return &Service{civic: client, roster: ro}
}

// DistrictInfo looks up the districts and legislators for an address. Civic
// API failures never propagate; a lookup that finds nothing returns empty
// districts and a soft error message instead. The filter applies to every
// legislator record in the result.
func (s *Service) DistrictInfo(ctx context.Context, address string, filter *model.FieldFilter) *model.Result {
	full := address
	if !strings.Contains(address, "USA") {
		full = address + ", USA"
	}

	districts := s.resolve(ctx, full)

	// A bare ZIP that resolved to nothing gets one retry with its state name.
	if len(districts) == 0 {
		if zip := strings.TrimSpace(address); isZIP(zip) {
			if state, ok := district.ZIPState(zip); ok {
				if name, ok := district.StateName(state); ok {
					zap.L().Info("retrying with state resolved from ZIP",
						zap.String("zip", zip),
						zap.String("state", state),
					)
					districts = s.resolve(ctx, name+", USA")
				}
			}
		}
	}

	result := model.NewResult()
	if len(districts) == 0 {
		result.Error = "Could not find district information for '" + address + "'. Try providing a more specific address."
		return result
	}
	result.Districts = districts
	return result.FilterFields(filter)
}

// resolve performs one civic call plus mapping. Any upstream failure is
// logged and treated as no result.
func (s *Service) resolve(ctx context.Context, address string) map[string]*model.DistrictEntry {
	resp, err := s.civic.DivisionsByAddress(ctx, address)
	if err != nil {
		zap.L().Warn("civic lookup failed",
			zap.String("address", address),
			zap.Error(err),
		)
		return nil
	}
	return district.Map(resp, s.roster)
}

func isZIP(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
