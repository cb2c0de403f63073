package parse

import (
	"encoding/json"
	"fmt"

	sonic "github.com/bytedance/sonic"

	"footy/internal/apperr"
	"footy/internal/entity"
)

// Fixtures unwraps one raw body per upstream call into typed fixture
// records, preserving the per-call grouping (one inner slice per league or
// per team).
//
// An empty input is not an error: it yields exactly one empty inner slice,
// the sentinel for "nothing to show today". Callers check for that shape
// instead of ranging over zero groups.
//
// A malformed record anywhere fails the whole batch; there is no
// partial-record tolerance.
func Fixtures(bodies []string) ([][]entity.Fixture, error) {
	if len(bodies) == 0 {
		return [][]entity.Fixture{{}}, nil
	}

	groups := make([][]entity.Fixture, 0, len(bodies))
	for _, body := range bodies {
		raw, err := envelope(body)
		if err != nil {
			return nil, err
		}

		var fixtures []entity.Fixture
		if err := sonic.Unmarshal(raw, &fixtures); err != nil {
			return nil, fmt.Errorf("%w: decode fixtures: %v", apperr.ErrDecode, err)
		}
		groups = append(groups, fixtures)
	}

	return groups, nil
}

// Standings unwraps one raw body per league into that league's table
// groups. The standings endpoint wraps a single-element array under
// "response"; an empty array there is an error, unlike fixtures there is no
// empty-input sentinel (nothing renders either way).
func Standings(bodies []string) ([][][]entity.TeamStanding, error) {
	tables := make([][][]entity.TeamStanding, 0, len(bodies))
	for _, body := range bodies {
		raw, err := envelope(body)
		if err != nil {
			return nil, err
		}

		var wrapped []entity.LeagueTable
		if err := sonic.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: decode standings: %v", apperr.ErrDecode, err)
		}
		if len(wrapped) == 0 {
			return nil, fmt.Errorf("%w: standings response is empty", apperr.ErrMissingField)
		}

		tables = append(tables, wrapped[0].League.Standings)
	}

	return tables, nil
}

// TeamHits unwraps a teams-search body into its hits. Zero hits is not an
// error here; the caller decides whether that means "not a valid team".
func TeamHits(body string) ([]entity.TeamHit, error) {
	raw, err := envelope(body)
	if err != nil {
		return nil, err
	}

	var hits []entity.TeamHit
	if err := sonic.Unmarshal(raw, &hits); err != nil {
		return nil, fmt.Errorf("%w: decode team hits: %v", apperr.ErrDecode, err)
	}

	return hits, nil
}

// envelope extracts the raw "response" payload from the outer object every
// endpoint returns. A body without that key is malformed, never an empty
// result.
func envelope(body string) (json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := sonic.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", apperr.ErrDecode, err)
	}

	raw, ok := doc["response"]
	if !ok {
		return nil, fmt.Errorf("%w: response", apperr.ErrMissingField)
	}

	return raw, nil
}
