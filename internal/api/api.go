package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"footy/cmd/config"
	"footy/internal/apperr"
	"footy/internal/entity"
	"footy/internal/parse"
)

// API issues authenticated GETs against the upstream football endpoints.
// Calls inside a batch run strictly one after another and the first failure
// aborts the rest; there is no partial-success contract and no retry.
type API struct {
	cfg     config.APIConfig
	leagues config.LeaguesConfig
	client  *http.Client
}

func New(cfg config.APIConfig, leagues config.LeaguesConfig) *API {
	client := &http.Client{
		Timeout: time.Second * time.Duration(cfg.Timeout),
	}

	return &API{
		cfg:     cfg,
		leagues: leagues,
		client:  client,
	}
}

// ScheduleBodies fetches today's fixtures for every preferred league, one
// call per league. Today is computed once for the whole batch so calls on
// either side of midnight stay on one date.
func (api *API) ScheduleBodies(ctx context.Context) ([]string, error) {
	now := time.Now()
	today := now.Format("2006-01-02")

	bodies := make([]string, 0, len(api.leagues.Preferred))
	for _, league := range api.leagues.Preferred {
		query := url.Values{}
		query.Set("league", strconv.Itoa(league))
		query.Set("season", strconv.Itoa(now.Year()))
		query.Set("date", today)

		body, err := api.fetch(ctx, api.cfg.FixturesURL+"?"+query.Encode())
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}

	return bodies, nil
}

// LiveBody fetches every in-play fixture across the full league list in a
// single aggregate call, ids hyphen-joined.
func (api *API) LiveBody(ctx context.Context) (string, error) {
	ids := make([]string, 0, len(api.leagues.All))
	for _, id := range api.leagues.All {
		ids = append(ids, strconv.Itoa(id))
	}

	query := url.Values{}
	query.Set("live", strings.Join(ids, "-"))

	return api.fetch(ctx, api.cfg.FixturesURL+"?"+query.Encode())
}

// TeamFixtureBodies fetches the last two fixtures for each team, one call
// per team, bodies in request order.
func (api *API) TeamFixtureBodies(ctx context.Context, teamIDs []int64) ([]string, error) {
	bodies := make([]string, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		query := url.Values{}
		query.Set("season", strconv.Itoa(api.cfg.Season))
		query.Set("team", strconv.FormatInt(teamID, 10))
		query.Set("last", "2")

		body, err := api.fetch(ctx, api.cfg.FixturesURL+"?"+query.Encode())
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}

	return bodies, nil
}

// StandingsBodies fetches the season table for every preferred league, one
// call per league.
func (api *API) StandingsBodies(ctx context.Context) ([]string, error) {
	bodies := make([]string, 0, len(api.leagues.Preferred))
	for _, league := range api.leagues.Preferred {
		query := url.Values{}
		query.Set("league", strconv.Itoa(league))
		query.Set("season", strconv.Itoa(api.cfg.Season))

		body, err := api.fetch(ctx, api.cfg.StandingsURL+"?"+query.Encode())
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}

	return bodies, nil
}

// SearchTeam resolves a team name through the teams-search endpoint and
// returns the first hit. Zero hits is a NotFound, not a transport failure.
func (api *API) SearchTeam(ctx context.Context, name string) (entity.Team, error) {
	query := url.Values{}
	query.Set("name", name)

	body, err := api.fetch(ctx, api.cfg.TeamsURL+"?"+query.Encode())
	if err != nil {
		return entity.Team{}, err
	}

	hits, err := parse.TeamHits(body)
	if err != nil {
		return entity.Team{}, err
	}
	if len(hits) == 0 {
		return entity.Team{}, fmt.Errorf("%w: team %q", apperr.ErrNotFound, name)
	}

	return hits[0].Team, nil
}

func (api *API) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", apperr.ErrTransport, err)
	}

	req.Header.Set("X-RapidAPI-KEY", api.cfg.Key)
	req.Header.Set("X-RapidAPI-Host", api.cfg.Host)

	resp, err := api.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", apperr.ErrTransport, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", apperr.ErrTransport, err)
	}

	return string(body), nil
}
