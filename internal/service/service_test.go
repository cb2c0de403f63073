package service

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"footy/cmd/config"
	"footy/internal/api"
	"footy/internal/roster"
)

const fixtureBody = `{"response": [{
	"fixture": {
		"id": 1, "timezone": "UTC", "date": "2023-11-15T19:00:00+00:00",
		"timestamp": 1700074800,
		"status": {"long": "Not Started", "short": "NS", "elapsed": null}
	},
	"league": {"id": 39, "name": "Premier League", "country": "England", "logo": "", "season": 2023},
	"teams": {
		"home": {"id": 40, "name": "Liverpool", "logo": ""},
		"away": {"id": 55, "name": "Brentford", "logo": ""}
	},
	"goals": {"home": null, "away": null},
	"score": {
		"halftime": {"home": null, "away": null},
		"fulltime": {"home": null, "away": null},
		"extratime": {"home": null, "away": null},
		"penalty": {"home": null, "away": null}
	}
}]}`

func newTestService(t *testing.T, handler http.HandlerFunc, rosterContent string) (*Service, *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.APIConfig{
		FixturesURL:  server.URL + "/fixtures",
		StandingsURL: server.URL + "/standings",
		TeamsURL:     server.URL + "/teams",
		Host:         "api-football-v1.p.rapidapi.com",
		Key:          "test-key",
		Timeout:      5,
		Season:       2023,
	}
	leagues := config.LeaguesConfig{Preferred: []int{39}, All: []int{39, 140}}

	rosterPath := filepath.Join(t.TempDir(), "favorites.csv")
	require.NoError(t, os.WriteFile(rosterPath, []byte(rosterContent), 0o644))

	logger := zerolog.Nop()
	var out bytes.Buffer
	svc := New(
		api.New(cfg, leagues),
		roster.NewStore(rosterPath),
		nil,
		&logger,
		strings.NewReader(""),
		&out,
	)
	return svc, &out
}

func TestParseCommand(t *testing.T) {
	for _, arg := range []string{"schedule", "live", "scores", "teams", "standings"} {
		cmd, err := ParseCommand(arg)
		require.NoError(t, err)
		assert.Equal(t, Command(arg), cmd)
	}

	_, err := ParseCommand("fixtures")
	assert.Error(t, err)
}

func TestRun_SchedulePipelines(t *testing.T) {
	svc, out := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureBody))
	}, "")

	require.NoError(t, svc.Run(context.Background(), Schedule))

	assert.Contains(t, out.String(), "Brentford")
	assert.Contains(t, out.String(), "Liverpool")
	assert.NotContains(t, out.String(), "In Progress")
}

func TestRun_ScheduleWithNothingToShow(t *testing.T) {
	svc, out := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": []}`))
	}, "")

	require.NoError(t, svc.Run(context.Background(), Schedule))

	assert.Contains(t, out.String(), "No fixtures today.")
}

func TestRun_ScoresFetchesPerRosterTeam(t *testing.T) {
	var teams []string
	svc, out := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		teams = append(teams, r.URL.Query().Get("team"))
		w.Write([]byte(fixtureBody))
	}, "Liverpool,40\nArsenal,42\n")

	require.NoError(t, svc.Run(context.Background(), Scores))

	// One call per favorite, in id order.
	assert.Equal(t, []string{"40", "42"}, teams)
	assert.Contains(t, out.String(), "on 11-15")
}

func TestRun_ScoresMissingRosterIsFatal(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureBody))
	}, "")
	t.Setenv(roster.PathEnv, filepath.Join(t.TempDir(), "absent.csv"))

	err := svc.Run(context.Background(), Scores)

	assert.Error(t, err)
}
