package parse

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"footy/internal/apperr"
)

const jsonPath = "testdata"

func getFile(t *testing.T, fileName string) string {
	t.Helper()
	data, err := os.ReadFile(path.Join(jsonPath, fileName))
	require.NoError(t, err)
	return string(data)
}

func TestFixtures_EmptyInputIsSentinel(t *testing.T) {
	groups, err := Fixtures(nil)

	require.NoError(t, err)
	// One empty inner group, not zero groups: "nothing to show" must stay
	// distinguishable from a zero-length result set.
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0])
}

func TestFixtures_DecodesRealShape(t *testing.T) {
	body := getFile(t, "fixtures.json")

	groups, err := Fixtures([]string{body})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)

	live := groups[0][0]
	assert.Equal(t, int64(1035338), live.Fixture.ID)
	assert.Equal(t, "A. Taylor", live.Fixture.Referee)
	assert.Equal(t, "2H", live.Fixture.Status.Short)
	require.NotNil(t, live.Fixture.Status.Elapsed)
	assert.Equal(t, 64, *live.Fixture.Status.Elapsed)
	assert.Equal(t, "Liverpool", live.Teams.Home.Name)
	assert.Equal(t, int64(55), live.Teams.Away.ID)
	require.NotNil(t, live.Teams.Home.Winner)
	assert.True(t, *live.Teams.Home.Winner)
	require.NotNil(t, live.Goals.Home)
	assert.Equal(t, 3, *live.Goals.Home)
	require.NotNil(t, live.Score.Halftime.Home)
	assert.Equal(t, 1, *live.Score.Halftime.Home)
	assert.Nil(t, live.Score.Fulltime.Home)
	assert.Equal(t, 2023, live.League.Season)
	require.NotNil(t, live.League.Round)
	assert.Equal(t, "Regular Season - 12", *live.League.Round)

	upcoming := groups[0][1]
	assert.Equal(t, "NS", upcoming.Fixture.Status.Short)
	assert.Nil(t, upcoming.Fixture.Status.Elapsed)
	assert.Nil(t, upcoming.Goals.Home)
	assert.Nil(t, upcoming.Teams.Home.Winner)
	assert.False(t, upcoming.Fixture.Status.InProgress())
	assert.True(t, live.Fixture.Status.InProgress())
}

func TestFixtures_PreservesPerCallGrouping(t *testing.T) {
	body := getFile(t, "fixtures.json")
	empty := `{"response": []}`

	groups, err := Fixtures([]string{body, empty})

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Empty(t, groups[1])
}

func TestFixtures_MissingResponseKey(t *testing.T) {
	_, err := Fixtures([]string{`{"get": "fixtures", "errors": []}`})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrMissingField)
}

func TestFixtures_MalformedRecordFailsBatch(t *testing.T) {
	_, err := Fixtures([]string{`{"response": [{"fixture": {"id": "not-a-number"}}]}`})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrDecode)
}

func TestFixtures_InvalidJSON(t *testing.T) {
	_, err := Fixtures([]string{"{nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrDecode)
}

func TestStandings_EmptyInputIsEmptyOutput(t *testing.T) {
	tables, err := Standings(nil)

	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestStandings_DecodesNestedGroups(t *testing.T) {
	body := getFile(t, "standings.json")

	tables, err := Standings([]string{body})
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Len(t, tables[0], 1)
	require.Len(t, tables[0][0], 2)

	top := tables[0][0][0]
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, "Manchester City", top.Team.Name)
	assert.Equal(t, 28, top.Points)
	assert.Equal(t, 16, top.GoalsDiff)
	assert.Equal(t, "Premier League", top.Group)
	require.NotNil(t, top.Form)
	assert.Equal(t, "WWWDW", *top.Form)
	assert.Equal(t, 12, top.All.Played)
	assert.Equal(t, 30, top.All.Goals.For)
	assert.Equal(t, 6, top.Home.Goals.Against)

	second := tables[0][0][1]
	assert.Equal(t, 2, second.Rank)
	assert.Nil(t, second.Form)
}

func TestStandings_EmptyResponseArray(t *testing.T) {
	_, err := Standings([]string{`{"response": []}`})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrMissingField)
}

func TestStandings_MissingResponseKey(t *testing.T) {
	_, err := Standings([]string{`{"results": 0}`})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrMissingField)
}

func TestTeamHits_DecodesAndAllowsZeroHits(t *testing.T) {
	hits, err := TeamHits(`{"response": [{"team": {"id": 40, "name": "Liverpool", "logo": ""}}]}`)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(40), hits[0].Team.ID)

	none, err := TeamHits(`{"response": []}`)
	require.NoError(t, err)
	assert.Empty(t, none)
}
