package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"footy/internal/apperr"
	"footy/internal/colors"
	"footy/internal/entity"
)

// Team names render into a fixed field of this many display characters.
// Padding is computed from the plain name length because the color escapes
// are non-printing and would desynchronize printf width verbs.
const teamFieldWidth = 27

type Renderer struct {
	colors colors.Table
	out    io.Writer
}

func New(table colors.Table, out io.Writer) *Renderer {
	return &Renderer{colors: table, out: out}
}

// Schedule prints one row per fixture: away at home at kickoff time, with
// an in-progress marker for anything already underway.
func (r *Renderer) Schedule(groups [][]entity.Fixture) error {
	if empty(groups) {
		fmt.Fprintln(r.out, "No fixtures today.")
		return nil
	}

	for _, fixtures := range groups {
		for _, f := range fixtures {
			away, err := r.team(f.Teams.Away)
			if err != nil {
				return err
			}
			home, err := r.team(f.Teams.Home)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "%s at %s at %s%s\n",
				away, home, Kickoff(f.Fixture.Timestamp), ProgressSuffix(f.Fixture.Status))
		}
	}
	return nil
}

// Live prints score and elapsed minutes per running fixture. A live
// fixture without goals or elapsed time is rejected as malformed data
// rather than defaulted; the upstream always reports both for in-play
// matches.
func (r *Renderer) Live(groups [][]entity.Fixture) error {
	if empty(groups) {
		fmt.Fprintln(r.out, "No live fixtures right now.")
		return nil
	}

	for _, fixtures := range groups {
		for _, f := range fixtures {
			if f.Goals.Home == nil || f.Goals.Away == nil || f.Fixture.Status.Elapsed == nil {
				return fmt.Errorf("%w: live fixture %d is missing goals or elapsed time",
					apperr.ErrDecode, f.Fixture.ID)
			}
			away, err := r.team(f.Teams.Away)
			if err != nil {
				return err
			}
			home, err := r.team(f.Teams.Home)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "%s %s: %d - %d in %d'\n",
				away, home, *f.Goals.Away, *f.Goals.Home, *f.Fixture.Status.Elapsed)
		}
	}
	return nil
}

// Scores prints recent results per favorite team. Missing goal counts
// (fixtures not yet played) render as "-".
func (r *Renderer) Scores(groups [][]entity.Fixture) error {
	if empty(groups) {
		fmt.Fprintln(r.out, "No fixtures for your teams.")
		return nil
	}

	for _, fixtures := range groups {
		for _, f := range fixtures {
			away, err := r.team(f.Teams.Away)
			if err != nil {
				return err
			}
			home, err := r.team(f.Teams.Home)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "%s %s: %s - %s on %s\n",
				away, home, goal(f.Goals.Away), goal(f.Goals.Home), MonthDay(f.Fixture.Date))
		}
	}
	return nil
}

// Standings prints rank, colored name, points and form per table row. The
// first row of a labeled group is preceded by the group header, so split
// tables within one league stay readable.
func (r *Renderer) Standings(tables [][][]entity.TeamStanding) error {
	for _, league := range tables {
		for _, group := range league {
			for _, row := range group {
				if row.Rank == 1 && row.Group != "" {
					fmt.Fprintf(r.out, "\n%s\n", row.Group)
				}
				name, err := r.team(row.Team)
				if err != nil {
					return err
				}
				form := "na"
				if row.Form != nil && *row.Form != "" {
					form = *row.Form
				}
				fmt.Fprintf(r.out, "%2d %s %3d %s\n", row.Rank, name, row.Points, form)
			}
		}
	}
	return nil
}

// ProgressSuffix is the marker appended to schedule rows. Only finished and
// not-started codes map to the empty suffix.
func ProgressSuffix(status entity.Status) string {
	if status.InProgress() {
		return " | In Progress"
	}
	return ""
}

// Kickoff formats a unix timestamp as local time of day.
func Kickoff(timestamp int64) string {
	return time.Unix(timestamp, 0).Format("15:04")
}

// MonthDay slices the MM-DD part out of an ISO date string.
func MonthDay(date string) string {
	if len(date) < 10 {
		return date
	}
	return date[5:10]
}

func (r *Renderer) team(t entity.Team) (string, error) {
	rgb, err := r.colors.RGB(t.ID)
	if err != nil {
		return "", err
	}
	pad := teamFieldWidth - len(t.Name)
	if pad < 0 {
		pad = 0
	}
	return rgb.Paint(t.Name) + strings.Repeat(" ", pad), nil
}

func goal(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

// empty reports the normalizer's nothing-to-show shape: groups exist but
// none carries a fixture.
func empty(groups [][]entity.Fixture) bool {
	for _, fixtures := range groups {
		if len(fixtures) > 0 {
			return false
		}
	}
	return true
}
