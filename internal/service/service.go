package service

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/rs/zerolog"

	"footy/internal/api"
	"footy/internal/colors"
	"footy/internal/parse"
	"footy/internal/render"
	"footy/internal/roster"
)

// Command is the resolved operation for one invocation. Parsing happens at
// the CLI boundary; the service only ever sees a valid kind.
type Command string

const (
	Schedule  Command = "schedule"
	Live      Command = "live"
	Scores    Command = "scores"
	Teams     Command = "teams"
	Standings Command = "standings"
)

// ParseCommand maps an argv word to a command kind.
func ParseCommand(arg string) (Command, error) {
	switch Command(arg) {
	case Schedule, Live, Scores, Teams, Standings:
		return Command(arg), nil
	}
	return "", fmt.Errorf("unknown command %q", arg)
}

// Service wires one command execution through the pipeline: upstream
// client, envelope normalizer, renderer, with the roster store and color
// table as side lookups.
type Service struct {
	api    *api.API
	roster *roster.Store
	colors colors.Table
	render *render.Renderer
	logger *zerolog.Logger
	in     io.Reader
	out    io.Writer
}

func New(
	api *api.API,
	store *roster.Store,
	table colors.Table,
	logger *zerolog.Logger,
	in io.Reader,
	out io.Writer,
) *Service {
	return &Service{
		api:    api,
		roster: store,
		colors: table,
		render: render.New(table, out),
		logger: logger,
		in:     in,
		out:    out,
	}
}

func (s *Service) Run(ctx context.Context, cmd Command) error {
	switch cmd {
	case Schedule:
		return s.schedule(ctx)
	case Live:
		return s.live(ctx)
	case Scores:
		return s.scores(ctx)
	case Teams:
		return s.editRoster(ctx)
	case Standings:
		return s.standings(ctx)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (s *Service) schedule(ctx context.Context) error {
	bodies, err := s.api.ScheduleBodies(ctx)
	if err != nil {
		return err
	}

	groups, err := parse.Fixtures(bodies)
	if err != nil {
		return err
	}

	s.logger.Debug().Int("leagues", len(groups)).Msg("schedule fetched")
	return s.render.Schedule(groups)
}

func (s *Service) live(ctx context.Context) error {
	body, err := s.api.LiveBody(ctx)
	if err != nil {
		return err
	}

	groups, err := parse.Fixtures([]string{body})
	if err != nil {
		return err
	}

	return s.render.Live(groups)
}

// scores renders the last two fixtures per favorite team, in roster id
// order. A missing roster file here is fatal to the process, unlike the
// color table it has no empty fallback that makes sense.
func (s *Service) scores(ctx context.Context) error {
	teams, err := s.roster.ReadAll()
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(teams))
	for _, id := range teams {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	// TODO: select the single fixture closest to today per team instead of
	// rendering everything the last=2 window returns.
	bodies, err := s.api.TeamFixtureBodies(ctx, ids)
	if err != nil {
		return err
	}

	groups, err := parse.Fixtures(bodies)
	if err != nil {
		return err
	}

	return s.render.Scores(groups)
}

func (s *Service) editRoster(ctx context.Context) error {
	editor := roster.NewEditor(s.roster, s.api, s.colors, s.in, s.out)
	return editor.Run(ctx)
}

func (s *Service) standings(ctx context.Context) error {
	bodies, err := s.api.StandingsBodies(ctx)
	if err != nil {
		return err
	}

	tables, err := parse.Standings(bodies)
	if err != nil {
		return err
	}

	return s.render.Standings(tables)
}
