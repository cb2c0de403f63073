package roster

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"footy/internal/apperr"
	"footy/internal/colors"
	"footy/internal/entity"
)

// TeamFinder resolves a user-typed team name to the upstream (name, id)
// pair that actually gets stored.
type TeamFinder interface {
	SearchTeam(ctx context.Context, name string) (entity.Team, error)
}

// Editor is the interactive add/remove flow for the favorites roster. One
// prompt, one branch, no retry loop.
type Editor struct {
	store  *Store
	finder TeamFinder
	colors colors.Table
	in     *bufio.Reader
	out    io.Writer
}

func NewEditor(store *Store, finder TeamFinder, table colors.Table, in io.Reader, out io.Writer) *Editor {
	return &Editor{
		store:  store,
		finder: finder,
		colors: table,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

func (e *Editor) Run(ctx context.Context) error {
	fmt.Fprint(e.out, "Edit favorites: (a)dd or (r)emove? ")
	line, err := e.readLine()
	if err != nil {
		return err
	}

	switch {
	case strings.HasPrefix(line, "a"):
		return e.add(ctx)
	case strings.HasPrefix(line, "r"):
		return e.remove()
	default:
		fmt.Fprintln(e.out, "Invalid input.")
		return nil
	}
}

func (e *Editor) add(ctx context.Context) error {
	fmt.Fprint(e.out, "Team name: ")
	name, err := e.readLine()
	if err != nil {
		return err
	}

	team, err := e.finder.SearchTeam(ctx, name)
	if err != nil {
		if apperr.IsNotFound(err) {
			fmt.Fprintf(e.out, "%s is not a valid team.\n", name)
			return nil
		}
		return err
	}

	if err := e.store.Append(team.Name, team.ID); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Added %s.\n", team.Name)
	return nil
}

func (e *Editor) remove() error {
	teams, err := e.store.ReadAll()
	if err != nil {
		return err
	}

	for name, id := range teams {
		rgb, err := e.colors.RGB(id)
		if err != nil {
			rgb = colors.White
		}
		fmt.Fprintln(e.out, rgb.Paint(name))
	}

	fmt.Fprint(e.out, "Remove which team? ")
	name, err := e.readLine()
	if err != nil {
		return err
	}

	if err := e.store.Remove(name); err != nil {
		return err
	}
	// Removing a name that was never on the roster still confirms; the end
	// state is the same either way.
	fmt.Fprintf(e.out, "Removed %s.\n", name)
	return nil
}

func (e *Editor) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("%w: read input: %v", apperr.ErrFile, err)
	}
	return strings.TrimSpace(line), nil
}
