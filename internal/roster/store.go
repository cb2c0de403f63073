package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"footy/internal/apperr"
)

// PathEnv overrides the roster file location. It is read on every call, not
// cached, so tests and one-off invocations can repoint the store.
const PathEnv = "FOOTY_ROSTER_FILE"

// Store persists favorite teams as headerless "name,id" rows. Rosters are
// small and user-edited, so removal rewriting the whole file is fine.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) file() string {
	if override := os.Getenv(PathEnv); override != "" {
		return override
	}
	return s.path
}

// ReadAll returns the name→id mapping. Duplicate names are not reconciled;
// the last row wins.
func (s *Store) ReadAll() (map[string]int64, error) {
	f, err := os.Open(s.file())
	if err != nil {
		return nil, fmt.Errorf("%w: open roster: %v", apperr.ErrFile, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	teams := make(map[string]int64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read roster: %v", apperr.ErrFile, err)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: roster id %q: %v", apperr.ErrFile, record[1], err)
		}
		teams[record[0]] = id
	}

	return teams, nil
}

// Append adds one row, creating the file on first use. Existing rows are
// never rewritten here.
func (s *Store) Append(name string, id int64) error {
	f, err := os.OpenFile(s.file(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open roster: %v", apperr.ErrFile, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s,%d\n", name, id); err != nil {
		return fmt.Errorf("%w: append roster: %v", apperr.ErrFile, err)
	}
	return nil
}

// Remove drops every row whose name matches case-insensitively, then
// rewrites the file from scratch. Removing an absent name is a no-op, not
// an error.
func (s *Store) Remove(name string) error {
	data, err := os.ReadFile(s.file())
	if err != nil {
		return fmt.Errorf("%w: read roster: %v", apperr.ErrFile, err)
	}

	lines := strings.Split(string(data), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		rowName, _, _ := strings.Cut(trimmed, ",")
		if strings.EqualFold(rowName, name) {
			continue
		}
		kept = append(kept, trimmed)
	}

	out := strings.Join(kept, "\n")
	if len(kept) > 0 {
		out += "\n"
	}
	if err := os.WriteFile(s.file(), []byte(out), 0o644); err != nil {
		return fmt.Errorf("%w: rewrite roster: %v", apperr.ErrFile, err)
	}
	return nil
}
