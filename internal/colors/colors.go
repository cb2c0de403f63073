package colors

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"footy/internal/apperr"
)

// RGB is a 24-bit terminal foreground color.
type RGB struct {
	R, G, B uint8
}

var White = RGB{255, 255, 255}

// Paint wraps s in the truecolor escape for c plus a reset. The escapes are
// non-printing, so callers doing column math must pad by the unpainted
// length.
func (c RGB) Paint(s string) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.R, c.G, c.B, s)
}

// Table maps team id to the raw color value from the side file. The file is
// read-only for this program; a nil Table is valid and resolves everything
// to white.
type Table map[int64]string

// Load reads headerless "id,rgbString" rows. The rgb value itself contains
// commas, so rows split on the first comma only. Rows with a non-numeric id
// are skipped.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read colors: %v", apperr.ErrFile, err)
	}

	table := make(Table)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			continue
		}
		table[id] = strings.TrimSpace(parts[1])
	}

	return table, nil
}

// RGB resolves a team id to its display color. Unknown teams default to
// white, as does the non-parenthesized sentinel used for teams without a
// distinct kit color. A parenthesized value that fails to parse is an
// error; there is no fallback mid-parse.
func (t Table) RGB(teamID int64) (RGB, error) {
	raw, ok := t[teamID]
	if !ok {
		return White, nil
	}
	if !strings.HasPrefix(raw, "(") {
		return White, nil
	}

	trimmed := strings.TrimSuffix(strings.TrimPrefix(raw, "("), ")")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: color triple %q", apperr.ErrDecode, raw)
	}

	var vals [3]uint8
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: color component %q in %q: %v", apperr.ErrDecode, part, raw, err)
		}
		vals[i] = uint8(n)
	}

	return RGB{R: vals[0], G: vals[1], B: vals[2]}, nil
}
