// Package catalog loads the candidate lists a search query is filtered
// against. The default list is the books of the Bible.
package catalog

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

// Candidate is one searchable entry. Label is what gets displayed; Terms are
// alternative spellings that also select it.
type Candidate struct {
	Label string   `yaml:"label"`
	Terms []string `yaml:"terms,omitempty"`
}

// Keys returns the label followed by every term.
func (c Candidate) Keys() []string {
	keys := make([]string, 0, len(c.Terms)+1)
	keys = append(keys, c.Label)
	return append(keys, c.Terms...)
}

const (
	KindBuiltin = "builtin"
	KindText    = "text"
	KindYAML    = "yaml"
	KindSQLite  = "sqlite"
)

// Source describes where candidates come from. Query is only used by the
// sqlite kind.
type Source struct {
	Kind  string
	Path  string
	Query string
}

// Kinds lists the accepted source kinds.
func Kinds() []string {
	return []string{KindBuiltin, KindText, KindYAML, KindSQLite}
}

func Load(ctx context.Context, src Source) ([]Candidate, error) {
	switch src.Kind {
	case KindBuiltin, "":
		return Builtin()
	case KindText:
		return LoadText(src.Path)
	case KindYAML:
		return LoadYAML(src.Path)
	case KindSQLite:
		return LoadSQLite(ctx, src.Path, src.Query)
	}
	return nil, fmt.Errorf("unknown catalog source %q", src.Kind)
}

//go:embed books.yaml
var booksYAML string

// Builtin returns the 66 books with their Korean abbreviation and English
// name as terms.
func Builtin() ([]Candidate, error) {
	cands, err := ParseYAML(strings.NewReader(booksYAML))
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return cands, nil
}

func LoadYAML(path string) ([]Candidate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer file.Close()

	cands, err := ParseYAML(file)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cands, nil
}

// ParseYAML reads a sequence of {label, terms} mappings.
func ParseYAML(r io.Reader) ([]Candidate, error) {
	var raw []Candidate
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	out := raw[:0]
	for _, c := range raw {
		if c, ok := clean(c.Label, c.Terms); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func LoadText(path string) ([]Candidate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer file.Close()

	cands, err := ParseText(file)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return cands, nil
}

// ParseText reads one candidate per line. Tab-separated fields after the
// first are extra terms. Blank lines and lines starting with '#' or ';' are
// skipped.
func ParseText(r io.Reader) ([]Candidate, error) {
	var out []Candidate
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		parts := strings.Split(line, "\t")
		if c, ok := clean(parts[0], parts[1:]); ok {
			out = append(out, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadSQLite runs query against the database at path. The first column is
// the label; any further non-NULL text columns become terms.
func LoadSQLite(ctx context.Context, path, query string) ([]Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("catalog %s: sqlite source needs a query", path)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog %s: %w", path, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query catalog %s: %w", path, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("query catalog %s: no columns", path)
	}

	var out []Candidate
	for rows.Next() {
		fields := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range fields {
			dest[i] = &fields[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan catalog %s: %w", path, err)
		}
		var terms []string
		for _, f := range fields[1:] {
			if f.Valid {
				terms = append(terms, f.String)
			}
		}
		if c, ok := clean(fields[0].String, terms); ok {
			out = append(out, c)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return out, nil
}

func clean(label string, terms []string) (Candidate, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Candidate{}, false
	}
	c := Candidate{Label: label}
	for _, term := range terms {
		if term = strings.TrimSpace(term); term != "" {
			c.Terms = append(c.Terms, term)
		}
	}
	return c, true
}
