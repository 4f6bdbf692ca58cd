package catalog

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	books, err := Builtin()
	require.NoError(t, err)
	require.Len(t, books, 66)

	assert.Equal(t, "창세기", books[0].Label)
	assert.Equal(t, []string{"창", "Genesis"}, books[0].Terms)
	assert.Equal(t, "요한계시록", books[65].Label)
	assert.Equal(t, []string{"요한계시록", "계", "Revelation"}, books[65].Keys())
}

func TestParseText(t *testing.T) {
	input := "# books\n창세기\t창\tGenesis\n\n; skipped\n  출애굽기  \n\t\n"
	cands, err := ParseText(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cands, 2)

	assert.Equal(t, Candidate{Label: "창세기", Terms: []string{"창", "Genesis"}}, cands[0])
	assert.Equal(t, Candidate{Label: "출애굽기"}, cands[1])
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.yaml")
	contents := "- label: 모세\n  terms: [Moses]\n- label: \"\"\n- label: 아론\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cands, err := Load(context.Background(), Source{Kind: KindYAML, Path: path})
	require.NoError(t, err)
	assert.Equal(t, []Candidate{
		{Label: "모세", Terms: []string{"Moses"}},
		{Label: "아론"},
	}, cands)
}

func TestLoadYAMLEmpty(t *testing.T) {
	cands, err := ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), Source{Kind: KindText, Path: filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")

	_, err = Load(context.Background(), Source{Kind: "csv"})
	require.Error(t, err)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE books (name TEXT, abbrev TEXT, chapters INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO books VALUES ('창세기', '창', 50), ('출애굽기', NULL, 40), ('', 'x', 1)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cands, err := Load(context.Background(), Source{
		Kind:  KindSQLite,
		Path:  path,
		Query: "SELECT name, abbrev FROM books ORDER BY chapters DESC",
	})
	require.NoError(t, err)
	assert.Equal(t, []Candidate{
		{Label: "창세기", Terms: []string{"창"}},
		{Label: "출애굽기"},
	}, cands)

	_, err = LoadSQLite(context.Background(), path, "")
	assert.Error(t, err)
	_, err = LoadSQLite(context.Background(), filepath.Join(t.TempDir(), "missing.db"), "SELECT 1")
	assert.Error(t, err)
}
