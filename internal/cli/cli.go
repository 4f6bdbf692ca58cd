// Package cli defines the hanfind command tree.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"hanfind/internal/catalog"
	"hanfind/internal/config"
	"hanfind/internal/index"
	"hanfind/internal/interactive"
	"hanfind/internal/logging"
	"hanfind/internal/normalize"
	"hanfind/pkg/search"
)

// ErrNoMatch makes the process exit with status 1, like grep.
var ErrNoMatch = errors.New("no match")

type App struct {
	Config   string `name:"config" short:"c" help:"Path to hanfind.ini (default: ./hanfind.ini if present)" type:"path"`
	LogLevel string `name:"log-level" help:"Override the configured log level (debug, info, warn, error)"`

	Match       MatchCmd       `cmd:"" help:"Report whether QUERY matches TARGET"`
	Initials    InitialsCmd    `cmd:"" help:"Print the initial-consonant skeleton of each TEXT (or stdin line)"`
	Filter      FilterCmd      `cmd:"" help:"Print catalog entries matching QUERY"`
	Interactive InteractiveCmd `cmd:"" help:"Search the catalog live as you type"`
}

// Env carries what every command needs once flags are parsed.
type Env struct {
	Ctx     context.Context
	Config  config.Config
	Log     *slog.Logger
	Matcher *search.Matcher
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
}

// Setup resolves the configuration and builds the shared matcher.
func (a *App) Setup(ctx context.Context, in io.Reader, out, errOut io.Writer) (*Env, error) {
	cfg, err := config.Resolve(a.Config)
	if err != nil {
		return nil, err
	}
	if a.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(a.LogLevel)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return NewEnv(ctx, cfg, in, out, errOut)
}

func NewEnv(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) (*Env, error) {
	logger := logging.Init(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, errOut)

	norm, err := normalize.For(cfg.Search.Normalize)
	if err != nil {
		return nil, err
	}
	m, err := search.NewMatcher(search.Options{
		Normalize:     norm,
		StrictPartial: cfg.Search.StrictPartial,
		CacheSize:     cfg.Search.CacheSize,
	})
	if err != nil {
		return nil, err
	}
	return &Env{Ctx: ctx, Config: cfg, Log: logger, Matcher: m, In: in, Out: out, Err: errOut}, nil
}

type MatchCmd struct {
	Query  string `arg:"" help:"Search query"`
	Target string `arg:"" help:"Text to search in"`
}

func (c *MatchCmd) Run(env *Env) error {
	ok := env.Matcher.Match(c.Query, c.Target)
	fmt.Fprintln(env.Out, ok)
	if !ok {
		return ErrNoMatch
	}
	return nil
}

type InitialsCmd struct {
	Text []string `arg:"" optional:"" help:"Text to reduce; reads stdin lines when omitted"`
}

func (c *InitialsCmd) Run(env *Env) error {
	if len(c.Text) > 0 {
		for _, text := range c.Text {
			fmt.Fprintln(env.Out, env.Matcher.Initials(text))
		}
		return nil
	}
	scanner := bufio.NewScanner(env.In)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		fmt.Fprintln(env.Out, env.Matcher.Initials(scanner.Text()))
	}
	return scanner.Err()
}

// CatalogFlags override the [catalog] section for a single run.
type CatalogFlags struct {
	Source string `name:"source" help:"Catalog source (builtin, text, yaml, sqlite)"`
	Path   string `name:"path" help:"Catalog file for text, yaml and sqlite sources" type:"path"`
	SQL    string `name:"sql" help:"Query selecting label and term columns for the sqlite source"`
	Stdin  bool   `name:"stdin" help:"Read candidates from stdin, one per line"`
}

func (f CatalogFlags) load(env *Env) ([]catalog.Candidate, error) {
	if f.Stdin {
		return catalog.ParseText(env.In)
	}
	src := env.Config.Catalog
	if f.Source != "" {
		src.Kind = f.Source
	}
	if f.Path != "" {
		src.Path = f.Path
	}
	if f.SQL != "" {
		src.Query = f.SQL
	}
	cands, err := catalog.Load(env.Ctx, src)
	if err != nil {
		return nil, err
	}
	env.Log.Debug("catalog loaded", "source", src.Kind, "path", src.Path, "candidates", len(cands))
	return cands, nil
}

func (f CatalogFlags) index(env *Env) (*index.Index, error) {
	cands, err := f.load(env)
	if err != nil {
		return nil, err
	}
	return index.New(env.Matcher, cands,
		index.WithWorkers(env.Config.Search.Workers),
		index.WithLogger(env.Log),
	), nil
}

type FilterCmd struct {
	CatalogFlags `embed:""`
	Query string `arg:"" help:"Search query"`
	Limit int    `name:"limit" short:"n" help:"Print at most N entries (0 for all)"`
	Terms bool   `name:"terms" help:"Print alternative terms next to each label"`
}

func (c *FilterCmd) Run(env *Env) error {
	ix, err := c.index(env)
	if err != nil {
		return err
	}
	results, err := ix.Filter(env.Ctx, c.Query)
	if err != nil {
		return err
	}
	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}
	for _, r := range results {
		if c.Terms && len(r.Terms) > 0 {
			fmt.Fprintf(env.Out, "%s\t%v\n", r.Label, r.Terms)
			continue
		}
		fmt.Fprintln(env.Out, r.Label)
	}
	if len(results) == 0 {
		return ErrNoMatch
	}
	return nil
}

type InteractiveCmd struct {
	CatalogFlags `embed:""`
	Layout string `name:"layout" default:"direct" enum:"direct,dubeolsik" help:"Key handling: direct (OS IME) or dubeolsik (Latin keys on the 2-set layout)"`
	Limit  int    `name:"limit" short:"n" default:"20" help:"Number of entries to show"`
}

func (c *InteractiveCmd) Run(env *Env) error {
	if c.Stdin {
		return errors.New("interactive mode reads keys from the terminal; use --path instead of --stdin")
	}
	layout, err := interactive.ParseLayout(c.Layout)
	if err != nil {
		return err
	}
	ix, err := c.index(env)
	if err != nil {
		return err
	}
	choice, err := interactive.Run(env.Ctx, ix, env.Err, interactive.Options{Layout: layout, Limit: c.Limit})
	if errors.Is(err, interactive.ErrAborted) {
		return ErrNoMatch
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, choice.Label)
	return nil
}
