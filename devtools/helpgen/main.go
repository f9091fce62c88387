// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"go.astrophena.name/revf/cli"
	"go.astrophena.name/revf/devtools/internal"
	"go.astrophena.name/revf/internal/cheader"
	"go.astrophena.name/revf/internal/helptext"
	"go.astrophena.name/revf/logger"
)

const (
	defaultOutput = "src/program_help.h"
	generatorName = "devtools/helpgen"
)

var errStale = errors.New("header is out of date, run go tool helpgen to regenerate it")

func main() { cli.Main(new(app)) }

type app struct {
	out    string
	width  int
	macro  string
	check  bool
	stdout bool

	// parser overrides helptext.Revf in tests.
	parser *helptext.Parser
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.out, "o", defaultOutput, "Write the header to `file`. Relative paths are resolved against the module root.")
	fs.IntVar(&a.width, "width", helptext.DefaultWidth, "Render the help text for a terminal `columns` wide.")
	fs.StringVar(&a.macro, "macro", cheader.DefaultMacro, "Name of the defined `macro`.")
	fs.BoolVar(&a.check, "check", false, "Don't write anything, fail if the header on disk is out of date.")
	fs.BoolVar(&a.stdout, "stdout", false, "Print the header to stdout instead of writing it.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}
	if a.check && a.stdout {
		return fmt.Errorf("%w: -check and -stdout can't be used together", cli.ErrInvalidArgs)
	}
	if a.width < 1 {
		return fmt.Errorf("%w: -width must be positive, got %d", cli.ErrInvalidArgs, a.width)
	}

	src, err := a.render(ctx)
	if err != nil {
		return err
	}

	if a.stdout {
		_, err := env.Stdout.Write(src)
		return err
	}

	if !filepath.IsAbs(a.out) {
		if err := internal.EnsureRoot(); err != nil {
			return err
		}
	}

	if a.check {
		return check(ctx, a.out, src)
	}
	return write(ctx, a.out, src)
}

// render produces the header and makes sure it is well-formed.
func (a *app) render(ctx context.Context) ([]byte, error) {
	p := a.parser
	if p == nil {
		p = &helptext.Revf
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	text := p.Help(a.width)
	logger.Debug(ctx, "rendered help",
		slog.String("prog", p.Prog),
		slog.Int("width", a.width),
		slog.Int("lines", len(cheader.Lines(text))),
	)

	src, err := cheader.Bytes(cheader.Header{
		Generator: generatorName,
		Macro:     a.macro,
		Text:      text,
	})
	if err != nil {
		return nil, err
	}
	if err := cheader.Validate(src); err != nil {
		return nil, fmt.Errorf("generated an invalid header: %w", err)
	}
	return src, nil
}

func check(ctx context.Context, path string, want []byte) error {
	got, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", errStale, path)
	}
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		logger.Warn(ctx, "header differs from the generated one", slog.String("path", path))
		return fmt.Errorf("%w: %s", errStale, path)
	}
	logger.Debug(ctx, "header is up to date", slog.String("path", path))
	return nil
}

func write(ctx context.Context, path string, src []byte) error {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, src):
		// Keep the modification time of an unchanged header.
		logger.Debug(ctx, "header is up to date", slog.String("path", path))
		return nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return err
	}
	created := err != nil

	logger.Info(ctx, "saving header", slog.String("path", path))
	if err := atomic.WriteFile(path, bytes.NewReader(src)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if created {
		// Temporary files are created with 0600.
		if err := os.Chmod(path, 0o644); err != nil {
			return err
		}
	}
	return nil
}
