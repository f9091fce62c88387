// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides a table-driven harness for testing [cli.App]
// implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/revf/cli"
	"go.astrophena.name/revf/logger"
)

// Case describes a single run of an application and the expected outcome.
type Case[T cli.App] struct {
	// Args are the command-line arguments, without the program name.
	Args []string
	// Stdin is the standard input. If nil, an empty reader is used.
	Stdin io.Reader
	// Env holds environment variables visible through cli.Env.Getenv.
	Env map[string]string

	// WantNothingPrinted requires both stdout and stderr to be empty.
	WantNothingPrinted bool
	// WantInStdout, if not empty, must be a substring of stdout.
	WantInStdout string
	// WantInStderr, if not empty, must be a substring of stderr. Log
	// messages are written to stderr too.
	WantInStderr string
	// WantErr, if not nil, must match the returned error with errors.Is.
	WantErr error
	// WantErrType, if not nil, must match the returned error with errors.As
	// against a value of the same type.
	WantErrType error

	// CheckFunc, if not nil, is called after the run with the application.
	CheckFunc func(*testing.T, T)
}

// Run runs each case as a subtest against a fresh application returned by
// setup.
func Run[T cli.App](t *testing.T, setup func(*testing.T) T, cases map[string]Case[T]) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			var stdout, stderr bytes.Buffer
			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			l := logger.New(nil)
			l.Attach(slog.NewTextHandler(&stderr, &slog.HandlerOptions{Level: l.Level}))
			ctx := logger.Put(cli.WithEnv(context.Background(), env), l)

			err := cli.Run(ctx, app)

			switch {
			case tc.WantErr != nil:
				if !errors.Is(err, tc.WantErr) {
					t.Fatalf("want error %v, got %v", tc.WantErr, err)
				}
			case tc.WantErrType != nil:
				target := reflect.New(reflect.TypeOf(tc.WantErrType))
				if !errors.As(err, target.Interface()) {
					t.Fatalf("want error of type %T, got %v", tc.WantErrType, err)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.WantNothingPrinted && (stdout.Len() > 0 || stderr.Len() > 0) {
				t.Errorf("want nothing printed, got stdout %q and stderr %q", stdout.String(), stderr.String())
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}
