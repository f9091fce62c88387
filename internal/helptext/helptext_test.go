// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package helptext

import (
	"errors"
	"strings"
	"testing"

	"go.astrophena.name/revf/testutil"
)

func TestRevfHelp(t *testing.T) {
	cases := map[string]struct {
		width int
		want  string
	}{
		"default width": {
			width: DefaultWidth,
			want: "usage: revf [-h] [-v] [-r]\n" +
				"\n" +
				"Reverse the content of files.\n" +
				"\n" +
				"options:\n" +
				"  -h, --help       Show this help message and exit.\n" +
				"  -v, --version    Display the revf version and exit.\n" +
				"  -r, --recursive  Recurse down into directories.\n",
		},
		"40 columns": {
			width: 40,
			want: "usage: revf [-h] [-v] [-r]\n" +
				"\n" +
				"Reverse the content of files.\n" +
				"\n" +
				"options:\n" +
				"  -h, --help      Show this help\n" +
				"                  message and exit.\n" +
				"  -v, --version   Display the revf\n" +
				"                  version and exit.\n" +
				"  -r, --recursive\n" +
				"                  Recurse down into\n" +
				"                  directories.\n",
		},
		"20 columns": {
			width: 20,
			want: "usage: revf [-h]\n" +
				"            [-v]\n" +
				"            [-r]\n" +
				"\n" +
				"Reverse the\n" +
				"content of files.\n" +
				"\n" +
				"options:\n" +
				"  -h, --help\n" +
				"    Show this help\n" +
				"    message and\n" +
				"    exit.\n" +
				"  -v, --version\n" +
				"    Display the\n" +
				"    revf version\n" +
				"    and exit.\n" +
				"  -r, --recursive\n" +
				"    Recurse down\n" +
				"    into\n" +
				"    directories.\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, Revf.Help(tc.width), tc.want)
		})
	}
}

func TestHelpDeterministic(t *testing.T) {
	first := Revf.Help(DefaultWidth)
	for range 10 {
		if got := Revf.Help(DefaultWidth); got != first {
			t.Fatalf("Help() is not deterministic:\nfirst: %q\nthen:  %q", first, got)
		}
	}
}

func TestHelp(t *testing.T) {
	cases := map[string]struct {
		p    Parser
		want string
	}{
		"no description": {
			p: Parser{
				Prog:    "revf",
				Options: []Option{{Short: "-r", Help: "Recurse."}},
			},
			want: "usage: revf [-r]\n\noptions:\n  -r  Recurse.\n",
		},
		"no options": {
			p:    Parser{Prog: "revf", Description: "Reverse files."},
			want: "usage: revf\n\nReverse files.\n",
		},
		"long name only": {
			p: Parser{
				Prog:    "revf",
				Options: []Option{{Long: "--recursive", Help: "Recurse."}},
			},
			want: "usage: revf [--recursive]\n\noptions:\n  --recursive  Recurse.\n",
		},
		"empty help": {
			p: Parser{
				Prog:    "revf",
				Options: []Option{{Short: "-h", Long: "--help"}, {Short: "-r", Help: "Recurse."}},
			},
			want: "usage: revf [-h] [-r]\n\noptions:\n  -h, --help\n  -r          Recurse.\n",
		},
		"whitespace is collapsed": {
			p: Parser{
				Prog:        "revf",
				Description: "  Reverse\tthe content\n of files. ",
				Options:     []Option{{Short: "-r", Help: "Recurse\n   down."}},
			},
			want: "usage: revf [-r]\n\nReverse the content of files.\n\noptions:\n  -r  Recurse down.\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.p.Help(DefaultWidth), tc.want)
		})
	}
}

func TestUsageLongProgram(t *testing.T) {
	p := Parser{
		Prog:    strings.Repeat("x", 20),
		Options: Revf.Options,
	}
	want := "usage: xxxxxxxxxxxxxxxxxxxx\n" +
		"       [-h] [-v]\n" +
		"       [-r]"
	testutil.AssertEqual(t, p.Usage(20), want)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		p       Parser
		wantErr string
	}{
		"revf": {
			p: Revf,
		},
		"empty program": {
			p:       Parser{Prog: " "},
			wantErr: "invalid parser: empty program name",
		},
		"nameless option": {
			p:       Parser{Prog: "revf", Options: []Option{{Help: "nothing"}}},
			wantErr: "invalid parser: option 0 has no names",
		},
		"malformed short": {
			p:       Parser{Prog: "revf", Options: []Option{{Short: "--r"}}},
			wantErr: `invalid parser: malformed short option "--r"`,
		},
		"malformed long": {
			p:       Parser{Prog: "revf", Options: []Option{{Long: "-recursive"}}},
			wantErr: `invalid parser: malformed long option "-recursive"`,
		},
		"duplicate": {
			p: Parser{Prog: "revf", Options: []Option{
				{Short: "-v", Long: "--version"},
				{Short: "-v", Long: "--verbose"},
			}},
			wantErr: `invalid parser: duplicate option "-v"`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidParser) {
				t.Fatalf("Validate() = %v, want it to wrap ErrInvalidParser", err)
			}
			testutil.AssertEqual(t, err.Error(), tc.wantErr)
		})
	}
}
