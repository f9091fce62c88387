// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"testing"

	"go.astrophena.name/revf/testutil"
)

func TestInfoString(t *testing.T) {
	cases := map[string]struct {
		in   Info
		want string
	}{
		"no commit": {
			in:   Info{Name: "helpgen", Module: "devel", Go: "go1.26.0"},
			want: "helpgen devel built with go1.26.0\n",
		},
		"short commit": {
			in:   Info{Name: "helpgen", Module: "v0.1.0", Commit: "abc123", Go: "go1.26.0"},
			want: "helpgen v0.1.0 (abc123) built with go1.26.0\n",
		},
		"long dirty commit": {
			in:   Info{Name: "helpgen", Module: "devel", Commit: "0123456789abcdef", Dirty: true, Go: "go1.26.0"},
			want: "helpgen devel (0123456789ab, dirty) built with go1.26.0\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.in.String(), tc.want)
		})
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if v.Name == "" {
		t.Error("Version().Name is empty")
	}
	if v.Go == "" {
		t.Error("Version().Go is empty")
	}
}
