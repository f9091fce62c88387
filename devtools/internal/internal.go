// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package internal contains helpers shared by devtools.
package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoRoot is returned by EnsureRoot when no go.mod file is found in the
// current directory or any of its parents.
var ErrNoRoot = errors.New("not inside a Go module")

// EnsureRoot changes the working directory to the root of the enclosing Go
// module, so devtools can use paths relative to the repository root no
// matter where they are invoked from.
func EnsureRoot() error {
	root, err := FindRoot()
	if err != nil {
		return err
	}
	return os.Chdir(root)
}

// FindRoot returns the nearest directory, starting from the working
// directory and going up, that contains a go.mod file.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		_, err := os.Stat(filepath.Join(dir, "go.mod"))
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no go.mod found", ErrNoRoot)
		}
		dir = parent
	}
}
