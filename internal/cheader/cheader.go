// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package cheader writes text as a string constant of a C header and checks
// that such headers are well-formed.
//
// A rendered header looks like this:
//
//	/*
//	This file is auto-generated. Use the helpgen tool to regenerate.
//	*/
//
//	#define PROGRAM_HELP \
//		"usage: revf [-h] [-v] [-r]\n" \
//		"\n" \
//
//	#pragma once
package cheader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// DefaultMacro is the name of the macro holding the help text in revf.
const DefaultMacro = "PROGRAM_HELP"

var (
	// ErrInvalidMacro is returned by [Render] when the macro name is not a C
	// identifier.
	ErrInvalidMacro = errors.New("invalid macro name")
	// ErrInvalidGenerator is returned by [Render] when the generator name
	// can't be placed into a comment.
	ErrInvalidGenerator = errors.New("invalid generator name")
	// ErrMalformed is returned by [Validate] for headers that are not
	// well-formed.
	ErrMalformed = errors.New("malformed header")
)

var (
	identRe  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	defineRe = regexp.MustCompile(`^#define ([A-Za-z_][A-Za-z0-9_]*) \\$`)
)

// Header is a C header defining a single string macro.
type Header struct {
	// Generator is the name of the tool that produced the header. It is
	// mentioned in the banner comment.
	Generator string
	// Macro is the name of the defined macro. If empty, DefaultMacro is used.
	Macro string
	// Text is the value of the macro.
	Text string
}

func (h Header) macro() string {
	if h.Macro == "" {
		return DefaultMacro
	}
	return h.Macro
}

func (h Header) banner() string {
	if h.Generator == "" {
		return "This file is auto-generated."
	}
	return fmt.Sprintf("This file is auto-generated. Use the %s tool to regenerate.", h.Generator)
}

// Lines splits text into the lines that become separate string literals.
// Both "\n" and "\r\n" end a line, and a final line terminator does not
// start a new line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Quote returns line as a C string literal terminated by a newline escape.
func Quote(line string) string {
	var sb strings.Builder
	sb.Grow(len(line) + 4)
	sb.WriteByte('"')
	var last byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '?' && last == '?':
			// Avoids forming a trigraph.
			sb.WriteString(`\?`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&sb, `\%03o`, c)
		default:
			sb.WriteByte(c)
		}
		last = c
	}
	sb.WriteString(`\n"`)
	return sb.String()
}

// Render writes h to w.
func Render(w io.Writer, h Header) error {
	macro := h.macro()
	if !identRe.MatchString(macro) {
		return fmt.Errorf("%w: %q", ErrInvalidMacro, macro)
	}
	if strings.Contains(h.Generator, "*/") || strings.ContainsAny(h.Generator, "\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidGenerator, h.Generator)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/*\n%s\n*/\n\n", h.banner())
	fmt.Fprintf(bw, "#define %s \\\n", macro)
	for _, line := range Lines(h.Text) {
		fmt.Fprintf(bw, "\t%s \\\n", Quote(line))
	}
	bw.WriteString("\n#pragma once\n")
	return bw.Flush()
}

// Bytes returns h rendered as a header.
func Bytes(h Header) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, h); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks that src is a well-formed header as produced by [Render]:
// a closed banner comment, a single #define whose continuation lines are
// valid string literals and end at an empty line, followed by #pragma once
// as the last directive.
func Validate(src []byte) error {
	if len(src) == 0 {
		return malformed(1, "empty header")
	}
	if src[len(src)-1] != '\n' {
		return malformed(bytes.Count(src, []byte("\n"))+1, "missing final newline")
	}
	lines := strings.Split(string(src[:len(src)-1]), "\n")

	n := 0 // index of the current line
	next := func() (string, bool) {
		if n >= len(lines) {
			return "", false
		}
		n++
		return lines[n-1], true
	}
	skipEmpty := func() {
		for n < len(lines) && lines[n] == "" {
			n++
		}
	}

	if line, _ := next(); line != "/*" {
		return malformed(n, "header must start with a banner comment")
	}
	for {
		line, ok := next()
		if !ok {
			return malformed(n, "unterminated banner comment")
		}
		if line == "*/" {
			break
		}
		if strings.Contains(line, "*/") {
			return malformed(n, "banner comment closed mid-line")
		}
	}

	skipEmpty()
	line, ok := next()
	if !ok || !defineRe.MatchString(line) {
		return malformed(n, "expected #define with a line continuation")
	}

	for {
		line, ok := next()
		if !ok {
			return malformed(n, "line continuation at end of file")
		}
		if line == "" {
			break
		}
		if err := checkContinuation(line); err != nil {
			return malformed(n, err.Error())
		}
	}

	skipEmpty()
	if line, ok := next(); !ok || line != "#pragma once" {
		return malformed(n, "expected #pragma once after the definition")
	}
	skipEmpty()
	if n < len(lines) {
		return malformed(n+1, "unexpected content after #pragma once")
	}
	return nil
}

func malformed(line int, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, msg)
}

func checkContinuation(line string) error {
	const prefix, suffix = "\t\"", "\" \\"
	if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, suffix) || len(line) < len(prefix)+len(suffix) {
		return errors.New(`expected a tab-indented string literal followed by " \"`)
	}
	return checkLiteral(line[len(prefix) : len(line)-len(suffix)])
}

// checkLiteral checks the contents of a string literal without its quotes.
func checkLiteral(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			return fmt.Errorf("unescaped quote at column %d", i+1)
		case c < 0x20 || c == 0x7f:
			return fmt.Errorf("raw control character %#02x at column %d", c, i+1)
		case c == '?' && i+2 < len(s) && s[i+1] == '?' && strings.IndexByte("=/'()!<>-", s[i+2]) >= 0:
			return fmt.Errorf("trigraph at column %d", i+1)
		case c == '\\':
			if i+1 >= len(s) {
				return fmt.Errorf("dangling backslash at column %d", i+1)
			}
			i++
			switch e := s[i]; {
			case strings.IndexByte(`\"'?abfnrtv`, e) >= 0:
			case e >= '0' && e <= '7':
				for j := 0; j < 2 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7'; j++ {
					i++
				}
			case e == 'x':
				if i+1 >= len(s) || !isHex(s[i+1]) {
					return fmt.Errorf("empty hex escape at column %d", i)
				}
				for i+1 < len(s) && isHex(s[i+1]) {
					i++
				}
			default:
				return fmt.Errorf("unknown escape sequence \\%c at column %d", e, i)
			}
		}
	}
	return nil
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
