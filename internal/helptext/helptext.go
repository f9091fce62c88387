// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package helptext describes the command-line options of revf and renders
// them as a help screen in the layout of Python's argparse.
package helptext

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// DefaultWidth is the terminal width the help text is rendered for. It is
// wide enough that no line of the revf help wraps, and keeps the output
// independent of the terminal the generator happens to run in.
const DefaultWidth = 1000

const (
	usagePrefix    = "usage: "
	optionsTitle   = "options:"
	indent         = 2
	maxHelpColumn  = 24
	minTextWidth   = 11
	rightMargin    = 2
	minHelpPadding = 20
)

// ErrInvalidParser is returned by [Parser.Validate] when the option table is
// malformed.
var ErrInvalidParser = errors.New("invalid parser")

// Option is a boolean command-line flag with an optional short alias.
type Option struct {
	Short string // e.g. "-h"
	Long  string // e.g. "--help"
	Help  string
}

func (o Option) invocation() string {
	switch {
	case o.Short == "":
		return o.Long
	case o.Long == "":
		return o.Short
	}
	return o.Short + ", " + o.Long
}

func (o Option) usageName() string {
	if o.Short != "" {
		return o.Short
	}
	return o.Long
}

// Parser is a program's option table.
type Parser struct {
	Prog        string
	Description string
	Options     []Option
}

// Revf is the option table of revf.
var Revf = Parser{
	Prog:        "revf",
	Description: "Reverse the content of files.",
	Options: []Option{
		{Short: "-h", Long: "--help", Help: "Show this help message and exit."},
		{Short: "-v", Long: "--version", Help: "Display the revf version and exit."},
		{Short: "-r", Long: "--recursive", Help: "Recurse down into directories."},
	},
}

var (
	shortRe = regexp.MustCompile(`^-[A-Za-z0-9]$`)
	longRe  = regexp.MustCompile(`^--[A-Za-z0-9][A-Za-z0-9-]*$`)
)

// Validate reports whether p can be rendered.
func (p *Parser) Validate() error {
	if strings.TrimSpace(p.Prog) == "" {
		return fmt.Errorf("%w: empty program name", ErrInvalidParser)
	}
	seen := make(map[string]bool)
	for i, o := range p.Options {
		if o.Short == "" && o.Long == "" {
			return fmt.Errorf("%w: option %d has no names", ErrInvalidParser, i)
		}
		if o.Short != "" && !shortRe.MatchString(o.Short) {
			return fmt.Errorf("%w: malformed short option %q", ErrInvalidParser, o.Short)
		}
		if o.Long != "" && !longRe.MatchString(o.Long) {
			return fmt.Errorf("%w: malformed long option %q", ErrInvalidParser, o.Long)
		}
		for _, name := range []string{o.Short, o.Long} {
			if name == "" {
				continue
			}
			if seen[name] {
				return fmt.Errorf("%w: duplicate option %q", ErrInvalidParser, name)
			}
			seen[name] = true
		}
	}
	return nil
}

// textWidth returns the number of columns available for text on a terminal
// that is width columns wide.
func textWidth(width int) int {
	return max(width-rightMargin, minTextWidth)
}

// Usage returns the usage line of p without a trailing newline, wrapped to
// fit width.
func (p *Parser) Usage(width int) string {
	tw := textWidth(width)

	parts := make([]string, 0, len(p.Options))
	for _, o := range p.Options {
		parts = append(parts, "["+o.usageName()+"]")
	}

	head := usagePrefix + p.Prog
	if len(parts) == 0 {
		return head
	}
	if oneLine := head + " " + strings.Join(parts, " "); len(oneLine) <= tw {
		return oneLine
	}

	var sb strings.Builder
	sb.WriteString(head)
	cur, empty := len(head), false
	pad := strings.Repeat(" ", len(head)+1)
	if len(head)*4 > tw*3 {
		// Program name takes most of the line, so options go below it.
		pad = strings.Repeat(" ", len(usagePrefix))
		sb.WriteString("\n" + pad)
		cur, empty = len(pad), true
	}
	for _, part := range parts {
		if !empty && cur+1+len(part) > tw {
			sb.WriteString("\n" + pad)
			cur, empty = len(pad), true
		}
		if !empty {
			sb.WriteByte(' ')
			cur++
		}
		sb.WriteString(part)
		cur += len(part)
		empty = false
	}
	return sb.String()
}

// Help returns the complete help screen of p rendered for a terminal width
// columns wide. The result always ends with a single newline, and rendering
// the same parser at the same width always gives the same bytes.
func (p *Parser) Help(width int) string {
	var sb strings.Builder
	sb.WriteString(p.Usage(width))
	sb.WriteString("\n")

	if desc := normalize(p.Description); desc != "" {
		sb.WriteString("\n")
		sb.WriteString(wordwrap.WrapString(desc, uint(textWidth(width))))
		sb.WriteString("\n")
	}

	if len(p.Options) > 0 {
		sb.WriteString("\n")
		sb.WriteString(optionsTitle)
		sb.WriteString("\n")
		p.writeOptions(&sb, width)
	}

	return sb.String()
}

func (p *Parser) writeOptions(sb *strings.Builder, width int) {
	longest := 0
	for _, o := range p.Options {
		longest = max(longest, len(o.invocation())+indent)
	}
	maxColumn := min(maxHelpColumn, max(width-rightMargin-minHelpPadding, indent*2))
	helpColumn := min(longest+2, maxColumn)
	helpWidth := max(width-rightMargin-helpColumn, minTextWidth)
	actionWidth := helpColumn - indent - 2

	lead := strings.Repeat(" ", indent)
	helpLead := strings.Repeat(" ", helpColumn)

	for _, o := range p.Options {
		inv := o.invocation()
		help := normalize(o.Help)

		if help == "" {
			sb.WriteString(lead + inv + "\n")
			continue
		}

		lines := strings.Split(wordwrap.WrapString(help, uint(helpWidth)), "\n")
		if len(inv) <= actionWidth {
			fmt.Fprintf(sb, "%s%-*s  %s\n", lead, actionWidth, inv, lines[0])
			lines = lines[1:]
		} else {
			sb.WriteString(lead + inv + "\n")
		}
		for _, line := range lines {
			sb.WriteString(helpLead + line + "\n")
		}
	}
}

// normalize collapses runs of whitespace into single spaces.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
