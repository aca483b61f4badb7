package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
	Replace
	Move
)

func (o Op) String() string {
	switch o {
	case Equal:
		return " "
	case Delete:
		return "-"
	case Insert:
		return "+"
	case Replace:
		return "~"
	case Move:
		return ">"
	default:
		return "?"
	}
}

// Line is one line of a line diff.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffMainRunes(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, ln := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\n")
	}
	return parts
}

// HasChanges reports whether any line differs.
func HasChanges(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Write prints lines with a one character op prefix, deleted lines in
// red and inserted lines in green when useColor is set.
func Write(w io.Writer, lines []Line, useColor bool) error {
	for _, ln := range lines {
		s := ln.Op.String() + " " + ln.Text
		if useColor {
			switch ln.Op {
			case Delete:
				s = color.RedString("%s", s)
			case Insert:
				s = color.GreenString("%s", s)
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
