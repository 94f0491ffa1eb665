// Package diagfmt renders diagnostics produced by internal/diag as
// human-readable text with highlighted source excerpts.
package diagfmt

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lifec/internal/diag"
	"lifec/internal/source"
)

const tabWidth = 8

// Options controls how diagnostics are rendered.
type Options struct {
	// Color enables ANSI severity coloring. Callers decide this based on
	// TTY detection and any --color flag; diagfmt never probes it itself.
	Color bool
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan, color.Bold)
)

func levelColor(l diag.Level) *color.Color {
	switch l {
	case diag.Error:
		return errorColor
	case diag.Warning:
		return warningColor
	default:
		return noteColor
	}
}

// Fprint renders every diagnostic in e to w, in accumulation order.
func Fprint(w io.Writer, e *diag.Engine, opts Options) {
	for _, d := range e.Diagnostics() {
		fprintDiagnostic(w, e.SourceMap, d, "", opts)
	}
}

func fprintDiagnostic(w io.Writer, sm *source.Map, d diag.Diagnostic, indent string, opts Options) {
	level := d.Level.String()
	if opts.Color {
		level = levelColor(d.Level).Sprint(level)
	}
	fmt.Fprintf(w, "%s%s:%s: %s: %s\n", indent, sm.Filename, d.Range.Start, level, d.Message)
	printExcerpt(w, sm, d.Range, indent)
	for _, note := range d.Notes {
		fprintDiagnostic(w, sm, note, indent+"  ", opts)
	}
}

func printExcerpt(w io.Writer, sm *source.Map, rng source.Range, indent string) {
	if rng.SingleLine() {
		line := sm.GetLine(rng.Start.Line)
		fmt.Fprintf(w, "%s    %s\n", indent, string(line))
		cols := visualColumns(line)
		startVis := visualColumnAt(cols, rng.Start.Column)
		endVis := visualColumnAt(cols, rng.End.Column)
		if endVis <= startVis {
			endVis = startVis + 1
		}
		fmt.Fprintf(w, "%s    %s^%s\n", indent, strings.Repeat(" ", startVis-1), strings.Repeat("~", endVis-startVis-1))
		return
	}

	firstLine := sm.GetLine(rng.Start.Line)
	fmt.Fprintf(w, "%s    %s\n", indent, string(firstLine))
	firstCols := visualColumns(firstLine)
	startVis := visualColumnAt(firstCols, rng.Start.Column)
	endOfLineVis := firstCols[len(firstCols)-1]
	tildes := endOfLineVis - startVis - 1
	if tildes < 0 {
		tildes = 0
	}
	fmt.Fprintf(w, "%s    %s^%s\n", indent, strings.Repeat(" ", startVis-1), strings.Repeat("~", tildes))

	if rng.End.Line-rng.Start.Line > 1 {
		fmt.Fprintf(w, "%s    ...\n", indent)
	}

	lastLine := sm.GetLine(rng.End.Line)
	fmt.Fprintf(w, "%s    %s\n", indent, string(lastLine))
	lastCols := visualColumns(lastLine)
	endVis := visualColumnAt(lastCols, rng.End.Column)
	lastTildes := endVis - 1
	if lastTildes < 0 {
		lastTildes = 0
	}
	fmt.Fprintf(w, "%s    %s%s^\n", indent, strings.Repeat(" ", 0), strings.Repeat("~", lastTildes))
}

// visualColumns maps each byte index in line (and one past its end) to a
// 1-based visual column, expanding tabs to the next multiple of tabWidth
// and accounting for wide runes.
func visualColumns(line []byte) []int {
	cols := make([]int, len(line)+1)
	visual := 1
	i := 0
	for i < len(line) {
		b := line[i]
		if b == '\t' {
			cols[i] = visual
			next := ((visual-1)/tabWidth+1)*tabWidth + 1
			i++
			visual = next
			continue
		}
		r, size := utf8.DecodeRune(line[i:])
		if r == utf8.RuneError && size <= 1 {
			cols[i] = visual
			visual++
			i++
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		for j := 0; j < size; j++ {
			cols[i+j] = visual
		}
		i += size
		visual += w
	}
	cols[len(line)] = visual
	return cols
}

// visualColumnAt returns the visual column corresponding to a 1-based
// byte-offset column, extrapolating one visual column per byte past the
// end of the line (e.g. an end-of-line or end-of-file position).
func visualColumnAt(cols []int, column uint32) int {
	idx := int(column) - 1
	if idx < 0 {
		idx = 0
	}
	if idx < len(cols) {
		return cols[idx]
	}
	return cols[len(cols)-1] + (idx - len(cols) + 1)
}
