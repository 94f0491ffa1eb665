package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Map owns a single file's name and bytes, plus a precomputed line index
// used to convert byte offsets to positions in O(log n).
type Map struct {
	Filename string
	Src      []byte

	// lineStarts[i] is the byte offset where line i+1 (1-based) begins.
	// lineStarts[0] is always 0.
	lineStarts []uint32
}

// New builds a Map for filename/source, indexing line-start offsets in one
// pass. Recognizes \n, \r\n, and \r as line terminators; the byte
// immediately following a terminator starts the next line.
func New(filename string, src []byte) *Map {
	m := &Map{Filename: filename, Src: src}
	m.lineStarts = append(m.lineStarts, 0)

	srcLen, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source: length overflow: %w", err))
	}

	var i uint32
	for i < srcLen {
		switch src[i] {
		case '\n':
			i++
			m.lineStarts = append(m.lineStarts, i)
		case '\r':
			i++
			if i < srcLen && src[i] == '\n' {
				i++
			}
			m.lineStarts = append(m.lineStarts, i)
		default:
			i++
		}
	}
	return m
}

// Len returns the number of source bytes.
func (m *Map) Len() uint32 {
	n, err := safecast.Conv[uint32](len(m.Src))
	if err != nil {
		panic(fmt.Errorf("source: length overflow: %w", err))
	}
	return n
}

// LineCount returns the number of lines in the file (at least 1).
func (m *Map) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(m.lineStarts))
	if err != nil {
		panic(fmt.Errorf("source: line count overflow: %w", err))
	}
	return n
}

// GetLine returns the bytes of line n (1-based), excluding the line
// terminator. Returns nil if n is out of range.
func (m *Map) GetLine(n uint32) []byte {
	if n == 0 || n > m.LineCount() {
		return nil
	}
	start := m.lineStarts[n-1]
	end := m.Len()
	if n < m.LineCount() {
		end = m.lineStarts[n]
		end = trimTerminator(m.Src, start, end)
	}
	if start > m.Len() {
		return nil
	}
	if end > m.Len() {
		end = m.Len()
	}
	return m.Src[start:end]
}

// trimTerminator strips a trailing \n, \r\n, or \r from src[start:end),
// where end is the start offset of the following line.
func trimTerminator(src []byte, start, end uint32) uint32 {
	if end == start {
		return end
	}
	last := end - 1
	if src[last] == '\n' {
		if last > start && src[last-1] == '\r' {
			return last - 1
		}
		return last
	}
	if src[last] == '\r' {
		return last
	}
	return end
}

// OffsetToPosition converts a byte offset in [0, Len()] to a 1-based
// line/column position via binary search over the line index.
func (m *Map) OffsetToPosition(offset uint32) Position {
	if offset > m.Len() {
		offset = m.Len()
	}
	// Find the last line whose start offset is <= offset.
	lo, hi := 0, len(m.lineStarts)-1
	line := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if m.lineStarts[mid] <= offset {
			line = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	col := offset - m.lineStarts[line] + 1
	lineNo, err := safecast.Conv[uint32](line + 1)
	if err != nil {
		panic(fmt.Errorf("source: line number overflow: %w", err))
	}
	return Position{Line: lineNo, Column: col}
}

// Resolve converts a byte range into a Range of positions.
func (m *Map) Resolve(start, end uint32) Range {
	return Range{Start: m.OffsetToPosition(start), End: m.OffsetToPosition(end)}
}
