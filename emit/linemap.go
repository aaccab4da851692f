package emit

// LineMap records, for every physical line the emitter writes, which
// input line(s) contributed tokens to it. This is the same bookkeeping
// the teacher's preprocess.go line-correction table provides for
// translating a rewritten document's positions back to the original
// source when reporting a diagnostic; here it lets a host translate a
// formatted-output line number back to the LogicalLine(s) that produced
// it (useful for mapping a --lines range request through formatting).
type LineMap struct {
	// entries[outputLine-1] is the set of OriginalLine values that
	// contributed a token to that output line, in the order first seen.
	entries [][]int
}

// StartLine begins a new output physical line; subsequent Record calls
// attach to it until the next StartLine.
func (m *LineMap) StartLine() {
	m.entries = append(m.entries, nil)
}

// Record notes that the current output line drew a token from
// originalLine.
func (m *LineMap) Record(originalLine int) {
	if len(m.entries) == 0 {
		m.StartLine()
	}
	last := len(m.entries) - 1
	for _, l := range m.entries[last] {
		if l == originalLine {
			return
		}
	}
	m.entries[last] = append(m.entries[last], originalLine)
}

// OriginalLinesFor returns the input line numbers that contributed to
// output line n (1-indexed). Returns nil if n is out of range.
func (m *LineMap) OriginalLinesFor(n int) []int {
	if n < 1 || n > len(m.entries) {
		return nil
	}
	return m.entries[n-1]
}

// Len reports how many output lines have been recorded.
func (m *LineMap) Len() int {
	return len(m.entries)
}
