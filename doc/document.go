package doc

import (
	"bufio"
	"bytes"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/hed-editor/hed/syntax"
)

// Linefeed styles, detected on load and reused on save.
const (
	LF   = "\n"
	CRLF = "\r\n"
	CR   = "\r"
)

// Document is the ordered row sequence shared by the editing loop, the
// highlight-refresh task and the render path.
//
// Lock discipline: mutators take the write lock internally and exclude
// all readers. Readers that walk rows directly (render, search) bracket
// the walk with RLock/RUnlock and use the unlocked accessors inside.
type Document struct {
	mu       sync.RWMutex
	rows     []*Row
	hl       *syntax.Highlighter
	linefeed string
}

func New(hl *syntax.Highlighter) *Document {
	return &Document{
		rows:     make([]*Row, 0, 64),
		hl:       hl,
		linefeed: LF,
	}
}

// Open loads path line by line, one Row per input line. A missing file
// yields an empty document and ErrNewFile.
func Open(path string, hl *syntax.Highlighter) (*Document, error) {
	d := New(hl)

	fp, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, ErrNewFile
		}
		return nil, err
	}
	defer fp.Close()

	sl := &scanLines{}
	scanner := bufio.NewScanner(fp)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(sl.scan)
	for scanner.Scan() {
		d.rows = append(d.rows, NewRow(scanner.Text(), hl))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	d.linefeed = sl.dominant()
	return d, ErrLoaded
}

func (d *Document) Highlighter() *syntax.Highlighter {
	return d.hl
}

func (d *Document) Linefeed() string {
	return d.linefeed
}

func (d *Document) RLock()   { d.mu.RLock() }
func (d *Document) RUnlock() { d.mu.RUnlock() }

// RowCount returns the number of rows. Callers synchronize via
// RLock/RUnlock; mutators already hold the write lock.
func (d *Document) RowCount() int {
	return len(d.rows)
}

// Row returns the row at y. Same locking contract as RowCount.
func (d *Document) Row(y int) *Row {
	return d.rows[y]
}

// InsertRune inserts ch at p. A cursor one past the last row grows the
// document by an empty row first.
func (d *Document) InsertRune(p Position, ch rune) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p.Y == len(d.rows) {
		d.rows = append(d.rows, NewRow("", d.hl))
	}
	d.rows[p.Y].Insert(p.X, ch, d.hl)
}

// DeleteAt removes the grapheme at p.
func (d *Document) DeleteAt(p Position) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p.Y >= len(d.rows) {
		return
	}
	d.rows[p.Y].Delete(p.X, d.hl)
}

// SplitRow breaks the row at p into two rows.
func (d *Document) SplitRow(p Position) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p.Y >= len(d.rows) {
		d.rows = append(d.rows, NewRow("", d.hl))
		return
	}
	tail := d.rows[p.Y].Split(p.X, d.hl)
	d.rows = slices.Insert(d.rows, p.Y+1, tail)
}

// MergeRowUp appends row y onto row y-1 and removes row y. Returns the
// grapheme length of row y-1 before the merge, the new cursor column.
func (d *Document) MergeRowUp(y int) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if y <= 0 || y >= len(d.rows) {
		return 0, false
	}
	prevLen := d.rows[y-1].Len()
	d.rows[y-1].Append(d.rows[y], d.hl)
	d.rows = slices.Delete(d.rows, y, y+1)
	return prevLen, true
}

// Region serializes the text enclosed by [start, end), rows joined with
// a newline. Bounds are in grapheme coordinates and must be normalized.
func (d *Document) Region(start, end Position) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if start.Y >= len(d.rows) {
		return ""
	}
	if start.Y == end.Y {
		return d.rows[start.Y].Slice(start.X, end.X)
	}
	var sb strings.Builder
	sb.WriteString(d.rows[start.Y].Slice(start.X, d.rows[start.Y].Len()))
	for y := start.Y + 1; y < end.Y && y < len(d.rows); y++ {
		sb.WriteString("\n")
		sb.WriteString(d.rows[y].Text())
	}
	if end.Y < len(d.rows) {
		sb.WriteString("\n")
		sb.WriteString(d.rows[end.Y].Slice(0, end.X))
	}
	return sb.String()
}

// DeleteRegion removes the span [start, end). The same-row case keeps
// the graphemes outside [start.X, end.X); the cross-row case merges the
// start row prefix with the end row suffix and drops the rows between.
func (d *Document) DeleteRegion(start, end Position) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if start.Y >= len(d.rows) {
		return
	}
	if start.Y == end.Y {
		row := d.rows[start.Y]
		kept := row.Slice(0, start.X) + row.Slice(end.X, row.Len())
		row.reset(kept, d.hl)
		return
	}
	if end.Y >= len(d.rows) {
		end = Position{X: d.rows[len(d.rows)-1].Len(), Y: len(d.rows) - 1}
	}
	prefix := d.rows[start.Y].Slice(0, start.X)
	suffix := d.rows[end.Y].Slice(end.X, d.rows[end.Y].Len())
	d.rows[start.Y].reset(prefix+suffix, d.hl)
	d.rows = slices.Delete(d.rows, start.Y+1, end.Y+1)
}

// ReplaceAt substitutes exactly one occurrence of query starting at p
// and returns the grapheme length of the replacement.
func (d *Document) ReplaceAt(p Position, query, repl string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p.Y >= len(d.rows) {
		return 0
	}
	d.rows[p.Y].Replace(p.X, GraphemeCount(query), repl, d.hl)
	return GraphemeCount(repl)
}

// ReplaceAll replaces every non-overlapping occurrence of query in the
// whole document and returns the total count. Rows without the query
// are skipped after a cheap containment check.
func (d *Document) ReplaceAll(query, repl string) int {
	if query == "" {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	count := 0
	for _, row := range d.rows {
		if !strings.Contains(row.text, query) {
			continue
		}
		count += strings.Count(row.text, query)
		row.reset(strings.ReplaceAll(row.text, query, repl), d.hl)
	}
	return count
}

// RefreshHighlights recomputes every row's tags under the write lock.
func (d *Document) RefreshHighlights() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, row := range d.rows {
		row.Refresh(d.hl)
	}
}

// Snapshot serializes all rows to bytes under the read lock, each row
// followed by the document's linefeed.
func (d *Document) Snapshot() []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var buf bytes.Buffer
	for _, row := range d.rows {
		buf.WriteString(row.text)
		buf.WriteString(d.linefeed)
	}
	return buf.Bytes()
}

// SaveTo writes the document to path synchronously.
func (d *Document) SaveTo(path string) error {
	return os.WriteFile(path, d.Snapshot(), 0644)
}

// scanLines splits on \n, strips the end-of-line marker and counts the
// linefeed styles seen, so Save can reuse the dominant one.
type scanLines struct {
	countLF, countCRLF, countCR int
}

func (sl *scanLines) scan(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		if i > 0 && data[i-1] == '\r' {
			sl.countCRLF++
			return i + 1, data[:i-1], nil
		}
		sl.countLF++
		return i + 1, data[:i], nil
	}
	if atEOF {
		if data[len(data)-1] == '\r' {
			sl.countCR++
			return len(data), data[:len(data)-1], nil
		}
		return len(data), data, nil
	}
	return 0, nil, nil
}

func (sl *scanLines) dominant() string {
	if sl.countCRLF > sl.countLF && sl.countCRLF >= sl.countCR {
		return CRLF
	}
	if sl.countCR > sl.countLF && sl.countCR > sl.countCRLF {
		return CR
	}
	return LF
}
