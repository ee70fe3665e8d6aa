// Package compound provides the static KEGG compound-id reference table
// used to resolve opaque compound labels (e.g. "C00022") into
// human-readable names. The table is loaded once and injected into the
// node resolver; it is never consulted ambiently.
package compound

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed data/kegg_compound_ids.txt
var defaultData embed.FS

// Entry is one resolved compound: a display name plus the full alias list
// from the reference file.
type Entry struct {
	Name    string
	Aliases string
}

// Table maps compound identifiers (the part after "cpd:") to entries.
type Table struct {
	entries map[string]Entry
}

// Load reads a tab-delimited reference table. Each line is
//
//	cpd:C00022<TAB>Pyruvate; Pyruvic acid; 2-Oxopropanoate
//
// The key is the identifier after the colon and the display name is the
// first "; "-delimited alias. Blank lines are skipped; a line without a
// tab separator is an error.
func Load(r io.Reader) (*Table, error) {
	t := &Table{entries: make(map[string]Entry)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		id, aliases, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("compound table line %d: missing tab separator", line)
		}
		if _, after, found := strings.Cut(id, ":"); found {
			id = after
		}
		name, _, _ := strings.Cut(aliases, ";")
		t.entries[strings.TrimSpace(id)] = Entry{
			Name:    strings.TrimSpace(name),
			Aliases: strings.TrimSpace(aliases),
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading compound table: %w", err)
	}
	return t, nil
}

// LoadFile reads a reference table from a file path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening compound table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Lookup resolves a raw compound identifier. The match is exact.
func (t *Table) Lookup(id string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[id]
	return e, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the packaged reference table, loaded once per process.
func Default() *Table {
	defaultOnce.Do(func() {
		f, err := defaultData.Open("data/kegg_compound_ids.txt")
		if err != nil {
			panic(fmt.Sprintf("compound: embedded table missing: %v", err))
		}
		defer f.Close()
		defaultTable, err = Load(f)
		if err != nil {
			panic(fmt.Sprintf("compound: embedded table corrupt: %v", err))
		}
	})
	return defaultTable
}
