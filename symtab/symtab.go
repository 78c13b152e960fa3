// Package symtab implements the matcher's per-invocation symbol table: a
// map from token text to occurrence counts and last-seen arena indices in
// each revision, used to find tokens unique to both sides of a gap.
package symtab

import (
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Symbol is one token string's occurrence record within the current gap.
type Symbol struct {
	NewCount int
	OldCount int
	NewToken int
	OldToken int
}

// Table is a transient symbol table built fresh for each matcher pass.
// Iteration order follows insertion order, which keeps debug output and
// tie-breaking deterministic across runs on the same input.
type Table struct {
	symbols *orderedmap.OrderedMap[string, *Symbol]

	// Linked records whether the current pass linked any unique pair. The
	// matcher reads this to decide whether the extend-down/up passes have
	// any new borders to work from.
	Linked bool
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{symbols: orderedmap.New[string, *Symbol]()}
}

// Get returns the symbol record for text, creating it with zero counts and
// [token.None] arena indices if absent.
func (t *Table) Get(text string) *Symbol {
	if sym, ok := t.symbols.Get(text); ok {
		return sym
	}

	sym := &Symbol{NewToken: token.None, OldToken: token.None}
	t.symbols.Set(text, sym)

	return sym
}

// Lookup returns the symbol for text without creating one, and whether it
// was found.
func (t *Table) Lookup(text string) (*Symbol, bool) {
	return t.symbols.Get(text)
}

// Len returns the number of distinct token strings recorded.
func (t *Table) Len() int {
	return t.symbols.Len()
}

// Range calls fn for every symbol in insertion order, stopping early if fn
// returns false.
func (t *Table) Range(fn func(text string, sym *Symbol) bool) {
	for pair := t.symbols.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}
