package types

import (
	"fmt"
	"strings"
)

// Closed is a fully-dereferenced structural term: every component id
// has been recursively substituted away, leaving either a constructor
// application or a free type variable rendered with a display name
// (a0, a1, ...). It is the output of Result.GetFullTypeByID, used for
// test assertions and pretty printing.
type Closed struct {
	// Free holds the display name (e.g. "a0") when this node is a free
	// type variable; Con/Args are unused in that case.
	Free string
	Con  string
	Args []Closed
}

// IsFree reports whether this node is a free type variable.
func (c Closed) IsFree() bool {
	return c.Free != ""
}

func (c Closed) String() string {
	if c.IsFree() {
		return c.Free
	}
	if len(c.Args) == 0 {
		return c.Con
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("(%s, %s)", c.Con, strings.Join(parts, ", "))
}

// Equals is a structural equality over closed terms (go-cmp gives the
// same comparison with better failure diffs).
func (c Closed) Equals(other Closed) bool {
	if c.IsFree() || other.IsFree() {
		return c.Free == other.Free
	}
	if c.Con != other.Con || len(c.Args) != len(other.Args) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].Equals(other.Args[i]) {
			return false
		}
	}
	return true
}

// FreeNamer allocates successive display names (a0, a1, a2, ...) for
// free type variables encountered during closed-term rendering. It is
// stateful and not safe for concurrent use, matching the single-
// threaded, synchronous nature of the rest of the engine.
type FreeNamer struct {
	next    int
	named   map[ID]string
}

// NewFreeNamer returns a namer with no names allocated yet.
func NewFreeNamer() *FreeNamer {
	return &FreeNamer{named: make(map[ID]string)}
}

// NameFor returns the display name for id, minting a fresh one
// (a0, a1, ...) the first time a given id is seen and reusing it on
// subsequent calls so that repeated occurrences of the same free
// variable render identically.
func (f *FreeNamer) NameFor(id ID) string {
	if name, ok := f.named[id]; ok {
		return name
	}
	name := fmt.Sprintf("a%d", f.next)
	f.next++
	f.named[id] = name
	return name
}
