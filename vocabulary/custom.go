package vocabulary

import "github.com/daruma/wordlattice/input"


// Custom delegates both Vocabulary operations to user callbacks.
type Custom struct {
	FindEntriesFn    func(key input.Input) []Entry
	FindConnectionFn func(from, to View) int32
}

func (c *Custom) FindEntries(key input.Input) []Entry { return c.FindEntriesFn(key) }

func (c *Custom) FindConnection(from, to View) int32 { return c.FindConnectionFn(from, to) }
