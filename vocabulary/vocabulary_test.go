package vocabulary

import "testing"

import "github.com/daruma/wordlattice/input"


func stringHash(v View) uint64 {
	if s, ok := v.Key().(*input.String); ok { return s.Hash() }
	return 0
}

func stringEqual(a, b View) bool {
	ak, aok := a.Key().(*input.String)
	bk, bok := b.Key().(*input.String)
	if ! aok || ! bok { return aok == bok }

	return ak.Equals(bk)
}

func TestHashMapFindEntries(t *testing.T) {
	a := input.NewString([]byte("a"))
	alpha := NewEntry(a, "Alpha", 2)

	hm := NewHashMap(map[string][]Entry{"a": {alpha}}, nil, stringHash, stringEqual, nil)

	entries := hm.FindEntries(a)
	if len(entries) != 1 || entries[0].Value() != "Alpha" { t.Fatalf("got %v", entries) }

	if got := hm.FindEntries(input.NewString([]byte("zz"))); len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
}

func TestHashMapFindConnection(t *testing.T) {
	a := NewEntry(input.NewString([]byte("a")), "Alpha", 2)
	b := NewEntry(input.NewString([]byte("b")), "Bravo", 7)

	hm := NewHashMap(nil, []Connection{{From: a, To: b, Cost: 4}}, stringHash, stringEqual, nil)

	if got := hm.FindConnection(a, b); got != 4 { t.Fatalf("got %d", got) }

	c := NewEntry(input.NewString([]byte("c")), "Charlie", 1)
	if got := hm.FindConnection(a, c); got != NoConnection {
		t.Fatalf("expected NoConnection, got %d", got)
	}
}

func TestCustomDelegates(t *testing.T) {
	called := false
	c := &Custom{
		FindEntriesFn: func(key input.Input) []Entry {
			called = true
			return nil
		},
		FindConnectionFn: func(from, to View) int32 { return 9 },
	}

	c.FindEntries(input.NewString([]byte("a")))
	if ! called { t.Fatalf("FindEntriesFn not invoked") }

	if got := c.FindConnection(NewEntry(nil, nil, 0), NewEntry(nil, nil, 0)); got != 9 {
		t.Fatalf("got %d", got)
	}
}
