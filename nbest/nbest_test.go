package nbest

import "hash/fnv"
import "testing"

import "github.com/daruma/wordlattice/input"
import "github.com/daruma/wordlattice/lattice"
import "github.com/daruma/wordlattice/vocabulary"


func viewIdentity(v vocabulary.View) string {
	key := ""
	if s, ok := v.Key().(*input.String); ok { key = string(s.Value) }

	val := ""
	if s, ok := v.Value().(string); ok { val = s }

	return key + "\x00" + val
}

func viewHash(v vocabulary.View) uint64 {
	h := fnv.New64a()
	h.Write([]byte(viewIdentity(v)))
	return h.Sum64()
}

func viewEqual(a, b vocabulary.View) bool { return viewIdentity(a) == viewIdentity(b) }

func buildSampleLattice(t *testing.T) (*lattice.Lattice, *lattice.Node) {
	t.Helper()

	a := input.NewString([]byte("a"))
	b := input.NewString([]byte("b"))
	ab := input.NewString([]byte("ab"))

	alpha := vocabulary.NewEntry(a, "Alpha", 2)
	alice := vocabulary.NewEntry(a, "Alice", 1)
	bravo := vocabulary.NewEntry(b, "Bravo", 7)
	bob := vocabulary.NewEntry(b, "Bob", 8)
	awaBizan := vocabulary.NewEntry(ab, "AwaBizan", 9)

	bos := vocabulary.NewEntry(nil, nil, 0)
	eos := vocabulary.NewEntry(nil, nil, 0)

	entries := map[string][]vocabulary.Entry{
		"a":  {alpha, alice},
		"b":  {bravo, bob},
		"ab": {awaBizan},
	}

	connections := []vocabulary.Connection{
		{From: bos, To: alice, Cost: 1},
		{From: bos, To: alpha, Cost: 2},
		{From: bos, To: awaBizan, Cost: 3},
		{From: alice, To: bravo, Cost: 2},
		{From: alice, To: bob, Cost: 13},
		{From: alpha, To: bravo, Cost: 6},
		{From: alpha, To: bob, Cost: 10},
		{From: bravo, To: eos, Cost: 1},
		{From: bob, To: eos, Cost: 2},
		{From: awaBizan, To: eos, Cost: 5},
	}

	vocab := vocabulary.NewHashMap(entries, connections, viewHash, viewEqual, nil)

	l := lattice.New(vocab)
	if err := l.PushBack(a); err != nil { t.Fatalf("PushBack a: %v", err) }
	if err := l.PushBack(b); err != nil { t.Fatalf("PushBack b: %v", err) }

	eosNode, _, err := l.Settle()
	if err != nil { t.Fatalf("Settle: %v", err) }

	return l, eosNode
}

func pathWords(p *Path) []string {
	nodes := p.Nodes()
	var out []string
	for i, n := range nodes {
		if i == 0 || i == len(nodes)-1 { continue }
		out = append(out, n.Value().(string))
	}
	return out
}

func TestEnumerateUnconstrained(t *testing.T) {
	l, eos := buildSampleLattice(t)

	it := Enumerate(l, eos, nil)

	wantWords := [][]string{
		{"Alice", "Bravo"},
		{"AwaBizan"},
		{"Alpha", "Bravo"},
		{"Alpha", "Bob"},
		{"Alice", "Bob"},
	}
	wantCost := []int32{12, 17, 18, 24, 25}

	for i := range wantWords {
		p, ok := it.Next()
		if ! ok { t.Fatalf("path %d: exhausted early", i+1) }

		words := pathWords(p)
		if len(words) != len(wantWords[i]) { t.Fatalf("path %d: got %v, want %v", i+1, words, wantWords[i]) }
		for j := range words {
			if words[j] != wantWords[i][j] { t.Fatalf("path %d: got %v, want %v", i+1, words, wantWords[i]) }
		}

		if p.Cost() != wantCost[i] { t.Fatalf("path %d: cost %d, want %d", i+1, p.Cost(), wantCost[i]) }
	}
}

func TestEnumerateNodeMatchConstraint(t *testing.T) {
	l, eos := buildSampleLattice(t)

	// Pin the second node (the first real word, right off BOS) to Alpha.
	constraint := Constraint{NodeMatch{Key: input.NewString([]byte("a")), Value: "Alpha", PrecedingStep: 0}}

	it := Enumerate(l, eos, constraint)

	want := [][]string{{"Alpha", "Bravo"}, {"Alpha", "Bob"}}

	for i := range want {
		p, ok := it.Next()
		if ! ok { t.Fatalf("path %d: exhausted early", i+1) }

		words := pathWords(p)
		if len(words) != len(want[i]) { t.Fatalf("path %d: got %v, want %v", i+1, words, want[i]) }
		for j := range words {
			if words[j] != want[i][j] { t.Fatalf("path %d: got %v, want %v", i+1, words, want[i]) }
		}
	}

	if _, ok := it.Next(); ok { t.Fatalf("expected exactly 2 matching paths") }
}

func TestEnumerateWildcardMax(t *testing.T) {
	l, eos := buildSampleLattice(t)

	constraint := Constraint{Wildcard{Step: MaxStep}}
	it := Enumerate(l, eos, constraint)

	count := 0
	for {
		_, ok := it.Next()
		if ! ok { break }
		count++
	}

	if count != 5 { t.Fatalf("expected 5 unrestricted paths, got %d", count) }
}
