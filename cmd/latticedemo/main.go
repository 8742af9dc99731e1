// Command latticedemo builds the five-entry vocabulary used by
// wordlattice's nbest tests, runs it through push_back("a"), push_back("b"),
// settle, and prints the five best paths.
package main

import "fmt"
import "hash/fnv"
import "log"
import "os"

import "github.com/daruma/wordlattice/input"
import "github.com/daruma/wordlattice/lattice"
import "github.com/daruma/wordlattice/nbest"
import "github.com/daruma/wordlattice/vocabulary"


func main() {
	vocab := buildVocabulary()

	lat := lattice.New(vocab)
	if err := lat.PushBack(input.NewString([]byte("a"))); err != nil { fatal(err) }
	if err := lat.PushBack(input.NewString([]byte("b"))); err != nil { fatal(err) }

	eos, _, err := lat.Settle()
	if err != nil { fatal(err) }

	it := nbest.Enumerate(lat, eos, nil)
	for i := 1; i <= 5; i++ {
		path, ok := it.Next()
		if !ok { break }
		fmt.Printf("%d. %s (%d)\n", i, describe(path), path.Cost())
	}
}

func describe(p *nbest.Path) string {
	s := ""
	nodes := p.Nodes()
	for i, n := range nodes {
		name := "EOS"
		switch {
		case n.IsBOS():
			name = "BOS"
		case i < len(nodes)-1:
			name = n.Value().(string)
		}
		s += "[" + name + "]-"
	}
	return s[:len(s)-1]
}

func buildVocabulary() *vocabulary.HashMap {
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

	return vocabulary.NewHashMap(entries, connections, viewHash, viewEqual, nil)
}

// viewHash and viewEqual distinguish entries by (key text, value), since
// Alpha and Alice share the key "a" but are different words.
func viewHash(v vocabulary.View) uint64 {
	h := fnv.New64a()
	h.Write([]byte(viewIdentity(v)))
	return h.Sum64()
}

func viewEqual(a, b vocabulary.View) bool { return viewIdentity(a) == viewIdentity(b) }

func viewIdentity(v vocabulary.View) string {
	key := ""
	if s, ok := v.Key().(*input.String); ok { key = string(s.Value) }

	val := ""
	if s, ok := v.Value().(string); ok { val = s }

	return key + "\x00" + val
}

func fatal(err error) {
	log.Println(err)
	os.Exit(1)
}
