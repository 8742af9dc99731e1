package lattice

import "testing"

import "github.com/daruma/wordlattice/input"
import "github.com/daruma/wordlattice/vocabulary"


func stringHash(v vocabulary.View) uint64 {
	if s, ok := v.Key().(*input.String); ok { return s.Hash() }
	return 0
}

func stringEqual(a, b vocabulary.View) bool {
	ak, aok := a.Key().(*input.String)
	bk, bok := b.Key().(*input.String)
	if ! aok || ! bok { return aok == bok }

	return ak.Equals(bk)
}

func newSampleVocabulary() *vocabulary.HashMap {
	a := input.NewString([]byte("a"))
	alpha := vocabulary.NewEntry(a, "Alpha", 2)

	entries := map[string][]vocabulary.Entry{"a": {alpha}}

	return vocabulary.NewHashMap(entries, nil, stringHash, stringEqual, nil)
}

func TestPushBackForbiddenAfterSettle(t *testing.T) {
	l := New(newSampleVocabulary())

	if _, _, err := l.Settle(); err != nil { t.Fatalf("Settle: %v", err) }

	if err := l.PushBack(input.NewString([]byte("a"))); err != ErrAlreadySettled {
		t.Fatalf("expected ErrAlreadySettled, got %v", err)
	}
}

func TestSettleTwiceFails(t *testing.T) {
	l := New(newSampleVocabulary())

	if _, _, err := l.Settle(); err != nil { t.Fatalf("Settle: %v", err) }
	if _, _, err := l.Settle(); err != ErrAlreadySettled {
		t.Fatalf("expected ErrAlreadySettled, got %v", err)
	}
}

func TestZeroPushBacksSettlesToZeroCostPath(t *testing.T) {
	l := New(newSampleVocabulary())

	eos, costs, err := l.Settle()
	if err != nil { t.Fatalf("Settle: %v", err) }

	if eos.PathCost() != 0 { t.Fatalf("expected path cost 0, got %d", eos.PathCost()) }
	if len(costs) != 1 { t.Fatalf("expected one predecessor (BOS), got %d", len(costs)) }
	if costs[0] != 0 { t.Fatalf("expected BOS-EOS edge cost 0, got %d", costs[0]) }
}

func TestPushBackBuildsStep(t *testing.T) {
	l := New(newSampleVocabulary())

	if err := l.PushBack(input.NewString([]byte("a"))); err != nil { t.Fatalf("PushBack: %v", err) }

	if len(l.Steps()) != 2 { t.Fatalf("expected 2 steps, got %d", len(l.Steps())) }

	step1 := l.Steps()[1]
	if len(step1) != 1 || step1[0].Value() != "Alpha" { t.Fatalf("got %v", step1) }
}
