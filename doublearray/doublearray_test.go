package doublearray

import "bytes"
import "testing"

import "github.com/daruma/wordlattice/storage"


func buildSample(t *testing.T) *DoubleArray {
	t.Helper()

	entries := []Entry{
		{Key: []byte("a"), ValueIndex: 0},
		{Key: []byte("ab"), ValueIndex: 1},
		{Key: []byte("abc"), ValueIndex: 2},
		{Key: []byte("b"), ValueIndex: 3},
		{Key: []byte("bravo"), ValueIndex: 4},
	}

	da, err := Build(entries, storage.NewMemory(), BuildOpts{DensityFactor: DefaultDensityFactor}, nil)
	if err != nil { t.Fatalf("Build: %v", err) }

	return da
}

func TestFind(t *testing.T) {
	da := buildSample(t)

	cases := []struct {
		key   string
		value int
		found bool
	}{
		{"a", 0, true},
		{"ab", 1, true},
		{"abc", 2, true},
		{"b", 3, true},
		{"bravo", 4, true},
		{"ac", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		v, ok := da.Find([]byte(c.key))
		if ok != c.found { t.Fatalf("%q: found=%v, want %v", c.key, ok, c.found) }
		if ok && v != c.value { t.Fatalf("%q: value=%d, want %d", c.key, v, c.value) }
	}
}

func TestContains(t *testing.T) {
	da := buildSample(t)

	if ! da.Contains([]byte("abc")) { t.Fatalf("expected abc present") }
	if da.Contains([]byte("abcd")) { t.Fatalf("expected abcd absent") }
}

func TestSubtrie(t *testing.T) {
	da := buildSample(t)

	sub, ok := da.Subtrie([]byte("ab"))
	if ! ok { t.Fatalf("expected subtrie at ab") }

	if ! sub.Contains([]byte("c")) { t.Fatalf("expected c relative to ab") }
	if sub.Contains([]byte("abc")) { t.Fatalf("subtrie should not see the full key") }

	if _, ok := da.Subtrie([]byte("zz")); ok { t.Fatalf("expected no subtrie at zz") }
}

func TestIteratorOrder(t *testing.T) {
	da := buildSample(t)

	var keys []string
	it := da.Begin()
	for {
		k, _, ok := it.Next()
		if ! ok { break }
		keys = append(keys, string(k))
	}

	want := []string{"a", "ab", "abc", "b", "bravo"}
	if len(keys) != len(want) { t.Fatalf("got %v, want %v", keys, want) }
	for i := range want {
		if keys[i] != want[i] { t.Fatalf("got %v, want %v", keys, want) }
	}
}

func TestIteratorClone(t *testing.T) {
	da := buildSample(t)

	it := da.Begin()
	it.Next()
	it.Next()

	clone := it.Clone()

	k1, _, ok1 := it.Next()
	k2, _, ok2 := clone.Next()

	if ! ok1 || ! ok2 || ! bytes.Equal(k1, k2) {
		t.Fatalf("clone diverged: %v/%v vs %v/%v", k1, ok1, k2, ok2)
	}
}

func TestBuildRejectsZeroDensity(t *testing.T) {
	_, err := Build(nil, storage.NewMemory(), BuildOpts{}, nil)
	if err != ErrInvalidArgument { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
}
