package lattice

import "errors"


// ErrAlreadySettled is returned by PushBack once the lattice has settled,
// and by Settle if called a second time. spec.md §4.8 forbids PushBack
// after settle.
var ErrAlreadySettled = errors.New("lattice: already settled")
