package b64

import "golang.org/x/exp/constraints"

// Aligndown truncates n to the previous multiple of align.
// Group alignment is the load-bearing invariant of every parallel path:
// encode chunks are cut on 3-byte boundaries and decode blocks on 4-symbol
// boundaries so no data unit ever straddles two workers.
func Aligndown[T constraints.Integer](n, align T) T { return n - n%align }
