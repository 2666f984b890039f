package depqueue

import "strings"

// Comparer normalizes topic/item names for map-key and equality
// purposes, letting a Queue apply a configurable case policy (spec.md
// §3: "Name comparison uses a configurable case policy"). The default,
// installed when no Comparer is supplied via WithComparer, is exact
// byte-equal (identity normalization).
type Comparer interface {
	// Normalize returns the canonical form of name used as the Topic
	// map key and for requires/provides set membership.
	Normalize(name string) string
}

// exactComparer is the default Comparer: exact-byte-equal.
type exactComparer struct{}

func (exactComparer) Normalize(name string) string { return name }

// caseFoldComparer normalizes names via strings.ToLower, giving
// case-insensitive name matching.
type caseFoldComparer struct{}

func (caseFoldComparer) Normalize(name string) string { return strings.ToLower(name) }
