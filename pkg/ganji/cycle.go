package ganji

import (
	"encoding/json"
	"fmt"
)

// Pair is a stem-branch combination. Only the 60 pairs in which stem and
// branch share parity occur in the cycle; see Valid.
type Pair struct {
	Gan Stem
	Ji  Branch
}

// Valid reports whether p is one of the 60 canonical combinations.
func (p Pair) Valid() bool {
	return p.Gan.Valid() && p.Ji.Valid() && int(p.Gan)%2 == int(p.Ji)%2
}

// String returns the two-syllable Hangul name, e.g. "갑자".
func (p Pair) String() string { return p.Gan.String() + p.Ji.String() }

// Hanja returns the two-character Hanja name, e.g. "甲子".
func (p Pair) Hanja() string { return p.Gan.Hanja() + p.Ji.Hanja() }

// Index returns the position of p in the cycle.
func (p Pair) Index() (int, bool) { return Index(p) }

type pairJSON struct {
	Gan Stem   `json:"gan"`
	Ji  Branch `json:"ji"`
}

// MarshalJSON encodes the pair as {"gan":"갑","ji":"자"}.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal(pairJSON{Gan: p.Gan, Ji: p.Ji})
}

// UnmarshalJSON decodes {"gan":..,"ji":..} and rejects non-canonical pairs.
func (p *Pair) UnmarshalJSON(b []byte) error {
	var raw pairJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v := Pair(raw)
	if !v.Valid() {
		return fmt.Errorf("pair %s is not part of the sexagenary cycle", v)
	}
	*p = v
	return nil
}

// cycle is the 60-entry sexagenary table, built from the stem and branch
// sequences: entry i is (stem i mod 10, branch i mod 12).
var cycle = func() [CycleLength]Pair {
	var c [CycleLength]Pair
	for i := range c {
		c[i] = Pair{Gan: Stem(i % 10), Ji: Branch(i % 12)}
	}
	return c
}()

// Mod60 reduces n into [0, 59].
func Mod60(n int) int {
	m := n % CycleLength
	if m < 0 {
		m += CycleLength
	}
	return m
}

// PairAt returns the pair at index mod 60. Negative indices wrap.
func PairAt(index int) Pair { return cycle[Mod60(index)] }

// Index returns the cycle position of p, or false when p is not canonical.
//
// The position is the unique i in [0,60) with i ≡ stem (mod 10) and
// i ≡ branch (mod 12); it exists exactly when stem and branch share parity.
func Index(p Pair) (int, bool) {
	if !p.Valid() {
		return 0, false
	}
	// Step through the six candidates congruent to the stem mod 10.
	for i := int(p.Gan); i < CycleLength; i += 10 {
		if i%12 == int(p.Ji) {
			return i, true
		}
	}
	return 0, false
}

// Add advances index by delta positions around the cycle.
func Add(index, delta int) int { return Mod60(index + delta) }

// All returns a copy of the full cycle in order.
func All() []Pair {
	out := make([]Pair, CycleLength)
	copy(out, cycle[:])
	return out
}
