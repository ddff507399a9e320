// Package ohhaeng tallies the five elements (오행) over the eight stems and
// branches of a chart.
//
// Counts and Percentages are separate types: the raw tally always sums to 8,
// the normalized distribution always sums to exactly 100.
package ohhaeng

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/leapstack-labs/saju/pkg/ganji"
	"github.com/leapstack-labs/saju/pkg/pillar"
)

// Tokens is the number of elements tallied per chart: four stems and four
// branches.
const Tokens = 8

// Counts is the raw number of tokens per element, indexed by ganji.Element.
type Counts [5]int

// Count tallies the element of every stem and branch in p.
func Count(p pillar.FourPillars) Counts {
	var c Counts
	for _, pair := range p.Pairs() {
		c.add(pair.Gan.Element())
		c.add(pair.Ji.Element())
	}
	return c
}

func (c *Counts) add(e ganji.Element) {
	if e.Valid() {
		c[e]++
	}
}

// Of returns the count for e.
func (c Counts) Of(e ganji.Element) int {
	if !e.Valid() {
		return 0
	}
	return c[e]
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Dominant returns the elements with the highest count, in generating order.
func (c Counts) Dominant() []ganji.Element {
	highest := 0
	for _, n := range c {
		highest = max(highest, n)
	}
	if highest == 0 {
		return nil
	}
	var out []ganji.Element
	for _, e := range ganji.Elements {
		if c[e] == highest {
			out = append(out, e)
		}
	}
	return out
}

// Missing returns the elements that do not occur at all, in generating order.
func (c Counts) Missing() []ganji.Element {
	var out []ganji.Element
	for _, e := range ganji.Elements {
		if c[e] == 0 {
			out = append(out, e)
		}
	}
	return out
}

// MarshalJSON encodes the counts as {"목":n,"화":n,"토":n,"금":n,"수":n},
// keeping the generating order.
func (c Counts) MarshalJSON() ([]byte, error) {
	return marshalOrdered(func(e ganji.Element) string {
		return strconv.Itoa(c[e])
	})
}

// UnmarshalJSON decodes an object keyed by Korean element names.
func (c *Counts) UnmarshalJSON(b []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var out Counts
	for _, e := range ganji.Elements {
		out[e] = raw[e.String()]
	}
	for k := range raw {
		if _, ok := elementByName(k); !ok {
			return fmt.Errorf("ohhaeng: unknown element %q", k)
		}
	}
	*c = out
	return nil
}

// =============================================================================
// Percentages
// =============================================================================

var hundred = decimal.NewFromInt(100)

// Percentages is the share of each element in percent, indexed by
// ganji.Element.
type Percentages [5]decimal.Decimal

// Percent normalizes c to percentages. With the usual eight tokens each one
// is worth exactly 12.5. An empty tally yields all zeros.
func Percent(c Counts) Percentages {
	var p Percentages
	total := c.Total()
	for _, e := range ganji.Elements {
		if total == 0 {
			p[e] = decimal.Zero
			continue
		}
		p[e] = decimal.NewFromInt(int64(c[e])).Mul(hundred).Div(decimal.NewFromInt(int64(total)))
	}
	return p
}

// Of returns the percentage for e.
func (p Percentages) Of(e ganji.Element) decimal.Decimal {
	if !e.Valid() {
		return decimal.Zero
	}
	return p[e]
}

// Total returns the sum of all percentages.
func (p Percentages) Total() decimal.Decimal {
	return decimal.Sum(p[0], p[1:]...)
}

// MarshalJSON encodes the percentages as bare JSON numbers keyed by Korean
// element names, e.g. {"목":12.5,...}.
func (p Percentages) MarshalJSON() ([]byte, error) {
	return marshalOrdered(func(e ganji.Element) string {
		return p[e].String()
	})
}

func marshalOrdered(value func(ganji.Element) string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range ganji.Elements {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(value(e))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func elementByName(name string) (ganji.Element, bool) {
	for _, e := range ganji.Elements {
		if e.String() == name {
			return e, true
		}
	}
	return 0, false
}
