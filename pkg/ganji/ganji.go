// Package ganji defines the heavenly stems, earthly branches and the
// sexagenary cycle they form.
//
// All tables in this package are fixed arrays initialised at compile time and
// never mutated. Every function is safe for concurrent use.
package ganji

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CycleLength is the number of valid stem-branch combinations.
const CycleLength = 60

// =============================================================================
// Stem
// =============================================================================

// Stem is one of the ten heavenly stems (천간).
type Stem int

// The ten stems in cycle order.
const (
	Gap Stem = iota
	Eul
	Byeong
	Jeong
	Mu
	Gi
	Gyeong
	Sin
	Im
	Gye
)

var stemHangul = [10]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

var stemHanja = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Valid reports whether s is one of the ten stems.
func (s Stem) Valid() bool { return s >= Gap && s <= Gye }

// String returns the Hangul name of the stem.
func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemHangul[s]
}

// Hanja returns the Chinese character for the stem.
func (s Stem) Hanja() string {
	if !s.Valid() {
		return "?"
	}
	return stemHanja[s]
}

// Element returns the stem's five-element affinity.
// Stems pair up: 갑을 wood, 병정 fire, 무기 earth, 경신 metal, 임계 water.
func (s Stem) Element() Element { return Element(int(s) / 2) }

// Yang reports whether the stem is yang (even position in the cycle).
func (s Stem) Yang() bool { return int(s)%2 == 0 }

// MarshalText encodes the stem as its Hangul name.
func (s Stem) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid stem %d", int(s))
	}
	return []byte(stemHangul[s]), nil
}

// UnmarshalText decodes a Hangul or Hanja stem name.
func (s *Stem) UnmarshalText(b []byte) error {
	v, err := ParseStem(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// =============================================================================
// Branch
// =============================================================================

// Branch is one of the twelve earthly branches (지지).
type Branch int

// The twelve branches in cycle order.
const (
	Ja Branch = iota
	Chuk
	In
	Myo
	Jin
	Sa
	O
	Mi
	Shin
	Yu
	Sul
	Hae
)

var branchHangul = [12]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

var branchHanja = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var branchAnimal = [12]string{"쥐", "소", "호랑이", "토끼", "용", "뱀", "말", "양", "원숭이", "닭", "개", "돼지"}

var branchElement = [12]Element{
	Water, // 자
	Earth, // 축
	Wood,  // 인
	Wood,  // 묘
	Earth, // 진
	Fire,  // 사
	Fire,  // 오
	Earth, // 미
	Metal, // 신
	Metal, // 유
	Earth, // 술
	Water, // 해
}

// Valid reports whether b is one of the twelve branches.
func (b Branch) Valid() bool { return b >= Ja && b <= Hae }

// String returns the Hangul name of the branch.
func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchHangul[b]
}

// Hanja returns the Chinese character for the branch.
func (b Branch) Hanja() string {
	if !b.Valid() {
		return "?"
	}
	return branchHanja[b]
}

// Animal returns the zodiac animal (띠) associated with the branch.
func (b Branch) Animal() string {
	if !b.Valid() {
		return ""
	}
	return branchAnimal[b]
}

// Element returns the branch's five-element affinity.
func (b Branch) Element() Element {
	if !b.Valid() {
		return Element(-1)
	}
	return branchElement[b]
}

// Yang reports whether the branch is yang.
func (b Branch) Yang() bool { return int(b)%2 == 0 }

// MarshalText encodes the branch as its Hangul name.
func (b Branch) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid branch %d", int(b))
	}
	return []byte(branchHangul[b]), nil
}

// UnmarshalText decodes a Hangul or Hanja branch name.
func (b *Branch) UnmarshalText(text []byte) error {
	v, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// =============================================================================
// Parsing
// =============================================================================

// ParseStem parses a stem from its Hangul or Hanja name.
// Input is NFC-normalised so decomposed Hangul (as produced by some file
// systems and input methods) is accepted.
func ParseStem(s string) (Stem, error) {
	s = norm.NFC.String(strings.TrimSpace(s))
	for i := range stemHangul {
		if s == stemHangul[i] || s == stemHanja[i] {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stem %q", s)
}

// ParseBranch parses a branch from its Hangul or Hanja name.
func ParseBranch(s string) (Branch, error) {
	s = norm.NFC.String(strings.TrimSpace(s))
	for i := range branchHangul {
		if s == branchHangul[i] || s == branchHanja[i] {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("unknown branch %q", s)
}

// ParsePair parses a two-character pair such as "갑자" or "甲子".
// Cross products that do not occur in the sexagenary cycle are rejected.
func ParsePair(s string) (Pair, error) {
	runes := []rune(norm.NFC.String(strings.TrimSpace(s)))
	if len(runes) != 2 {
		return Pair{}, fmt.Errorf("pair %q: want exactly two characters", s)
	}
	gan, err := ParseStem(string(runes[0]))
	if err != nil {
		return Pair{}, fmt.Errorf("pair %q: %w", s, err)
	}
	ji, err := ParseBranch(string(runes[1]))
	if err != nil {
		return Pair{}, fmt.Errorf("pair %q: %w", s, err)
	}
	p := Pair{Gan: gan, Ji: ji}
	if !p.Valid() {
		return Pair{}, fmt.Errorf("pair %q is not part of the sexagenary cycle", s)
	}
	return p, nil
}
