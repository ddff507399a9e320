package ganji

import "fmt"

// Element is one of the five elements (오행).
type Element int

// The five elements in generating order.
const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// Elements lists the five elements in generating order.
var Elements = [5]Element{Wood, Fire, Earth, Metal, Water}

var elementKorean = [5]string{"목", "화", "토", "금", "수"}

var elementEnglish = [5]string{"wood", "fire", "earth", "metal", "water"}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool { return e >= Wood && e <= Water }

// String returns the Korean name (목, 화, 토, 금, 수).
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementKorean[e]
}

// English returns the lower-case English name.
func (e Element) English() string {
	if !e.Valid() {
		return ""
	}
	return elementEnglish[e]
}

// Generates returns the element that e produces (목→화→토→금→수→목).
func (e Element) Generates() Element { return Element((int(e) + 1) % 5) }

// Controls returns the element that e overcomes (목→토→수→화→금→목).
func (e Element) Controls() Element { return Element((int(e) + 2) % 5) }
