package asm

import (
	"errors"
	"strconv"
)

// HACKINT_MAX is the largest value a machine word's 15-bit payload can hold.
const HACKINT_MAX = 32767

// HackInt is an unsigned integer in [0, HACKINT_MAX]. Addresses, literals,
// and symbol values are all HackInts, so an out-of-range value fails at
// construction instead of truncating silently inside a machine word.
type HackInt uint16

// NewHackInt converts value to a HackInt, rejecting values that do not fit
// in 15 bits.
func NewHackInt(value int) (HackInt, error) {
	if value < 0 || value > HACKINT_MAX {
		return 0, ErrValueRange(strconv.Itoa(value))
	}

	return HackInt(value), nil
}

// ParseHackInt parses a decimal literal. Text that is not a number fails
// with ErrParseNumber; a well-formed number beyond HACKINT_MAX fails with
// ErrValueRange.
func ParseHackInt(text string) (HackInt, error) {
	value, err := strconv.ParseUint(text, 10, 15)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrValueRange(text)
		}
		return 0, ErrParseNumber(text)
	}

	return HackInt(value), nil
}
