package textutil

import (
	"regexp"
	"strconv"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticsRemover = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// StripDiacritics removes combining accent marks from text
// ("décret" -> "decret"). Non-accented characters pass through unchanged
// and the operation is idempotent.
func StripDiacritics(text string) string {
	result, _, err := transform.String(diacriticsRemover, text)
	if err != nil {
		return text
	}
	return result
}

var numberPartSeparator = regexp.MustCompile(`[-/]`)

// NormalizeReferenceNumber generates the lookup variants of a legal
// reference number. Catalogs store two-part numbers in inconsistent part
// order ("45-2020" vs "2020-45"), so a two-part number yields both
// orderings with leading zeros stripped via an integer round-trip.
// Anything that does not split into exactly two numeric parts is returned
// unchanged as a single variant.
func NormalizeReferenceNumber(number string) []string {
	parts := numberPartSeparator.Split(number, -1)
	if len(parts) != 2 {
		return []string{number}
	}

	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return []string{number}
	}
	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return []string{number}
	}

	a := strconv.Itoa(first)
	b := strconv.Itoa(second)
	return []string{a + "-" + b, b + "-" + a}
}
