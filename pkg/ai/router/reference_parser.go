package router

import (
	"regexp"
	"strings"
)

// LegalReference is a law/decree citation extracted from free text.
type LegalReference struct {
	LegalType string // "Loi" or "Décret", capitalized for display
	Number    string // e.g. "045-2020", whitespace stripped
}

// Matches "loi" or "décret", an optional "n°"-style marker, then a numeric
// token that may carry one internal separator ("45-2020", "2015/32").
var legalReferencePattern = regexp.MustCompile(`(loi|décret)[\s\-n°]*(n?\s?\d{1,4}(?:[-/]\d{1,4})?)`)

// ExtractLegalReference scans a question for an explicit law/decree
// reference. Returns nil when the question cites none.
func ExtractLegalReference(question string) *LegalReference {
	question = strings.ToLower(question)

	match := legalReferencePattern.FindStringSubmatch(question)
	if match == nil {
		return nil
	}

	number := strings.ReplaceAll(match[2], " ", "")
	return &LegalReference{
		LegalType: capitalize(match[1]),
		Number:    number,
	}
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
