package router

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ConversationalCategory is the small-talk bucket a message falls into.
type ConversationalCategory string

const (
	CategoryGreeting ConversationalCategory = "greeting"
	CategoryThanks   ConversationalCategory = "thanks"
	CategoryGoodbye  ConversationalCategory = "goodbye"
	CategoryIdentity ConversationalCategory = "identity"
	CategoryDefault  ConversationalCategory = "default"
)

// QuestionType distinguishes explicit document-retrieval requests from
// open explanatory questions.
type QuestionType string

const (
	QuestionTypeSearch  QuestionType = "recherche"
	QuestionTypeRequest QuestionType = "demande"
)

// shortMessageThreshold is the length under which a message only needs a
// prefix hit to count as small talk. Ambiguous short messages default to
// conversational, which keeps cheap turns from triggering retrieval.
const shortMessageThreshold = 15

// Pattern tables are data, not logic: extend the keyword lists without
// touching the classifier.
type conversationalPattern struct {
	category ConversationalCategory
	pattern  *regexp.Regexp
}

var conversationalPatterns = []conversationalPattern{
	{CategoryGreeting, regexp.MustCompile(`^(bonjour|bonsoir|salut|coucou|hello|bjr)\b`)},
	{CategoryThanks, regexp.MustCompile(`^(merci|je te remercie|je vous remercie)\b`)},
	{CategoryGoodbye, regexp.MustCompile(`^(au revoir|a bientot|à bientôt|bye|adieu|bonne journée|bonne soirée)\b`)},
	{CategoryIdentity, regexp.MustCompile(`^(qui es[- ]tu|tu es qui|qui êtes[- ]vous|comment ça va|comment vas[- ]tu|comment allez[- ]vous|ça va|que peux[- ]tu faire|quel est ton nom|c'est quoi ton nom)\b`)},
}

var shortAcknowledgementPattern = regexp.MustCompile(`^(ok|d'accord|dac|super|parfait|très bien|cool|génial|top|noté|compris)\b`)

var searchVerbPattern = regexp.MustCompile(`\b(cherche|cherches|chercher|recherche|recherches|donne|donner|donne[-\s]?moi|fournis|fournir|trouve|trouver|obtiens|obtenir|je veux|j'aimerais voir|montre[-\s]?moi|accède|accéder à|affiche|afficher)\b`)

// summaryAffirmations are the exact phrases that confirm a pending
// "Souhaitez-vous un résumé ?" offer.
var summaryAffirmations = map[string]bool{
	"oui":               true,
	"oui merci":         true,
	"résume":            true,
	"résume-moi":        true,
	"je veux un résumé": true,
}

// ClassifyConversational reports whether a message is small talk and which
// bucket it falls into. First matching category wins; short messages also
// accept bare acknowledgements.
func ClassifyConversational(message string) (ConversationalCategory, bool) {
	message = strings.ToLower(strings.TrimSpace(message))

	for _, cp := range conversationalPatterns {
		if cp.pattern.MatchString(message) {
			return cp.category, true
		}
	}

	if utf8.RuneCountInString(message) < shortMessageThreshold &&
		shortAcknowledgementPattern.MatchString(message) {
		return CategoryDefault, true
	}

	return "", false
}

// DetectQuestionType classifies a non-conversational message as an explicit
// search request or a default explanatory question.
func DetectQuestionType(message string) QuestionType {
	if searchVerbPattern.MatchString(strings.ToLower(message)) {
		return QuestionTypeSearch
	}
	return QuestionTypeRequest
}

// IsSummaryConfirmation reports whether a message exactly matches one of
// the affirmative summary phrases.
func IsSummaryConfirmation(message string) bool {
	return summaryAffirmations[strings.ToLower(strings.TrimSpace(message))]
}
