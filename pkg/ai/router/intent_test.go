package router

import (
	"testing"
)

func TestClassifyConversational(t *testing.T) {
	tests := []struct {
		message  string
		category ConversationalCategory
	}{
		{"Bonjour", CategoryGreeting},
		{"bonsoir tout le monde", CategoryGreeting},
		{"salut !", CategoryGreeting},
		{"merci beaucoup", CategoryThanks},
		{"je vous remercie", CategoryThanks},
		{"au revoir", CategoryGoodbye},
		{"bonne journée", CategoryGoodbye},
		{"qui es-tu ?", CategoryIdentity},
		{"comment ça va", CategoryIdentity},
		{"que peux-tu faire", CategoryIdentity},
		{"ok", CategoryDefault},
		{"d'accord", CategoryDefault},
		{"parfait merci", CategoryDefault},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			category, ok := ClassifyConversational(tt.message)
			if !ok {
				t.Fatalf("ClassifyConversational(%q) = not conversational, want %s", tt.message, tt.category)
			}
			if category != tt.category {
				t.Errorf("ClassifyConversational(%q) = %s, want %s", tt.message, category, tt.category)
			}
		})
	}
}

func TestClassifyConversationalRejectsQuestions(t *testing.T) {
	messages := []string{
		"oui",
		"Quelle est la procédure de création d'entreprise au Burkina Faso ?",
		"cherche la loi 45-2020",
		"ok d'accord mais quelles sont les sanctions prévues par la loi ?",
		"",
	}

	for _, msg := range messages {
		if category, ok := ClassifyConversational(msg); ok {
			t.Errorf("ClassifyConversational(%q) = %s, want no match", msg, category)
		}
	}
}

func TestDetectQuestionType(t *testing.T) {
	tests := []struct {
		message string
		want    QuestionType
	}{
		{"cherche la loi 45-2020", QuestionTypeSearch},
		{"Donne-moi le décret 123-2019", QuestionTypeSearch},
		{"je veux le texte de la loi sur les données", QuestionTypeSearch},
		{"montre-moi le décret d'application", QuestionTypeSearch},
		{"quelle est la procédure de création d'entreprise ?", QuestionTypeRequest},
		{"quels sont les droits du salarié ?", QuestionTypeRequest},
		{"explique l'article 12", QuestionTypeRequest},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := DetectQuestionType(tt.message); got != tt.want {
				t.Errorf("DetectQuestionType(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestIsSummaryConfirmation(t *testing.T) {
	confirmed := []string{"oui", "Oui", "  oui  ", "oui merci", "résume", "Résume-moi", "je veux un résumé"}
	for _, msg := range confirmed {
		if !IsSummaryConfirmation(msg) {
			t.Errorf("IsSummaryConfirmation(%q) = false, want true", msg)
		}
	}

	rejected := []string{"oui s'il te plaît", "non", "oui oui", "résumé", ""}
	for _, msg := range rejected {
		if IsSummaryConfirmation(msg) {
			t.Errorf("IsSummaryConfirmation(%q) = true, want false", msg)
		}
	}
}
