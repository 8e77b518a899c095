package router

import (
	"testing"

	"ai-legal-assistant-be/internal/entity"
)

func testCatalog() []entity.LegalDocumentRecord {
	return []entity.LegalDocumentRecord{
		{LegalType: "Loi", ReferenceLabel: "LOI_45-2020_portant_protection_des_donnees", PdfLink: "/pdfs/loi_45_2020.pdf"},
		{LegalType: "Décret", ReferenceLabel: "DECRET_123-2019_application", PdfLink: "/pdfs/decret_123_2019.pdf"},
		{LegalType: "Loi", ReferenceLabel: "LOI_7-2001_code_du_travail", PdfLink: "/pdfs/loi_7_2001.pdf"},
	}
}

func TestFindDocumentLinkOrderIndependence(t *testing.T) {
	resolver := NewReferenceResolver(testCatalog())

	forward := resolver.FindDocumentLink("loi", "45-2020")
	backward := resolver.FindDocumentLink("loi", "2020-45")

	want := "/pdfs/loi_45_2020.pdf"
	if forward != want {
		t.Errorf("FindDocumentLink(loi, 45-2020) = %q, want %q", forward, want)
	}
	if backward != want {
		t.Errorf("FindDocumentLink(loi, 2020-45) = %q, want %q", backward, want)
	}
}

func TestFindDocumentLinkAccentAndCase(t *testing.T) {
	resolver := NewReferenceResolver(testCatalog())

	// "Décret" must normalize to the DECRET prefix stored in labels.
	got := resolver.FindDocumentLink("Décret", "123-2019")
	if got != "/pdfs/decret_123_2019.pdf" {
		t.Errorf("FindDocumentLink(Décret, 123-2019) = %q, want decree link", got)
	}
}

func TestFindDocumentLinkLeadingZeros(t *testing.T) {
	resolver := NewReferenceResolver(testCatalog())

	// "007-2001" round-trips to 7-2001 and should hit the stored label.
	got := resolver.FindDocumentLink("loi", "007-2001")
	if got != "/pdfs/loi_7_2001.pdf" {
		t.Errorf("FindDocumentLink(loi, 007-2001) = %q, want loi 7-2001 link", got)
	}
}

func TestFindDocumentLinkMiss(t *testing.T) {
	resolver := NewReferenceResolver(testCatalog())

	tests := []struct {
		legalType string
		number    string
	}{
		{"loi", "99-2099"},
		{"décret", "45-2020"}, // wrong type prefix
		{"", "45-2020"},
		{"loi", ""},
	}

	for _, tt := range tests {
		if got := resolver.FindDocumentLink(tt.legalType, tt.number); got != "" {
			t.Errorf("FindDocumentLink(%q, %q) = %q, want \"\"", tt.legalType, tt.number, got)
		}
	}
}

func TestFindDocumentLinkEmptyCatalog(t *testing.T) {
	resolver := NewReferenceResolver(nil)

	if got := resolver.FindDocumentLink("loi", "45-2020"); got != "" {
		t.Errorf("FindDocumentLink on empty catalog = %q, want \"\"", got)
	}
}

func TestFindDocumentLinkSubstringBehavior(t *testing.T) {
	resolver := NewReferenceResolver(testCatalog())

	// The match is a substring scan: a truncated number that happens to
	// prefix a stored one still hits.
	got := resolver.FindDocumentLink("loi", "45-202")
	if got != "/pdfs/loi_45_2020.pdf" {
		t.Errorf("FindDocumentLink(loi, 45-202) = %q, want the 45-2020 record", got)
	}
}

func TestFindDocumentLinkCatalogOrderPriority(t *testing.T) {
	catalog := []entity.LegalDocumentRecord{
		{LegalType: "Loi", ReferenceLabel: "LOI_45-2020_version_a", PdfLink: "/pdfs/a.pdf"},
		{LegalType: "Loi", ReferenceLabel: "LOI_45-2020_version_b", PdfLink: "/pdfs/b.pdf"},
	}
	resolver := NewReferenceResolver(catalog)

	if got := resolver.FindDocumentLink("loi", "45-2020"); got != "/pdfs/a.pdf" {
		t.Errorf("FindDocumentLink = %q, want first catalog record", got)
	}
}
