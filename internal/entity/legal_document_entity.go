package entity

// LegalDocumentRecord is one entry of the static document catalog loaded at
// startup. ReferenceLabel is the free-text identifier from the catalog file
// (e.g. "...LOI_123-2020..."), matched by normalized substring, not by key.
type LegalDocumentRecord struct {
	LegalType      string `json:"type"`
	ReferenceLabel string `json:"loi"`
	PdfLink        string `json:"lien_pdf"`
}
