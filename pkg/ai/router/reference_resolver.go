package router

import (
	"strings"

	"ai-legal-assistant-be/internal/entity"
	"ai-legal-assistant-be/pkg/textutil"
)

// ReferenceResolver matches extracted references against the static
// document catalog loaded at startup.
type ReferenceResolver struct {
	catalog []entity.LegalDocumentRecord
}

func NewReferenceResolver(catalog []entity.LegalDocumentRecord) *ReferenceResolver {
	return &ReferenceResolver{catalog: catalog}
}

// FindDocumentLink looks up the pdf link for a reference. Both number part
// orderings are tried as "{PREFIX}_{number}" substrings of each record's
// accent-stripped, uppercased label; the first catalog hit wins. Returns ""
// when either input is empty or no record matches.
//
// The match is a plain substring test, so a short number can hit inside a
// longer one ("5-2020" inside "45-2020"); catalog order decides.
func (r *ReferenceResolver) FindDocumentLink(legalType, number string) string {
	if legalType == "" || number == "" {
		return ""
	}

	prefix := textutil.StripDiacritics(strings.ToUpper(legalType))
	variants := textutil.NormalizeReferenceNumber(number)

	for _, record := range r.catalog {
		label := textutil.StripDiacritics(strings.ToUpper(record.ReferenceLabel))
		for _, variant := range variants {
			if strings.Contains(label, prefix+"_"+variant) {
				return record.PdfLink
			}
		}
	}

	return ""
}
