package file

import (
	"encoding/json"
	"fmt"
	"os"

	"ai-legal-assistant-be/internal/entity"
)

// LoadCatalog reads the static legal document catalog. The file is a JSON
// array of {type, loi, lien_pdf} records; it is read once at startup and
// never mutated afterwards.
func LoadCatalog(path string) ([]entity.LegalDocumentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var records []entity.LegalDocumentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return records, nil
}
