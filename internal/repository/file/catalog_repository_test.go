package file

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[
  {"type": "Loi", "loi": "LOI_45-2020_portant_protection_des_donnees", "lien_pdf": "/pdfs/loi_45_2020.pdf"},
  {"type": "Décret", "loi": "DECRET_123-2019_application", "lien_pdf": "/pdfs/decret_123_2019.pdf"}
]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("LoadCatalog returned %d records, want 2", len(records))
	}
	first := records[0]
	if first.LegalType != "Loi" || first.ReferenceLabel != "LOI_45-2020_portant_protection_des_donnees" || first.PdfLink != "/pdfs/loi_45_2020.pdf" {
		t.Errorf("first record = %+v", first)
	}
}

func TestLoadCatalogEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("LoadCatalog = %v, want no records", records)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("LoadCatalog succeeded on a missing file, want error")
	}
}

func TestLoadCatalogMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{pas un tableau"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("LoadCatalog succeeded on malformed JSON, want error")
	}
}
