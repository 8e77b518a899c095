package file

import (
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"ai-legal-assistant-be/internal/entity"
)

// LoadCorpus reads the article texts and the precomputed embedding matrix
// produced by the offline indexing job, and zips them into CorpusArticles.
// The two files must be aligned row for row.
//
// Texts: CSV with a "texte" column (other columns are ignored).
// Embeddings: uint32 rows, uint32 cols, then rows*cols little-endian float32.
func LoadCorpus(textsPath, embeddingsPath string) ([]entity.CorpusArticle, error) {
	texts, err := loadTexts(textsPath)
	if err != nil {
		return nil, err
	}

	vectors, err := loadEmbeddings(embeddingsPath)
	if err != nil {
		return nil, err
	}

	if len(texts) != len(vectors) {
		return nil, fmt.Errorf("corpus misaligned: %d texts vs %d embeddings", len(texts), len(vectors))
	}

	articles := make([]entity.CorpusArticle, len(texts))
	for i := range texts {
		articles[i] = entity.CorpusArticle{
			Text:      texts[i],
			Embedding: vectors[i],
		}
	}

	return articles, nil
}

func loadTexts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus texts: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read corpus header: %w", err)
	}

	textCol := -1
	for i, name := range header {
		if name == "texte" {
			textCol = i
			break
		}
	}
	if textCol == -1 {
		return nil, fmt.Errorf("corpus texts: missing \"texte\" column")
	}

	var texts []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read corpus row: %w", err)
		}
		texts = append(texts, record[textCol])
	}

	return texts, nil
}

func loadEmbeddings(path string) ([][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open embeddings: %w", err)
	}
	defer f.Close()

	var rows, cols uint32
	if err := binary.Read(f, binary.LittleEndian, &rows); err != nil {
		return nil, fmt.Errorf("read embeddings header: %w", err)
	}
	if err := binary.Read(f, binary.LittleEndian, &cols); err != nil {
		return nil, fmt.Errorf("read embeddings header: %w", err)
	}

	vectors := make([][]float32, rows)
	for i := uint32(0); i < rows; i++ {
		vec := make([]float32, cols)
		if err := binary.Read(f, binary.LittleEndian, vec); err != nil {
			return nil, fmt.Errorf("read embedding row %d: %w", i, err)
		}
		vectors[i] = vec
	}

	return vectors, nil
}
