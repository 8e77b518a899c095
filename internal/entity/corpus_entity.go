package entity

// CorpusArticle is one retrievable unit of legal text with its precomputed
// embedding. Identity is the index position in the loaded corpus.
type CorpusArticle struct {
	Text      string
	Embedding []float32
}
