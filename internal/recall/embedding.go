package recall

import (
	"context"
	"fmt"

	"github.com/nixinlabs/nixin/internal/client"
	"github.com/nixinlabs/nixin/internal/types"
)

// EmbeddingSimilarity scores texts by cosine similarity of provider
// embeddings. Cosine values below zero are clamped so the reported
// score stays in [0,1].
type EmbeddingSimilarity struct {
	embeddingClient client.EmbeddingClient
	model           types.Model
}

// NewEmbeddingSimilarity creates the embedding strategy with the given
// client and model.
func NewEmbeddingSimilarity(embeddingClient client.EmbeddingClient, model types.Model) *EmbeddingSimilarity {
	return &EmbeddingSimilarity{
		embeddingClient: embeddingClient,
		model:           model,
	}
}

// Name returns the strategy identifier.
func (e *EmbeddingSimilarity) Name() string { return "embedding" }

// Score embeds the query and the whole corpus in one batch call and
// returns the cosine similarity of the query against each entry.
func (e *EmbeddingSimilarity) Score(ctx context.Context, query string, corpus []string) ([]float64, error) {
	if len(corpus) == 0 {
		return nil, nil
	}

	texts := make([]string, 0, len(corpus)+1)
	texts = append(texts, query)
	texts = append(texts, corpus...)

	vectors, err := e.embeddingClient.EmbedBatch(ctx, e.model, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed recall corpus: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, expected %d", len(vectors), len(texts))
	}

	// Embeddings are normalized once so dot product = cosine similarity.
	queryVec := NormalizeVector(vectors[0])

	scores := make([]float64, len(corpus))
	for i, vec := range vectors[1:] {
		score := DotProduct(queryVec, NormalizeVector(vec))
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		scores[i] = score
	}

	return scores, nil
}
