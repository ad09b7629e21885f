package recall

import "context"

// Similarity scores a query against a corpus of texts. Implementations
// must return one score per corpus entry, each in [0,1], with
// score(x,x) = 1 and score(a,b) = score(b,a).
//
// Two interchangeable strategies exist: a lexical edit-distance ratio
// and provider-embedding cosine similarity. Which one runs is a
// configuration choice; callers only see this interface.
type Similarity interface {
	Score(ctx context.Context, query string, corpus []string) ([]float64, error)
	Name() string
}
