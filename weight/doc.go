// Package weight derives term frequency, inverse document frequency and
// TF-IDF weights from a count matrix.
//
// The Transformer does not know how counts were produced; any rectangular
// matrix of non-negative integers is accepted. Every value is rounded to
// core.Precision digits, and TF-IDF multiplies the already rounded TF and IDF
// before rounding again:
//
//	tf[i][j]    = round(counts[i][j] / sum(counts[i]))
//	idf[j]      = round(ln((n + 1) / (df[j] + 1)) + 1)
//	tfidf[i][j] = round(tf[i][j] * idf[j])
//
// An empty document (zero row sum) fails with ErrEmptyDocument and an empty
// corpus (zero rows) fails IDF with ErrEmptyCorpus. No partial results are
// returned.
package weight
