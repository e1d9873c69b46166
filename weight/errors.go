package weight

import "errors"

var (
	// ErrEmptyDocument is returned when a count matrix row sums to zero,
	// leaving no denominator for its term frequencies.
	ErrEmptyDocument = errors.New("document has no tokens")

	// ErrEmptyCorpus is returned when inverse document frequencies are
	// requested for a count matrix with no rows.
	ErrEmptyCorpus = errors.New("corpus has no documents")
)
