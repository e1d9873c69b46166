// Package workers provides the bounded worker pool used to compute matrix rows
// in parallel.
//
// Rows of a count, TF or TF-IDF matrix have no dependency on each other, so
// they can be produced concurrently once the vocabulary is fixed. Vocabulary
// growth itself is never submitted to a pool.
package workers
