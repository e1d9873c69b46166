// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package vocabulary

import (
	"log/slog"

	"github.com/poiesic/textvec/core"
	"github.com/poiesic/textvec/workers"
)

// Builder tokenizes documents, maintains the vocabulary and produces count matrices.
type Builder struct {
	vocab   *core.Vocabulary
	workers *workers.Pool
	logger  *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
	}
}

// WithWorkers counts document rows on the given pool.
// The pool is borrowed; the caller releases it. Default is sequential counting.
func WithWorkers(pool *workers.Pool) Option {
	return func(b *Builder) {
		b.workers = pool
	}
}

// NewBuilder creates a Builder with an empty vocabulary.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		vocab:  core.NewVocabulary(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildVocabulary extends the vocabulary with the tokens of corpus and returns it.
//
// Documents are scanned in order and tokens in document order; each unseen
// token receives the next free index. The returned vocabulary is the
// builder's own and keeps growing on later calls. Callers must not modify it.
func (b *Builder) BuildVocabulary(corpus []string) *core.Vocabulary {
	b.extend(tokenizeAll(corpus))
	return b.vocab
}

// CountMatrix extends the vocabulary with corpus and counts every document
// against the resulting vocabulary.
//
// All rows have one column per vocabulary entry, including entries first seen
// in later documents or in earlier calls. An empty corpus yields an empty
// matrix and no error.
func (b *Builder) CountMatrix(corpus []string) (core.CountMatrix, error) {
	docs := tokenizeAll(corpus)
	b.extend(docs)

	cols := b.vocab.Len()
	counts := make(core.CountMatrix, len(docs))
	err := b.workers.Each(len(docs), func(i int) error {
		row := make([]int, cols)
		for _, token := range docs[i] {
			idx, _ := b.vocab.Index(token)
			row[idx]++
		}
		counts[i] = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.logger.Debug("count matrix built", "rows", len(counts), "cols", cols)
	return counts, nil
}

// FitTransform is CountMatrix under the name shared by every vectorizer.
func (b *Builder) FitTransform(corpus []string) (core.CountMatrix, error) {
	return b.CountMatrix(corpus)
}

// FeatureNames returns the vocabulary tokens in index order.
func (b *Builder) FeatureNames() []string {
	return b.vocab.Terms()
}

// Vocabulary returns the builder's vocabulary.
func (b *Builder) Vocabulary() *core.Vocabulary {
	return b.vocab
}

// Reset clears the vocabulary so the next call starts from index 0.
func (b *Builder) Reset() {
	b.vocab.Reset()
	b.logger.Debug("vocabulary reset")
}

// extend adds unseen tokens in a single sequential pass; indices depend on
// the order of every earlier token.
func (b *Builder) extend(docs [][]string) {
	added := 0
	for _, tokens := range docs {
		for _, token := range tokens {
			if _, ok := b.vocab.Add(token); ok {
				added++
			}
		}
	}
	if added > 0 {
		b.logger.Debug("vocabulary extended", "documents", len(docs), "added", added, "size", b.vocab.Len())
	}
}

func tokenizeAll(corpus []string) [][]string {
	docs := make([][]string, len(corpus))
	for i, document := range corpus {
		docs[i] = Tokenize(document)
	}
	return docs
}
