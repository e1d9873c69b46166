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


package weight

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/poiesic/textvec/core"
	"github.com/poiesic/textvec/workers"
)

// Transformer computes TF, IDF and TF-IDF from count matrices.
// It holds no per-corpus state and may be reused for any number of matrices.
type Transformer struct {
	workers *workers.Pool
	logger  *slog.Logger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transformer) {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
	}
}

// WithWorkers computes rows on the given pool.
// The pool is borrowed; the caller releases it. Default is sequential.
func WithWorkers(pool *workers.Pool) Option {
	return func(t *Transformer) {
		t.workers = pool
	}
}

// NewTransformer creates a Transformer.
func NewTransformer(opts ...Option) *Transformer {
	t := &Transformer{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TermFrequency divides every count by its row total.
// Returns ErrEmptyDocument if any row sums to zero.
func (t *Transformer) TermFrequency(counts core.CountMatrix) (core.WeightMatrix, error) {
	if err := core.ValidateCountMatrix(counts); err != nil {
		return nil, err
	}
	tf, err := t.termFrequency(counts)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("term frequency computed", "rows", counts.Rows(), "cols", counts.Cols())
	return tf, nil
}

// InverseDocumentFrequency computes the smoothed IDF of every column:
// ln((n+1)/(df+1)) + 1, where n is the number of rows and df the number of
// rows with a non-zero count in that column.
// Returns ErrEmptyCorpus if counts has no rows.
func (t *Transformer) InverseDocumentFrequency(counts core.CountMatrix) (core.WeightVector, error) {
	if err := core.ValidateCountMatrix(counts); err != nil {
		return nil, err
	}
	idf, err := inverseDocumentFrequency(counts)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("inverse document frequency computed", "rows", counts.Rows(), "cols", len(idf))
	return idf, nil
}

// TFIDF multiplies the term frequencies of each row by the column IDF.
// TF and IDF are rounded before the product, which is rounded again.
func (t *Transformer) TFIDF(counts core.CountMatrix) (core.WeightMatrix, error) {
	w, err := t.Compute(counts)
	if err != nil {
		return nil, err
	}
	return w.TFIDF, nil
}

// Weights bundles the artefacts computed from one count matrix.
type Weights struct {
	TF    core.WeightMatrix
	IDF   core.WeightVector
	TFIDF core.WeightMatrix
}

// Compute returns TF, IDF and TF-IDF for counts in one pass.
// It fails under the same conditions as TermFrequency and InverseDocumentFrequency.
func (t *Transformer) Compute(counts core.CountMatrix) (*Weights, error) {
	if err := core.ValidateCountMatrix(counts); err != nil {
		return nil, err
	}
	tf, err := t.termFrequency(counts)
	if err != nil {
		return nil, err
	}
	idf, err := inverseDocumentFrequency(counts)
	if err != nil {
		return nil, err
	}
	tfidf, err := t.combine(tf, idf)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("tf-idf computed", "rows", counts.Rows(), "cols", len(idf))
	return &Weights{TF: tf, IDF: idf, TFIDF: tfidf}, nil
}

func (t *Transformer) termFrequency(counts core.CountMatrix) (core.WeightMatrix, error) {
	tf := make(core.WeightMatrix, len(counts))
	err := t.workers.Each(len(counts), func(i int) error {
		total := counts.RowSum(i)
		if total == 0 {
			return fmt.Errorf("%w: row %d", ErrEmptyDocument, i)
		}
		row := make([]float64, len(counts[i]))
		for j, c := range counts[i] {
			row[j] = core.Round(float64(c) / float64(total))
		}
		tf[i] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tf, nil
}

func inverseDocumentFrequency(counts core.CountMatrix) (core.WeightVector, error) {
	n := counts.Rows()
	if n == 0 {
		return nil, ErrEmptyCorpus
	}

	df := make([]int, counts.Cols())
	for _, row := range counts {
		for j, c := range row {
			if c > 0 {
				df[j]++
			}
		}
	}

	idf := make(core.WeightVector, len(df))
	for j, d := range df {
		idf[j] = core.Round(math.Log(float64(n+1)/float64(d+1)) + 1)
	}
	return idf, nil
}

func (t *Transformer) combine(tf core.WeightMatrix, idf core.WeightVector) (core.WeightMatrix, error) {
	out := make(core.WeightMatrix, len(tf))
	err := t.workers.Each(len(tf), func(i int) error {
		row := make([]float64, len(idf))
		for j, w := range idf {
			row[j] = core.Round(tf[i][j] * w)
		}
		out[i] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
