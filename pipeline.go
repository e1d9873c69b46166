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


package textvec

import (
	"log/slog"

	"github.com/poiesic/textvec/core"
	"github.com/poiesic/textvec/vocabulary"
	"github.com/poiesic/textvec/weight"
	"github.com/poiesic/textvec/workers"
)

// Vectorizer turns a corpus into one row per document, one column per feature.
type Vectorizer[M any] interface {
	FitTransform(corpus []string) (M, error)
	FeatureNames() []string
	Reset()
}

var (
	_ Vectorizer[core.CountMatrix]  = (*vocabulary.Builder)(nil)
	_ Vectorizer[core.WeightMatrix] = (*Pipeline)(nil)
)

// Pipeline builds count matrices with a vocabulary.Builder and weights them
// with a weight.Transformer.
type Pipeline struct {
	builder     *vocabulary.Builder
	transformer *weight.Transformer
	workers     *workers.Pool
	poolSize    int
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the number of workers used for per-row computation.
// Default is 1, which keeps every computation on the calling goroutine.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a pipeline with an empty vocabulary.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		poolSize: 1,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	pool, err := workers.New(p.poolSize, p.logger)
	if err != nil {
		return nil, err
	}
	p.workers = pool
	p.builder = vocabulary.NewBuilder(
		vocabulary.WithLogger(p.logger),
		vocabulary.WithWorkers(pool),
	)
	p.transformer = weight.NewTransformer(
		weight.WithLogger(p.logger),
		weight.WithWorkers(pool),
	)
	return p, nil
}

// FitTransform extends the vocabulary with corpus and returns its TF-IDF matrix.
// An empty corpus fails with weight.ErrEmptyCorpus; the vocabulary is still
// extended by every document before weighting starts.
func (p *Pipeline) FitTransform(corpus []string) (core.WeightMatrix, error) {
	counts, err := p.builder.CountMatrix(corpus)
	if err != nil {
		return nil, err
	}
	return p.transformer.TFIDF(counts)
}

// Result holds every artefact computed for one corpus.
// Columns of all matrices line up with FeatureNames.
type Result struct {
	FeatureNames []string
	Digest       string
	Counts       core.CountMatrix
	TF           core.WeightMatrix
	IDF          core.WeightVector
	TFIDF        core.WeightMatrix
}

// Transform computes counts, TF, IDF and TF-IDF for corpus in one pass.
// It fails under the same conditions as FitTransform.
func (p *Pipeline) Transform(corpus []string) (*Result, error) {
	counts, err := p.builder.CountMatrix(corpus)
	if err != nil {
		return nil, err
	}
	w, err := p.transformer.Compute(counts)
	if err != nil {
		return nil, err
	}
	return &Result{
		FeatureNames: p.builder.FeatureNames(),
		Digest:       p.builder.Vocabulary().Digest(),
		Counts:       counts,
		TF:           w.TF,
		IDF:          w.IDF,
		TFIDF:        w.TFIDF,
	}, nil
}

// FeatureNames returns the vocabulary tokens in index order.
func (p *Pipeline) FeatureNames() []string {
	return p.builder.FeatureNames()
}

// Vocabulary returns the pipeline's vocabulary.
func (p *Pipeline) Vocabulary() *core.Vocabulary {
	return p.builder.Vocabulary()
}

// Builder returns the underlying vocabulary builder.
func (p *Pipeline) Builder() *vocabulary.Builder {
	return p.builder
}

// Transformer returns the underlying weight transformer.
func (p *Pipeline) Transformer() *weight.Transformer {
	return p.transformer
}

// Reset clears the vocabulary.
func (p *Pipeline) Reset() {
	p.builder.Reset()
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	p.workers.Release()
}
