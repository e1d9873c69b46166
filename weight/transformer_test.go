package weight

import (
	"math"
	"testing"

	"github.com/poiesic/textvec/core"
	"github.com/poiesic/textvec/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recipeCounts = core.CountMatrix{
	{1, 1, 2, 1, 1, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1},
}

var documentCounts = core.CountMatrix{
	{1, 1, 1, 1, 1, 0, 0, 0, 0},
	{1, 1, 1, 0, 2, 1, 0, 0, 0},
	{1, 1, 1, 0, 0, 0, 1, 1, 1},
	{1, 1, 1, 1, 1, 0, 0, 0, 0},
}

func TestTransformer_TermFrequency(t *testing.T) {
	tests := []struct {
		name   string
		counts core.CountMatrix
		want   core.WeightMatrix
	}{
		{
			name:   "recipes",
			counts: recipeCounts,
			want: core.WeightMatrix{
				{0.143, 0.143, 0.286, 0.143, 0.143, 0.143, 0, 0, 0, 0, 0, 0},
				{0, 0, 0.143, 0, 0, 0, 0.143, 0.143, 0.143, 0.143, 0.143, 0.143},
			},
		},
		{
			name:   "documents",
			counts: documentCounts,
			want: core.WeightMatrix{
				{0.2, 0.2, 0.2, 0.2, 0.2, 0, 0, 0, 0},
				{0.167, 0.167, 0.167, 0, 0.333, 0.167, 0, 0, 0},
				{0.167, 0.167, 0.167, 0, 0, 0, 0.167, 0.167, 0.167},
				{0.2, 0.2, 0.2, 0.2, 0.2, 0, 0, 0, 0},
			},
		},
		{
			name:   "no documents",
			counts: core.CountMatrix{},
			want:   core.WeightMatrix{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTransformer().TermFrequency(tt.counts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransformer_TermFrequencyEmptyDocument(t *testing.T) {
	tests := []struct {
		name   string
		counts core.CountMatrix
	}{
		{"zero row", core.CountMatrix{{1, 0}, {0, 0}}},
		{"zero columns", core.CountMatrix{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransformer().TermFrequency(tt.counts)
			assert.ErrorIs(t, err, ErrEmptyDocument)
		})
	}
}

func TestTransformer_TermFrequencyRowsSumToOne(t *testing.T) {
	for i, row := range documentCounts {
		total := 0
		for _, c := range row {
			total += c
		}
		sum := 0.0
		for _, c := range row {
			sum += float64(c) / float64(total)
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "row %d", i)
	}

	tf, err := NewTransformer().TermFrequency(documentCounts)
	require.NoError(t, err)
	for i, row := range tf {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 0.005, "rounded row %d", i)
	}
}

func TestTransformer_InverseDocumentFrequency(t *testing.T) {
	tests := []struct {
		name   string
		counts core.CountMatrix
		want   core.WeightVector
	}{
		{
			name:   "recipes",
			counts: recipeCounts,
			want:   core.WeightVector{1.405, 1.405, 1.0, 1.405, 1.405, 1.405, 1.405, 1.405, 1.405, 1.405, 1.405, 1.405},
		},
		{
			name:   "documents",
			counts: documentCounts,
			want:   core.WeightVector{1.0, 1.0, 1.0, 1.511, 1.223, 1.916, 1.916, 1.916, 1.916},
		},
		{
			name:   "magnitude is ignored",
			counts: core.CountMatrix{{3, 0}, {1, 1}},
			want:   core.WeightVector{1.0, 1.405},
		},
		{
			name:   "unused column",
			counts: core.CountMatrix{{1, 0}},
			want:   core.WeightVector{1.0, 1.693},
		},
		{
			name:   "rows without columns",
			counts: core.CountMatrix{{}, {}},
			want:   core.WeightVector{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTransformer().InverseDocumentFrequency(tt.counts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransformer_InverseDocumentFrequencyEmptyCorpus(t *testing.T) {
	tr := NewTransformer()

	_, err := tr.InverseDocumentFrequency(core.CountMatrix{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = tr.InverseDocumentFrequency(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestTransformer_InverseDocumentFrequencyMonotonic(t *testing.T) {
	counts := core.CountMatrix{
		{1, 1, 1, 0},
		{1, 1, 0, 0},
		{1, 0, 0, 2},
	}

	idf, err := NewTransformer().InverseDocumentFrequency(counts)
	require.NoError(t, err)

	assert.Equal(t, 1.0, idf[0], "term in every document has the minimum weight")
	assert.GreaterOrEqual(t, idf[1], idf[0])
	assert.GreaterOrEqual(t, idf[2], idf[1])
	assert.Equal(t, idf[2], idf[3], "df is counted per document, not per occurrence")
	for j, w := range idf {
		assert.Positive(t, w, "column %d", j)
	}
}

func TestTransformer_TFIDF(t *testing.T) {
	tests := []struct {
		name   string
		counts core.CountMatrix
		want   core.WeightMatrix
	}{
		{
			name:   "recipes",
			counts: recipeCounts,
			want: core.WeightMatrix{
				{0.201, 0.201, 0.286, 0.201, 0.201, 0.201, 0, 0, 0, 0, 0, 0},
				{0, 0, 0.143, 0, 0, 0, 0.201, 0.201, 0.201, 0.201, 0.201, 0.201},
			},
		},
		{
			name:   "documents",
			counts: documentCounts,
			want: core.WeightMatrix{
				{0.2, 0.2, 0.2, 0.302, 0.245, 0, 0, 0, 0},
				{0.167, 0.167, 0.167, 0, 0.407, 0.32, 0, 0, 0},
				{0.167, 0.167, 0.167, 0, 0, 0, 0.32, 0.32, 0.32},
				{0.2, 0.2, 0.2, 0.302, 0.245, 0, 0, 0, 0},
			},
		},
		{
			name:   "repeated word",
			counts: core.CountMatrix{{3, 0}, {1, 1}},
			want:   core.WeightMatrix{{1.0, 0}, {0.5, 0.703}},
		},
		{
			// round(1/6 * idf) would give 0.234; the rounded factors give 0.235.
			name:   "rounds factors before the product",
			counts: core.CountMatrix{{1, 1, 1, 1, 1, 1, 0}, {0, 0, 0, 0, 0, 0, 1}},
			want: core.WeightMatrix{
				{0.235, 0.235, 0.235, 0.235, 0.235, 0.235, 0},
				{0, 0, 0, 0, 0, 0, 1.405},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTransformer().TFIDF(tt.counts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransformer_TFIDFCompositionLaw(t *testing.T) {
	tr := NewTransformer()

	tf, err := tr.TermFrequency(documentCounts)
	require.NoError(t, err)
	idf, err := tr.InverseDocumentFrequency(documentCounts)
	require.NoError(t, err)
	tfidf, err := tr.TFIDF(documentCounts)
	require.NoError(t, err)

	require.Equal(t, documentCounts.Rows(), tfidf.Rows())
	for i := range tfidf {
		require.Len(t, tfidf[i], len(idf))
		for j := range tfidf[i] {
			assert.Equal(t, core.Round(tf[i][j]*idf[j]), tfidf[i][j], "cell %d,%d", i, j)
		}
	}
}

func TestTransformer_TFIDFErrors(t *testing.T) {
	tr := NewTransformer()

	_, err := tr.TFIDF(core.CountMatrix{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = tr.TFIDF(core.CountMatrix{{1, 0}, {0, 0}})
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestTransformer_RejectsMalformedMatrix(t *testing.T) {
	tr := NewTransformer()
	ragged := core.CountMatrix{{1, 2}, {1}}
	negative := core.CountMatrix{{1, -2}}

	_, err := tr.TermFrequency(ragged)
	assert.ErrorIs(t, err, core.ErrRaggedMatrix)
	_, err = tr.InverseDocumentFrequency(ragged)
	assert.ErrorIs(t, err, core.ErrRaggedMatrix)
	_, err = tr.TFIDF(negative)
	assert.ErrorIs(t, err, core.ErrNegativeCount)
	_, err = tr.Compute(negative)
	assert.ErrorIs(t, err, core.ErrNegativeCount)
}

func TestTransformer_Compute(t *testing.T) {
	w, err := NewTransformer().Compute(recipeCounts)
	require.NoError(t, err)

	assert.Equal(t, 0.143, w.TF[0][0])
	assert.Equal(t, core.WeightVector{1.405, 1.405, 1.0, 1.405, 1.405, 1.405, 1.405, 1.405, 1.405, 1.405, 1.405, 1.405}, w.IDF)
	assert.Equal(t, []float64{0.201, 0.201, 0.286, 0.201, 0.201, 0.201, 0, 0, 0, 0, 0, 0}, w.TFIDF[0])
}

func TestTransformer_WithWorkers(t *testing.T) {
	pool, err := workers.New(4, nil)
	require.NoError(t, err)
	defer pool.Release()

	counts := make(core.CountMatrix, 0, 200)
	for i := range 200 {
		counts = append(counts, []int{i%3 + 1, i % 5, (i * 7) % 4, 1})
	}

	parallel, err := NewTransformer(WithWorkers(pool)).Compute(counts)
	require.NoError(t, err)
	sequential, err := NewTransformer().Compute(counts)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestTransformer_WithWorkersReportsFirstEmptyRow(t *testing.T) {
	pool, err := workers.New(4, nil)
	require.NoError(t, err)
	defer pool.Release()

	counts := make(core.CountMatrix, 50)
	for i := range counts {
		counts[i] = []int{1, 1}
	}
	counts[7] = []int{0, 0}
	counts[31] = []int{0, 0}

	_, err = NewTransformer(WithWorkers(pool)).TermFrequency(counts)
	require.ErrorIs(t, err, ErrEmptyDocument)
	assert.Contains(t, err.Error(), "row 7")
}

func TestTransformer_IDFFormula(t *testing.T) {
	counts := core.CountMatrix{{1, 1}, {1, 0}, {1, 0}, {0, 0}}
	// Row 3 sums to zero; IDF only looks at presence so it must still succeed.
	idf, err := NewTransformer().InverseDocumentFrequency(counts)
	require.NoError(t, err)

	want0 := core.Round(math.Log(5.0/4.0) + 1)
	want1 := core.Round(math.Log(5.0/2.0) + 1)
	assert.Equal(t, core.WeightVector{want0, want1}, idf)
}
