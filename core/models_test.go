package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary_Add(t *testing.T) {
	v := NewVocabulary()

	idx, added := v.Add("pasta")
	assert.Equal(t, 0, idx)
	assert.True(t, added)

	idx, added = v.Add("pot")
	assert.Equal(t, 1, idx)
	assert.True(t, added)

	idx, added = v.Add("pasta")
	assert.Equal(t, 0, idx, "existing token keeps its index")
	assert.False(t, added)

	idx, added = v.Add("")
	assert.Equal(t, 2, idx, "empty token is a valid entry")
	assert.True(t, added)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"pasta", "pot", ""}, v.Terms())
	assert.Equal(t, "pot", v.Term(1))
}

func TestVocabulary_Index(t *testing.T) {
	v := NewVocabulary()
	v.Add("a")
	v.Add("b")

	idx, ok := v.Index("b")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = v.Index("c")
	assert.False(t, ok)
}

func TestVocabulary_TermsIsCopy(t *testing.T) {
	v := NewVocabulary()
	v.Add("a")

	terms := v.Terms()
	terms[0] = "mutated"

	assert.Equal(t, "a", v.Term(0))
}

func TestVocabulary_Reset(t *testing.T) {
	v := NewVocabulary()
	v.Add("a")
	v.Add("b")

	v.Reset()
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Terms())

	_, ok := v.Index("a")
	assert.False(t, ok)

	idx, added := v.Add("b")
	assert.Equal(t, 0, idx, "indices restart after reset")
	assert.True(t, added)
}

func TestVocabulary_Digest(t *testing.T) {
	build := func(terms ...string) *Vocabulary {
		v := NewVocabulary()
		for _, term := range terms {
			v.Add(term)
		}
		return v
	}

	t.Run("same order same digest", func(t *testing.T) {
		assert.Equal(t, build("a", "b").Digest(), build("a", "b").Digest())
	})

	t.Run("order matters", func(t *testing.T) {
		assert.NotEqual(t, build("a", "b").Digest(), build("b", "a").Digest())
	})

	t.Run("token boundaries matter", func(t *testing.T) {
		assert.NotEqual(t, build("ab", "").Digest(), build("a", "b").Digest())
	})

	t.Run("hex encoded", func(t *testing.T) {
		assert.Len(t, NewVocabulary().Digest(), 32)
	})
}

func TestCountMatrix_Shape(t *testing.T) {
	m := CountMatrix{{1, 2, 0}, {0, 0, 4}}
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 3, m.RowSum(0))
	assert.Equal(t, 4, m.RowSum(1))

	var empty CountMatrix
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 0, empty.Cols())

	w := WeightMatrix{{0.5, 0.5}}
	assert.Equal(t, 1, w.Rows())
	assert.Equal(t, 2, w.Cols())
}
