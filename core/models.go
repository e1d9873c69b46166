package core

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// CountMatrix holds raw term counts.
// Rows are documents in input order, columns are vocabulary entries in index order.
type CountMatrix [][]int

// WeightMatrix holds per-document term weights (TF or TF-IDF), rounded to Precision digits.
type WeightMatrix [][]float64

// WeightVector holds one weight per vocabulary column (IDF), rounded to Precision digits.
type WeightVector []float64

// Rows returns the number of documents in the matrix.
func (m CountMatrix) Rows() int {
	return len(m)
}

// Cols returns the number of vocabulary columns.
// An empty matrix has zero columns.
func (m CountMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// RowSum returns the total number of tokens counted in row i.
func (m CountMatrix) RowSum(i int) int {
	sum := 0
	for _, c := range m[i] {
		sum += c
	}
	return sum
}

// Rows returns the number of documents in the matrix.
func (m WeightMatrix) Rows() int {
	return len(m)
}

// Cols returns the number of vocabulary columns.
func (m WeightMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Vocabulary is an ordered mapping from token to a dense column index.
// Indices are assigned in insertion order and never change until Reset.
type Vocabulary struct {
	index map[string]int
	terms []string
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		index: make(map[string]int),
	}
}

// Add appends term with the next free index if it is not present yet.
// Returns the term's index and whether it was newly added.
func (v *Vocabulary) Add(term string) (int, bool) {
	if idx, ok := v.index[term]; ok {
		return idx, false
	}
	idx := len(v.terms)
	v.index[term] = idx
	v.terms = append(v.terms, term)
	return idx, true
}

// Index returns the column index of term.
func (v *Vocabulary) Index(term string) (int, bool) {
	idx, ok := v.index[term]
	return idx, ok
}

// Term returns the token stored at column i.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns a copy of the tokens in index order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Reset removes every token.
func (v *Vocabulary) Reset() {
	clear(v.index)
	v.terms = v.terms[:0]
}

// Digest returns a hex encoded BLAKE2b fingerprint of the ordered token list.
// Vocabularies with the same tokens in the same order share a digest, so
// matrices built from them are column aligned.
func (v *Vocabulary) Digest() string {
	h, _ := blake2b.New(16, nil)
	var size [8]byte
	for _, term := range v.terms {
		// Length prefix keeps empty tokens and token boundaries significant.
		binary.LittleEndian.PutUint64(size[:], uint64(len(term)))
		h.Write(size[:])
		h.Write([]byte(term))
	}
	return hex.EncodeToString(h.Sum(nil))
}
