// Package textvec converts a corpus of raw text documents into dense feature
// matrices: raw term counts, term frequencies (TF), inverse document
// frequencies (IDF) and TF-IDF weights.
//
// The work is split across three packages:
//   - vocabulary: tokenization, the ordered vocabulary and count matrices
//   - weight: TF, IDF and TF-IDF computed from any count matrix
//   - textvec (this package): Pipeline, which composes the two
//
// # Usage
//
//	p, err := textvec.NewPipeline()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Release()
//
//	tfidf, err := p.FitTransform([]string{
//	    "Crock Pot Pasta Never boil pasta again",
//	    "Pasta Pomodoro Fresh ingredients Parmesan to taste",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	names := p.FeatureNames()
//
// # Vocabulary state
//
// The vocabulary accumulates across calls on the same Pipeline or Builder:
// a second corpus only appends tokens it introduces, and its matrices have a
// column for every token seen so far. Call Reset between corpora that must be
// vectorized independently.
//
// # Tokens
//
// A document is lower-cased and split on every single space. Repeated spaces
// yield empty tokens and punctuation stays attached to words.
package textvec
