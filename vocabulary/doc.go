// Package vocabulary turns raw documents into tokens, a stable vocabulary and a
// dense term count matrix.
//
// A Builder owns one core.Vocabulary. Every call to BuildVocabulary or
// CountMatrix extends it with tokens not seen before, in first-seen order;
// indices are never reassigned. Call Reset to start over with an empty
// vocabulary when each corpus has to be vectorized in isolation.
//
// # Usage
//
//	b := vocabulary.NewBuilder()
//	counts, err := b.CountMatrix([]string{"Crock Pot Pasta", "Pasta Pomodoro"})
//	if err != nil {
//	    return err
//	}
//	names := b.FeatureNames() // [crock pot pasta pomodoro]
//
// A Builder is not safe for concurrent use.
package vocabulary
