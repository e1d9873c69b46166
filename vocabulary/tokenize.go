package vocabulary

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator is the only token delimiter. Runs of separators are not collapsed.
const Separator = " "

// Tokenize lower-cases document and splits it on every single space.
//
// Consecutive, leading or trailing spaces produce empty tokens and an empty
// document produces one empty token. Punctuation stays attached, so "bar."
// and "bar" are different tokens.
func Tokenize(document string) []string {
	lower := cases.Lower(language.Und).String(document)
	return strings.Split(lower, Separator)
}
