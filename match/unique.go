package match

import "github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"

// wordAndChunkMatches delegates to token.SignificantMatches, kept as a
// separate call site so the uniqueness rule in isUnique reads independently
// of the tokenizer's regex details.
func wordAndChunkMatches(text string) []string {
	return token.SignificantMatches(text)
}
