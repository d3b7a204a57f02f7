package domain

import "strings"

// NormalizeTitle lowercases, collapses inner whitespace and trims.
func NormalizeTitle(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// AnswerMatches compares a free-text answer with the stored one, ignoring case and
// surrounding whitespace. Inner whitespace is significant.
func AnswerMatches(expected, given string) bool {
	return strings.ToLower(strings.TrimSpace(expected)) == strings.ToLower(strings.TrimSpace(given))
}

// TitleMatches is the song-guess comparison.
func TitleMatches(title, guess string) bool {
	return NormalizeTitle(title) == NormalizeTitle(guess)
}
