// Package tokenizer splits text into words, validates them and filters stop words.
package tokenizer

// Tokenize converts a string into a slice of tokens.
// Only the ASCII space separates tokens; runs of spaces collapse and
// leading/trailing spaces produce no empty tokens. Tabs and newlines stay
// inside the token they appear in.
func Tokenize(text string) []string {
	tokens := make([]string, 0) // Initialize as empty slice, not nil
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			if start >= 0 {
				tokens = append(tokens, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// IsValidWord reports whether word is free of C0 control characters (code points 0..31).
// Multi-byte UTF-8 sequences never contain bytes below 0x20, so a byte scan is exact.
func IsValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < ' ' {
			return false
		}
	}
	return true
}
