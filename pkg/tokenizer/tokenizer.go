// Package tokenizer splits raw command lines into argument tokens.
//
// Quoted spans ('...' or "...") become single tokens that keep their quote
// characters. Plain tokens come first, in line order, followed by the quoted
// tokens in the order they were extracted. Commands such as echo rely on that
// layout: the first plain token after the command name is a path and every
// quoted token is a payload.
//
// The relocation of quoted tokens to the end is kept for compatibility with
// existing scripts even though it looks accidental. Do not "fix" it without
// updating every command that depends on token positions.
package tokenizer

import (
	"regexp"
	"strings"
)

var (
	doubleQuoted = regexp.MustCompile(`(?s)".*?"`)
	singleQuoted = regexp.MustCompile(`(?s)'.*?'`)
)

// Tokenize splits line into tokens.
//
// Extraction repeatedly picks whichever quote character occurs first in the
// remaining text and removes the shortest span it opens. It stops at the first
// quote that has no closing partner; that quote then stays in the line as
// ordinary text. The residue is split on whitespace runs.
func Tokenize(line string) []string {
	var quoted []string
	rest := line

	for {
		pattern := firstQuotePattern(rest)
		if pattern == nil {
			break
		}
		loc := pattern.FindStringIndex(rest)
		if loc == nil {
			break
		}
		quoted = append(quoted, rest[loc[0]:loc[1]])
		rest = rest[:loc[0]] + rest[loc[1]:]
	}

	return append(strings.Fields(rest), quoted...)
}

// firstQuotePattern returns the span pattern for the quote character that
// appears first in s, or nil when s has no quotes.
func firstQuotePattern(s string) *regexp.Regexp {
	dq := strings.IndexByte(s, '"')
	sq := strings.IndexByte(s, '\'')
	switch {
	case dq < 0 && sq < 0:
		return nil
	case sq < 0 || (dq >= 0 && dq < sq):
		return doubleQuoted
	default:
		return singleQuoted
	}
}

// IsQuoted reports whether token is a quoted span produced by Tokenize.
func IsQuoted(token string) bool {
	if len(token) < 2 {
		return false
	}
	first, last := token[0], token[len(token)-1]
	return (first == '"' || first == '\'') && first == last
}
