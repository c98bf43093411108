package tokenizer

import (
	"strconv"
	"strings"
)

// Unquote strips the delimiters of a quoted token and resolves escape
// sequences in its body. Tokens that are not quoted are returned unchanged.
func Unquote(token string) string {
	if !IsQuoted(token) {
		return token
	}
	return Unescape(token[1 : len(token)-1])
}

// Unescape resolves \n, \t, \r, \b, \f, \\, \", \' and \uXXXX. Any other
// backslash sequence, including a trailing backslash, is kept verbatim.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}

		next := s[i+1]
		switch next {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '\\', '"', '\'':
			b.WriteByte(next)
		case 'u':
			if r, ok := parseUnicode(s[i+2:]); ok {
				b.WriteRune(r)
				i += 5
				continue
			}
			b.WriteByte(c)
			b.WriteByte(next)
		default:
			b.WriteByte(c)
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}

// parseUnicode decodes four hex digits at the start of s.
func parseUnicode(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
