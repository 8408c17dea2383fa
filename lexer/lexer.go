// Package lexer implements the Chef lexer/normalizer: it
// turns raw recipe text into an ordered list of trimmed, period-delimited
// statement strings, preserving the blank sentinel statements the
// section state machine uses as section delimiters.
package lexer

import "strings"

// Normalize splits source into statements: split on any line terminator,
// trim each line, then split each non-empty line on "." surrounded by
// optional whitespace, flattening the result back into one ordered
// sequence. A blank line becomes a single empty-string statement, which
// the parser's section state machine consumes as the delimiter between
// sections.
func Normalize(source string) []string {
	lines := splitLines(source)

	statements := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			statements = append(statements, "")
			continue
		}
		statements = append(statements, splitStatements(trimmed)...)
	}
	return statements
}

// splitLines splits on \r\n, \r, and \n without depending on the order
// callers normalize them in. A final terminator ends the last line
// rather than opening an empty one.
func splitLines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")
	source = strings.TrimSuffix(source, "\n")
	return strings.Split(source, "\n")
}

// splitStatements splits a single non-empty line on "." surrounded by
// optional whitespace, dropping any empty segments produced by a
// trailing separator, and trimming each segment.
func splitStatements(line string) []string {
	var out []string
	var b strings.Builder
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '.' {
			out = appendSegment(out, b.String())
			b.Reset()
			continue
		}
		b.WriteRune(runes[i])
	}
	out = appendSegment(out, b.String())
	return out
}

func appendSegment(out []string, seg string) []string {
	seg = strings.TrimSpace(seg)
	if seg == "" {
		return out
	}
	return append(out, seg)
}
