package schema

import (
	"fmt"
	"regexp"
	"strings"
)

var blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// StripComments removes /* */ block comments and // line comments from a
// schema document. Line structure is preserved. A // sequence inside a
// single-, double- or backtick-quoted string is left alone, so URLs and
// regexes in default values survive. The result is stable under repeated
// application.
func StripComments(text string) string {
	text = blockCommentRe.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		var quote byte
		for j := 0; j < len(line); j++ {
			c := line[j]
			if quote != 0 {
				if c == '\\' {
					j++ // skip escaped character
					continue
				}
				if c == quote {
					quote = 0
				}
				continue
			}
			switch c {
			case '\'', '"', '`':
				quote = c
			case '/':
				if j+1 < len(line) && line[j+1] == '/' {
					line = line[:j]
					j = len(line)
				}
			}
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// ExtractBalanced scans forward from start and returns the substring strictly
// between the first { and its matching }. A closer before any opener is
// ErrUnmatchedClosingBrace; running out of text while open is
// ErrUnclosedBraces.
func ExtractBalanced(text string, start int) (string, error) {
	depth := 0
	open := -1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			if depth == 0 {
				open = i
			}
			depth++
		case '}':
			depth--
			if depth < 0 {
				return "", fmt.Errorf("at offset %d: %w", i, ErrUnmatchedClosingBrace)
			}
			if depth == 0 {
				return text[open+1 : i], nil
			}
		}
	}
	return "", ErrUnclosedBraces
}

// SplitTopLevel splits text on delim occurrences that sit at bracket depth
// zero and outside any quoted string. Parts are trimmed; a trailing empty
// part from a terminal delimiter is dropped.
func SplitTopLevel(text string, delim byte) []string {
	var parts []string
	var quote byte
	depth := 0
	last := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--
		case delim:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(text[last:i]))
				last = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

// indexTopLevel returns the offset of the first delim at depth zero outside
// strings, or -1.
func indexTopLevel(text string, delim byte) int {
	var quote byte
	depth := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--
		case delim:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
