// Package normalize provides SQL normalization functions for comparing
// semantically equivalent Spark SQL statements that differ in spelling.
package normalize

import (
	"regexp"
	"strings"

	"github.com/sqlc-dev/sparksql/lexer"
	"github.com/sqlc-dev/sparksql/token"
)

var (
	whitespaceRegex    = regexp.MustCompile(`\s+`)
	innerJoinRegex     = regexp.MustCompile(`\bINNER JOIN\b`)
	outerJoinRegex     = regexp.MustCompile(`\b(LEFT|RIGHT|FULL) OUTER JOIN\b`)
	insertTableRegex   = regexp.MustCompile(`\bINSERT INTO TABLE\b`)
	unionDistinctRegex = regexp.MustCompile(`\b(UNION|EXCEPT|INTERSECT|MINUS) DISTINCT\b`)
	ascRegex           = regexp.MustCompile(` ASC\b`)
)

// Whitespace collapses all whitespace sequences to a single space
// and trims leading/trailing whitespace.
func Whitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SQL returns a canonical spelling of s: comments dropped, one space
// between tokens, keywords upper-cased, strings single-quoted, back quotes
// removed and trailing semicolons stripped. Two statements that differ only
// in layout or in optional noise words normalize to the same text.
func SQL(s string) string {
	items := lexer.Tokenize(s)
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.Token == token.EOF {
			break
		}
		if item.Token == token.TRIVIA_COMMENT || item.Token == token.WHITESPACE {
			continue
		}
		parts = append(parts, tokenText(item))
	}
	for len(parts) > 0 && parts[len(parts)-1] == ";" {
		parts = parts[:len(parts)-1]
	}
	out := strings.Join(parts, " ")
	out = innerJoinRegex.ReplaceAllString(out, "JOIN")
	out = outerJoinRegex.ReplaceAllString(out, "$1 JOIN")
	out = insertTableRegex.ReplaceAllString(out, "INSERT INTO")
	out = unionDistinctRegex.ReplaceAllString(out, "$1")
	out = ascRegex.ReplaceAllString(out, "")
	return out
}

func tokenText(item lexer.Item) string {
	switch {
	case item.Token == token.STRING:
		return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(item.Value) + "'"
	case item.Token == token.IDENT:
		return item.Value
	case item.Token == token.EQ:
		return "="
	case item.Token.IsNumeric():
		return strings.ToUpper(item.Value)
	case item.Token.IsKeyword():
		return item.Token.String()
	}
	return item.Value
}

// StripComments removes SQL comments from a query string.
// It handles:
//   - Line comments: -- to end of line
//   - Block comments: /* ... */ with nesting support
//
// Hints (/*+ ... */) are kept.
func StripComments(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	i := 0
	for i < len(s) {
		// Check for line comment: --
		if i+1 < len(s) && s[i] == '-' && s[i+1] == '-' {
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		}

		// Check for block comment: /* ... */
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' && !(i+2 < len(s) && s[i+2] == '+') {
			depth := 1
			i += 2
			for i < len(s) && depth > 0 {
				if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
					depth++
					i += 2
				} else if i+1 < len(s) && s[i] == '*' && s[i+1] == '/' {
					depth--
					i += 2
				} else {
					i++
				}
			}
			continue
		}

		// Quoted text is copied as is, backslash escapes included.
		if s[i] == '\'' || s[i] == '"' || s[i] == '`' {
			quote := s[i]
			result.WriteByte(s[i])
			i++
			for i < len(s) {
				ch := s[i]
				if ch == '\\' && quote != '`' && i+1 < len(s) {
					result.WriteByte(ch)
					result.WriteByte(s[i+1])
					i += 2
					continue
				}
				result.WriteByte(ch)
				i++
				if ch == quote {
					break
				}
			}
			continue
		}

		result.WriteByte(s[i])
		i++
	}

	return result.String()
}
