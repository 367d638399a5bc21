// Package query implements the ad-hoc result-database query operation: a
// read-only statement classifier and a direct SQLite executor. The guard is
// a security boundary; the database driver itself does not enforce
// read-only access.
package query

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ovtools/ovmcp/internal/envelope"
)

// allowedLeading are the statement-leading keywords accepted as read-only.
var allowedLeading = map[string]bool{
	"SELECT": true,
	"WITH":   true,
	"VALUES": true,
}

// mutatingKeywords may not appear at the top level of a statement. WITH is
// allowed to lead a statement, but SQLite permits WITH ... INSERT, so the
// whole top level is scanned, not just the first keyword.
var mutatingKeywords = map[string]bool{
	"INSERT":   true,
	"UPDATE":   true,
	"DELETE":   true,
	"REPLACE":  true,
	"DROP":     true,
	"ALTER":    true,
	"CREATE":   true,
	"ATTACH":   true,
	"DETACH":   true,
	"PRAGMA":   true,
	"VACUUM":   true,
	"REINDEX":  true,
	"BEGIN":    true,
	"COMMIT":   true,
	"ROLLBACK": true,
	"SAVEPOINT": true,
	"RELEASE":  true,
	"TRUNCATE": true,
	"GRANT":    true,
	"REVOKE":   true,
	"MERGE":    true,
}

// EnsureReadOnly rejects any statement text that is not a single read-only
// SELECT. Comments are stripped and string/identifier literals are honored
// before classification, so statement-prefix tricks (leading comments,
// `;`-separated payloads, quoted keywords) do not get through.
func EnsureReadOnly(sql string) error {
	_, err := ReadOnlyStatement(sql)
	return err
}

// ReadOnlyStatement classifies the input like EnsureReadOnly and returns
// the single comment-stripped statement for execution.
func ReadOnlyStatement(sql string) (string, error) {
	stmts, err := splitStatements(sql)
	if err != nil {
		return "", envelope.Errorf(envelope.DisallowedOperation, "statement rejected: %v", err)
	}
	if len(stmts) == 0 {
		return "", envelope.Errorf(envelope.DisallowedOperation, "statement is empty")
	}
	if len(stmts) > 1 {
		return "", envelope.Errorf(envelope.DisallowedOperation,
			"multiple statements are not allowed; submit one SELECT at a time")
	}

	tokens, err := topLevelKeywords(stmts[0])
	if err != nil {
		return "", envelope.Errorf(envelope.DisallowedOperation, "statement rejected: %v", err)
	}
	if len(tokens) == 0 {
		return "", envelope.Errorf(envelope.DisallowedOperation, "statement has no recognizable form")
	}

	if !allowedLeading[tokens[0].word] {
		return "", envelope.Errorf(envelope.DisallowedOperation,
			"only read-only SELECT statements are allowed, got %s", tokens[0].word)
	}

	for _, tok := range tokens {
		if !mutatingKeywords[tok.word] {
			continue
		}
		// replace(...) is also a scalar function; a call is harmless.
		if tok.word == "REPLACE" && tok.fnCall {
			continue
		}
		return "", envelope.Errorf(envelope.DisallowedOperation,
			"statement contains disallowed keyword %s", tok.word)
	}

	return stmts[0], nil
}

// splitStatements strips comments and splits the input on semicolons that
// sit outside string and identifier literals. Blank statements (e.g. a
// trailing semicolon) are dropped.
func splitStatements(sql string) ([]string, error) {
	var stmts []string
	var cur strings.Builder

	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			stmts = append(stmts, s)
		}
		cur.Reset()
	}

	r := []rune(sql)
	for i := 0; i < len(r); i++ {
		c := r[i]
		switch {
		case c == '-' && i+1 < len(r) && r[i+1] == '-':
			for i < len(r) && r[i] != '\n' {
				i++
			}
			cur.WriteRune(' ')

		case c == '/' && i+1 < len(r) && r[i+1] == '*':
			end := -1
			for j := i + 2; j+1 < len(r); j++ {
				if r[j] == '*' && r[j+1] == '/' {
					end = j + 1
					break
				}
			}
			if end < 0 {
				return nil, fmt.Errorf("unterminated block comment")
			}
			i = end
			cur.WriteRune(' ')

		case c == '\'' || c == '"' || c == '`':
			lit, consumed, err := scanQuoted(r[i:], c)
			if err != nil {
				return nil, err
			}
			cur.WriteString(lit)
			i += consumed - 1

		case c == '[':
			end := -1
			for j := i + 1; j < len(r); j++ {
				if r[j] == ']' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, fmt.Errorf("unterminated bracketed identifier")
			}
			cur.WriteString(string(r[i : end+1]))
			i = end

		case c == ';':
			flush()

		default:
			cur.WriteRune(c)
		}
	}
	flush()

	return stmts, nil
}

// scanQuoted consumes a quoted literal starting at r[0] (which must be the
// opening quote). Doubled quotes are the escape form in SQLite.
func scanQuoted(r []rune, quote rune) (string, int, error) {
	for i := 1; i < len(r); i++ {
		if r[i] != quote {
			continue
		}
		if i+1 < len(r) && r[i+1] == quote {
			i++ // escaped quote, keep scanning
			continue
		}
		return string(r[:i+1]), i + 1, nil
	}
	return "", 0, fmt.Errorf("unterminated string literal")
}

type keywordToken struct {
	word   string
	fnCall bool
}

// topLevelKeywords returns the uppercase bare words of a statement that sit
// at parenthesis depth zero, outside literals. Subquery internals are
// intentionally invisible: parenthesized SELECTs cannot mutate.
func topLevelKeywords(stmt string) ([]keywordToken, error) {
	var tokens []keywordToken
	depth := 0

	r := []rune(stmt)
	for i := 0; i < len(r); i++ {
		c := r[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			_, consumed, err := scanQuoted(r[i:], c)
			if err != nil {
				return nil, err
			}
			i += consumed - 1

		case c == '[':
			for i < len(r) && r[i] != ']' {
				i++
			}

		case c == '(':
			depth++

		case c == ')':
			depth--

		case depth == 0 && (unicode.IsLetter(c) || c == '_'):
			start := i
			for i < len(r) && (unicode.IsLetter(r[i]) || unicode.IsDigit(r[i]) || r[i] == '_') {
				i++
			}
			word := strings.ToUpper(string(r[start:i]))

			// Peek past whitespace for a call parenthesis.
			j := i
			for j < len(r) && unicode.IsSpace(r[j]) {
				j++
			}
			tokens = append(tokens, keywordToken{
				word:   word,
				fnCall: j < len(r) && r[j] == '(',
			})
			i--
		}
	}

	return tokens, nil
}
