package render

import (
	"encoding/hex"
	"strings"
)

// QuoteIdent wraps name in the dialect's quote pair, doubling the
// closing character wherever it appears inside the name. Empty names and
// names containing NUL are rejected: no dialect can quote them.
func QuoteIdent(name string, open, closing byte) (string, error) {
	if name == "" {
		return "", NewInvalidIdentifierError(name, "empty name")
	}
	if strings.IndexByte(name, 0) >= 0 {
		return "", NewInvalidIdentifierError(name, "contains NUL byte")
	}

	var b strings.Builder
	b.Grow(len(name) + 2)
	b.WriteByte(open)
	for i := 0; i < len(name); i++ {
		if name[i] == closing {
			b.WriteByte(closing)
		}
		b.WriteByte(name[i])
	}
	b.WriteByte(closing)
	return b.String(), nil
}

// EscapeString escapes a string for a single-quoted literal. Quotes are
// doubled everywhere; dialects in the MySQL family also escape
// backslashes, which would otherwise reopen the literal.
func EscapeString(s string, backslashes bool) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString("''")
		case '\\':
			if backslashes {
				b.WriteString(`\\`)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StringLiteral renders s as a single-quoted SQL string literal.
func StringLiteral(s string, backslashes bool) string {
	return "'" + EscapeString(s, backslashes) + "'"
}

// HexLiteral renders bytes as x'AB..' (MySQL, SQLite).
func HexLiteral(b []byte) string {
	return "x'" + hex.EncodeToString(b) + "'"
}

// PostgresByteaLiteral renders bytes as '\xAB..'.
func PostgresByteaLiteral(b []byte) string {
	return `'\x` + hex.EncodeToString(b) + `'`
}

// RawHexLiteral renders bytes as 0xAB.. (SQL Server).
func RawHexLiteral(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
