// Package lexer implements a lexer for Spark SQL.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sqlc-dev/sparksql/token"
)

// Lexer tokenizes Spark SQL input.
type Lexer struct {
	src    string
	ch     rune // current character
	width  int  // byte width of ch
	pos    token.Position
	eof    bool
	inHint bool
	upper  cases.Caser
}

// Item represents a lexical token with its value and position.
//
// For strings and back-quoted identifiers Value holds the unescaped text;
// for everything else it holds the source text.
type Item struct {
	Token  token.Token
	Value  string
	Pos    token.Position
	Quoted bool // true if this identifier was back-quoted
}

// New creates a new Lexer over src.
func New(src string) *Lexer {
	l := &Lexer{
		src:   src,
		pos:   token.Position{Offset: 0, Line: 1, Column: 1},
		upper: cases.Upper(language.Und),
	}
	l.load()
	return l
}

// load decodes the rune at the current offset without moving.
func (l *Lexer) load() {
	if l.pos.Offset >= len(l.src) {
		l.ch = 0
		l.width = 0
		l.eof = true
		return
	}
	r, size := utf8.DecodeRuneInString(l.src[l.pos.Offset:])
	l.ch = r
	l.width = size
}

func (l *Lexer) readChar() {
	if l.eof {
		return
	}
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.pos.Offset += l.width
	l.load()
}

func (l *Lexer) peekChar() rune {
	return l.peekAt(1)
}

// peekAt returns the rune n characters after the current one.
func (l *Lexer) peekAt(n int) rune {
	off := l.pos.Offset + l.width
	for ; n > 1; n-- {
		if off >= len(l.src) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(l.src[off:])
		off += size
	}
	if off >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[off:])
	return r
}

func (l *Lexer) skipWhitespace() {
	// Skip whitespace and BOM (byte order mark U+FEFF)
	for !l.eof && (unicode.IsSpace(l.ch) || l.ch == '\uFEFF') {
		l.readChar()
	}
}

func (l *Lexer) emit(tok token.Token, pos token.Position, n int) Item {
	start := pos.Offset
	for i := 0; i < n; i++ {
		l.readChar()
	}
	return Item{Token: tok, Value: l.src[start:l.pos.Offset], Pos: pos}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Item {
	l.skipWhitespace()

	pos := l.pos

	if l.eof {
		return Item{Token: token.EOF, Value: "", Pos: pos}
	}

	// Handle comments and hints
	if l.ch == '-' && l.peekChar() == '-' {
		return l.readLineComment()
	}
	if l.ch == '/' && l.peekChar() == '*' {
		if l.peekAt(2) == '+' && !l.inHint {
			l.inHint = true
			return l.emit(token.HINT_START, pos, 3)
		}
		return l.readBlockComment()
	}
	if l.inHint && l.ch == '*' && l.peekChar() == '/' {
		l.inHint = false
		return l.emit(token.HINT_END, pos, 2)
	}

	switch l.ch {
	case '+':
		return l.emit(token.PLUS, pos, 1)
	case '-':
		if l.peekChar() == '>' {
			return l.emit(token.ARROW, pos, 2)
		}
		return l.emit(token.MINUS, pos, 1)
	case '*':
		return l.emit(token.ASTERISK, pos, 1)
	case '/':
		return l.emit(token.SLASH, pos, 1)
	case '%':
		return l.emit(token.PERCENT, pos, 1)
	case '~':
		return l.emit(token.TILDE, pos, 1)
	case '&':
		return l.emit(token.AMPERSAND, pos, 1)
	case '^':
		return l.emit(token.HAT, pos, 1)
	case '|':
		if l.peekChar() == '|' {
			return l.emit(token.CONCAT_PIPE, pos, 2)
		}
		return l.emit(token.PIPE, pos, 1)
	case '=':
		if l.peekChar() == '=' {
			return l.emit(token.EQ, pos, 2)
		}
		return l.emit(token.EQ, pos, 1)
	case '!':
		switch l.peekChar() {
		case '=':
			return l.emit(token.NEQJ, pos, 2)
		case '>':
			return l.emit(token.LTE, pos, 2)
		case '<':
			return l.emit(token.GTE, pos, 2)
		}
		// A bare ! is an alias of NOT.
		return l.emit(token.NOT, pos, 1)
	case '<':
		switch l.peekChar() {
		case '=':
			if l.peekAt(2) == '>' {
				return l.emit(token.NSEQ, pos, 3)
			}
			return l.emit(token.LTE, pos, 2)
		case '>':
			return l.emit(token.NEQ, pos, 2)
		}
		return l.emit(token.LT, pos, 1)
	case '>':
		if l.peekChar() == '=' {
			return l.emit(token.GTE, pos, 2)
		}
		return l.emit(token.GT, pos, 1)
	case ':':
		return l.emit(token.COLON, pos, 1)
	case '(':
		return l.emit(token.LPAREN, pos, 1)
	case ')':
		return l.emit(token.RPAREN, pos, 1)
	case '[':
		return l.emit(token.LBRACKET, pos, 1)
	case ']':
		return l.emit(token.RBRACKET, pos, 1)
	case ',':
		return l.emit(token.COMMA, pos, 1)
	case ';':
		return l.emit(token.SEMICOLON, pos, 1)
	case '.':
		if isDigit(l.peekChar()) {
			if item, ok := l.readNumber(); ok {
				return item
			}
		}
		return l.emit(token.DOT, pos, 1)
	case '\'', '"':
		return l.readString(l.ch)
	case '`':
		return l.readBacktickIdentifier()
	default:
		if isDigit(l.ch) {
			return l.readNumberOrIdent()
		}
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		return l.emit(token.ILLEGAL, pos, 1)
	}
}

func (l *Lexer) readLineComment() Item {
	pos := l.pos
	for !l.eof && l.ch != '\n' {
		l.readChar()
	}
	return Item{Token: token.TRIVIA_COMMENT, Value: l.src[pos.Offset:l.pos.Offset], Pos: pos}
}

func (l *Lexer) readBlockComment() Item {
	pos := l.pos
	// Skip /*
	l.readChar()
	l.readChar()

	// Bracketed comments nest.
	nesting := 1
	for !l.eof && nesting > 0 {
		switch {
		case l.ch == '*' && l.peekChar() == '/':
			l.readChar()
			l.readChar()
			nesting--
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			nesting++
		default:
			l.readChar()
		}
	}
	text := l.src[pos.Offset:l.pos.Offset]
	if nesting > 0 {
		return Item{Token: token.ILLEGAL, Value: text, Pos: pos}
	}
	return Item{Token: token.TRIVIA_COMMENT, Value: text, Pos: pos}
}

// readString reads a single or double quoted string. Backslash escapes
// follow the Spark rules; there is no doubled-quote escape.
func (l *Lexer) readString(quote rune) Item {
	pos := l.pos
	var sb strings.Builder
	l.readChar() // skip opening quote

	for {
		if l.eof {
			return Item{Token: token.ILLEGAL, Value: l.src[pos.Offset:l.pos.Offset], Pos: pos}
		}
		if l.ch == quote {
			l.readChar() // skip closing quote
			break
		}
		if l.ch == '\\' {
			l.readChar() // consume backslash
			if l.eof {
				continue
			}
			l.readEscape(&sb)
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.STRING, Value: sb.String(), Pos: pos}
}

// readEscape interprets the character following a backslash.
func (l *Lexer) readEscape(sb *strings.Builder) {
	switch l.ch {
	case '0', '1', '2', '3':
		// Octal \NNN
		if isOctal(l.peekAt(1)) && isOctal(l.peekAt(2)) {
			v := (l.ch-'0')*64 + (l.peekAt(1)-'0')*8 + (l.peekAt(2) - '0')
			sb.WriteRune(v)
			l.readChar()
			l.readChar()
			l.readChar()
			return
		}
		if l.ch == '0' {
			sb.WriteRune('\x00')
		} else {
			sb.WriteRune(l.ch)
		}
	case 'u':
		if r, ok := l.unicodeEscape(); ok {
			sb.WriteRune(r)
			for i := 0; i < 5; i++ {
				l.readChar()
			}
			return
		}
		sb.WriteRune('u')
	case 'b':
		sb.WriteRune('\b')
	case 'n':
		sb.WriteRune('\n')
	case 'r':
		sb.WriteRune('\r')
	case 't':
		sb.WriteRune('\t')
	case 'Z':
		sb.WriteRune('\x1a')
	case '%', '_':
		// Kept escaped so LIKE patterns see them literally.
		sb.WriteRune('\\')
		sb.WriteRune(l.ch)
	default:
		sb.WriteRune(l.ch)
	}
	l.readChar()
}

func (l *Lexer) unicodeEscape() (rune, bool) {
	var v rune
	for i := 1; i <= 4; i++ {
		h := hexValue(l.peekAt(i))
		if h < 0 {
			return 0, false
		}
		v = v*16 + rune(h)
	}
	return v, true
}

func hexValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return -1
}

func (l *Lexer) readBacktickIdentifier() Item {
	pos := l.pos
	var sb strings.Builder
	l.readChar() // skip opening backtick

	for {
		if l.eof {
			return Item{Token: token.ILLEGAL, Value: l.src[pos.Offset:l.pos.Offset], Pos: pos}
		}
		if l.ch == '`' {
			if l.peekChar() == '`' {
				sb.WriteRune('`')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			break
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.IDENT, Value: sb.String(), Pos: pos, Quoted: true}
}

// readNumberOrIdent handles words that start with a digit. A word such as
// 12abc that is not a well-formed number is an identifier.
func (l *Lexer) readNumberOrIdent() Item {
	if item, ok := l.readNumber(); ok {
		return item
	}
	return l.readIdentifier()
}

// readNumber scans the longest numeric literal at the current position and
// reports false, consuming nothing, when the text is not a number.
func (l *Lexer) readNumber() (Item, bool) {
	pos := l.pos
	src := l.src
	i := pos.Offset

	digits := func() int {
		start := i
		for i < len(src) && isDigit(rune(src[i])) {
			i++
		}
		return i - start
	}

	intDigits := digits()
	hasDot := false
	if i < len(src) && src[i] == '.' {
		save := i
		i++
		frac := digits()
		if intDigits == 0 && frac == 0 {
			i = save
		} else {
			hasDot = true
		}
	}
	if intDigits == 0 && !hasDot {
		return Item{}, false
	}

	hasExp := false
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		k := j
		for k < len(src) && isDigit(rune(src[k])) {
			k++
		}
		if k > j {
			i = k
			hasExp = true
		}
	}

	tok := token.INTEGER_VALUE
	switch {
	case hasExp:
		tok = token.EXPONENT_VALUE
	case hasDot:
		tok = token.DECIMAL_VALUE
	}

	rest := src[i:]
	switch {
	case hasPrefixFold(rest, "BD"):
		tok = token.BIGDECIMAL_LITERAL
		i += 2
	case hasPrefixFold(rest, "D"):
		tok = token.DOUBLE_LITERAL
		i++
	case hasPrefixFold(rest, "F"):
		tok = token.FLOAT_LITERAL
		i++
	case !hasDot && !hasExp && hasPrefixFold(rest, "L"):
		tok = token.BIGINT_LITERAL
		i++
	case !hasDot && !hasExp && hasPrefixFold(rest, "S"):
		tok = token.SMALLINT_LITERAL
		i++
	case !hasDot && !hasExp && hasPrefixFold(rest, "Y"):
		tok = token.TINYINT_LITERAL
		i++
	}

	if i < len(src) {
		next, _ := utf8.DecodeRuneInString(src[i:])
		if isIdentChar(next) {
			if hasDot {
				// Not a valid decimal. Fall back to the integer part, if any.
				if intDigits == 0 {
					return Item{}, false
				}
				i = pos.Offset + intDigits
				tok = token.INTEGER_VALUE
			} else {
				return Item{}, false
			}
		}
	}

	for l.pos.Offset < i {
		l.readChar()
	}
	return Item{Token: tok, Value: src[pos.Offset:i], Pos: pos}, true
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func (l *Lexer) readIdentifier() Item {
	pos := l.pos
	for !l.eof && isIdentChar(l.ch) {
		l.readChar()
	}
	ident := l.src[pos.Offset:l.pos.Offset]
	tok := token.Lookup(l.upper.String(ident))
	return Item{Token: tok, Value: ident, Pos: pos}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isOctal(ch rune) bool {
	return ch >= '0' && ch <= '7'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentChar(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// Tokenize returns all tokens from src, including comments, ending with EOF.
func Tokenize(src string) []Item {
	l := New(src)
	var items []Item
	for {
		item := l.NextToken()
		items = append(items, item)
		if item.Token == token.EOF {
			break
		}
	}
	return items
}
