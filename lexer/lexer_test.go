package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sparksql/token"
)

type testToken struct {
	tok token.Token
	lit string
}

func tokens(src string) []testToken {
	var out []testToken
	for _, item := range Tokenize(src) {
		out = append(out, testToken{item.Token, item.Value})
	}
	return out
}

func TestNextToken(t *testing.T) {
	src := "SELECT a.b, `x``y` FROM t WHERE c <=> 1.5e3 -- done"
	require.Equal(t, []testToken{
		{token.SELECT, "SELECT"},
		{token.IDENT, "a"},
		{token.DOT, "."},
		{token.IDENT, "b"},
		{token.COMMA, ","},
		{token.IDENT, "x`y"},
		{token.FROM, "FROM"},
		{token.IDENT, "t"},
		{token.WHERE, "WHERE"},
		{token.IDENT, "c"},
		{token.NSEQ, "<=>"},
		{token.EXPONENT_VALUE, "1.5e3"},
		{token.TRIVIA_COMMENT, "-- done"},
		{token.EOF, ""},
	}, tokens(src))
}

func TestOperators(t *testing.T) {
	for _, tt := range []struct {
		src string
		tok token.Token
	}{
		{"=", token.EQ},
		{"==", token.EQ},
		{"<>", token.NEQ},
		{"!=", token.NEQJ},
		{"!>", token.LTE},
		{"!<", token.GTE},
		{"!", token.NOT},
		{"<=", token.LTE},
		{">=", token.GTE},
		{"||", token.CONCAT_PIPE},
		{"|", token.PIPE},
		{"->", token.ARROW},
		{"~", token.TILDE},
		{"^", token.HAT},
		{"&", token.AMPERSAND},
		{"?", token.ILLEGAL},
	} {
		items := Tokenize(tt.src)
		require.Len(t, items, 2, tt.src)
		require.Equal(t, tt.tok, items[0].Token, tt.src)
		require.Equal(t, tt.src, items[0].Value, tt.src)
	}
}

func TestNumbers(t *testing.T) {
	for _, tt := range []struct {
		src string
		tok token.Token
	}{
		{"42", token.INTEGER_VALUE},
		{"1.5", token.DECIMAL_VALUE},
		{".5", token.DECIMAL_VALUE},
		{"1.", token.DECIMAL_VALUE},
		{"1e10", token.EXPONENT_VALUE},
		{"1.5E-3", token.EXPONENT_VALUE},
		{"10L", token.BIGINT_LITERAL},
		{"10s", token.SMALLINT_LITERAL},
		{"10Y", token.TINYINT_LITERAL},
		{"1.5D", token.DOUBLE_LITERAL},
		{"1e3d", token.DOUBLE_LITERAL},
		{"1.5f", token.FLOAT_LITERAL},
		{"1.5BD", token.BIGDECIMAL_LITERAL},
		{"12abc", token.IDENT},
		{"1_a", token.IDENT},
	} {
		items := Tokenize(tt.src)
		require.Len(t, items, 2, tt.src)
		require.Equal(t, tt.tok, items[0].Token, tt.src)
		require.Equal(t, tt.src, items[0].Value, tt.src)
	}
}

func TestStrings(t *testing.T) {
	for _, tt := range []struct {
		src  string
		want string
	}{
		{`'plain'`, "plain"},
		{`"double"`, "double"},
		{`'it\'s'`, "it's"},
		{`'a\nb\tc'`, "a\nb\tc"},
		{`'\u0041'`, "A"},
		{`'\101'`, "A"},
		{`'\0'`, "\x00"},
		{`'50\%'`, `50\%`},
		{`'\q'`, "q"},
	} {
		items := Tokenize(tt.src)
		require.Equal(t, token.STRING, items[0].Token, tt.src)
		require.Equal(t, tt.want, items[0].Value, tt.src)
	}

	items := Tokenize(`'open`)
	require.Equal(t, token.ILLEGAL, items[0].Token)
}

func TestComments(t *testing.T) {
	require.Equal(t, []testToken{
		{token.INTEGER_VALUE, "1"},
		{token.TRIVIA_COMMENT, "/* a /* nested */ b */"},
		{token.INTEGER_VALUE, "2"},
		{token.EOF, ""},
	}, tokens("1 /* a /* nested */ b */ 2"))

	items := Tokenize("/* a /* b */")
	require.Equal(t, token.ILLEGAL, items[0].Token)
}

func TestHints(t *testing.T) {
	require.Equal(t, []testToken{
		{token.SELECT, "SELECT"},
		{token.HINT_START, "/*+"},
		{token.IDENT, "BROADCAST"},
		{token.LPAREN, "("},
		{token.IDENT, "t"},
		{token.RPAREN, ")"},
		{token.HINT_END, "*/"},
		{token.ASTERISK, "*"},
		{token.EOF, ""},
	}, tokens("SELECT /*+ BROADCAST(t) */ *"))
}

func TestKeywordAliases(t *testing.T) {
	items := Tokenize("temp Regexp schemas")
	require.Equal(t, token.TEMPORARY, items[0].Token)
	require.Equal(t, "temp", items[0].Value)
	require.Equal(t, token.RLIKE, items[1].Token)
	require.Equal(t, token.DATABASES, items[2].Token)
}

func TestPositions(t *testing.T) {
	items := Tokenize("SELECT\n  a")
	require.Equal(t, token.Position{Offset: 0, Line: 1, Column: 1}, items[0].Pos)
	require.Equal(t, token.Position{Offset: 9, Line: 2, Column: 3}, items[1].Pos)
}

func TestTokenStream(t *testing.T) {
	s := NewTokenStream("a -- c\n, b")
	require.Equal(t, "a", s.Peek().Value)
	require.Equal(t, token.COMMA, s.PeekN(1).Token)
	require.Equal(t, token.EOF, s.PeekN(10).Token)

	m := s.Mark()
	s.Next()
	s.Next()
	require.Equal(t, "b", s.Peek().Value)
	require.Equal(t, 9, s.Offset())
	s.Reset(m)
	require.Equal(t, "a", s.Peek().Value)

	for i := 0; i < 5; i++ {
		s.Next()
	}
	require.Equal(t, token.EOF, s.Next().Token)
	require.Equal(t, "a -- c\n, b", s.Source())
}

func TestTokenStreamFromItems(t *testing.T) {
	s := NewTokenStreamFromItems("", []Item{{Token: token.IDENT, Value: "x"}})
	require.Equal(t, "x", s.Next().Value)
	require.Equal(t, token.EOF, s.Next().Token)

	s = NewTokenStreamFromItems("", nil)
	require.Equal(t, token.EOF, s.Peek().Token)
}
