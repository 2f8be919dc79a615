package lexer

import "github.com/sqlc-dev/sparksql/token"

// TokenStream is the peekable token source the parser reads from. Comments
// and whitespace are dropped; the final item is always EOF.
type TokenStream struct {
	src   string
	items []Item
	head  int
}

// Mark is an opaque position in a TokenStream.
type Mark struct {
	head int
}

// NewTokenStream lexes src into a TokenStream.
func NewTokenStream(src string) *TokenStream {
	l := New(src)
	s := &TokenStream{src: src}
	for {
		item := l.NextToken()
		if item.Token == token.TRIVIA_COMMENT || item.Token == token.WHITESPACE {
			continue
		}
		s.items = append(s.items, item)
		if item.Token == token.EOF {
			break
		}
	}
	return s
}

// NewTokenStreamFromItems wraps already lexed items. src is used for raw
// text extraction and may be empty.
func NewTokenStreamFromItems(src string, items []Item) *TokenStream {
	s := &TokenStream{src: src}
	for _, item := range items {
		if item.Token == token.TRIVIA_COMMENT || item.Token == token.WHITESPACE {
			continue
		}
		s.items = append(s.items, item)
		if item.Token == token.EOF {
			break
		}
	}
	if len(s.items) == 0 || s.items[len(s.items)-1].Token != token.EOF {
		var pos token.Position
		if len(s.items) > 0 {
			pos = s.items[len(s.items)-1].Pos
		}
		s.items = append(s.items, Item{Token: token.EOF, Pos: pos})
	}
	return s
}

// Peek returns the next token without consuming it.
func (s *TokenStream) Peek() Item {
	return s.items[s.head]
}

// PeekN returns the token n positions ahead (0 is the next token). Peeking
// past the end yields EOF.
func (s *TokenStream) PeekN(n int) Item {
	if i := s.head + n; i < len(s.items) {
		return s.items[i]
	}
	return s.items[len(s.items)-1]
}

// Next consumes and returns the next token. At EOF it keeps returning EOF.
func (s *TokenStream) Next() Item {
	item := s.items[s.head]
	if s.head < len(s.items)-1 {
		s.head++
	}
	return item
}

// Mark records the current position for a later Reset.
func (s *TokenStream) Mark() Mark {
	return Mark{head: s.head}
}

// Reset rewinds the stream to m.
func (s *TokenStream) Reset(m Mark) {
	s.head = m.head
}

// Source returns the text the stream was built from.
func (s *TokenStream) Source() string {
	return s.src
}

// Offset returns the byte offset of the next token.
func (s *TokenStream) Offset() int {
	return s.items[s.head].Pos.Offset
}
