package terror

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func TestErrCode(t *testing.T) {
	require.Equal(t, "parser", ClassParser.String())
	require.Equal(t, "lexer", ClassLexer.String())
	require.Equal(t, "config", ClassConfig.String())
	require.Equal(t, "42", ErrClass(42).String())
}

func TestTError(t *testing.T) {
	err := ClassParser.New(1001, "unexpected token %q", "FROM")
	require.Equal(t, `[parser:1001]unexpected token "FROM"`, err.Error())
	require.True(t, ClassParser.Equal(err, 1001))
	require.False(t, ClassParser.Equal(err, 1002))
	require.False(t, ClassLexer.Equal(err, 1001))
	require.True(t, ClassParser.EqualClass(err))
	require.True(t, ClassParser.NotEqual(errors.New("plain"), 1001))
	require.False(t, ClassParser.EqualClass(nil))

	traced := errors.Trace(err)
	require.True(t, ClassParser.Equal(traced, 1001))
	require.True(t, err.Equal(traced))

	annotated := errors.Annotatef(err, "statement %d", 2)
	require.True(t, ClassParser.Equal(annotated, 1001))
}

func TestGen(t *testing.T) {
	base := ClassParser.New(1002, "invalid literal")
	gen := base.Gen("literal %s out of range", "128Y")
	require.Equal(t, "literal 128Y out of range", gen.Message)
	require.Equal(t, "invalid literal", base.Message)
	require.True(t, base.Equal(gen))
}
