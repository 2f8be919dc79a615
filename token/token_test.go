package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	require.Equal(t, SELECT, Lookup("SELECT"))
	require.Equal(t, TEMPORARY, Lookup("TEMP"))
	require.Equal(t, RLIKE, Lookup("REGEXP"))
	require.Equal(t, IDENT, Lookup("select"))
	require.Equal(t, IDENT, Lookup("PLAIN_NAME"))
}

func TestTokenKinds(t *testing.T) {
	require.True(t, SELECT.IsKeyword())
	require.False(t, IDENT.IsKeyword())
	require.False(t, EOF.IsKeyword())
	require.True(t, INTEGER_VALUE.IsNumeric())
	require.True(t, BIGDECIMAL_LITERAL.IsNumeric())
	require.False(t, STRING.IsNumeric())
	require.Equal(t, "SELECT", SELECT.String())
	require.Equal(t, "", Token(-1).String())
}

func TestKeywordsHaveSpellings(t *testing.T) {
	for i := keyword_beg + 1; i < keyword_end; i++ {
		require.NotEmpty(t, i.String(), "keyword %d", i)
		require.Equal(t, i, Lookup(i.String()))
	}
}

func TestReservation(t *testing.T) {
	require.Equal(t, AlwaysReserved, Reservation(JOIN))
	require.Equal(t, StrictNonReserved, Reservation(ANTI))
	require.Equal(t, StrictNonReserved, Reservation(SETMINUS))
	require.Equal(t, AlwaysReserved, Reservation(LATERAL))
	require.Equal(t, AnsiReserved, Reservation(SELECT))
	require.Equal(t, NonReserved, Reservation(TABLES))
	require.Equal(t, NonReserved, Reservation(IDENT))
	require.Equal(t, "reserved", AlwaysReserved.String())
	require.Equal(t, "strict-non-reserved", StrictNonReserved.String())
	require.Equal(t, "unknown", Category(9).String())
}

func TestCanBeIdentifier(t *testing.T) {
	for _, tt := range []struct {
		tok          Token
		ansi, strict bool
		want         bool
	}{
		{SELECT, false, false, true},
		{SELECT, false, true, true},
		{SELECT, true, false, false},
		{JOIN, false, false, true},
		{JOIN, false, true, false},
		{JOIN, true, false, false},
		{SEMI, false, false, true},
		{SEMI, false, true, false},
		{SEMI, true, false, true},
		{SEMI, true, true, true},
		{SETMINUS, true, true, true},
		{TABLES, true, true, true},
		{IDENT, false, false, false},
	} {
		require.Equal(t, tt.want, CanBeIdentifier(tt.tok, tt.ansi, tt.strict), "%s ansi=%v strict=%v", tt.tok, tt.ansi, tt.strict)
	}
}

func TestKeywordsIn(t *testing.T) {
	reserved := KeywordsIn(AlwaysReserved)
	require.Len(t, reserved, len(alwaysReserved))
	require.Contains(t, reserved, "JOIN")
	require.IsIncreasing(t, reserved)

	require.Len(t, KeywordsIn(AnsiReserved), len(ansiReserved))
	require.Equal(t, []string{"ANTI", "MINUS", "SEMI"}, KeywordsIn(StrictNonReserved))
	require.NotContains(t, KeywordsIn(NonReserved), "SELECT")
}
