package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhitespace(t *testing.T) {
	require.Equal(t, "SELECT a FROM t", Whitespace("  SELECT\ta\n\n FROM   t "))
}

func TestSQL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"select  a , b from `t` -- trailing\n ;", "SELECT a , b FROM t"},
		{"SELECT * FROM a LEFT OUTER JOIN b ON a.x = b.x", "SELECT * FROM a LEFT JOIN b ON a . x = b . x"},
		{"select * from a inner join b", "SELECT * FROM a JOIN b"},
		{`SELECT "it's"`, `SELECT 'it\'s'`},
		{`SELECT 'it\'s'`, `SELECT 'it\'s'`},
		{"select 1e3, 10l", "SELECT 1E3 , 10L"},
		{"create temp view v as select 1", "CREATE TEMPORARY VIEW v AS SELECT 1"},
		{"insert into table t select 1;;", "INSERT INTO t SELECT 1"},
		{"select a from t union distinct select b from u", "SELECT a FROM t UNION SELECT b FROM u"},
		{"select a from t order by a asc", "SELECT a FROM t ORDER BY a"},
		{"select a == b", "SELECT a = b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, SQL(tt.in))
		})
	}
}

func TestSQLEquivalence(t *testing.T) {
	require.Equal(t,
		SQL("SELECT a.x FROM a LEFT OUTER JOIN b ON a.x = b.x"),
		SQL("select a.x\nfrom a left join b on a.x=b.x;"))
}

func TestStripComments(t *testing.T) {
	require.Equal(t, "SELECT 1  \n, '--not'", StripComments("SELECT 1 /* c /* nested */ */ -- x\n, '--not'"))
	require.Equal(t, "SELECT /*+ BROADCAST(t) */ 1", StripComments("SELECT /*+ BROADCAST(t) */ 1"))
	require.Equal(t, `SELECT 'a\'--b'`, StripComments(`SELECT 'a\'--b'`))
}
