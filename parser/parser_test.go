package parser_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/parser"
)

// testMetadata is the expected outcome of a test case. It is written by
// cmd/regenerate-testdata.
type testMetadata struct {
	Kinds       []string       `json:"kinds,omitempty"`
	Diagnostics []string       `json:"diagnostics,omitempty"`
	Error       string         `json:"error,omitempty"`
	Config      *parser.Config `json:"config,omitempty"`
	Todo        bool           `json:"todo,omitempty"`
}

// TestParser runs the cases under testdata. Each subdirectory holds:
// - query.sql: the script to parse
// - metadata.json: the statement kinds, diagnostics and error expected,
//   plus an optional dialect config
// - explain.txt (optional): the expected tree dump of every statement
func TestParser(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		testDir := filepath.Join("testdata", entry.Name())

		t.Run(entry.Name(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			query, err := os.ReadFile(filepath.Join(testDir, "query.sql"))
			require.NoError(t, err)

			var md testMetadata
			b, err := os.ReadFile(filepath.Join(testDir, "metadata.json"))
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(b, &md))

			cfg := parser.DefaultConfig
			if md.Config != nil {
				cfg = *md.Config
			}

			stmts, err := parser.ParseString(ctx, string(query), cfg)
			if md.Todo {
				t.Skipf("TODO: %s", strings.TrimSpace(string(query)))
			}
			if md.Error != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), md.Error)
				return
			}
			require.NoError(t, err)

			var kinds, diags []string
			var dump strings.Builder
			for _, stmt := range stmts {
				kinds = append(kinds, kindOf(stmt))
				for _, d := range parser.Diagnostics(stmt) {
					diags = append(diags, string(d.Kind))
				}
				dump.WriteString(parser.Explain(stmt))
			}
			require.Equal(t, md.Kinds, kinds)
			require.Equal(t, md.Diagnostics, diags)

			if want, err := os.ReadFile(filepath.Join(testDir, "explain.txt")); err == nil {
				require.Equal(t, string(want), dump.String())
			}

			// Formatted output must parse back to the same trees.
			again, err := parser.ParseString(ctx, parser.Format(stmts), cfg)
			require.NoError(t, err, parser.Format(stmts))
			require.Len(t, again, len(stmts))
			for i := range stmts {
				require.Equal(t, parser.Explain(stmts[i]), parser.Explain(again[i]))
			}
		})
	}
}

func kindOf(stmt ast.Statement) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", stmt), "*ast.")
}

// BenchmarkParser benchmarks the parser performance using a complex query
func BenchmarkParser(b *testing.B) {
	query := `
		WITH recent AS (
			SELECT user_id, amount, created_at
			FROM db.orders
			WHERE created_at > DATE '2023-01-01'
		)
		SELECT
			u.id,
			u.name,
			count(*) AS order_count,
			sum(o.amount) AS total,
			row_number() OVER (PARTITION BY u.region ORDER BY sum(o.amount) DESC) AS rank
		FROM users u
		LEFT JOIN recent o ON u.id = o.user_id
		LATERAL VIEW explode(u.tags) t AS tag
		WHERE u.status = 'active' AND o.amount BETWEEN 1 AND 1000
		GROUP BY u.id, u.name, u.region
		HAVING count(*) > 0
		ORDER BY total DESC
		LIMIT 100
	`

	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := parser.ParseString(ctx, query, parser.DefaultConfig)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// FuzzParseStatement checks that no input makes the parser panic.
func FuzzParseStatement(f *testing.F) {
	for _, seed := range []string{
		"SELECT a, b FROM t WHERE c > 1",
		"INSERT OVERWRITE TABLE t PARTITION (dt = '1') SELECT * FROM s",
		"CREATE TABLE t (a INT, b STRUCT<x: STRING>) USING parquet",
		"SELECT INTERVAL '1-2' YEAR TO MONTH",
		"MERGE INTO t USING s ON t.id = s.id WHEN MATCHED THEN DELETE",
		"SELECT `a``b`, 'it\\'s', 1.5E3, x'0A' FROM a-b",
		"SET spark.sql.x = ;",
		"(((",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, sql string) {
		stmts, err := parser.ParseString(context.Background(), sql, parser.DefaultConfig)
		if err != nil {
			return
		}
		for _, stmt := range stmts {
			_ = parser.Format([]ast.Statement{stmt})
			_ = parser.Explain(stmt)
		}
	})
}
