package format_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sparksql/internal/normalize"
	"github.com/sqlc-dev/sparksql/parser"
)

func TestFormatExpression(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		{"a OR b AND c", "a OR (b AND c)"},
		{"(a OR b) AND c", "(a OR b) AND c"},
		{"NOT a AND b", "(NOT a) AND b"},
		{"1 + -2", "1 + (-2)"},
		{"-a", "-a"},
		{"a.b.c", "a.b.c"},
		{"`a b`.c", "`a b`.c"},
		{"t.*", "t.*"},
		{"'it\\'s'", `'it\'s'`},
		{"x between 1 and 10", "x BETWEEN 1 AND 10"},
		{"x not in (1, 2)", "x NOT IN (1, 2)"},
		{"x is not null", "x IS NOT NULL"},
		{"cast(x as decimal(10, 2))", "CAST(x AS DECIMAL(10,2))"},
		{"count(distinct a)", "count(DISTINCT a)"},
		{"case when a then 1 else 2 end", "CASE WHEN a THEN 1 ELSE 2 END"},
		{"null", "NULL"},
		{"true", "TRUE"},
	} {
		expr, err := parser.ParseExpression(tt.in, parser.DefaultConfig)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, parser.FormatExpression(expr), tt.in)
	}
}

func TestFormatDataType(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		{"int", "INT"},
		{"varchar(10)", "VARCHAR(10)"},
		{"array<string>", "ARRAY<STRING>"},
		{"map<string, array<int>>", "MAP<STRING, ARRAY<INT>>"},
		{"struct<a: int, b string>", "STRUCT<a: INT, b: STRING>"},
		{"struct<>", "STRUCT<>"},
	} {
		dt, err := parser.ParseDataType(tt.in, parser.DefaultConfig)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, parser.FormatDataType(dt), tt.in)
	}
}

func TestFormat(t *testing.T) {
	stmts, err := parser.ParseString(context.Background(),
		"select a, b as c from t where x > 1; drop table if exists db.t purge", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t,
		"SELECT a, b AS c FROM t WHERE x > 1;\nDROP TABLE IF EXISTS db.t PURGE;",
		parser.Format(stmts))
	require.Equal(t, "SELECT a, b AS c FROM t WHERE x > 1", parser.FormatStatement(stmts[0]))
	require.Equal(t, "", parser.Format(nil))
}

// TestFormatCanonical checks that formatting only changes layout, case and
// optional noise words.
func TestFormatCanonical(t *testing.T) {
	for _, sql := range []string{
		"select a,  b from t where x > 1",
		"-- leading comment\nselect a from t order by a asc;",
		"SELECT * FROM a LEFT JOIN b ON a.id = b.id",
		"select a from t inner join u using (id)",
		"insert into t select * from s",
		"select 1 union distinct select 2",
		"drop table if exists db.t",
	} {
		stmt, err := parser.ParseStatement(sql, parser.DefaultConfig)
		require.NoError(t, err, sql)
		require.Equal(t, normalize.SQL(sql), normalize.SQL(parser.FormatStatement(stmt)), sql)
	}
}

// TestRoundTrip checks that formatted output parses back to the same tree.
func TestRoundTrip(t *testing.T) {
	for _, sql := range []string{
		"SELECT * FROM a LEFT OUTER JOIN b ON a.id = b.id",
		"SELECT a FROM t1 JOIN t2 USING (id) CROSS JOIN t3",
		"SELECT DISTINCT a, count(*) FROM t GROUP BY a HAVING count(*) > 1 ORDER BY a DESC NULLS LAST LIMIT 10",
		"SELECT a, sum(b) FROM t GROUP BY a WITH ROLLUP",
		"SELECT a, b FROM t GROUP BY a, b GROUPING SETS ((a), (b), ())",
		"WITH c AS (SELECT 1 AS x) SELECT x FROM c",
		"SELECT 1 UNION ALL SELECT 2 INTERSECT SELECT 3 EXCEPT SELECT 4",
		"(SELECT 1) UNION (SELECT 2)",
		"SELECT * FROM VALUES (1, 'a'), (2, 'b') AS v(id, name)",
		"VALUES 1, 2, 3",
		"TABLE db.t",
		"FROM t SELECT a SELECT b",
		"SELECT /*+ BROADCAST(b) */ * FROM a JOIN b ON a.k = b.k",
		"SELECT * FROM t TABLESAMPLE (10 PERCENT) AS s",
		"SELECT * FROM t LATERAL VIEW explode(arr) x AS v",
		"SELECT * FROM (SELECT a FROM t) AS s(x)",
		"SELECT row_number() OVER (PARTITION BY a ORDER BY b ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW) FROM t",
		"SELECT sum(a) OVER w FROM t WINDOW w AS (PARTITION BY b)",
		"SELECT a FROM t WHERE EXISTS (SELECT 1 FROM u WHERE u.a = t.a) AND b IN (SELECT b FROM v)",
		"SELECT a LIKE 'x%' ESCAPE '/', b RLIKE '^a', c LIKE ANY ('a%', 'b%') FROM t",
		"SELECT CAST(a AS BIGINT), STRUCT(a, b), x -> x + 1, a[0], a.b.c FROM t",
		"SELECT INTERVAL 1 DAY 2 HOURS, INTERVAL '1-2' YEAR TO MONTH, DATE '2020-01-01'",
		"SELECT 1L, 2S, 3Y, 1.5D, 1.5F, 1.5BD, 1.5, 1E10, -7",
		"SELECT a, b FROM t DISTRIBUTE BY a SORT BY b",
		"INSERT INTO t SELECT * FROM s",
		"INSERT OVERWRITE TABLE t PARTITION (dt = '2020', hr) IF NOT EXISTS SELECT a FROM s",
		"INSERT INTO db.t VALUES (1, 2)",
		"FROM s INSERT INTO t1 SELECT a INSERT OVERWRITE TABLE t2 SELECT b",
		"DELETE FROM t AS x WHERE x.a = 1",
		"UPDATE t SET a = 1, b = b + 1 WHERE c IS NULL",
		"MERGE INTO t AS tgt USING s AS src ON tgt.id = src.id WHEN MATCHED AND src.del THEN DELETE WHEN MATCHED THEN UPDATE SET * WHEN NOT MATCHED THEN INSERT *",
		"USE db",
		"CREATE DATABASE IF NOT EXISTS db COMMENT 'c' LOCATION '/tmp/db' WITH DBPROPERTIES (a = 'b')",
		"ALTER NAMESPACE db SET PROPERTIES ('k' = 'v')",
		"ALTER DATABASE db SET LOCATION '/tmp/x'",
		"DROP SCHEMA IF EXISTS db CASCADE",
		"SHOW DATABASES LIKE 'd*'",
		"CREATE TABLE IF NOT EXISTS db.t (a INT NOT NULL COMMENT 'id', b STRING) USING parquet PARTITIONED BY (b) OPTIONS (path '/tmp') COMMENT 'tbl' TBLPROPERTIES ('k' = 'v')",
		"CREATE TABLE t USING delta AS SELECT 1 AS a",
		"CREATE EXTERNAL TABLE t (a INT) PARTITIONED BY (dt STRING) ROW FORMAT DELIMITED FIELDS TERMINATED BY ',' STORED AS TEXTFILE LOCATION '/data'",
		"CREATE TABLE t (a INT) CLUSTERED BY (a) SORTED BY (a DESC) INTO 4 BUCKETS STORED AS ORC",
		"CREATE TABLE t2 LIKE t1 USING parquet",
		"CREATE OR REPLACE TABLE t (a INT) USING parquet",
		"REPLACE TABLE t USING parquet AS SELECT 1",
		"ANALYZE TABLE t PARTITION (dt = '1') COMPUTE STATISTICS NOSCAN",
		"ANALYZE TABLE t COMPUTE STATISTICS FOR COLUMNS a, b",
		"ALTER TABLE t ADD COLUMNS (c INT COMMENT 'x' FIRST, d STRING AFTER c)",
		"ALTER TABLE t RENAME COLUMN a.b TO c",
		"ALTER TABLE t DROP COLUMNS (a, b)",
		"ALTER TABLE t RENAME TO u",
		"ALTER VIEW v SET TBLPROPERTIES ('a' = '1')",
		"ALTER TABLE t UNSET TBLPROPERTIES IF EXISTS ('a')",
		"ALTER TABLE t ALTER COLUMN a TYPE BIGINT",
		"ALTER TABLE t ADD IF NOT EXISTS PARTITION (dt = '1') LOCATION '/p' PARTITION (dt = '2')",
		"ALTER TABLE t PARTITION (dt = '1') RENAME TO PARTITION (dt = '2')",
		"ALTER TABLE t DROP IF EXISTS PARTITION (dt = '1'), PARTITION (dt = '2') PURGE",
		"ALTER TABLE t SET LOCATION '/new'",
		"ALTER TABLE t RECOVER PARTITIONS",
		"DROP VIEW IF EXISTS v",
		"CREATE OR REPLACE TEMPORARY VIEW v (a COMMENT 'x', b) AS SELECT 1, 2",
		"CREATE VIEW IF NOT EXISTS v COMMENT 'c' TBLPROPERTIES ('k' = 'v') AS SELECT * FROM t",
		"CREATE TEMPORARY VIEW v USING parquet OPTIONS (path '/tmp')",
		"ALTER VIEW v AS SELECT 1",
		"CREATE TEMPORARY FUNCTION f AS 'com.example.F' USING JAR '/a.jar', FILE '/b.txt'",
		"DROP TEMPORARY FUNCTION IF EXISTS f",
		"EXPLAIN EXTENDED SELECT 1",
		"SHOW TABLES IN db LIKE 't*'",
		"SHOW TABLE EXTENDED IN db LIKE 't*' PARTITION (dt = '1')",
		"SHOW TBLPROPERTIES t ('k')",
		"SHOW COLUMNS IN t IN db",
		"SHOW VIEWS FROM db",
		"SHOW PARTITIONS t PARTITION (dt = '1')",
		"SHOW USER FUNCTIONS LIKE 'f*'",
		"SHOW CREATE TABLE t AS SERDE",
		"SHOW CURRENT NAMESPACE",
		"DESCRIBE FUNCTION EXTENDED f",
		"DESCRIBE DATABASE EXTENDED db",
		"DESCRIBE TABLE EXTENDED t PARTITION (dt = '1')",
		"DESCRIBE QUERY SELECT 1",
		"COMMENT ON DATABASE db IS 'c'",
		"COMMENT ON TABLE t IS NULL",
		"REFRESH TABLE t",
		"REFRESH FUNCTION f",
		"REFRESH '/path/to/data'",
		"CACHE LAZY TABLE t OPTIONS ('storageLevel' = 'DISK_ONLY') AS SELECT 1",
		"UNCACHE TABLE IF EXISTS t",
		"CLEAR CACHE",
		"LOAD DATA LOCAL INPATH '/tmp/f' OVERWRITE INTO TABLE t PARTITION (dt = '1')",
		"TRUNCATE TABLE t PARTITION (dt = '1')",
		"MSCK REPAIR TABLE t",
		"SET TIME ZONE LOCAL",
		"SET TIME ZONE 'America/Los_Angeles'",
		"SET spark.sql.shuffle.partitions=10",
		"SET",
		"RESET spark.sql.x",
	} {
		stmts, err := parser.ParseString(context.Background(), sql, parser.DefaultConfig)
		require.NoError(t, err, sql)
		require.Len(t, stmts, 1, sql)

		text := parser.Format(stmts)
		again, err := parser.ParseString(context.Background(), text, parser.DefaultConfig)
		require.NoError(t, err, "%s\nformatted: %s", sql, text)
		require.Len(t, again, 1, text)
		require.Equal(t, parser.Explain(stmts[0]), parser.Explain(again[0]), "%s\nformatted: %s", sql, text)
	}
}
