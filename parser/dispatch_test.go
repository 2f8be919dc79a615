package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/parser"
)

func TestStatementKinds(t *testing.T) {
	tests := []struct {
		sql  string
		want ast.Statement
	}{
		{"SELECT 1", &ast.Query{}},
		{"WITH c AS (SELECT 1) SELECT * FROM c", &ast.Query{}},
		{"VALUES (1, 2), (3, 4)", &ast.Query{}},
		{"TABLE t", &ast.Query{}},
		{"FROM t SELECT a WHERE b > 1", &ast.Query{}},
		{"(SELECT 1) UNION SELECT 2", &ast.Query{}},
		{"INSERT INTO t VALUES (1)", &ast.InsertStatement{}},
		{"INSERT OVERWRITE TABLE t PARTITION (a = 1) SELECT * FROM s", &ast.InsertStatement{}},
		{"WITH c AS (SELECT 1) INSERT INTO t SELECT * FROM c", &ast.InsertStatement{}},
		{"INSERT OVERWRITE DIRECTORY '/tmp/out' USING parquet SELECT 1", &ast.InsertStatement{}},
		{"FROM s INSERT INTO t SELECT a INSERT INTO u SELECT b", &ast.MultiInsertStatement{}},
		{"DELETE FROM t WHERE a = 1", &ast.DeleteFromTable{}},
		{"UPDATE t SET a = 1, b = b + 1 WHERE c", &ast.UpdateTable{}},
		{"MERGE INTO t USING s ON t.id = s.id WHEN MATCHED THEN DELETE", &ast.MergeIntoTable{}},

		{"USE db", &ast.Use{}},
		{"USE NAMESPACE cat.db", &ast.Use{}},
		{"CREATE DATABASE IF NOT EXISTS db COMMENT 'c'", &ast.CreateNamespace{}},
		{"CREATE SCHEMA s", &ast.CreateNamespace{}},
		{"ALTER DATABASE db SET DBPROPERTIES ('a' = 'b')", &ast.SetNamespaceProperties{}},
		{"ALTER NAMESPACE ns SET LOCATION '/p'", &ast.SetNamespaceLocation{}},
		{"DROP DATABASE IF EXISTS db CASCADE", &ast.DropNamespace{}},
		{"SHOW DATABASES LIKE 'a*'", &ast.ShowNamespaces{}},
		{"SHOW NAMESPACES IN cat", &ast.ShowNamespaces{}},

		{"CREATE TABLE IF NOT EXISTS db.t (a INT, b STRING) USING parquet PARTITIONED BY (b)", &ast.CreateTable{}},
		{"CREATE TABLE t USING parquet AS SELECT 1", &ast.CreateTable{}},
		{"CREATE EXTERNAL TABLE t (a INT) STORED AS ORC LOCATION '/p'", &ast.CreateHiveTable{}},
		{"CREATE TABLE t (a INT)", &ast.CreateHiveTable{}},
		{"CREATE TABLE t LIKE s", &ast.CreateTableLike{}},
		{"CREATE OR REPLACE TABLE t (a INT) USING delta", &ast.ReplaceTable{}},
		{"REPLACE TABLE t USING parquet AS SELECT 1", &ast.ReplaceTable{}},
		{"ANALYZE TABLE t COMPUTE STATISTICS FOR ALL COLUMNS", &ast.Analyze{}},
		{"ANALYZE TABLE t PARTITION (a = 1) COMPUTE STATISTICS FOR COLUMNS a, b", &ast.Analyze{}},

		{"ALTER TABLE t ADD COLUMNS (b INT)", &ast.AddTableColumns{}},
		{"ALTER TABLE t ADD COLUMN c STRING", &ast.AddTableColumns{}},
		{"ALTER TABLE t RENAME COLUMN a TO b", &ast.RenameTableColumn{}},
		{"ALTER TABLE t DROP COLUMNS (a, b)", &ast.DropTableColumns{}},
		{"ALTER TABLE t RENAME TO u", &ast.RenameTable{}},
		{"ALTER VIEW v RENAME TO w", &ast.RenameTable{}},
		{"ALTER TABLE t SET TBLPROPERTIES ('a' = '1')", &ast.SetTableProperties{}},
		{"ALTER TABLE t UNSET TBLPROPERTIES IF EXISTS ('a')", &ast.UnsetTableProperties{}},
		{"ALTER TABLE t ALTER COLUMN a TYPE BIGINT", &ast.AlterTableAlterColumn{}},
		{"ALTER TABLE t CHANGE COLUMN a COMMENT 'x'", &ast.AlterTableAlterColumn{}},
		{"ALTER TABLE t CHANGE a b INT", &ast.HiveChangeColumn{}},
		{"ALTER TABLE t REPLACE COLUMNS (a INT)", &ast.HiveReplaceColumns{}},
		{"ALTER TABLE t SET SERDE 'org.x.Serde' WITH SERDEPROPERTIES ('a' = 'b')", &ast.SetTableSerDe{}},
		{"ALTER TABLE t ADD IF NOT EXISTS PARTITION (a = 1) LOCATION '/p'", &ast.AddTablePartition{}},
		{"ALTER TABLE t PARTITION (a = 1) RENAME TO PARTITION (a = 2)", &ast.RenameTablePartition{}},
		{"ALTER TABLE t DROP IF EXISTS PARTITION (a = 1), PARTITION (a = 2) PURGE", &ast.DropTablePartitions{}},
		{"ALTER TABLE t SET LOCATION '/p'", &ast.SetTableLocation{}},
		{"ALTER TABLE t PARTITION (a = 1) SET LOCATION '/p'", &ast.SetTableLocation{}},
		{"ALTER TABLE t RECOVER PARTITIONS", &ast.RecoverPartitions{}},
		{"DROP TABLE IF EXISTS t PURGE", &ast.DropTable{}},
		{"DROP VIEW v", &ast.DropView{}},

		{"CREATE OR REPLACE TEMPORARY VIEW v AS SELECT 1", &ast.CreateView{}},
		{"CREATE VIEW v (a COMMENT 'x') AS SELECT 1", &ast.CreateView{}},
		{"CREATE TEMPORARY VIEW v USING parquet OPTIONS (path '/p')", &ast.CreateTempViewUsing{}},
		{"ALTER VIEW v AS SELECT 1", &ast.AlterViewQuery{}},
		{"CREATE FUNCTION f AS 'com.x.F' USING JAR '/a.jar'", &ast.CreateFunction{}},
		{"DROP TEMPORARY FUNCTION IF EXISTS f", &ast.DropFunction{}},
		{"EXPLAIN EXTENDED SELECT 1", &ast.Explain{}},

		{"SHOW TABLES IN db LIKE 't*'", &ast.ShowTables{}},
		{"SHOW TABLE EXTENDED IN db LIKE 't*'", &ast.ShowTableExtended{}},
		{"SHOW TBLPROPERTIES t ('k')", &ast.ShowTblProperties{}},
		{"SHOW COLUMNS IN t", &ast.ShowColumns{}},
		{"SHOW VIEWS", &ast.ShowViews{}},
		{"SHOW PARTITIONS t PARTITION (a = 1)", &ast.ShowPartitions{}},
		{"SHOW USER FUNCTIONS LIKE 'a*'", &ast.ShowFunctions{}},
		{"SHOW CREATE TABLE t AS SERDE", &ast.ShowCreateTable{}},
		{"SHOW CURRENT NAMESPACE", &ast.ShowCurrentNamespace{}},

		{"DESCRIBE FUNCTION EXTENDED upper", &ast.DescribeFunction{}},
		{"DESC DATABASE EXTENDED db", &ast.DescribeNamespace{}},
		{"DESCRIBE t PARTITION (a = 1)", &ast.DescribeRelation{}},
		{"DESCRIBE TABLE EXTENDED t", &ast.DescribeRelation{}},
		{"DESCRIBE QUERY SELECT 1", &ast.DescribeQuery{}},
		{"DESC SELECT 1", &ast.DescribeQuery{}},
		{"COMMENT ON DATABASE db IS 'x'", &ast.CommentNamespace{}},
		{"COMMENT ON TABLE t IS NULL", &ast.CommentTable{}},

		{"REFRESH TABLE t", &ast.RefreshTable{}},
		{"REFRESH FUNCTION f", &ast.RefreshFunction{}},
		{"REFRESH '/p'", &ast.RefreshResource{}},
		{"CACHE LAZY TABLE t OPTIONS ('storageLevel' 'DISK_ONLY')", &ast.CacheTable{}},
		{"CACHE TABLE t AS SELECT 1", &ast.CacheTable{}},
		{"UNCACHE TABLE IF EXISTS t", &ast.UncacheTable{}},
		{"CLEAR CACHE", &ast.ClearCache{}},
		{"LOAD DATA LOCAL INPATH '/p' OVERWRITE INTO TABLE t PARTITION (a = 1)", &ast.LoadData{}},
		{"TRUNCATE TABLE t PARTITION (a = 1)", &ast.TruncateTable{}},
		{"MSCK REPAIR TABLE t SYNC PARTITIONS", &ast.RepairTable{}},
		{"ADD JAR /tmp/a.jar", &ast.ManageResource{}},
		{"LIST FILE", &ast.ManageResource{}},

		{"SET TIME ZONE 'UTC'", &ast.SetTimeZone{}},
		{"SET TIME ZONE LOCAL", &ast.SetTimeZone{}},
		{"SET spark.sql.ansi.enabled = true", &ast.SetConfiguration{}},
		{"SET", &ast.SetConfiguration{}},
		{"RESET", &ast.ResetConfiguration{}},
		{"RESET spark.sql.ansi.enabled", &ast.ResetConfiguration{}},

		{"GRANT SELECT ON t TO u", &ast.UnsupportedCommand{}},
		{"SET ROLE admin", &ast.UnsupportedCommand{}},
		{"COMMIT", &ast.UnsupportedCommand{}},
		{"ALTER TABLE t TOUCH", &ast.UnsupportedCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			stmt, err := parser.ParseStatement(tt.sql, parser.DefaultConfig)
			require.NoError(t, err)
			require.IsType(t, tt.want, stmt)
		})
	}
}
