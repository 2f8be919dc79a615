// Command regenerate-testdata rewrites the expected output of the parser
// test cases under parser/testdata from the current parser.
//
// Each test case directory holds a query.sql script. The tool writes
// metadata.json with the statement kinds, the diagnostics and the parse
// error, if any, and explain.txt with the tree dump of every statement.
// The config and todo fields of an existing metadata.json are kept.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pingcap/errors"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/internal/normalize"
	"github.com/sqlc-dev/sparksql/parser"
)

type testMetadata struct {
	Kinds       []string       `json:"kinds,omitempty"`
	Diagnostics []string       `json:"diagnostics,omitempty"`
	Error       string         `json:"error,omitempty"`
	Config      *parser.Config `json:"config,omitempty"`
	Todo        bool           `json:"todo,omitempty"`
}

func main() {
	testName := flag.String("test", "", "Single test directory name to process (if empty, process all)")
	testdataDir := flag.String("dir", "parser/testdata", "Directory holding the test cases")
	dryRun := flag.Bool("dry-run", false, "Print statements without writing anything")
	flag.Parse()

	if *testName != "" {
		if err := processTest(filepath.Join(*testdataDir, *testName), *dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", *testName, err)
			os.Exit(1)
		}
		return
	}

	entries, err := os.ReadDir(*testdataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading testdata: %v\n", err)
		os.Exit(1)
	}

	var failures []string
	var processed, skipped int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		testDir := filepath.Join(*testdataDir, entry.Name())
		if err := processTest(testDir, *dryRun); err != nil {
			if strings.Contains(err.Error(), "no statements found") {
				skipped++
				continue
			}
			failures = append(failures, fmt.Sprintf("%s: %v", entry.Name(), err))
		} else {
			processed++
		}
	}

	fmt.Printf("\nProcessed: %d, Skipped: %d, Errors: %d\n", processed, skipped, len(failures))
	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "\nErrors:\n")
		for _, e := range failures {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		os.Exit(1)
	}
}

func processTest(testDir string, dryRun bool) error {
	queryBytes, err := os.ReadFile(filepath.Join(testDir, "query.sql"))
	if err != nil {
		return errors.Annotate(err, "reading query.sql")
	}
	query := string(queryBytes)

	statements := splitStatements(query)
	if len(statements) == 0 {
		return errors.New("no statements found")
	}

	fmt.Printf("Processing %s (%d statements)\n", filepath.Base(testDir), len(statements))
	if dryRun {
		for i, stmt := range statements {
			fmt.Printf("  [%d] %s\n", i+1, truncate(stmt, 80))
		}
		return nil
	}

	metadataPath := filepath.Join(testDir, "metadata.json")
	var old testMetadata
	if b, err := os.ReadFile(metadataPath); err == nil {
		if err := json.Unmarshal(b, &old); err != nil {
			return errors.Annotate(err, "parsing metadata.json")
		}
	}
	cfg := parser.DefaultConfig
	if old.Config != nil {
		cfg = *old.Config
	}

	md := testMetadata{Config: old.Config, Todo: old.Todo}
	stmts, parseErr := parser.ParseString(context.Background(), query, cfg)
	var dump strings.Builder
	for _, stmt := range stmts {
		md.Kinds = append(md.Kinds, kindOf(stmt))
		for _, d := range parser.Diagnostics(stmt) {
			md.Diagnostics = append(md.Diagnostics, string(d.Kind))
		}
		dump.WriteString(parser.Explain(stmt))
	}

	explainPath := filepath.Join(testDir, "explain.txt")
	if parseErr != nil {
		md.Error = errors.Cause(parseErr).Error()
		fmt.Printf("  parse error: %s\n", truncate(md.Error, 100))
		if err := os.Remove(explainPath); err != nil && !os.IsNotExist(err) {
			return errors.Trace(err)
		}
	} else if err := os.WriteFile(explainPath, []byte(dump.String()), 0644); err != nil {
		return errors.Annotatef(err, "writing %s", explainPath)
	}

	b, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return errors.Trace(err)
	}
	if err := os.WriteFile(metadataPath, append(b, '\n'), 0644); err != nil {
		return errors.Annotatef(err, "writing %s", metadataPath)
	}
	fmt.Printf("  -> %s\n", strings.Join(md.Kinds, ", "))
	return nil
}

func kindOf(stmt ast.Statement) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", stmt), "*ast.")
}

// splitStatements splits SQL content into individual statements. Comments
// are dropped first; hints are kept.
func splitStatements(content string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(normalize.StripComments(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(trimmed)

		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSpace(strings.TrimSuffix(current.String(), ";"))
			if stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
		}
	}

	if current.Len() > 0 {
		stmt := strings.TrimSpace(strings.TrimSuffix(current.String(), ";"))
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}

	return statements
}

func truncate(s string, n int) string {
	s = normalize.Whitespace(s)
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
