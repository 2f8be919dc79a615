package main

import (
	"io"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/config"
	"github.com/sqlc-dev/sparksql/parser"
)

const flagStrict = "strict"

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse SQL scripts, or standard input when no file is given",
		RunE:  runParse,
	}
	cmd.Flags().Bool(flagStrict, false, "Treat diagnostics such as dashed identifiers as errors")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	strict, err := cmd.Flags().GetBool(flagStrict)
	if err != nil {
		return errors.Trace(err)
	}
	out := cmd.OutOrStdout()
	return withMetrics(conf, out, func() error {
		if len(args) == 0 {
			stmts, err := parser.Parse(cmd.Context(), cmd.InOrStdin(), conf.Parser)
			return multierr.Append(err, printStatements(out, conf, stmts, strict))
		}
		var errs error
		for _, path := range args {
			stmts, err := parser.ParseFile(cmd.Context(), path, conf.Parser)
			if err != nil {
				log.Info("parse failed", zap.String("file", path), zap.Error(err))
			}
			errs = multierr.Combine(errs, err, printStatements(out, conf, stmts, strict))
		}
		return errs
	})
}

func printStatements(w io.Writer, conf *config.Config, stmts []ast.Statement, strict bool) error {
	var errs error
	for _, stmt := range stmts {
		for _, d := range parser.Diagnostics(stmt) {
			log.Info("diagnostic",
				zap.String("kind", string(d.Kind)),
				zap.String("message", d.Message),
				zap.Int("line", d.Position.Line),
				zap.Int("column", d.Position.Column))
		}
		if strict {
			errs = multierr.Append(errs, parser.CheckDiagnostics(stmt))
		}
		if err := printNode(w, conf.Output, stmt); err != nil {
			return multierr.Append(errs, err)
		}
	}
	return errs
}

func newExprCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expr <expression>",
		Short: "Parse a single expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return withMetrics(conf, out, func() error {
				expr, err := parser.ParseExpression(args[0], conf.Parser)
				if err != nil {
					return err
				}
				return printNode(out, conf.Output, expr)
			})
		},
	}
}
