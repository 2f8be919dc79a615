// Command sparkparse parses Spark SQL and prints the result as JSON, as an
// explain tree or as canonical SQL.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		sig := <-sc
		log.Warn("received signal to exit", zap.Stringer("signal", sig))
		cancel()
	}()

	rootCmd := newRootCommand()
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		log.Error("sparkparse failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) // nolint:gocritic
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:              "sparkparse",
		Short:            "sparkparse parses Spark SQL statements.",
		TraverseChildren: true,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}
	defineCommonFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(
		newParseCommand(),
		newExprCommand(),
		newKeywordsCommand(),
	)
	return rootCmd
}
