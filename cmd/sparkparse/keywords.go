package main

import (
	"fmt"
	"io"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"

	"github.com/sqlc-dev/sparksql/token"
)

const flagCategory = "category"

var categories = map[string]token.Category{
	token.NonReserved.String():       token.NonReserved,
	token.AnsiReserved.String():      token.AnsiReserved,
	token.AlwaysReserved.String():    token.AlwaysReserved,
	token.StrictNonReserved.String(): token.StrictNonReserved,
}

func newKeywordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the keywords of a reservation category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cmd.Flags().GetString(flagCategory)
			if err != nil {
				return errors.Trace(err)
			}
			cat, ok := categories[name]
			if !ok {
				return errors.Errorf("unknown category %q, expected one of non-reserved, strict-non-reserved, ansi-reserved or reserved", name)
			}
			return printKeywords(cmd.OutOrStdout(), token.KeywordsIn(cat))
		},
	}
	cmd.Flags().String(flagCategory, token.AlwaysReserved.String(), "Reservation category to list")
	return cmd
}

func printKeywords(w io.Writer, keywords []string) error {
	for _, kw := range keywords {
		if _, err := fmt.Fprintln(w, kw); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}
