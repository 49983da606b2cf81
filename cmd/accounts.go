package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/inovacc/libris/internal/model"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the library accounts",
	Long: `List the fixed library accounts in menu order.

Examples:
  libris accounts
  libris accounts --format=json`,
	Args: cobra.NoArgs,
	RunE: runAccounts,
}

var accountsFormat string

func init() {
	rootCmd.AddCommand(accountsCmd)

	accountsCmd.Flags().StringVar(&accountsFormat, "format", "table", "Output format (table, json)")
}

func runAccounts(cmd *cobra.Command, _ []string) error {
	accounts := model.Accounts()
	out := cmd.OutOrStdout()

	switch accountsFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(accounts)
	case "table":
		return writeAccountTable(out, accounts)
	}

	return fmt.Errorf("unknown format %q", accountsFormat)
}

func writeAccountTable(out io.Writer, accounts []model.Account) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "#\tID\tNAME\tROLE")
	_, _ = fmt.Fprintln(w, "-\t--\t----\t----")

	for i, a := range accounts {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, a.ID, a.DisplayName, a.Role)
	}

	return w.Flush()
}
