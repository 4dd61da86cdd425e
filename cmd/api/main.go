package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "offer-dashboard-api",
	Short: "API do painel de ofertas e criativos",
	// sem subcomando sobe o servidor, como o binário antigo fazia
	RunE: runServe,
}

func init() {
	// valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(hashKeyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
