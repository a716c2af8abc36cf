package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlehnert/binsight/internal/classify"
	"github.com/mlehnert/binsight/internal/control"
)

var searchRegionOnly bool

var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Search the catalog and print matching products",
	Args:  cobra.MinimumNArgs(1),
	Run:   runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchRegionOnly, "region-only", false, "restrict results to the configured region")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	app, err := control.NewService(cfg)
	if err != nil {
		slog.Error("Failed to initialize service", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out := app.Resolver().SearchByTerm(ctx, strings.Join(args, " "), searchRegionOnly)
	if !out.Ok() {
		slog.Error("Search failed", "kind", out.Err().Kind.String(), "message", out.Err().UserMessage)
		os.Exit(1)
	}

	products := out.Value()
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BARCODE\tNAME\tBRAND\tBIN\tDEPOSIT")
	for _, p := range products {
		category := classify.Classify(p)
		deposit := "no"
		if v := classify.CheckDeposit(p); v.HasDeposit {
			deposit = fmt.Sprintf("%.2f EUR", v.AmountEuros())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Barcode, p.Name, p.Brand, category.NameEN, deposit)
	}
	w.Flush()

	if out.IsStale() {
		fmt.Println("\nShowing cached results; catalog not reachable.")
	}
}
