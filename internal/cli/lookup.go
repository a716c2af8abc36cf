package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlehnert/binsight/internal/classify"
	"github.com/mlehnert/binsight/internal/control"
	"github.com/mlehnert/binsight/internal/core/domain"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <barcode>",
	Short: "Resolve one product and print its recycling guidance",
	Args:  cobra.ExactArgs(1),
	Run:   runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) {
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

	out := app.Resolver().ResolveByIdentifier(ctx, args[0], nil)
	if !out.Ok() {
		slog.Error("Lookup failed", "kind", out.Err().Kind.String(), "message", out.Err().UserMessage)
		os.Exit(1)
	}

	printGuidance(out.Value(), out.IsStale())
}

func printGuidance(p domain.Product, stale bool) {
	category := classify.Classify(p)
	deposit := classify.CheckDeposit(p)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(w, "Brand:\t%s\n", p.Brand)
	}
	fmt.Fprintf(w, "Barcode:\t%s\n", p.Barcode)
	fmt.Fprintf(w, "Bin:\t%s (%s)\n", category.NameEN, category.NameDE)
	if deposit.HasDeposit {
		if deposit.AmountKnown {
			fmt.Fprintf(w, "Deposit:\t%.2f EUR\n", deposit.AmountEuros())
		} else {
			fmt.Fprintf(w, "Deposit:\tyes (amount unknown)\n")
		}
	} else {
		fmt.Fprintf(w, "Deposit:\tno\n")
	}
	if stale {
		fmt.Fprintf(w, "Note:\tcached data, not confirmed against the catalog\n")
	}
	w.Flush()
}
