// billgen runs the extraction pipeline on an already-extracted text file
// and prints the canonical record (or a full invoice payload) as JSON.
// Useful for checking a new document layout without standing up the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/katiyar-electronics/bill-engine/internal/billing"
	"github.com/katiyar-electronics/bill-engine/internal/category"
	"github.com/katiyar-electronics/bill-engine/internal/common"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
	"github.com/katiyar-electronics/bill-engine/internal/pipeline"
	"github.com/katiyar-electronics/bill-engine/internal/repository"
)

// buildOutput applies the manual serial override once, so it shows up in
// the bare record, the invoice payload and the archived row alike, and
// picks the payload to print.
func buildOutput(record entity.BillRecord, invoiceNo, serial string) (entity.BillRecord, any) {
	if serial != "" {
		record.SerialNumber = serial
	}
	if invoiceNo != "" {
		return record, billing.BuildInvoice(record, invoiceNo, "")
	}
	return record, record
}

func main() {
	var (
		inPath    = flag.String("in", "", "path to a plain-text document (required)")
		invoiceNo = flag.String("invoice", "", "invoice number; when set, prints the full invoice payload")
		serial    = flag.String("serial", "", "manual serial number override")
		archive   = flag.String("archive", "", "append the bill to a local sqlite archive at this path (requires -invoice)")
		noLookup  = flag.Bool("no-lookup", false, "skip the category lookup even when credentials are configured")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: billgen -in document.txt [-invoice INV-001] [-serial SN] [-archive bills.db]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", *inPath, err)
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var lookup category.Lookup
	if !*noLookup {
		client := category.NewClient(cfg.Lookup, logger)
		if client.Enabled() {
			lookup = client
		}
	}

	processor := pipeline.NewProcessor(lookup, logger)
	record, err := processor.ProcessText(ctx, string(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "extraction failed: %v\n", err)
		os.Exit(1)
	}

	record, out := buildOutput(record, *invoiceNo, *serial)

	if *archive != "" {
		if *invoiceNo == "" {
			fmt.Fprintln(os.Stderr, "-archive requires -invoice")
			os.Exit(2)
		}
		store, err := repository.OpenArchive(ctx, *archive, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening archive: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if err := store.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "closing archive: %v\n", err)
			}
		}()
		if err := store.Save(ctx, repository.NewBill(record, *invoiceNo)); err != nil {
			fmt.Fprintf(os.Stderr, "archiving bill: %v\n", err)
			os.Exit(1)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encoding output: %v\n", err)
		os.Exit(1)
	}
}
