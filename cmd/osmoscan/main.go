// Command osmoscan extracts the landmarks of Lorrca ektacytometry exports.
//
// Usage:
//
//	osmoscan analyze [flags] file ...
//	osmoscan headers file
//	osmoscan kinds
//
// Examples:
//
//	osmoscan analyze scan1.csv scan2.csv
//	osmoscan analyze --format csv --out features.csv --plot-dir charts *.csv
//	osmoscan analyze --kind oxy --format parquet --out oxy.parquet oxy.csv
//	osmoscan headers scan1.csv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
