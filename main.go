package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"dubizzle-scraper/config"
	"dubizzle-scraper/scraper/dubizzle"
	"dubizzle-scraper/services"
	"dubizzle-scraper/storage"
	"dubizzle-scraper/utils"
)

func main() {
	cfg := config.Load()
	pages := pageCount(os.Args[1:])

	utils.Info("Scraper starting | pages=%d pacing=%v/%d listings", pages, cfg.PacingDelay, cfg.PacingEvery)

	scraper, err := dubizzle.NewScraper(cfg)
	if err != nil {
		utils.Error("Could not start scraper: %v", err)
		os.Exit(1)
	}
	defer scraper.Close()

	runner := dubizzle.NewRunner(scraper, cfg)
	records := runner.Run(context.Background(), pages)

	writer := storage.NewCSVWriter(cfg.CSVPath)
	if err := writer.Write(records); err != nil {
		utils.Error("Failed to save CSV: %v", err)
		os.Exit(1)
	}

	if cfg.DBEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg)
		if err != nil {
			utils.Error("Failed to connect PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer pgWriter.Close()

		if err := pgWriter.EnsureSchema(); err != nil {
			utils.Error("Failed to ensure PostgreSQL schema: %v", err)
			os.Exit(1)
		}
		if err := pgWriter.WriteBatch(records); err != nil {
			utils.Error("Failed to save records to PostgreSQL: %v", err)
			os.Exit(1)
		}
		utils.Success("Saved %d records to PostgreSQL", len(records))
	}

	report := services.GenerateReport(records)
	services.PrintReport(report)

	fmt.Printf("Saved %d records to: %s\n", len(records), cfg.CSVPath)
}

// pageCount reads the single positional argument: the number of search
// pages to traverse, default 1, floored at 1 for invalid or smaller input.
func pageCount(args []string) int {
	if len(args) == 0 {
		return 1
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
