package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/feral-file/namada-indexer/internal/app"
	"github.com/feral-file/namada-indexer/internal/config"
	"github.com/feral-file/namada-indexer/internal/domain"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	resetTo    = flag.Int64("reset-to", -1, "Reset the checkpoint to this height and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIndexerConfig("rewards", *configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = app.RunIndexer(cfg, app.IndexerOptions{
		Service: "rewards-indexer",
		Domains: []domain.Domain{domain.DomainRewards},
		ResetTo: *resetTo,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rewards indexer: %v\n", err)
		os.Exit(1)
	}
}
