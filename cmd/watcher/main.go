package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindsgn-studio/page-watcher/fetch"
	"github.com/mindsgn-studio/page-watcher/internal/config"
	"github.com/mindsgn-studio/page-watcher/internal/model"
	"github.com/mindsgn-studio/page-watcher/state"
	"github.com/mindsgn-studio/page-watcher/watcher"
	"github.com/spf13/cobra"
)

var (
	noSave     bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "watcher [flags] URL...",
	Short: "Report price, availability and details changes on product pages",
	Long: `Watcher fetches each product page, extracts its price, availability and
details list, and reports what changed since the previous check. The latest
snapshot is stored per URL (sqlite by default, see STATE_BACKEND).

Examples:
  # check one page and persist the new snapshot
  ./watcher https://example.com/product/123

  # compare several pages without writing state
  ./watcher --no-save https://a.example/p/1 https://b.example/p/2

  # machine-readable output
  ./watcher --json https://example.com/product/123`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&noSave, "no-save", false, "compare only, do not persist the new snapshot")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit one JSON object mapping each URL to its report")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := log.New(os.Stderr, "", 0)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := state.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Printf("error closing state store: %v", err)
		}
	}()

	checker := watcher.NewChecker(
		fetch.NewClient(cfg.UserAgent, cfg.HTTPTimeout),
		store,
		logger,
	)

	var onResult func(string, model.Result)
	if !jsonOutput {
		onResult = humanPrinter(logger)
	}

	results := checker.CheckAll(ctx, args, !noSave, onResult)

	if jsonOutput {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		fmt.Println(string(out))
	}
	return nil
}

func humanPrinter(logger *log.Logger) func(string, model.Result) {
	return func(url string, res model.Result) {
		if res.Error != "" {
			// failure line already logged by the checker
			return
		}
		if res.Report.Changed {
			logger.Print("changes detected:")
			for _, change := range res.Report.Changes {
				logger.Printf(" - %s", change)
			}
		} else {
			logger.Print("no changes detected.")
		}
		logger.Print("")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
