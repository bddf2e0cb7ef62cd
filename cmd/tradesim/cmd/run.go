package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KorNxHaidar/Trade-Sim/config"
	"github.com/KorNxHaidar/Trade-Sim/internal/logx"
	"github.com/KorNxHaidar/Trade-Sim/journal"
	"github.com/KorNxHaidar/Trade-Sim/market"
	"github.com/KorNxHaidar/Trade-Sim/sim"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay tick data through the configured strategies",
	Long: `Run loads a configuration file, replays the configured tick exports in
timestamp order through one signal engine per instrument, prints the run
report and optionally journals it.

Example:
  tradesim run --config simulation.yaml --ticks day1.csv --ticks day2.csv`,
	RunE: runReplay,
}

var (
	runConfigPath string
	runTickFiles  []string
	runSeed       int64
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to config file (required)")
	runCmd.Flags().StringArrayVarP(&runTickFiles, "ticks", "t", nil, "tick CSV export; repeatable, overrides data.files")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "override the configured allocation seed")

	runCmd.MarkFlagRequired("config")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return err
	}

	log := logx.New(cfg.Log.Level, cfg.Log.Dir)

	files := cfg.Data.Files
	if len(runTickFiles) > 0 {
		files = runTickFiles
	}
	if len(files) == 0 {
		return fmt.Errorf("no tick files: set data.files or pass --ticks")
	}

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = runSeed
	}

	var series [][]market.Tick
	for _, path := range files {
		ticks, skipped, err := sim.LoadCSVTicks(path)
		if err != nil {
			return err
		}
		if skipped > 0 {
			log.Warn("skipped unparseable rows", "file", path, "rows", skipped)
		}
		log.Info("loaded ticks", "file", path, "ticks", len(ticks))
		series = append(series, ticks)
	}

	strategyCfgs, err := cfg.StrategyConfigs()
	if err != nil {
		return err
	}

	driver, err := sim.NewDriver(cfg.Account.InitialCash, strategyCfgs, seed, log)
	if err != nil {
		return err
	}

	rep := driver.Replay(series...)
	log.Info("replay finished",
		"ticks", rep.TicksSeen, "skipped", rep.TicksSkipped,
		"buys", rep.Buys, "sells", rep.Sells, "rejected", rep.Rejected,
		"nav", rep.Summary.NAV)

	if err := sim.WriteReport(os.Stdout, rep); err != nil {
		return err
	}

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return err
	}
	defer j.Close()

	if err := journal.Record(j, rep.Statement, rep.Portfolio, rep.Summary); err != nil {
		return fmt.Errorf("journal run: %w", err)
	}
	return nil
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "", "none":
		return journal.Nop{}, nil
	case "csv":
		return journal.NewCSV(jc.StatementFile, jc.PortfolioFile, jc.SummaryFile)
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", jc.Type)
	}
}
