package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arjunmalhotra/portwise/internal/intel"
	"github.com/arjunmalhotra/portwise/internal/logging"
	"github.com/arjunmalhotra/portwise/internal/output"
	"github.com/arjunmalhotra/portwise/internal/proc"
	"github.com/arjunmalhotra/portwise/internal/scan"
	"github.com/arjunmalhotra/portwise/internal/tui"
	"github.com/arjunmalhotra/portwise/pkg/model"
)

var (
	flagList     bool
	flagJSON     bool
	flagAll      bool
	flagNoColor  bool
	flagInterval time.Duration
	flagLogLevel string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:           "portwise",
	Short:         "See what is listening on your ports and whether it is safe to stop",
	Long:          "portwise maps every open port to its owning process and explains what that process is, who launched it, what depends on it, and whether stopping it is safe.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagList, "list", false, "print one scan as a plain list and exit")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "print one scan as JSON and exit")
	rootCmd.Flags().BoolVar(&flagAll, "all", false, "include non-listening sockets")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.Flags().DurationVar(&flagInterval, "interval", 3*time.Second, "auto-refresh interval")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write logs to this file (rotated)")
}

func run(cmd *cobra.Command, args []string) error {
	oneShot := flagList || flagJSON
	if err := logging.Setup(flagLogLevel, flagLogFile, !oneShot); err != nil {
		return err
	}

	engine := intel.NewEngine(proc.Exec, intel.DefaultConfig())
	cfg := scan.DefaultConfig()
	cfg.RefreshInterval = flagInterval
	coord := scan.New(proc.Exec, engine, cfg)

	if !oneShot {
		return tui.Start(coord, versionString())
	}

	coord.Scan()
	snap := coord.Snapshot()
	if !flagAll {
		listening := make([]model.EnrichedRecord, 0, len(snap.Records))
		for _, rec := range snap.Records {
			if rec.IsListening() {
				listening = append(listening, rec)
			}
		}
		snap.Records = listening
	}

	if flagJSON {
		s, err := output.ToJSON(snap)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	}

	output.RenderList(os.Stdout, snap, !flagNoColor)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
