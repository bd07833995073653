package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kevin-j-channon/not-a-timer/internal/cli"
	"github.com/kevin-j-channon/not-a-timer/internal/config"
	"github.com/kevin-j-channon/not-a-timer/internal/logging"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a countdown loop until it completes or is stopped",
	Long: `Runs a countdown workload: the step function decrements a counter and
continues while it is positive. Ctrl+C (or POST /stop on the control surface)
requests a cooperative stop at the next iteration boundary.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		count, _ := cmd.Flags().GetUint64("count")
		detach, _ := cmd.Flags().GetBool("detach")
		controlAddr, _ := cmd.Flags().GetString("control")
		runID, _ := cmd.Flags().GetString("run-id")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if controlAddr == "" {
			controlAddr = cfg.Control.Addr
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		session, err := cli.NewSession(cfg, logger)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer session.Close()

		if err := session.Run(cli.RunOptions{
			Count:       count,
			Detach:      detach,
			ControlAddr: controlAddr,
			RunID:       runID,
		}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint64("count", 100, "Countdown start value")
	runCmd.Flags().Bool("detach", false, "Run the loop on a background goroutine and wait")
	runCmd.Flags().String("control", "", "Address for the HTTP control surface (overrides config)")
	runCmd.Flags().String("run-id", "", "ID for the recorded run (generated when empty)")
}
