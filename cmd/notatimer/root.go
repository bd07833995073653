package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notatimer",
	Short: "notatimer runs a step function in a loop until it finishes or is stopped",
	Long: `notatimer is a cooperative run-until-told-to-stop loop harness.

It is not a timer: nothing is measured or scheduled. The loop calls its step
function back-to-back until the function returns false or a stop arrives via
signal or the HTTP control surface.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "notatimer.yaml", "Path to the configuration file")
}
