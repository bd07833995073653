package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	notatimer "github.com/kevin-j-channon/not-a-timer"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notatimer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notatimer version %s\n", strings.TrimSpace(notatimer.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
