package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kevin-j-channon/not-a-timer/internal/adapters/redis"
	"github.com/kevin-j-channon/not-a-timer/internal/config"
	"github.com/kevin-j-channon/not-a-timer/pkg/ports"
)

// runsCmd lists recorded runs from the configured store.
// Only the redis backend is meaningful here: memory records die with the
// process that made them.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if cfg.Store.Backend != config.BackendRedis {
			fmt.Println("No shared store configured; run history requires the redis backend.")
			return
		}

		opts, err := cfg.Store.RedisOptions()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		storeOpts := []redis.Option{}
		if opts.Prefix != "" {
			storeOpts = append(storeOpts, redis.WithPrefix(opts.Prefix))
		}
		store := redis.New(opts.Addr, opts.Password, opts.DB, storeOpts...)
		defer store.Close()

		ctx := context.Background()
		ids, err := store.List(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if len(ids) == 0 {
			fmt.Println("No recorded runs.")
			return
		}

		for _, id := range ids {
			record, err := store.Load(ctx, id)
			if err != nil {
				if err == ports.ErrRunNotFound {
					continue
				}
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("%s\t%s\t%d iterations\t%s\n",
				record.ID, record.Outcome, record.Iterations, record.Duration())
		}
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
