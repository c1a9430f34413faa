// Package main is the entry point for the blockcats CLI
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/block-cats/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "blockcats",
	Short: "Block Cats puzzle and quest CLI",
	Long: `Block Cats drives the puzzle engine and the quest and collection progress
of a single player. Progress is stored in Redis, SQLite or memory.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err with its status code and returns the exit status
func reportError(w io.Writer, err error) int {
	st := errors.Status(err)
	fmt.Fprintf(w, "Error (%s): %s\n", st.Code(), st.Message())
	return errors.ExitCode(err)
}

func init() {
	env := loadEnvConfig()

	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", env.RedisAddr, "Redis endpoint for progress storage")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", env.SQLitePath, "SQLite file for progress storage (overrides --redis)")
	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", env.Memory, "Keep progress in memory for this run only")
	rootCmd.PersistentFlags().StringVar(&playerID, "player", env.PlayerID, "Player ID")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", env.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(questsCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(starsCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(repairCmd)
}
