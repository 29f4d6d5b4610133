package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lrtab/lrtab/config"
)

var rootCmd = &cobra.Command{
	Use:   "lrtab",
	Short: "Compile grammars into LR(1) parsing tables and run them",
	Long: `lrtab provides three features:
- Compiles a textual grammar into a canonical LR(1) ACTION/GOTO table.
- Parses a text stream against a compiled table.
- Runs an interactive REPL or a batch of fixture files against a grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootFlags = struct {
	configPath *string
}{}

func init() {
	rootFlags.configPath = rootCmd.PersistentFlags().String("config", "lrtab.toml", "path to the project config file")
}

func loadConfig() config.Config {
	cfg, err := config.Load(*rootFlags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not read %s: %v\n", *rootFlags.configPath, err)
		return config.Default()
	}
	return cfg
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
