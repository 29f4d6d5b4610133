package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lrtab/lrtab/cache"
	"github.com/lrtab/lrtab/config"
	"github.com/lrtab/lrtab/grammar"
	"github.com/lrtab/lrtab/gramtext"
)

var compileFlags = struct {
	output  *string
	noCache *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile <grammar file path>",
		Short:   "Compile a textual grammar into an LR(1) table",
		Example: `  lrtab compile grammar.gram -o grammar.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout, or out_dir/<grammar>.json when out_dir is configured)")
	compileFlags.noCache = cmd.Flags().Bool("no-cache", false, "skip the compiled-table cache")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	var src []byte
	var err error
	if len(args) > 0 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("cannot read grammar: %w", err)
	}

	table, report, err := compileSource(cfg, string(src), *compileFlags.noCache)
	if err != nil {
		return err
	}

	if report.HasConflicts() {
		switch cfg.ConflictPolicy {
		case config.ConflictPolicyFail:
			return fmt.Errorf("grammar has %d conflict(s), refusing to compile under conflict_policy=fail", len(report.Conflicts))
		case config.ConflictPolicySilent:
		default:
			for _, c := range report.Conflicts {
				fmt.Fprintf(os.Stderr, "warning: %s\n", c)
			}
		}
	}

	outPath := *compileFlags.output
	if outPath == "" && len(args) > 0 && cfg.OutDir != "" && cfg.OutDir != "." {
		base := filepath.Base(args[0])
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
		outPath = filepath.Join(cfg.OutDir, base)
	}
	return writeTable(table, outPath)
}

// compileSource parses and compiles src, consulting the cache first
// unless noCache is set.
func compileSource(cfg config.Config, src string, noCache bool) (*grammar.Table, *grammar.Report, error) {
	key := cache.ContentKey(src)

	var store *cache.Store
	if !noCache {
		var err error
		store, err = cache.Open(cfg.CacheDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache unavailable: %v\n", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	ctx := context.Background()
	if store != nil {
		if entry, err := store.Get(ctx, key); err == nil {
			return entry.Table, &grammar.Report{}, nil
		}
	}

	startName, prods, err := gramtext.Parse(src)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse grammar: %w", err)
	}
	if startName == "" {
		return nil, nil, fmt.Errorf("grammar has no start declaration")
	}

	g, err := grammar.New(startName, prods, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot build grammar: %w", err)
	}

	table, report, err := grammar.NewTable(g)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot build table: %w", err)
	}

	// Only conflict-free tables are cached: a cache hit above returns an
	// empty Report, which would hide conflicts from the conflict policy.
	if store != nil && !report.HasConflicts() {
		if _, err := store.Put(ctx, key, table); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not cache compiled table: %v\n", err)
		}
	}

	return table, report, nil
}

func writeTable(table *grammar.Table, path string) error {
	b, err := json.Marshal(table.Dump())
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	fmt.Fprintf(w, "%s\n", b)
	return nil
}
