package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"db-compare/internal/compare"
	"db-compare/internal/dialect"
	"db-compare/internal/engine"
	"db-compare/internal/report"
	"db-compare/internal/schema"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outputPath string
	syncPath   string
	exportPath string
	noSync     bool
	failOnDiff bool
)

// compareOptions is everything one comparison run needs; no globals.
type compareOptions struct {
	Master     *DBConfig
	Candidate  *DBConfig
	Output     string
	SyncScript string
	Export     string
	Progress   bool
}

// errDifferencesFound is returned with --fail-on-diff.
type errDifferencesFound struct {
	count int
}

func (e *errDifferencesFound) Error() string {
	return fmt.Sprintf("%d differences found between master and candidate", e.count)
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the candidate schema against the master",
	RunE: func(cmd *cobra.Command, args []string) error {
		masterCfg, err := GetRoleDBConfig(RoleMaster)
		if err != nil {
			return err
		}
		candidateCfg, err := GetRoleDBConfig(RoleCandidate)
		if err != nil {
			return err
		}

		sync := viper.GetString("report.sync_script")
		if noSync {
			sync = ""
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("settings.timeout"))
		defer cancel()

		diffs, err := runCompare(ctx, compareOptions{
			Master:     masterCfg,
			Candidate:  candidateCfg,
			Output:     viper.GetString("report.output"),
			SyncScript: sync,
			Export:     viper.GetString("report.export"),
			Progress:   true,
		})
		if err != nil {
			return err
		}
		if failOnDiff && len(diffs) > 0 {
			return &errDifferencesFound{count: len(diffs)}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)

	// CLI Flags
	compareCmd.Flags().StringVarP(&outputPath, "output", "o", "", "xlsx report path (overrides config)")
	compareCmd.Flags().StringVar(&syncPath, "sync-script", "", "sync SQL script path (overrides config)")
	compareCmd.Flags().StringVar(&exportPath, "export", "", "also write the differences as YAML to this path")
	compareCmd.Flags().BoolVar(&noSync, "no-sync", false, "do not write the sync SQL script")
	compareCmd.Flags().BoolVar(&failOnDiff, "fail-on-diff", false, "exit with status 1 when differences are found")

	bindCompareConfig()
}

func bindCompareConfig() {
	viper.BindPFlag("report.output", compareCmd.Flags().Lookup("output"))
	viper.BindPFlag("report.sync_script", compareCmd.Flags().Lookup("sync-script"))
	viper.BindPFlag("report.export", compareCmd.Flags().Lookup("export"))
	viper.SetDefault("report.output", "estructura_base_datos.xlsx")
	viper.SetDefault("report.sync_script", "script_sincronizacion.sql")
}

// runCompare loads both schemas, compares them and writes every requested
// artifact. Nothing is written unless both schemas load and compare cleanly.
func runCompare(ctx context.Context, opts compareOptions) ([]compare.Difference, error) {
	start := time.Now()

	log.Println("Processing Database 1 (Master)...")
	master, err := loadSchema(ctx, opts.Master, "DB_1")
	if err != nil {
		return nil, err
	}

	log.Println("Processing Database 2 (Candidate)...")
	candidate, err := loadSchema(ctx, opts.Candidate, "DB_2")
	if err != nil {
		return nil, err
	}

	if master.Len() == 0 && candidate.Len() == 0 {
		log.Println("No data retrieved from either database.")
		return []compare.Difference{}, nil
	}

	log.Println("Comparing databases...")
	diffs, err := compare.Compare(master, candidate)
	if err != nil {
		return nil, err
	}

	printSummary(os.Stdout, master, candidate, diffs)

	if len(diffs) > 0 && opts.SyncScript != "" {
		if err := writeSyncScript(opts.SyncScript, master, diffs, dialect.GetDialect(opts.Candidate.Driver), opts.Progress); err != nil {
			return nil, err
		}
	}

	if opts.Output != "" {
		if err := report.SaveWorkbook(opts.Output, master, candidate, diffs); err != nil {
			return nil, err
		}
		log.Printf("Successfully exported database structure and differences to %s", opts.Output)
	}

	if opts.Export != "" {
		if err := writeExport(opts.Export, master, candidate, diffs); err != nil {
			return nil, err
		}
		log.Printf("Differences exported to %s", opts.Export)
	}

	log.Printf("Compare Done! Time Elapsed: %s", time.Since(start))
	return diffs, nil
}

func writeSyncScript(path string, master *schema.Schema, diffs []compare.Difference, d dialect.Dialect, progress bool) error {
	log.Println("Generating synchronization SQL script...")

	onProgress := func() {}
	var p *uiprogress.Progress
	if progress {
		p = uiprogress.New()
		p.Start()
		bar := p.AddBar(len(diffs)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Scripting: "
		})
		onProgress = func() { bar.Incr() }
	}

	script := engine.BuildSyncScript(master, diffs, d, onProgress)

	if p != nil {
		p.Stop()
	}

	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return fmt.Errorf("failed to write sync script: %w", err)
	}
	log.Printf("Successfully generated SQL script: %s", path)
	return nil
}

func writeExport(path string, master, candidate *schema.Schema, diffs []compare.Difference) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := report.WriteYAML(f, master.Label, candidate.Label, diffs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
