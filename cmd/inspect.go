package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"db-compare/internal/dialect"
	"db-compare/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var inspectTables []string

var inspectCmd = &cobra.Command{
	Use:       "inspect [master|candidate]",
	Short:     "Print the raw structure of one database",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{RoleMaster, RoleCandidate},
	RunE: func(cmd *cobra.Command, args []string) error {
		role := RoleMaster
		if len(args) == 1 {
			role = args[0]
		}

		cfg, err := GetRoleDBConfig(role)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("settings.timeout"))
		defer cancel()

		label := "DB_1"
		if role == RoleCandidate {
			label = "DB_2"
		}
		s, err := loadSchema(ctx, cfg, label)
		if err != nil {
			return err
		}

		return printStructure(os.Stdout, s, inspectTables)
	},
}

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List supported database drivers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range dialect.SupportedDrivers() {
			fmt.Println(name)
		}
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(driversCmd)

	inspectCmd.Flags().StringSliceVarP(&inspectTables, "tables", "t", []string{}, "Specific tables to print (comma-separated)")
}

// printStructure prints every table of s, or only those named in filter
// (case-insensitive).
func printStructure(w io.Writer, s *schema.Schema, filter []string) error {
	var wanted map[string]bool
	if len(filter) > 0 {
		wanted = make(map[string]bool)
		for _, t := range filter {
			wanted[strings.ToLower(t)] = true
		}
	}

	printed := 0
	for i, table := range s.Tables() {
		if wanted != nil && !wanted[strings.ToLower(table)] {
			continue
		}
		cols, err := s.ColumnsOf(table)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "[%02d] %s (%d columns)\n", i+1, table, len(cols))
		for _, c := range cols {
			null := "NOT NULL"
			if c.Nullable {
				null = "NULL"
			}
			def := ""
			if c.Default != nil {
				def = " DEFAULT " + *c.Default
			}
			fmt.Fprintf(w, "    %-24s %s %s%s\n", c.ColumnName, c.DataType, null, def)
		}
		printed++
	}

	if wanted != nil && printed == 0 {
		return fmt.Errorf("no matching tables found for inputs: %v", filter)
	}
	fmt.Fprintf(w, "%s: %d tables, %d columns\n", s.Label, len(s.Tables()), s.Len())
	return nil
}
