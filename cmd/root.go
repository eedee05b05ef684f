package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile         string
	masterDSN       string
	candidateDSN    string
	masterDriver    string
	candidateDriver string
)

var RootCmd = &cobra.Command{
	Use:   "db-compare",
	Short: "A database schema comparison tool",
	Long: `
  ____  ____     ____ ___  __  __ ____   _    ____  _____
 |  _ \| __ )   / ___/ _ \|  \/  |  _ \ / \  |  _ \| ____|
 | | | |  _ \  | |  | | | | |\/| | |_) / _ \ | |_) |  _|
 | |_| | |_) | | |__| |_| | |  | |  __/ ___ \|  _ <| |___
 |____/|____/   \____\___/|_|  |_|_| /_/   \_\_| \_\_____|

DB COMPARE - Schema validator (master vs candidate)
`,
	SilenceUsage: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-compare.yaml)")
	RootCmd.PersistentFlags().StringVar(&masterDSN, "master-dsn", "", "DSN of the master database (source of truth)")
	RootCmd.PersistentFlags().StringVar(&candidateDSN, "candidate-dsn", "", "DSN of the candidate database")
	RootCmd.PersistentFlags().StringVar(&masterDriver, "master-driver", "", "driver of the master database (detected from the DSN if empty)")
	RootCmd.PersistentFlags().StringVar(&candidateDriver, "candidate-driver", "", "driver of the candidate database (detected from the DSN if empty)")

	bindRootConfig()
}

// bindRootConfig binds the persistent flags and env names to viper keys
// (Flag > Env > Config > Default).
func bindRootConfig() {
	viper.BindPFlag("master.dsn", RootCmd.PersistentFlags().Lookup("master-dsn"))
	viper.BindPFlag("candidate.dsn", RootCmd.PersistentFlags().Lookup("candidate-dsn"))
	viper.BindPFlag("master.driver", RootCmd.PersistentFlags().Lookup("master-driver"))
	viper.BindPFlag("candidate.driver", RootCmd.PersistentFlags().Lookup("candidate-driver"))

	// Same variable names the .env of the older validator used.
	viper.BindEnv("master.dsn", "DATABASE_URL1")
	viper.BindEnv("candidate.dsn", "DATABASE_URL2")

	viper.SetDefault("settings.timeout", "30s")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-compare")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
