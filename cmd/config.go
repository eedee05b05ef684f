package cmd

import (
	"fmt"

	"db-compare/internal/dialect"

	"github.com/spf13/viper"
)

const (
	RoleMaster    = "master"
	RoleCandidate = "candidate"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Role   string `mapstructure:"role"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Schema string `mapstructure:"schema"`
}

// GetRoleDBConfig returns the connection target for role. A top-level
// `<role>.dsn` (flag, env or config) wins over the `databases` list, where
// exactly one entry must carry the role.
func GetRoleDBConfig(role string) (*DBConfig, error) {
	if role != RoleMaster && role != RoleCandidate {
		return nil, fmt.Errorf("unknown role %q (expected %s or %s)", role, RoleMaster, RoleCandidate)
	}

	var cfg *DBConfig
	if dsn := viper.GetString(role + ".dsn"); dsn != "" {
		cfg = &DBConfig{
			Name:   role,
			Role:   role,
			Driver: viper.GetString(role + ".driver"),
			DSN:    dsn,
			Schema: viper.GetString(role + ".schema"),
		}
	} else {
		var configs []DBConfig
		if err := viper.UnmarshalKey("databases", &configs); err != nil {
			return nil, fmt.Errorf("failed to parse databases config: %w", err)
		}

		count := 0
		for i := range configs {
			if configs[i].Role == role {
				cfg = &configs[i]
				count++
			}
		}

		if count == 0 {
			return nil, fmt.Errorf("no %s database configured (use --%s-dsn or set role: %s)", role, role, role)
		}
		if count > 1 {
			return nil, fmt.Errorf("multiple %s databases found (only one can have role: %s)", role, role)
		}
	}

	if cfg.DSN == "" {
		return nil, fmt.Errorf("%s database %q has no dsn", role, cfg.Name)
	}
	if cfg.Driver == "" {
		cfg.Driver = dialect.DetectDriver(cfg.DSN)
	}
	if !dialect.IsSupported(cfg.Driver) {
		return nil, fmt.Errorf("unsupported driver %q for %s database (supported: %v)", cfg.Driver, role, dialect.SupportedDrivers())
	}
	return cfg, nil
}
