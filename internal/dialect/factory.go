package dialect

import (
	"sort"
	"strings"
)

var drivers = map[string]func() Dialect{
	"mysql":     func() Dialect { return &MysqlDialect{} },
	"postgres":  func() Dialect { return &PostgresDialect{driver: "postgres"} },
	"pgx":       func() Dialect { return &PostgresDialect{driver: "pgx"} },
	"sqlserver": func() Dialect { return &MSSQLDialect{} },
	"mssql":     func() Dialect { return &MSSQLDialect{} },
	"oracle":    func() Dialect { return &OracleDialect{} },
	"sqlite3":   func() Dialect { return &SqliteDialect{} },
	"sqlite":    func() Dialect { return &SqliteDialect{} },
}

// GetDialect returns the appropriate Dialect implementation based on driver name.
// Unknown names fall back to MySQL.
func GetDialect(driver string) Dialect {
	if f, ok := drivers[strings.ToLower(driver)]; ok {
		return f()
	}
	return &MysqlDialect{}
}

// IsSupported reports whether driver has a dedicated Dialect.
func IsSupported(driver string) bool {
	_, ok := drivers[strings.ToLower(driver)]
	return ok
}

// SupportedDrivers lists the accepted driver names, sorted.
func SupportedDrivers() []string {
	names := make([]string, 0, len(drivers))
	for k := range drivers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DetectDriver guesses the driver from a DSN when none is configured.
func DetectDriver(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "sslmode"):
		return "postgres"
	case strings.HasPrefix(lower, "sqlserver://"):
		return "sqlserver"
	case strings.HasPrefix(lower, "oracle://"):
		return "oracle"
	case strings.HasPrefix(lower, "file:"), strings.HasSuffix(lower, ".db"),
		strings.HasSuffix(lower, ".sqlite"), strings.Contains(lower, ":memory:"):
		return "sqlite3"
	default:
		return "mysql"
	}
}

// Ensure interface implementation
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
var _ Dialect = (*SqliteDialect)(nil)
