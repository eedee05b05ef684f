package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"db-compare/internal/dialect"
	"db-compare/internal/schema"
)

// loadSchema connects to cfg, reads its structure and closes the connection.
func loadSchema(ctx context.Context, cfg *DBConfig, label string) (*schema.Schema, error) {
	d := dialect.GetDialect(cfg.Driver)
	log.Printf("Connecting to %s (%s)...\n", cfg.Name, d.Name())

	db, err := sql.Open(d.Name(), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s db: %w", cfg.Role, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s db: %w", cfg.Role, err)
	}

	s, err := schema.Analyze(ctx, db, d, cfg.Schema, label)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s schema: %w", cfg.Role, err)
	}
	fmt.Printf("🦅 Connected to %s (%s). Found %d tables as %s.\n", cfg.Name, cfg.Driver, len(s.Tables()), label)
	return s, nil
}
