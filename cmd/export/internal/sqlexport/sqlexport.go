package sqlexport

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/InternatManhole/route-catalog/internal/logging"
	"github.com/InternatManhole/route-catalog/internal/routes"

	_ "modernc.org/sqlite"
)

var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS routes (
		position INTEGER PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		number INTEGER NOT NULL
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_routes_number
	ON routes(number);
	`,
}

// Exporter mirrors the routes catalog into a SQLite database file.
type Exporter struct {
	path           string
	statusReporter logging.LogReporter
}

func NewExporter(path string, statusReporter logging.LogReporter) *Exporter {
	return &Exporter{
		path:           path,
		statusReporter: statusReporter,
	}
}

// Export replaces the content of the routes table with rs. Position is the
// 1-based index of the route in the catalog.
func (e *Exporter) Export(ctx context.Context, rs []routes.Route) error {
	log := e.statusReporter

	db, err := sql.Open("sqlite", e.path)
	if err != nil {
		return fmt.Errorf("export routes: open %q: %w", e.path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export routes: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("export routes: exec schema statement #%d: %w", i+1, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM routes;`)
	if err != nil {
		return fmt.Errorf("export routes: clear table: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		log(logging.Verbose, "Removed %d previously exported routes", n)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO routes (
		position,
		origin,
		destination,
		number
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("export routes: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rs {
		log(logging.EvenMoreVerbose, "Exporting route %d: %s -> %s (%d)", i+1, r.Origin, r.Destination, r.Number)
		if _, err := stmt.ExecContext(ctx, i+1, r.Origin, r.Destination, r.Number); err != nil {
			return fmt.Errorf("export routes: insert route %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export routes: commit tx: %w", err)
	}
	return nil
}
