package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"mbg_outreach/internal/config"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know by default.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// ConnectSQL opens and pings a sqlite or postgres database.
func ConnectSQL(ctx context.Context, store config.StoreConfig) (*sqlx.DB, error) {
	var driver string
	switch store.Driver {
	case config.StoreSQLite:
		driver = "sqlite"
	case config.StorePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", store.Driver)
	}

	db, err := sqlx.Open(driver, store.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// One writer; also keeps ":memory:" databases on a single connection.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}
