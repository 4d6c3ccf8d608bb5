package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var sqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id               TEXT PRIMARY KEY,
		dedup_key        TEXT NOT NULL,
		nama_sppg        TEXT NOT NULL,
		alamat           TEXT NOT NULL DEFAULT '',
		provinsi         TEXT NOT NULL DEFAULT '',
		kab_kota         TEXT NOT NULL DEFAULT '',
		kecamatan        TEXT NOT NULL DEFAULT '',
		desa             TEXT NOT NULL DEFAULT '',
		phone            TEXT NOT NULL DEFAULT '',
		confidence_score DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		pesan_penawaran  TEXT NOT NULL DEFAULT '',
		status           TEXT NOT NULL,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL,
		sent_at          TEXT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_leads_dedup_key ON leads (dedup_key)`,
	`CREATE INDEX IF NOT EXISTS ix_leads_status ON leads (status)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id        TEXT PRIMARY KEY,
		lead_id   TEXT NOT NULL REFERENCES leads (id),
		content   TEXT NOT NULL,
		direction TEXT NOT NULL,
		status    TEXT NOT NULL,
		sent_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS ix_messages_lead_sent ON messages (lead_id, sent_at)`,
}

// MigrateSQL creates the lead and message tables when missing.
func MigrateSQL(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range sqlSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
