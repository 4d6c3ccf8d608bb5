package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type leadRow struct {
	ID              string         `db:"id"`
	DedupKey        string         `db:"dedup_key"`
	Name            string         `db:"nama_sppg"`
	Address         string         `db:"alamat"`
	Province        string         `db:"provinsi"`
	City            string         `db:"kab_kota"`
	District        string         `db:"kecamatan"`
	Village         string         `db:"desa"`
	Phone           string         `db:"phone"`
	ConfidenceScore float64        `db:"confidence_score"`
	OutreachMessage string         `db:"pesan_penawaran"`
	Status          string         `db:"status"`
	CreatedAt       string         `db:"created_at"`
	UpdatedAt       string         `db:"updated_at"`
	SentAt          sql.NullString `db:"sent_at"`
}

// LeadSQLRepository persists leads in SQLite or PostgreSQL through sqlx.
type LeadSQLRepository struct {
	db *sqlx.DB
}

var _ interfaces.ILeadRepository = (*LeadSQLRepository)(nil)

func NewLeadSQLRepository(db *sqlx.DB) *LeadSQLRepository {
	return &LeadSQLRepository{db: db}
}

func (r *LeadSQLRepository) Create(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO leads (
			id, dedup_key, nama_sppg, alamat, provinsi, kab_kota, kecamatan, desa,
			phone, confidence_score, pesan_penawaran, status, created_at, updated_at, sent_at
		) VALUES (
			:id, :dedup_key, :nama_sppg, :alamat, :provinsi, :kab_kota, :kecamatan, :desa,
			:phone, :confidence_score, :pesan_penawaran, :status, :created_at, :updated_at, :sent_at
		)`, toLeadRow(lead))
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Lead{}, interfaces.ErrDuplicateLead
		}
		return entities.Lead{}, err
	}
	return lead, nil
}

func (r *LeadSQLRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	return r.getOne(ctx, `SELECT * FROM leads WHERE id = ?`, id)
}

func (r *LeadSQLRepository) FindByNameCity(ctx context.Context, name, city string) (entities.Lead, error) {
	return r.getOne(ctx, `SELECT * FROM leads WHERE dedup_key = ?`, entities.DedupKey(name, city))
}

func (r *LeadSQLRepository) List(ctx context.Context, filter interfaces.LeadFilter) ([]entities.Lead, error) {
	q := `SELECT * FROM leads WHERE 1 = 1`
	args := []any{}
	if filter.Status != nil {
		q += ` AND status = ?`
		args = append(args, string(*filter.Status))
	}
	if filter.HasMessage != nil {
		if *filter.HasMessage {
			q += ` AND TRIM(pesan_penawaran) <> ''`
		} else {
			q += ` AND TRIM(pesan_penawaran) = ''`
		}
	}
	if filter.HasPhone != nil {
		if *filter.HasPhone {
			q += ` AND TRIM(phone) <> ''`
		} else {
			q += ` AND TRIM(phone) = ''`
		}
	}
	q += ` ORDER BY created_at DESC, id`

	var rows []leadRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	out := make([]entities.Lead, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromLeadRow(row))
	}
	return out, nil
}

func (r *LeadSQLRepository) Update(ctx context.Context, id string, upd interfaces.LeadUpdate) (entities.Lead, error) {
	sets := []string{"updated_at = ?"}
	args := []any{formatTime(time.Now())}
	if upd.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *upd.Phone)
	}
	if upd.OutreachMessage != nil {
		sets = append(sets, "pesan_penawaran = ?")
		args = append(args, *upd.OutreachMessage)
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*upd.Status))
	}
	if upd.SentAt != nil {
		sets = append(sets, "sent_at = ?")
		args = append(args, formatTime(*upd.SentAt))
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`UPDATE leads SET `+strings.Join(sets, ", ")+` WHERE id = ?`), args...)
	if err != nil {
		return entities.Lead{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.Lead{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *LeadSQLRepository) FindByPhoneSuffix(ctx context.Context, suffix string) (entities.Lead, error) {
	suffix = strings.Map(func(c rune) rune {
		if c >= '0' && c <= '9' {
			return c
		}
		return -1
	}, suffix)
	if suffix == "" {
		return entities.Lead{}, nil
	}
	return r.getOne(ctx, `
		SELECT * FROM leads
		WHERE phone <> ''
		  AND REPLACE(REPLACE(REPLACE(phone, '-', ''), ' ', ''), '+', '') LIKE ?
		ORDER BY created_at DESC
		LIMIT 1`, "%"+suffix)
}

func (r *LeadSQLRepository) CountByStatus(ctx context.Context) (map[entities.LeadStatus]int, error) {
	var rows []struct {
		Status string `db:"status"`
		N      int    `db:"n"`
	}
	if err := r.db.SelectContext(ctx, &rows, `SELECT status, COUNT(*) AS n FROM leads GROUP BY status`); err != nil {
		return nil, err
	}
	out := make(map[entities.LeadStatus]int, len(rows))
	for _, row := range rows {
		out[entities.LeadStatus(row.Status)] = row.N
	}
	return out, nil
}

func (r *LeadSQLRepository) CountSentSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, r.db.Rebind(`SELECT COUNT(*) FROM leads WHERE sent_at IS NOT NULL AND sent_at >= ?`), formatTime(since))
	return n, err
}

func (r *LeadSQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *LeadSQLRepository) getOne(ctx context.Context, q string, args ...any) (entities.Lead, error) {
	var row leadRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(q), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Lead{}, nil
	}
	if err != nil {
		return entities.Lead{}, err
	}
	return fromLeadRow(row), nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func toLeadRow(l entities.Lead) leadRow {
	row := leadRow{
		ID:              l.ID,
		DedupKey:        l.DedupKey(),
		Name:            l.Name,
		Address:         l.Address,
		Province:        l.Province,
		City:            l.City,
		District:        l.District,
		Village:         l.Village,
		Phone:           l.Phone,
		ConfidenceScore: l.ConfidenceScore,
		OutreachMessage: l.OutreachMessage,
		Status:          string(l.Status),
		CreatedAt:       formatTime(l.CreatedAt),
		UpdatedAt:       formatTime(l.UpdatedAt),
	}
	if l.SentAt != nil {
		row.SentAt = sql.NullString{String: formatTime(*l.SentAt), Valid: true}
	}
	return row
}

func fromLeadRow(row leadRow) entities.Lead {
	l := entities.Lead{
		ID:              row.ID,
		Name:            row.Name,
		Address:         row.Address,
		Province:        row.Province,
		City:            row.City,
		District:        row.District,
		Village:         row.Village,
		Phone:           row.Phone,
		ConfidenceScore: row.ConfidenceScore,
		OutreachMessage: row.OutreachMessage,
		Status:          entities.LeadStatus(row.Status),
		CreatedAt:       parseTime(row.CreatedAt),
		UpdatedAt:       parseTime(row.UpdatedAt),
	}
	if row.SentAt.Valid {
		l.SentAt = parseTimePtr(row.SentAt.String)
	}
	return l
}
