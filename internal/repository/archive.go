package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/common"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
)

const archiveDDL = `
CREATE TABLE IF NOT EXISTS bills (
	id               TEXT PRIMARY KEY,
	invoice_number   TEXT NOT NULL,
	customer_name    TEXT NOT NULL DEFAULT '',
	customer_address TEXT NOT NULL DEFAULT '',
	manufacturer     TEXT NOT NULL DEFAULT '',
	model            TEXT NOT NULL DEFAULT '',
	serial_number    TEXT NOT NULL DEFAULT '',
	asset_category   TEXT NOT NULL DEFAULT '',
	asset_cost       REAL NOT NULL DEFAULT 0,
	finance_flag     INTEGER NOT NULL DEFAULT 0,
	template         TEXT NOT NULL,
	bill_date        TEXT NOT NULL,
	created_at       TEXT NOT NULL
)`

// ArchiveRepository is a local sqlite-backed bill store used by the
// offline CLI. Implements the same contract as the Postgres store.
type ArchiveRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenArchive opens (creating if needed) a sqlite archive at path.
func OpenArchive(ctx context.Context, path string, logger *slog.Logger) (*ArchiveRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(err, "open archive")
	}
	if _, err := db.ExecContext(ctx, archiveDDL); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "ensure archive schema")
	}
	return &ArchiveRepository{db: db, logger: logger}, nil
}

func (r *ArchiveRepository) Close() error {
	return r.db.Close()
}

func (r *ArchiveRepository) Save(ctx context.Context, bill entity.Bill) error {
	const q = `
		INSERT INTO bills (
			id, invoice_number, customer_name, customer_address, manufacturer,
			model, serial_number, asset_category, asset_cost, finance_flag,
			template, bill_date, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, q,
		bill.ID.String(),
		bill.InvoiceNumber,
		bill.Record.CustomerName,
		bill.Record.CustomerAddress,
		bill.Record.Manufacturer,
		bill.Record.Model,
		bill.Record.SerialNumber,
		bill.Record.AssetCategory,
		bill.Record.AssetCost,
		bill.Record.FinanceFlag,
		string(bill.Record.Template),
		bill.Record.Date,
		bill.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		r.logger.Error("repository.archive.save_failed", "bill_id", bill.ID, "error", err)
		return common.NewAppError("DB_ERROR", "archive bill", common.ErrDatabase)
	}
	return nil
}

func (r *ArchiveRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	const q = `
		SELECT id, invoice_number, customer_name, customer_address, manufacturer,
		       model, serial_number, asset_category, asset_cost, finance_flag,
		       template, bill_date, created_at
		FROM bills WHERE id = ?`
	bill, err := scanArchiveBill(r.db.QueryRowContext(ctx, q, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.NewAppError("DB_ERROR", "get archived bill", common.ErrDatabase)
	}
	return bill, nil
}

func (r *ArchiveRepository) List(ctx context.Context) ([]entity.Bill, error) {
	const q = `
		SELECT id, invoice_number, customer_name, customer_address, manufacturer,
		       model, serial_number, asset_category, asset_cost, finance_flag,
		       template, bill_date, created_at
		FROM bills ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, common.NewAppError("DB_ERROR", "list archived bills", common.ErrDatabase)
	}
	defer rows.Close()

	var bills []entity.Bill
	for rows.Next() {
		bill, err := scanArchiveBill(rows)
		if err != nil {
			return nil, common.NewAppError("DB_ERROR", "scan archived bill", common.ErrDatabase)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("DB_ERROR", "iterate archived bills", common.ErrDatabase)
	}
	return bills, nil
}

func scanArchiveBill(row rowScanner) (*entity.Bill, error) {
	var (
		bill       entity.Bill
		rawID      string
		template   string
		rawCreated string
	)
	err := row.Scan(
		&rawID,
		&bill.InvoiceNumber,
		&bill.Record.CustomerName,
		&bill.Record.CustomerAddress,
		&bill.Record.Manufacturer,
		&bill.Record.Model,
		&bill.Record.SerialNumber,
		&bill.Record.AssetCategory,
		&bill.Record.AssetCost,
		&bill.Record.FinanceFlag,
		&template,
		&bill.Record.Date,
		&rawCreated,
	)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rawCreated)
	if err != nil {
		return nil, err
	}
	bill.ID = id
	bill.CreatedAt = createdAt
	bill.Record.Template = constants.TemplateTag(template)
	return &bill, nil
}
