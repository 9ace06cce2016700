package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/common"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
)

// BillRepository stores persisted bills. The extraction core itself is
// stateless; persistence happens only at the service edge.
type BillRepository interface {
	Save(ctx context.Context, bill entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	List(ctx context.Context) ([]entity.Bill, error)
}

const billsDDL = `
CREATE TABLE IF NOT EXISTS bills (
	id               UUID PRIMARY KEY,
	invoice_number   TEXT NOT NULL,
	customer_name    TEXT NOT NULL DEFAULT '',
	customer_address TEXT NOT NULL DEFAULT '',
	manufacturer     TEXT NOT NULL DEFAULT '',
	model            TEXT NOT NULL DEFAULT '',
	serial_number    TEXT NOT NULL DEFAULT '',
	asset_category   TEXT NOT NULL DEFAULT '',
	asset_cost       DOUBLE PRECISION NOT NULL DEFAULT 0,
	finance_flag     BOOLEAN NOT NULL DEFAULT FALSE,
	template         TEXT NOT NULL,
	bill_date        TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PGBillRepository is the Postgres-backed bill store.
type PGBillRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPGBillRepository(pool *pgxpool.Pool, logger *slog.Logger) *PGBillRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PGBillRepository{pool: pool, logger: logger}
}

// EnsureSchema creates the bills table if it does not exist.
func (r *PGBillRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, billsDDL)
	return common.WrapError(err, "ensure bills schema")
}

func (r *PGBillRepository) Save(ctx context.Context, bill entity.Bill) error {
	const q = `
		INSERT INTO bills (
			id, invoice_number, customer_name, customer_address, manufacturer,
			model, serial_number, asset_category, asset_cost, finance_flag,
			template, bill_date, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := r.pool.Exec(ctx, q,
		bill.ID,
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
		bill.CreatedAt,
	)
	if err != nil {
		r.logger.Error("repository.bills.save_failed", "bill_id", bill.ID, "error", err)
		return common.NewAppError("DB_ERROR", "save bill", common.ErrDatabase)
	}
	return nil
}

func (r *PGBillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	const q = `
		SELECT id, invoice_number, customer_name, customer_address, manufacturer,
		       model, serial_number, asset_category, asset_cost, finance_flag,
		       template, bill_date, created_at
		FROM bills WHERE id = $1`
	row := r.pool.QueryRow(ctx, q, id)
	bill, err := scanBill(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		r.logger.Error("repository.bills.get_failed", "bill_id", id, "error", err)
		return nil, common.NewAppError("DB_ERROR", "get bill", common.ErrDatabase)
	}
	return bill, nil
}

func (r *PGBillRepository) List(ctx context.Context) ([]entity.Bill, error) {
	const q = `
		SELECT id, invoice_number, customer_name, customer_address, manufacturer,
		       model, serial_number, asset_category, asset_cost, finance_flag,
		       template, bill_date, created_at
		FROM bills ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("repository.bills.list_failed", "error", err)
		return nil, common.NewAppError("DB_ERROR", "list bills", common.ErrDatabase)
	}
	defer rows.Close()

	var bills []entity.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, common.NewAppError("DB_ERROR", "scan bill", common.ErrDatabase)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("DB_ERROR", "iterate bills", common.ErrDatabase)
	}
	return bills, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBill(row rowScanner) (*entity.Bill, error) {
	var (
		bill     entity.Bill
		template string
	)
	err := row.Scan(
		&bill.ID,
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
		&bill.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	bill.Record.Template = constants.TemplateTag(template)
	return &bill, nil
}

// NewBill wraps a record into a persistable bill with a fresh id.
func NewBill(record entity.BillRecord, invoiceNumber string) entity.Bill {
	return entity.Bill{
		ID:            uuid.New(),
		InvoiceNumber: invoiceNumber,
		Record:        record,
		CreatedAt:     time.Now().UTC(),
	}
}
