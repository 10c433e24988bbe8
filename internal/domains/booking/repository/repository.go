package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"boatsandjoy/config"
	"boatsandjoy/infras/otel"
	"boatsandjoy/infras/postgres"
	"boatsandjoy/internal/domains/booking/model"
	"boatsandjoy/shared/constant"
	"boatsandjoy/shared/failure"
	"boatsandjoy/shared/logger"
	"boatsandjoy/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const bookingColumns = `id, locator, price, status, session_id, customer_name,
	customer_telephone_number, customer_email, extras, boat_id,
	created_at, created_by, modified_at, modified_by`

// Bookings owns all persistence for the booking lifecycle. Slot availability
// is checked here too: a slot is free while every booking holding it is in
// error state.
type Bookings interface {
	// GetPurchaseDetails computes the checkout line item for the given slots.
	// excludeBookingID ignores slots held by that booking during the
	// availability check; pass 0 when creating, the booking's own id when
	// regenerating its checkout session.
	GetPurchaseDetails(ctx context.Context, slotIDs []int64, price decimal.Decimal, excludeBookingID int64) (model.PurchaseDetails, error)
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetByID(ctx context.Context, id int64) (model.Booking, error)
	GetBySessionID(ctx context.Context, sessionID string) (model.Booking, error)
	UpdateSessionID(ctx context.Context, id int64, sessionID string) (model.Booking, error)
	UpdateCustomerEmail(ctx context.Context, id int64, email string) (model.Booking, error)
	MarkAsPaid(ctx context.Context, sessionID string) (model.Booking, bool, error)
	MarkAsError(ctx context.Context, sessionID string) (model.Booking, bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	cfg  *config.Config
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Bookings {
	return &repositoryImpl{
		db:   db,
		cfg:  cfg,
		otel: otel,
	}
}

type slotRow struct {
	ID       int64  `db:"id"`
	BoatID   int64  `db:"boat_id"`
	Day      string `db:"day"`
	FromHour string `db:"from_hour"`
	ToHour   string `db:"to_hour"`
	BoatName string `db:"boat_name"`
	Taken    bool   `db:"taken"`
}

func (repo *repositoryImpl) GetPurchaseDetails(ctx context.Context, slotIDs []int64, price decimal.Decimal, excludeBookingID int64) (res model.PurchaseDetails, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetPurchaseDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := repo.getSlots(ctx, repo.db.Read, slotIDs, excludeBookingID)
	if err != nil {
		return res, err
	}

	boatID := rows[0].BoatID
	descriptions := make([]string, 0, len(rows))

	for _, row := range rows {
		if row.BoatID != boatID {
			return res, failure.Conflict("slots belong to different boats") // nolint:wrapcheck
		}

		if row.Taken {
			return res, failure.Conflict(fmt.Sprintf("slot %d is already booked", row.ID)) // nolint:wrapcheck
		}

		descriptions = append(descriptions, fmt.Sprintf("%s %s-%s", row.Day, row.FromHour, row.ToHour))
	}

	res = model.PurchaseDetails{
		Name:        rows[0].BoatName,
		Description: strings.Join(descriptions, ", "),
		Amount:      price,
		Currency:    repo.cfg.Booking.Currency,
	}

	return res, nil
}

func (repo *repositoryImpl) Create(ctx context.Context, booking model.Booking) (res model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Availability was checked when the purchase details were computed, but a
	// concurrent create may have raced us. Re-check inside the transaction.
	rows, err := repo.getSlots(ctx, tx, booking.SlotIDs, 0)
	if err != nil {
		return res, err
	}

	booking.BoatID = rows[0].BoatID

	for _, row := range rows {
		if row.BoatID != booking.BoatID {
			return res, failure.Conflict("slots belong to different boats") // nolint:wrapcheck
		}

		if row.Taken {
			return res, failure.Conflict(fmt.Sprintf("slot %d is already booked", row.ID)) // nolint:wrapcheck
		}
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (locator, price, status, session_id,
		customer_name, customer_telephone_number, customer_email, extras, boat_id,
		created_at, created_by, modified_at, modified_by)
		VALUES (:locator, :price, :status, :session_id, :customer_name,
		:customer_telephone_number, :customer_email, :extras, :boat_id,
		:created_at, :created_by, :modified_at, :modified_by)
		RETURNING id, created_at`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, insertQuery)

	stmt, err := tx.PrepareNamedContext(ctx, insertQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	var inserted struct {
		ID        int64        `db:"id"`
		CreatedAt sql.NullTime `db:"created_at"`
	}

	if err = stmt.GetContext(ctx, &inserted, booking); err != nil {
		logger.ErrorWithStack(err)

		return res, translatePqError(err, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err))
	}

	booking.ID = inserted.ID
	if inserted.CreatedAt.Valid {
		booking.CreatedAt = inserted.CreatedAt.Time
	}

	for _, slotID := range booking.SlotIDs {
		if _, err = tx.ExecContext(ctx, fmt.Sprintf("INSERT INTO %s (booking_id, slot_id) VALUES ($1, $2)", model.SlotsTableName), booking.ID, slotID); err != nil {
			logger.ErrorWithStack(err)

			return res, translatePqError(err, fmt.Errorf("failed to insert booking slots: %w", err))
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return booking, nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id int64) (res model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.getOne(ctx, fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", bookingColumns, model.TableName, model.FieldID), id)
}

func (repo *repositoryImpl) GetBySessionID(ctx context.Context, sessionID string) (res model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetBySessionID")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.getOne(ctx, fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", bookingColumns, model.TableName, model.FieldSessionID), sessionID)
}

func (repo *repositoryImpl) UpdateSessionID(ctx context.Context, id int64, sessionID string) (res model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateSessionID")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET session_id = $1, modified_at = $2 WHERE id = $3 RETURNING %s", model.TableName, bookingColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.GetContext(ctx, &res, query, sessionID, timezone.Now(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, translatePqError(err, fmt.Errorf("failed to update session id (%s): %w", model.EntityName, err))
	}

	err = repo.loadSlotIDs(ctx, &res)

	return res, err
}

func (repo *repositoryImpl) UpdateCustomerEmail(ctx context.Context, id int64, email string) (res model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateCustomerEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET customer_email = $1, modified_at = $2 WHERE id = $3 RETURNING %s", model.TableName, bookingColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.GetContext(ctx, &res, query, email, timezone.Now(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to update customer email (%s): %w", model.EntityName, err)
	}

	err = repo.loadSlotIDs(ctx, &res)

	return res, err
}

func (repo *repositoryImpl) MarkAsPaid(ctx context.Context, sessionID string) (model.Booking, bool, error) {
	return repo.transition(ctx, sessionID, model.StatusConfirmed, "MarkAsPaid")
}

func (repo *repositoryImpl) MarkAsError(ctx context.Context, sessionID string) (model.Booking, bool, error) {
	return repo.transition(ctx, sessionID, model.StatusError, "MarkAsError")
}

// transition applies the single allowed status move away from pending. The
// conditional update is the concurrency guarantee: when two callbacks race,
// exactly one sees applied=true and the loser gets the settled row back.
func (repo *repositoryImpl) transition(ctx context.Context, sessionID string, status model.BookingStatus, op string) (res model.Booking, applied bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+"."+op)
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET status = $1, modified_at = $2 WHERE session_id = $3 AND status = $4 RETURNING %s",
		model.TableName, bookingColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.GetContext(ctx, &res, query, status, timezone.Now(), sessionID, model.StatusPending)
	if err == nil {
		err = repo.loadSlotIDs(ctx, &res)

		return res, true, err
	}

	if !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)

		return res, false, fmt.Errorf("failed to transition booking to %s: %w", status, err)
	}

	// Nothing was pending under this session id: either the booking is already
	// terminal or the session id is unknown.
	res, err = repo.GetBySessionID(ctx, sessionID)

	return res, false, err
}

func (repo *repositoryImpl) getOne(ctx context.Context, query string, arg any) (res model.Booking, err error) {
	err = repo.db.Read.GetContext(ctx, &res, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	err = repo.loadSlotIDs(ctx, &res)

	return res, err
}

func (repo *repositoryImpl) loadSlotIDs(ctx context.Context, booking *model.Booking) error {
	query := fmt.Sprintf("SELECT slot_id FROM %s WHERE booking_id = $1 ORDER BY slot_id", model.SlotsTableName)

	if err := repo.db.Read.SelectContext(ctx, &booking.SlotIDs, query, booking.ID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to load booking slots: %w", err)
	}

	return nil
}

type slotQueryer interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

// getSlots loads the requested slots with their boat and an availability flag.
// Every requested id must exist; a missing one fails the whole lookup.
func (repo *repositoryImpl) getSlots(ctx context.Context, db slotQueryer, slotIDs []int64, excludeBookingID int64) ([]slotRow, error) {
	if len(slotIDs) == 0 {
		return nil, failure.BadRequestFromString("slot_ids must not be empty") // nolint:wrapcheck
	}

	query, args, err := sqlx.In(fmt.Sprintf(`SELECT s.id, s.boat_id,
		to_char(s.day, 'YYYY-MM-DD') AS day, s.from_hour, s.to_hour, b.name AS boat_name,
		EXISTS (
			SELECT 1 FROM %s bs
			JOIN %s bk ON bk.id = bs.booking_id
			WHERE bs.slot_id = s.id AND bk.status != '%s' AND bk.id != ?
		) AS taken
		FROM slots s
		JOIN boats b ON b.id = s.boat_id
		WHERE s.id IN (?)
		ORDER BY s.day, s.from_hour`, model.SlotsTableName, model.TableName, model.StatusError), excludeBookingID, slotIDs)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build slot query: %w", err)
	}

	var rows []slotRow

	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get slots: %w", err)
	}

	if len(rows) != len(slotIDs) {
		return nil, failure.NotFound("slot") // nolint:wrapcheck
	}

	return rows, nil
}

// translatePqError maps constraint violations onto API failures, falling back
// to the wrapped error for everything else.
func translatePqError(err error, fallback error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			return failure.Conflict("duplicate value for " + pqErr.Constraint) // nolint:wrapcheck
		case constant.PqErrorCodeFkViolation:
			return failure.NotFound("slot") // nolint:wrapcheck
		}
	}

	return fallback
}
