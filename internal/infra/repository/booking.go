package repository

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// bookingView is the joined select underlying all full booking reads.
func bookingView() *goqu.SelectDataset {
	return pg.From(goqu.T("bookings").As("b")).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("b.booker_id")))).
		Select(
			goqu.I("b.id"), goqu.I("b.start_time"), goqu.I("b.end_time"), goqu.I("b.status"),
			goqu.I("i.id"), goqu.I("i.name"), goqu.I("i.description"), goqu.I("i.available"),
			goqu.I("i.owner_id"), goqu.I("i.request_id"),
			goqu.I("u.id"), goqu.I("u.name"), goqu.I("u.email"),
		)
}

func scanBookingView(row pgx.Row) (*readmodel.BookingRM, error) {
	var rm readmodel.BookingRM
	if err := row.Scan(
		&rm.ID, &rm.Start, &rm.End, &rm.Status,
		&rm.Item.ID, &rm.Item.Name, &rm.Item.Description, &rm.Item.Available,
		&rm.Item.OwnerID, &rm.Item.RequestID,
		&rm.Booker.ID, &rm.Booker.Name, &rm.Booker.Email,
	); err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	sql, args, err := pg.Insert("bookings").
		Rows(goqu.Record{
			"start_time": b.Period().Start(),
			"end_time":   b.Period().End(),
			"item_id":    b.ItemID(),
			"booker_id":  b.BookerID(),
			"status":     string(b.Status()),
		}).
		Returning("id").
		Prepared(true).ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build insert booking query", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("referenced row not found", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to insert booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*readmodel.BookingRM, error) {
	sql, args, err := bookingView().
		Where(goqu.I("b.id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build select booking query", err)
	}

	rm, err := scanBookingView(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to select booking", err)
	}
	return rm, nil
}

// stateCond translates a temporal/status filter into a where clause on the
// aliased bookings table; StateAll adds nothing.
func stateCond(state booking.State, now time.Time) []goqu.Expression {
	switch state {
	case booking.StateCurrent:
		return []goqu.Expression{
			goqu.I("b.start_time").Lt(now),
			goqu.I("b.end_time").Gt(now),
		}
	case booking.StatePast:
		return []goqu.Expression{goqu.I("b.end_time").Lt(now)}
	case booking.StateFuture:
		return []goqu.Expression{goqu.I("b.start_time").Gt(now)}
	case booking.StateWaiting:
		return []goqu.Expression{goqu.I("b.status").Eq(string(booking.StatusWaiting))}
	case booking.StateRejected:
		return []goqu.Expression{goqu.I("b.status").Eq(string(booking.StatusRejected))}
	default:
		return nil
	}
}

func (r *BookingRepository) ListByBooker(ctx context.Context, bookerID int64, state booking.State, now time.Time, limit, offset uint) ([]*readmodel.BookingRM, error) {
	conds := append([]goqu.Expression{goqu.I("b.booker_id").Eq(bookerID)}, stateCond(state, now)...)
	return r.listView(ctx, conds, limit, offset, "failed to list bookings by booker")
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64, state booking.State, now time.Time, limit, offset uint) ([]*readmodel.BookingRM, error) {
	conds := append([]goqu.Expression{goqu.I("i.owner_id").Eq(ownerID)}, stateCond(state, now)...)
	return r.listView(ctx, conds, limit, offset, "failed to list bookings by owner")
}

func (r *BookingRepository) listView(ctx context.Context, conds []goqu.Expression, limit, offset uint, msg string) ([]*readmodel.BookingRM, error) {
	sql, args, err := bookingView().
		Where(conds...).
		Order(goqu.I("b.start_time").Desc()).
		Limit(limit).Offset(offset).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

// ListByItemIDs returns all non-rejected bookings of the given items, used to
// pick last/next references per item in memory.
func (r *BookingRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*readmodel.ItemBookingRM, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	sql, args, err := pg.From("bookings").
		Select("id", "item_id", "booker_id", "start_time", "end_time").
		Where(
			goqu.C("item_id").In(itemIDs),
			goqu.C("status").Neq(string(booking.StatusRejected)),
		).
		Order(goqu.C("start_time").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bookings-by-items query", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by items", err)
	}
	defer rows.Close()

	var result []*readmodel.ItemBookingRM
	for rows.Next() {
		var rm readmodel.ItemBookingRM
		if err := rows.Scan(&rm.ID, &rm.ItemID, &rm.BookerID, &rm.Start, &rm.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

// ExistsFinishedApproved reports whether author has an approved booking of the
// item that already ended. Comment posting hinges on it.
func (r *BookingRepository) ExistsFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	sql, args, err := pg.From("bookings").
		Select(goqu.L("1")).
		Where(
			goqu.C("item_id").Eq(itemID),
			goqu.C("booker_id").Eq(bookerID),
			goqu.C("status").Eq(string(booking.StatusApproved)),
			goqu.C("end_time").Lt(now),
		).
		Limit(1).
		Prepared(true).ToSQL()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build finished-booking query", err)
	}

	var one int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check finished booking", err)
	}
	return true, nil
}

// FindDecisionByID loads the decision snapshot of a booking inside tx,
// locking the booking row.
func (r *BookingRepository) FindDecisionByID(ctx context.Context, tx DBTX, id int64) (*readmodel.BookingDecisionRM, error) {
	sql, args, err := pg.From(goqu.T("bookings").As("b")).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
		Select(
			goqu.I("b.id"), goqu.I("b.item_id"), goqu.I("i.owner_id"), goqu.I("b.booker_id"),
			goqu.I("b.start_time"), goqu.I("b.end_time"), goqu.I("b.status"),
		).
		Where(goqu.I("b.id").Eq(id)).
		ForUpdate(exp.Wait).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build decision query", err)
	}

	var rm readmodel.BookingDecisionRM
	if err := tx.QueryRow(ctx, sql, args...).Scan(
		&rm.ID, &rm.ItemID, &rm.ItemOwnerID, &rm.BookerID, &rm.Start, &rm.End, &rm.Status,
	); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to select booking for decision", err)
	}
	return &rm, nil
}

// LockItemBookings serializes concurrent decisions on the same item by
// locking all of its booking rows inside tx.
func (r *BookingRepository) LockItemBookings(ctx context.Context, tx DBTX, itemID int64) error {
	sql, args, err := pg.From("bookings").
		Select("id").
		Where(goqu.C("item_id").Eq(itemID)).
		ForUpdate(exp.Wait).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build lock query", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to lock item bookings", err)
	}
	return nil
}

// ExistsOverlapping reports whether the item has any other booking whose
// period overlaps [start, end), regardless of its status.
func (r *BookingRepository) ExistsOverlapping(ctx context.Context, tx DBTX, itemID int64, start, end time.Time, excludeID int64) (bool, error) {
	sql, args, err := overlapQuery(itemID, start, end, excludeID).Prepared(true).ToSQL()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build overlap query", err)
	}

	var one int
	if err := tx.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check overlapping booking", err)
	}
	return true, nil
}

func overlapQuery(itemID int64, start, end time.Time, excludeID int64) *goqu.SelectDataset {
	return pg.From("bookings").
		Select(goqu.L("1")).
		Where(
			goqu.C("item_id").Eq(itemID),
			goqu.C("id").Neq(excludeID),
			goqu.C("start_time").Lt(end),
			goqu.C("end_time").Gt(start),
		).
		Limit(1)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx DBTX, id int64, status booking.Status) error {
	sql, args, err := pg.Update("bookings").
		Set(goqu.Record{"status": string(status)}).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build status update query", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}
