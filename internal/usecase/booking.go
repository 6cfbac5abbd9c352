package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrItemUnavailable = errors.New("item is not available for booking")
	ErrBookingConflict = errors.New("booking period conflicts with another booking")

	// Authorization failures below map to the not-found answer on the wire;
	// distinct sentinels keep logs and tests readable.
	ErrSelfBooking         = errors.New("owner cannot book own item")
	ErrBookingAccessDenied = errors.New("booking visible to booker and owner only")
	ErrDecisionNotAllowed  = errors.New("only the item owner decides a booking")
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	FindByID(ctx context.Context, id int64) (*readmodel.BookingRM, error)
	ListByBooker(ctx context.Context, bookerID int64, state booking.State, now time.Time, limit, offset uint) ([]*readmodel.BookingRM, error)
	ListByOwner(ctx context.Context, ownerID int64, state booking.State, now time.Time, limit, offset uint) ([]*readmodel.BookingRM, error)
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*readmodel.ItemBookingRM, error)
	ExistsFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)

	FindDecisionByID(ctx context.Context, tx repository.DBTX, id int64) (*readmodel.BookingDecisionRM, error)
	LockItemBookings(ctx context.Context, tx repository.DBTX, itemID int64) error
	ExistsOverlapping(ctx context.Context, tx repository.DBTX, itemID int64, start, end time.Time, excludeID int64) (bool, error)
	UpdateStatus(ctx context.Context, tx repository.DBTX, id int64, status booking.Status) error
}

// TxBeginner opens a database transaction; *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type BookingUseCase interface {
	Create(ctx context.Context, bookerID int64, req reqdto.CreateBookingRequest) (*readmodel.BookingRM, error)
	Decide(ctx context.Context, ownerID, bookingID int64, approve bool) (*readmodel.BookingRM, error)
	Get(ctx context.Context, callerID, bookingID int64) (*readmodel.BookingRM, error)
	ListForBooker(ctx context.Context, bookerID int64, state booking.State, from, size int) ([]*readmodel.BookingRM, error)
	ListForOwner(ctx context.Context, ownerID int64, state booking.State, from, size int) ([]*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	db          TxBeginner
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	db TxBeginner,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		db:          db,
		clock:       clock,
	}
}

func (b *bookingUseCaseImpl) Create(ctx context.Context, bookerID int64, req reqdto.CreateBookingRequest) (*readmodel.BookingRM, error) {
	entity, err := req.ToDomain(bookerID, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	itemRM, err := b.itemRepo.FindByID(ctx, entity.ItemID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if itemRM.OwnerID == bookerID {
		return nil, ErrSelfBooking
	}
	if !itemRM.Available {
		return nil, ErrItemUnavailable
	}

	if err := requireUser(ctx, b.userRepo, bookerID); err != nil {
		return nil, err
	}

	id, err := b.bookingRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b.bookingRepo.FindByID(ctx, id)
}

// Decide applies the owner's approval or rejection inside one transaction.
// The item's booking rows are locked and the period is checked against every
// other booking of the item, whatever its status, so two concurrent approvals
// of overlapping periods cannot both pass.
func (b *bookingUseCaseImpl) Decide(ctx context.Context, ownerID, bookingID int64, approve bool) (*readmodel.BookingRM, error) {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	snap, err := b.bookingRepo.FindDecisionByID(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	next, err := booking.Decide(booking.Status(snap.Status), approve)
	if err != nil {
		return nil, err
	}

	if err := b.bookingRepo.LockItemBookings(ctx, tx, snap.ItemID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	overlaps, err := b.bookingRepo.ExistsOverlapping(ctx, tx, snap.ItemID, snap.Start, snap.End, snap.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if overlaps {
		return nil, ErrBookingConflict
	}

	if snap.ItemOwnerID != ownerID {
		return nil, ErrDecisionNotAllowed
	}

	if err := b.bookingRepo.UpdateStatus(ctx, tx, snap.ID, next); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return b.bookingRepo.FindByID(ctx, bookingID)
}

func (b *bookingUseCaseImpl) Get(ctx context.Context, callerID, bookingID int64) (*readmodel.BookingRM, error) {
	rm, err := b.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if callerID != rm.Booker.ID && callerID != rm.Item.OwnerID {
		return nil, ErrBookingAccessDenied
	}
	return rm, nil
}

func (b *bookingUseCaseImpl) ListForBooker(ctx context.Context, bookerID int64, state booking.State, from, size int) ([]*readmodel.BookingRM, error) {
	if err := requireUser(ctx, b.userRepo, bookerID); err != nil {
		return nil, err
	}
	limit, offset, err := page(from, size)
	if err != nil {
		return nil, err
	}

	rms, err := b.bookingRepo.ListByBooker(ctx, bookerID, state, b.clock.Now(), limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (b *bookingUseCaseImpl) ListForOwner(ctx context.Context, ownerID int64, state booking.State, from, size int) ([]*readmodel.BookingRM, error) {
	if err := requireUser(ctx, b.userRepo, ownerID); err != nil {
		return nil, err
	}
	limit, offset, err := page(from, size)
	if err != nil {
		return nil, err
	}

	rms, err := b.bookingRepo.ListByOwner(ctx, ownerID, state, b.clock.Now(), limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}
