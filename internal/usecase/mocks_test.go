//go:build unit

package usecase_test

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	domainreq "shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra/repository"
	"shareit/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.UserRM), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, name, email string) (*readmodel.UserRM, error) {
	args := m.Called(ctx, id, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.UserRM), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.UserRM), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*readmodel.UserRM, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.UserRM), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, it *item.Item) (*readmodel.ItemRM, error) {
	args := m.Called(ctx, it)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.ItemRM), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, id int64, name, description string, available bool) (*readmodel.ItemRM, error) {
	args := m.Called(ctx, id, name, description, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.ItemRM), args.Error(1)
}

func (m *mockItemRepo) FindByID(ctx context.Context, id int64) (*readmodel.ItemRM, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.ItemRM), args.Error(1)
}

func (m *mockItemRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*readmodel.ItemRM, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.ItemRM), args.Error(1)
}

func (m *mockItemRepo) Search(ctx context.Context, text string) ([]*readmodel.ItemRM, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.ItemRM), args.Error(1)
}

func (m *mockItemRepo) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*readmodel.ItemRM, error) {
	args := m.Called(ctx, requestIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.ItemRM), args.Error(1)
}

func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingRepo) ListByBooker(ctx context.Context, bookerID int64, state booking.State, now time.Time, limit, offset uint) ([]*readmodel.BookingRM, error) {
	args := m.Called(ctx, bookerID, state, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingRepo) ListByOwner(ctx context.Context, ownerID int64, state booking.State, now time.Time, limit, offset uint) ([]*readmodel.BookingRM, error) {
	args := m.Called(ctx, ownerID, state, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingRepo) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*readmodel.ItemBookingRM, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.ItemBookingRM), args.Error(1)
}

func (m *mockBookingRepo) ExistsFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, itemID, bookerID, now)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) FindDecisionByID(ctx context.Context, tx repository.DBTX, id int64) (*readmodel.BookingDecisionRM, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.BookingDecisionRM), args.Error(1)
}

func (m *mockBookingRepo) LockItemBookings(ctx context.Context, tx repository.DBTX, itemID int64) error {
	args := m.Called(ctx, tx, itemID)
	return args.Error(0)
}

func (m *mockBookingRepo) ExistsOverlapping(ctx context.Context, tx repository.DBTX, itemID int64, start, end time.Time, excludeID int64) (bool, error) {
	args := m.Called(ctx, tx, itemID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx repository.DBTX, id int64, status booking.Status) error {
	args := m.Called(ctx, tx, id, status)
	return args.Error(0)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, c *comment.Comment) (*readmodel.CommentRM, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.CommentRM), args.Error(1)
}

func (m *mockCommentRepo) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*readmodel.CommentRM, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.CommentRM), args.Error(1)
}

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) Create(ctx context.Context, req *domainreq.ItemRequest) (*readmodel.RequestRM, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.RequestRM), args.Error(1)
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id int64) (*readmodel.RequestRM, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.RequestRM), args.Error(1)
}

func (m *mockRequestRepo) ListByRequester(ctx context.Context, requesterID int64) ([]*readmodel.RequestRM, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.RequestRM), args.Error(1)
}

func (m *mockRequestRepo) ListOthers(ctx context.Context, requesterID int64, limit, offset uint) ([]*readmodel.RequestRM, error) {
	args := m.Called(ctx, requesterID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.RequestRM), args.Error(1)
}

func (m *mockRequestRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// mockTx satisfies pgx.Tx through embedding; only the methods the decision
// flow touches are implemented.
type mockTx struct {
	mock.Mock
	pgx.Tx
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockTxBeginner struct {
	mock.Mock
}

func (m *mockTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}
