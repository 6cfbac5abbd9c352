//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/jsontime"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var bookingNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type bookingFixture struct {
	bookingRepo *mockBookingRepo
	itemRepo    *mockItemRepo
	userRepo    *mockUserRepo
	db          *mockTxBeginner
	clock       *clock.MockClock
	uc          usecase.BookingUseCase
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookingRepo: new(mockBookingRepo),
		itemRepo:    new(mockItemRepo),
		userRepo:    new(mockUserRepo),
		db:          new(mockTxBeginner),
		clock:       clock.NewMockClock(bookingNow),
	}
	f.uc = usecase.NewBookingUseCase(f.bookingRepo, f.itemRepo, f.userRepo, f.db, f.clock)
	return f
}

func localTime(t time.Time) jsontime.LocalTime {
	return jsontime.LocalTime{Time: t}
}

func int64Ptr(v int64) *int64 { return &v }

func validBookingReq(itemID int64) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: int64Ptr(itemID),
		Start:  localTime(bookingNow.Add(24 * time.Hour)),
		End:    localTime(bookingNow.Add(48 * time.Hour)),
	}
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()
	item := &readmodel.ItemRM{ID: 10, Name: "Drill", Available: true, OwnerID: 2}

	t.Run("success", func(t *testing.T) {
		f := newBookingFixture()

		f.itemRepo.On("FindByID", ctx, int64(10)).Return(item, nil).Once()
		f.userRepo.On("ExistsByID", ctx, int64(7)).Return(true, nil).Once()
		f.bookingRepo.On("Create", ctx, mock.AnythingOfType("*booking.Booking")).Return(int64(100), nil).Once()
		f.bookingRepo.On("FindByID", ctx, int64(100)).
			Return(&readmodel.BookingRM{ID: 100, Status: "WAITING", Item: *item, Booker: readmodel.UserRM{ID: 7}}, nil).Once()

		rm, err := f.uc.Create(ctx, 7, validBookingReq(10))
		require.NoError(t, err)
		assert.Equal(t, int64(100), rm.ID)
		assert.Equal(t, "WAITING", rm.Status)
		f.bookingRepo.AssertExpectations(t)
	})

	t.Run("missing itemId", func(t *testing.T) {
		f := newBookingFixture()

		_, err := f.uc.Create(ctx, 7, reqdto.CreateBookingRequest{
			Start: localTime(bookingNow.Add(time.Hour)),
			End:   localTime(bookingNow.Add(2 * time.Hour)),
		})
		assert.ErrorIs(t, err, usecase.ErrDomainValidationFailed)
		assert.ErrorIs(t, err, reqdto.ErrItemIDRequired)
	})

	t.Run("start in the past", func(t *testing.T) {
		f := newBookingFixture()

		req := validBookingReq(10)
		req.Start = localTime(bookingNow.Add(-time.Hour))
		_, err := f.uc.Create(ctx, 7, req)
		assert.ErrorIs(t, err, booking.ErrStartNotFuture)
		f.itemRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("end not after start", func(t *testing.T) {
		f := newBookingFixture()

		req := validBookingReq(10)
		req.End = req.Start
		_, err := f.uc.Create(ctx, 7, req)
		assert.ErrorIs(t, err, booking.ErrEndNotAfterStart)
	})

	t.Run("item missing", func(t *testing.T) {
		f := newBookingFixture()

		f.itemRepo.On("FindByID", ctx, int64(10)).
			Return(nil, infra.WrapRepoErr("item not found", assert.AnError, infra.KindNotFound)).Once()

		_, err := f.uc.Create(ctx, 7, validBookingReq(10))
		assert.ErrorIs(t, err, usecase.ErrItemNotFound)
	})

	t.Run("owner books own item", func(t *testing.T) {
		f := newBookingFixture()

		f.itemRepo.On("FindByID", ctx, int64(10)).Return(item, nil).Once()

		_, err := f.uc.Create(ctx, item.OwnerID, validBookingReq(10))
		assert.ErrorIs(t, err, usecase.ErrSelfBooking)
	})

	t.Run("item unavailable", func(t *testing.T) {
		f := newBookingFixture()

		unavailable := &readmodel.ItemRM{ID: 10, OwnerID: 2, Available: false}
		f.itemRepo.On("FindByID", ctx, int64(10)).Return(unavailable, nil).Once()

		_, err := f.uc.Create(ctx, 7, validBookingReq(10))
		assert.ErrorIs(t, err, usecase.ErrItemUnavailable)
	})

	t.Run("booker missing", func(t *testing.T) {
		f := newBookingFixture()

		f.itemRepo.On("FindByID", ctx, int64(10)).Return(item, nil).Once()
		f.userRepo.On("ExistsByID", ctx, int64(7)).Return(false, nil).Once()

		_, err := f.uc.Create(ctx, 7, validBookingReq(10))
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
		f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookingDecide(t *testing.T) {
	ctx := context.Background()

	waitingSnap := &readmodel.BookingDecisionRM{
		ID:          100,
		ItemID:      10,
		ItemOwnerID: 2,
		BookerID:    7,
		Start:       bookingNow.Add(24 * time.Hour),
		End:         bookingNow.Add(48 * time.Hour),
		Status:      "WAITING",
	}

	newTx := func(f *bookingFixture) *mockTx {
		tx := new(mockTx)
		tx.On("Rollback", mock.Anything).Return(nil).Maybe()
		f.db.On("Begin", ctx).Return(tx, nil).Once()
		return tx
	}

	t.Run("approve success", func(t *testing.T) {
		f := newBookingFixture()
		tx := newTx(f)
		tx.On("Commit", mock.Anything).Return(nil).Once()

		f.bookingRepo.On("FindDecisionByID", ctx, tx, int64(100)).Return(waitingSnap, nil).Once()
		f.bookingRepo.On("LockItemBookings", ctx, tx, int64(10)).Return(nil).Once()
		f.bookingRepo.On("ExistsOverlapping", ctx, tx, int64(10), waitingSnap.Start, waitingSnap.End, int64(100)).
			Return(false, nil).Once()
		f.bookingRepo.On("UpdateStatus", ctx, tx, int64(100), booking.StatusApproved).Return(nil).Once()
		f.bookingRepo.On("FindByID", ctx, int64(100)).
			Return(&readmodel.BookingRM{ID: 100, Status: "APPROVED"}, nil).Once()

		rm, err := f.uc.Decide(ctx, 2, 100, true)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", rm.Status)
		f.bookingRepo.AssertExpectations(t)
		tx.AssertExpectations(t)
	})

	t.Run("reject success", func(t *testing.T) {
		f := newBookingFixture()
		tx := newTx(f)
		tx.On("Commit", mock.Anything).Return(nil).Once()

		f.bookingRepo.On("FindDecisionByID", ctx, tx, int64(100)).Return(waitingSnap, nil).Once()
		f.bookingRepo.On("LockItemBookings", ctx, tx, int64(10)).Return(nil).Once()
		f.bookingRepo.On("ExistsOverlapping", ctx, tx, int64(10), waitingSnap.Start, waitingSnap.End, int64(100)).
			Return(false, nil).Once()
		f.bookingRepo.On("UpdateStatus", ctx, tx, int64(100), booking.StatusRejected).Return(nil).Once()
		f.bookingRepo.On("FindByID", ctx, int64(100)).
			Return(&readmodel.BookingRM{ID: 100, Status: "REJECTED"}, nil).Once()

		rm, err := f.uc.Decide(ctx, 2, 100, false)
		require.NoError(t, err)
		assert.Equal(t, "REJECTED", rm.Status)
		f.bookingRepo.AssertExpectations(t)
	})

	t.Run("booking missing", func(t *testing.T) {
		f := newBookingFixture()
		tx := newTx(f)

		f.bookingRepo.On("FindDecisionByID", ctx, tx, int64(100)).
			Return(nil, infra.WrapRepoErr("booking not found", assert.AnError, infra.KindNotFound)).Once()

		_, err := f.uc.Decide(ctx, 2, 100, true)
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})

	t.Run("already approved", func(t *testing.T) {
		f := newBookingFixture()
		tx := newTx(f)

		approved := *waitingSnap
		approved.Status = "APPROVED"
		f.bookingRepo.On("FindDecisionByID", ctx, tx, int64(100)).Return(&approved, nil).Once()

		_, err := f.uc.Decide(ctx, 2, 100, true)
		assert.ErrorIs(t, err, booking.ErrAlreadyDecided)
	})

	t.Run("rejected booking can be approved", func(t *testing.T) {
		f := newBookingFixture()
		tx := newTx(f)
		tx.On("Commit", mock.Anything).Return(nil).Once()

		rejected := *waitingSnap
		rejected.Status = "REJECTED"
		f.bookingRepo.On("FindDecisionByID", ctx, tx, int64(100)).Return(&rejected, nil).Once()
		f.bookingRepo.On("LockItemBookings", ctx, tx, int64(10)).Return(nil).Once()
		f.bookingRepo.On("ExistsOverlapping", ctx, tx, int64(10), rejected.Start, rejected.End, int64(100)).
			Return(false, nil).Once()
		f.bookingRepo.On("UpdateStatus", ctx, tx, int64(100), booking.StatusApproved).Return(nil).Once()
		f.bookingRepo.On("FindByID", ctx, int64(100)).
			Return(&readmodel.BookingRM{ID: 100, Status: "APPROVED"}, nil).Once()

		_, err := f.uc.Decide(ctx, 2, 100, true)
		require.NoError(t, err)
	})

	t.Run("overlapping booking blocks approval", func(t *testing.T) {
		f := newBookingFixture()
		tx := newTx(f)

		f.bookingRepo.On("FindDecisionByID", ctx, tx, int64(100)).Return(waitingSnap, nil).Once()
		f.bookingRepo.On("LockItemBookings", ctx, tx, int64(10)).Return(nil).Once()
		f.bookingRepo.On("ExistsOverlapping", ctx, tx, int64(10), waitingSnap.Start, waitingSnap.End, int64(100)).
			Return(true, nil).Once()

		_, err := f.uc.Decide(ctx, 2, 100, true)
		assert.ErrorIs(t, err, usecase.ErrBookingConflict)
		f.bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("overlapping booking blocks rejection too", func(t *testing.T) {
		f := newBookingFixture()
		tx := newTx(f)

		f.bookingRepo.On("FindDecisionByID", ctx, tx, int64(100)).Return(waitingSnap, nil).Once()
		f.bookingRepo.On("LockItemBookings", ctx, tx, int64(10)).Return(nil).Once()
		f.bookingRepo.On("ExistsOverlapping", ctx, tx, int64(10), waitingSnap.Start, waitingSnap.End, int64(100)).
			Return(true, nil).Once()

		_, err := f.uc.Decide(ctx, 2, 100, false)
		assert.ErrorIs(t, err, usecase.ErrBookingConflict)
		f.bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-owner", func(t *testing.T) {
		f := newBookingFixture()
		tx := newTx(f)

		f.bookingRepo.On("FindDecisionByID", ctx, tx, int64(100)).Return(waitingSnap, nil).Once()
		f.bookingRepo.On("LockItemBookings", ctx, tx, int64(10)).Return(nil).Once()
		f.bookingRepo.On("ExistsOverlapping", ctx, tx, int64(10), waitingSnap.Start, waitingSnap.End, int64(100)).
			Return(false, nil).Once()

		_, err := f.uc.Decide(ctx, 99, 100, true)
		assert.ErrorIs(t, err, usecase.ErrDecisionNotAllowed)
	})
}

func TestBookingGet(t *testing.T) {
	ctx := context.Background()
	rm := &readmodel.BookingRM{
		ID:     100,
		Status: "WAITING",
		Item:   readmodel.ItemRM{ID: 10, OwnerID: 2},
		Booker: readmodel.UserRM{ID: 7},
	}

	t.Run("booker sees booking", func(t *testing.T) {
		f := newBookingFixture()
		f.bookingRepo.On("FindByID", ctx, int64(100)).Return(rm, nil).Once()

		got, err := f.uc.Get(ctx, 7, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.ID)
	})

	t.Run("owner sees booking", func(t *testing.T) {
		f := newBookingFixture()
		f.bookingRepo.On("FindByID", ctx, int64(100)).Return(rm, nil).Once()

		_, err := f.uc.Get(ctx, 2, 100)
		require.NoError(t, err)
	})

	t.Run("third party denied", func(t *testing.T) {
		f := newBookingFixture()
		f.bookingRepo.On("FindByID", ctx, int64(100)).Return(rm, nil).Once()

		_, err := f.uc.Get(ctx, 55, 100)
		assert.ErrorIs(t, err, usecase.ErrBookingAccessDenied)
	})

	t.Run("missing", func(t *testing.T) {
		f := newBookingFixture()
		f.bookingRepo.On("FindByID", ctx, int64(100)).
			Return(nil, infra.WrapRepoErr("booking not found", assert.AnError, infra.KindNotFound)).Once()

		_, err := f.uc.Get(ctx, 7, 100)
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})
}

func TestBookingLists(t *testing.T) {
	ctx := context.Background()

	t.Run("booker list forwards state and paging", func(t *testing.T) {
		f := newBookingFixture()

		f.userRepo.On("ExistsByID", ctx, int64(7)).Return(true, nil).Once()
		f.bookingRepo.On("ListByBooker", ctx, int64(7), booking.StateCurrent, bookingNow, uint(10), uint(0)).
			Return([]*readmodel.BookingRM{{ID: 1}}, nil).Once()

		rms, err := f.uc.ListForBooker(ctx, 7, booking.StateCurrent, 0, 10)
		require.NoError(t, err)
		assert.Len(t, rms, 1)
		f.bookingRepo.AssertExpectations(t)
	})

	t.Run("owner list", func(t *testing.T) {
		f := newBookingFixture()

		f.userRepo.On("ExistsByID", ctx, int64(2)).Return(true, nil).Once()
		f.bookingRepo.On("ListByOwner", ctx, int64(2), booking.StateAll, bookingNow, uint(5), uint(5)).
			Return([]*readmodel.BookingRM{}, nil).Once()

		rms, err := f.uc.ListForOwner(ctx, 2, booking.StateAll, 5, 5)
		require.NoError(t, err)
		assert.Empty(t, rms)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newBookingFixture()

		f.userRepo.On("ExistsByID", ctx, int64(99)).Return(false, nil).Once()

		_, err := f.uc.ListForBooker(ctx, 99, booking.StateAll, 0, 10)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("bad paging", func(t *testing.T) {
		f := newBookingFixture()

		f.userRepo.On("ExistsByID", ctx, int64(7)).Return(true, nil)

		_, err := f.uc.ListForBooker(ctx, 7, booking.StateAll, -1, 10)
		assert.ErrorIs(t, err, usecase.ErrInvalidPagination)

		_, err = f.uc.ListForOwner(ctx, 7, booking.StateAll, 0, 0)
		assert.ErrorIs(t, err, usecase.ErrInvalidPagination)
	})
}
