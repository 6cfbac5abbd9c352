//go:build unit

package api_test

import (
	"context"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/readmodel"

	"github.com/stretchr/testify/mock"
)

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Create(ctx context.Context, req reqdto.CreateUserRequest) (*readmodel.UserRM, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.UserRM), args.Error(1)
}

func (m *mockUserUseCase) Update(ctx context.Context, id int64, req reqdto.UpdateUserRequest) (*readmodel.UserRM, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.UserRM), args.Error(1)
}

func (m *mockUserUseCase) Get(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.UserRM), args.Error(1)
}

func (m *mockUserUseCase) List(ctx context.Context) ([]*readmodel.UserRM, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.UserRM), args.Error(1)
}

func (m *mockUserUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockItemUseCase struct {
	mock.Mock
}

func (m *mockItemUseCase) Create(ctx context.Context, ownerID int64, req reqdto.CreateItemRequest) (*readmodel.ItemRM, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.ItemRM), args.Error(1)
}

func (m *mockItemUseCase) Update(ctx context.Context, callerID, itemID int64, req reqdto.UpdateItemRequest) (*readmodel.ItemRM, error) {
	args := m.Called(ctx, callerID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.ItemRM), args.Error(1)
}

func (m *mockItemUseCase) Get(ctx context.Context, callerID, itemID int64) (*readmodel.ItemDetailRM, error) {
	args := m.Called(ctx, callerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.ItemDetailRM), args.Error(1)
}

func (m *mockItemUseCase) ListByOwner(ctx context.Context, ownerID int64) ([]*readmodel.ItemDetailRM, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.ItemDetailRM), args.Error(1)
}

func (m *mockItemUseCase) Search(ctx context.Context, text string) ([]*readmodel.ItemRM, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.ItemRM), args.Error(1)
}

func (m *mockItemUseCase) Delete(ctx context.Context, callerID, itemID int64) error {
	args := m.Called(ctx, callerID, itemID)
	return args.Error(0)
}

func (m *mockItemUseCase) AddComment(ctx context.Context, authorID, itemID int64, req reqdto.CreateCommentRequest) (*readmodel.CommentRM, error) {
	args := m.Called(ctx, authorID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.CommentRM), args.Error(1)
}

type mockBookingUseCase struct {
	mock.Mock
}

func (m *mockBookingUseCase) Create(ctx context.Context, bookerID int64, req reqdto.CreateBookingRequest) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, bookerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingUseCase) Decide(ctx context.Context, ownerID, bookingID int64, approve bool) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, ownerID, bookingID, approve)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingUseCase) Get(ctx context.Context, callerID, bookingID int64) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, callerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingUseCase) ListForBooker(ctx context.Context, bookerID int64, state booking.State, from, size int) ([]*readmodel.BookingRM, error) {
	args := m.Called(ctx, bookerID, state, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingUseCase) ListForOwner(ctx context.Context, ownerID int64, state booking.State, from, size int) ([]*readmodel.BookingRM, error) {
	args := m.Called(ctx, ownerID, state, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.BookingRM), args.Error(1)
}

type mockRequestUseCase struct {
	mock.Mock
}

func (m *mockRequestUseCase) Create(ctx context.Context, requesterID int64, req reqdto.CreateItemRequestRequest) (*readmodel.RequestRM, error) {
	args := m.Called(ctx, requesterID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.RequestRM), args.Error(1)
}

func (m *mockRequestUseCase) ListOwn(ctx context.Context, requesterID int64) ([]*readmodel.RequestRM, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.RequestRM), args.Error(1)
}

func (m *mockRequestUseCase) ListOthers(ctx context.Context, requesterID int64, from, size int) ([]*readmodel.RequestRM, error) {
	args := m.Called(ctx, requesterID, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.RequestRM), args.Error(1)
}

func (m *mockRequestUseCase) Get(ctx context.Context, requesterID, requestID int64) (*readmodel.RequestRM, error) {
	args := m.Called(ctx, requesterID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.RequestRM), args.Error(1)
}
