//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("ExistsByEmail", ctx, "vasya@example.com").Return(false, nil).Once()
		repo.On("Create", ctx, mock.AnythingOfType("*user.User")).
			Return(&readmodel.UserRM{ID: 1, Name: "Vasya", Email: "vasya@example.com"}, nil).Once()

		rm, err := uc.Create(ctx, reqdto.CreateUserRequest{Name: "Vasya", Email: "vasya@example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rm.ID)
		assert.Equal(t, "vasya@example.com", rm.Email)
		repo.AssertExpectations(t)
	})

	t.Run("invalid email", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		_, err := uc.Create(ctx, reqdto.CreateUserRequest{Name: "Vasya", Email: "not-an-email"})
		assert.ErrorIs(t, err, usecase.ErrDomainValidationFailed)
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing name", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		_, err := uc.Create(ctx, reqdto.CreateUserRequest{Email: "vasya@example.com"})
		assert.ErrorIs(t, err, user.ErrNameRequired)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("ExistsByEmail", ctx, "vasya@example.com").Return(true, nil).Once()

		_, err := uc.Create(ctx, reqdto.CreateUserRequest{Name: "Vasya", Email: "vasya@example.com"})
		assert.ErrorIs(t, err, usecase.ErrEmailConflict)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate key on insert", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("ExistsByEmail", ctx, "vasya@example.com").Return(false, nil).Once()
		repo.On("Create", ctx, mock.Anything).
			Return(nil, infra.WrapRepoErr("email already exists", assert.AnError, infra.KindDuplicateKey)).Once()

		_, err := uc.Create(ctx, reqdto.CreateUserRequest{Name: "Vasya", Email: "vasya@example.com"})
		assert.ErrorIs(t, err, usecase.ErrEmailConflict)
	})
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()
	stored := &readmodel.UserRM{ID: 1, Name: "Vasya", Email: "vasya@example.com"}

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("FindByID", ctx, int64(1)).Return(stored, nil).Once()
		repo.On("Update", ctx, int64(1), "Vasya", "new@example.com").
			Return(&readmodel.UserRM{ID: 1, Name: "Vasya", Email: "new@example.com"}, nil).Once()

		rm, err := uc.Update(ctx, 1, reqdto.UpdateUserRequest{Email: strPtr("new@example.com")})
		require.NoError(t, err)
		assert.Equal(t, "Vasya", rm.Name)
		assert.Equal(t, "new@example.com", rm.Email)
		repo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("FindByID", ctx, int64(99)).
			Return(nil, infra.WrapRepoErr("user not found", assert.AnError, infra.KindNotFound)).Once()

		_, err := uc.Update(ctx, 99, reqdto.UpdateUserRequest{Name: strPtr("Petya")})
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("changed email must be valid", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("FindByID", ctx, int64(1)).Return(stored, nil).Once()

		_, err := uc.Update(ctx, 1, reqdto.UpdateUserRequest{Email: strPtr("broken")})
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("changed email taken", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("FindByID", ctx, int64(1)).Return(stored, nil).Once()
		repo.On("Update", ctx, int64(1), "Vasya", "taken@example.com").
			Return(nil, infra.WrapRepoErr("email already exists", assert.AnError, infra.KindDuplicateKey)).Once()

		_, err := uc.Update(ctx, 1, reqdto.UpdateUserRequest{Email: strPtr("taken@example.com")})
		assert.ErrorIs(t, err, usecase.ErrEmailConflict)
	})
}

func TestUserGetListDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("FindByID", ctx, int64(5)).
			Return(nil, infra.WrapRepoErr("user not found", assert.AnError, infra.KindNotFound)).Once()

		_, err := uc.Get(ctx, 5)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("list", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("FindAll", ctx).
			Return([]*readmodel.UserRM{{ID: 1}, {ID: 2}}, nil).Once()

		rms, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, rms, 2)
	})

	t.Run("delete", func(t *testing.T) {
		repo := new(mockUserRepo)
		uc := usecase.NewUserUseCase(repo)

		repo.On("Delete", ctx, int64(3)).Return(nil).Once()

		require.NoError(t, uc.Delete(ctx, 3))
		repo.AssertExpectations(t)
	})
}
