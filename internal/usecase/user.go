package usecase

import (
	"context"
	"errors"

	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"
	"shareit/internal/usecase/readmodel"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailConflict = errors.New("email already in use")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error)
	Update(ctx context.Context, id int64, name, email string) (*readmodel.UserRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error)
	FindAll(ctx context.Context) ([]*readmodel.UserRM, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type UserUseCase interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (*readmodel.UserRM, error)
	Update(ctx context.Context, id int64, req reqdto.UpdateUserRequest) (*readmodel.UserRM, error)
	Get(ctx context.Context, id int64) (*readmodel.UserRM, error)
	List(ctx context.Context) ([]*readmodel.UserRM, error)
	Delete(ctx context.Context, id int64) error
}

type userUseCaseImpl struct {
	userRepo UserRepository
}

func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCaseImpl{userRepo: userRepo}
}

func (u *userUseCaseImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (*readmodel.UserRM, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	taken, err := u.userRepo.ExistsByEmail(ctx, entity.Email().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if taken {
		return nil, ErrEmailConflict
	}

	rm, err := u.userRepo.Create(ctx, entity)
	if err != nil {
		// The unique index backstops the ExistsByEmail pre-check.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *userUseCaseImpl) Update(ctx context.Context, id int64, req reqdto.UpdateUserRequest) (*readmodel.UserRM, error) {
	current, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	name := patch.Coalesce(req.Name, current.Name)
	emailRaw := patch.Coalesce(req.Email, current.Email)

	email, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	if _, err := user.NewUser(name, email); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := u.userRepo.Update(ctx, id, name, email.Value())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrUserNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrEmailConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *userUseCaseImpl) Get(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *userUseCaseImpl) List(ctx context.Context) ([]*readmodel.UserRM, error) {
	rms, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, id int64) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
