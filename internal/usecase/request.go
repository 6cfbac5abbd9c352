package usecase

import (
	"context"

	domainreq "shareit/internal/domain/request"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domainreq.ItemRequest) (*readmodel.RequestRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.RequestRM, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*readmodel.RequestRM, error)
	ListOthers(ctx context.Context, requesterID int64, limit, offset uint) ([]*readmodel.RequestRM, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type RequestUseCase interface {
	Create(ctx context.Context, requesterID int64, req reqdto.CreateItemRequestRequest) (*readmodel.RequestRM, error)
	ListOwn(ctx context.Context, requesterID int64) ([]*readmodel.RequestRM, error)
	ListOthers(ctx context.Context, requesterID int64, from, size int) ([]*readmodel.RequestRM, error)
	Get(ctx context.Context, requesterID, requestID int64) (*readmodel.RequestRM, error)
}

type requestUseCaseImpl struct {
	requestRepo RequestRepository
	userRepo    UserRepository
	itemRepo    ItemRepository
	clock       clock.Clock
}

func NewRequestUseCase(
	requestRepo RequestRepository,
	userRepo UserRepository,
	itemRepo ItemRepository,
	clock clock.Clock,
) RequestUseCase {
	return &requestUseCaseImpl{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		clock:       clock,
	}
}

func (r *requestUseCaseImpl) Create(ctx context.Context, requesterID int64, req reqdto.CreateItemRequestRequest) (*readmodel.RequestRM, error) {
	if err := r.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	entity, err := req.ToDomain(requesterID, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := r.requestRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	rm.Items = []*readmodel.ItemRM{}
	return rm, nil
}

func (r *requestUseCaseImpl) ListOwn(ctx context.Context, requesterID int64) ([]*readmodel.RequestRM, error) {
	if err := r.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	rms, err := r.requestRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := r.attachItems(ctx, rms); err != nil {
		return nil, err
	}
	return rms, nil
}

func (r *requestUseCaseImpl) ListOthers(ctx context.Context, requesterID int64, from, size int) ([]*readmodel.RequestRM, error) {
	if err := r.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	limit, offset, err := page(from, size)
	if err != nil {
		return nil, err
	}

	rms, err := r.requestRepo.ListOthers(ctx, requesterID, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := r.attachItems(ctx, rms); err != nil {
		return nil, err
	}
	return rms, nil
}

func (r *requestUseCaseImpl) Get(ctx context.Context, requesterID, requestID int64) (*readmodel.RequestRM, error) {
	if err := r.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	rm, err := r.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rms := []*readmodel.RequestRM{rm}
	if err := r.attachItems(ctx, rms); err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *requestUseCaseImpl) requireUser(ctx context.Context, userID int64) error {
	return requireUser(ctx, r.userRepo, userID)
}

// attachItems resolves fulfilling items for a batch of requests with a single
// reverse lookup on items.request_id.
func (r *requestUseCaseImpl) attachItems(ctx context.Context, rms []*readmodel.RequestRM) error {
	ids := make([]int64, 0, len(rms))
	for _, rm := range rms {
		ids = append(ids, rm.ID)
	}

	items, err := r.itemRepo.ListByRequestIDs(ctx, ids)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	itemsByRequest := make(map[int64][]*readmodel.ItemRM, len(ids))
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		itemsByRequest[*it.RequestID] = append(itemsByRequest[*it.RequestID], it)
	}

	for _, rm := range rms {
		rm.Items = itemsByRequest[rm.ID]
		if rm.Items == nil {
			rm.Items = []*readmodel.ItemRM{}
		}
	}
	return nil
}
