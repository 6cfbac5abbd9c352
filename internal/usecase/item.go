package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"
	"shareit/internal/usecase/readmodel"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrRequestNotFound   = errors.New("item request not found")
	ErrCommentNotAllowed = errors.New("commenting requires a finished approved booking")
)

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) (*readmodel.ItemRM, error)
	Update(ctx context.Context, id int64, name, description string, available bool) (*readmodel.ItemRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.ItemRM, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*readmodel.ItemRM, error)
	Search(ctx context.Context, text string) ([]*readmodel.ItemRM, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*readmodel.ItemRM, error)
	Delete(ctx context.Context, id int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*readmodel.CommentRM, error)
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*readmodel.CommentRM, error)
}

type ItemUseCase interface {
	Create(ctx context.Context, ownerID int64, req reqdto.CreateItemRequest) (*readmodel.ItemRM, error)
	Update(ctx context.Context, callerID, itemID int64, req reqdto.UpdateItemRequest) (*readmodel.ItemRM, error)
	Get(ctx context.Context, callerID, itemID int64) (*readmodel.ItemDetailRM, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*readmodel.ItemDetailRM, error)
	Search(ctx context.Context, text string) ([]*readmodel.ItemRM, error)
	Delete(ctx context.Context, callerID, itemID int64) error
	AddComment(ctx context.Context, authorID, itemID int64, req reqdto.CreateCommentRequest) (*readmodel.CommentRM, error)
}

type itemUseCaseImpl struct {
	itemRepo    ItemRepository
	userRepo    UserRepository
	requestRepo RequestRepository
	bookingRepo BookingRepository
	commentRepo CommentRepository
	clock       clock.Clock
}

func NewItemUseCase(
	itemRepo ItemRepository,
	userRepo UserRepository,
	requestRepo RequestRepository,
	bookingRepo BookingRepository,
	commentRepo CommentRepository,
	clock clock.Clock,
) ItemUseCase {
	return &itemUseCaseImpl{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		clock:       clock,
	}
}

func (i *itemUseCaseImpl) Create(ctx context.Context, ownerID int64, req reqdto.CreateItemRequest) (*readmodel.ItemRM, error) {
	ownerExists, err := i.userRepo.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !ownerExists {
		return nil, ErrUserNotFound
	}

	if req.RequestID != nil {
		requestExists, err := i.requestRepo.ExistsByID(ctx, *req.RequestID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !requestExists {
			return nil, ErrRequestNotFound
		}
	}

	entity, err := req.ToDomain(ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := i.itemRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (i *itemUseCaseImpl) Update(ctx context.Context, callerID, itemID int64, req reqdto.UpdateItemRequest) (*readmodel.ItemRM, error) {
	current, err := i.findOwned(ctx, callerID, itemID)
	if err != nil {
		return nil, err
	}

	name := patch.Coalesce(req.Name, current.Name)
	description := patch.Coalesce(req.Description, current.Description)
	available := patch.Coalesce(req.Available, current.Available)

	if _, err := item.NewItem(name, description, available, current.OwnerID, current.RequestID); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := i.itemRepo.Update(ctx, itemID, name, description, available)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (i *itemUseCaseImpl) Get(ctx context.Context, callerID, itemID int64) (*readmodel.ItemDetailRM, error) {
	rm, err := i.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	details, err := i.enrich(ctx, []*readmodel.ItemRM{rm}, callerID == rm.OwnerID)
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (i *itemUseCaseImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*readmodel.ItemDetailRM, error) {
	rms, err := i.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return i.enrich(ctx, rms, true)
}

func (i *itemUseCaseImpl) Search(ctx context.Context, text string) ([]*readmodel.ItemRM, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*readmodel.ItemRM{}, nil
	}

	rms, err := i.itemRepo.Search(ctx, text)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (i *itemUseCaseImpl) Delete(ctx context.Context, callerID, itemID int64) error {
	if _, err := i.findOwned(ctx, callerID, itemID); err != nil {
		return err
	}
	if err := i.itemRepo.Delete(ctx, itemID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (i *itemUseCaseImpl) AddComment(ctx context.Context, authorID, itemID int64, req reqdto.CreateCommentRequest) (*readmodel.CommentRM, error) {
	authorExists, err := i.userRepo.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !authorExists {
		return nil, ErrUserNotFound
	}

	if _, err := i.itemRepo.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := i.clock.Now()
	allowed, err := i.bookingRepo.ExistsFinishedApproved(ctx, itemID, authorID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !allowed {
		return nil, ErrCommentNotAllowed
	}

	entity, err := req.ToDomain(itemID, authorID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := i.commentRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

// findOwned resolves an item and enforces ownership. A non-owner caller gets
// the same not-found answer as a missing item; item existence stays opaque.
func (i *itemUseCaseImpl) findOwned(ctx context.Context, callerID, itemID int64) (*readmodel.ItemRM, error) {
	rm, err := i.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rm.OwnerID != callerID {
		return nil, ErrItemNotFound
	}
	return rm, nil
}

// enrich attaches comments to each item, and booking references when the
// caller owns the items. One query per concern regardless of item count.
func (i *itemUseCaseImpl) enrich(ctx context.Context, items []*readmodel.ItemRM, ownerView bool) ([]*readmodel.ItemDetailRM, error) {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	comments, err := i.commentRepo.ListByItemIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	commentsByItem := make(map[int64][]*readmodel.CommentRM, len(ids))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	var bookingsByItem map[int64][]*readmodel.ItemBookingRM
	if ownerView {
		bookings, err := i.bookingRepo.ListByItemIDs(ctx, ids)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bookingsByItem = make(map[int64][]*readmodel.ItemBookingRM, len(ids))
		for _, b := range bookings {
			bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
		}
	}

	now := i.clock.Now()
	details := make([]*readmodel.ItemDetailRM, 0, len(items))
	for _, it := range items {
		detail := &readmodel.ItemDetailRM{
			ItemRM:   *it,
			Comments: commentsByItem[it.ID],
		}
		if detail.Comments == nil {
			detail.Comments = []*readmodel.CommentRM{}
		}
		if ownerView {
			detail.LastBooking, detail.NextBooking = pickBookingRefs(bookingsByItem[it.ID], now)
		}
		details = append(details, detail)
	}
	return details, nil
}

// pickBookingRefs selects, among a single item's non-rejected bookings sorted
// by ascending start, the latest one started strictly before now and the
// earliest one starting strictly after now.
func pickBookingRefs(bookings []*readmodel.ItemBookingRM, now time.Time) (last, next *readmodel.BookingRefRM) {
	for _, b := range bookings {
		switch {
		case b.Start.Before(now):
			last = &readmodel.BookingRefRM{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
		case b.Start.After(now) && next == nil:
			next = &readmodel.BookingRefRM{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
		}
	}
	return last, next
}
