package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.ItemRequest) (*readmodel.RequestRM, error) {
	sql, args, err := pg.Insert("requests").
		Rows(goqu.Record{
			"description":  req.Description(),
			"requester_id": req.RequesterID(),
			"created":      req.Created(),
		}).
		Returning("id", "description", "requester_id", "created").
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build insert request query", err)
	}

	var rm readmodel.RequestRM
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&rm.ID, &rm.Description, &rm.RequesterID, &rm.Created); err != nil {
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("referenced row not found", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to insert request", err)
	}
	return &rm, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id int64) (*readmodel.RequestRM, error) {
	sql, args, err := pg.From("requests").
		Select("id", "description", "requester_id", "created").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build select request query", err)
	}

	var rm readmodel.RequestRM
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&rm.ID, &rm.Description, &rm.RequesterID, &rm.Created); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to select request", err)
	}
	return &rm, nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*readmodel.RequestRM, error) {
	ds := pg.From("requests").
		Select("id", "description", "requester_id", "created").
		Where(goqu.C("requester_id").Eq(requesterID)).
		Order(goqu.C("created").Desc())
	return r.list(ctx, ds, "failed to list requests by requester")
}

// ListOthers pages through requests created by everyone except requesterID,
// newest first.
func (r *RequestRepository) ListOthers(ctx context.Context, requesterID int64, limit, offset uint) ([]*readmodel.RequestRM, error) {
	ds := pg.From("requests").
		Select("id", "description", "requester_id", "created").
		Where(goqu.C("requester_id").Neq(requesterID)).
		Order(goqu.C("created").Desc()).
		Limit(limit).Offset(offset)
	return r.list(ctx, ds, "failed to list other users' requests")
}

func (r *RequestRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	sql, args, err := pg.From("requests").
		Select(goqu.L("1")).
		Where(goqu.C("id").Eq(id)).
		Limit(1).
		Prepared(true).ToSQL()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build request existence query", err)
	}

	var one int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check request existence", err)
	}
	return true, nil
}

func (r *RequestRepository) list(ctx context.Context, ds *goqu.SelectDataset, msg string) ([]*readmodel.RequestRM, error) {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	var result []*readmodel.RequestRM
	for rows.Next() {
		var rm readmodel.RequestRM
		if err := rows.Scan(&rm.ID, &rm.Description, &rm.RequesterID, &rm.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	return result, nil
}
