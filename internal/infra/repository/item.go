package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

var itemColumns = []any{"id", "name", "description", "available", "owner_id", "request_id"}

func scanItem(row pgx.Row) (*readmodel.ItemRM, error) {
	var rm readmodel.ItemRM
	if err := row.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.Available, &rm.OwnerID, &rm.RequestID); err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) (*readmodel.ItemRM, error) {
	sql, args, err := pg.Insert("items").
		Rows(goqu.Record{
			"name":        it.Name(),
			"description": it.Description(),
			"available":   it.Available(),
			"owner_id":    it.OwnerID(),
			"request_id":  it.RequestID(),
		}).
		Returning(itemColumns...).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build insert item query", err)
	}

	rm, err := scanItem(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("referenced row not found", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to insert item", err)
	}
	return rm, nil
}

func (r *ItemRepository) Update(ctx context.Context, id int64, name, description string, available bool) (*readmodel.ItemRM, error) {
	sql, args, err := pg.Update("items").
		Set(goqu.Record{"name": name, "description": description, "available": available}).
		Where(goqu.C("id").Eq(id)).
		Returning(itemColumns...).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build update item query", err)
	}

	rm, err := scanItem(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update item", err)
	}
	return rm, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*readmodel.ItemRM, error) {
	sql, args, err := pg.From("items").
		Select(itemColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build select item query", err)
	}

	rm, err := scanItem(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to select item", err)
	}
	return rm, nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*readmodel.ItemRM, error) {
	ds := pg.From("items").
		Select(itemColumns...).
		Where(goqu.C("owner_id").Eq(ownerID)).
		Order(goqu.C("id").Asc())
	return r.list(ctx, ds, "failed to list items by owner")
}

// Search matches available items whose name or description contains text,
// case-insensitively. The caller guarantees text is non-blank.
func (r *ItemRepository) Search(ctx context.Context, text string) ([]*readmodel.ItemRM, error) {
	return r.list(ctx, searchQuery(text), "failed to search items")
}

func searchQuery(text string) *goqu.SelectDataset {
	pattern := "%" + text + "%"
	return pg.From("items").
		Select(itemColumns...).
		Where(
			goqu.C("available").IsTrue(),
			goqu.Or(
				goqu.C("name").ILike(pattern),
				goqu.C("description").ILike(pattern),
			),
		).
		Order(goqu.C("id").Asc())
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := pg.Delete("items").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build delete item query", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	return nil
}

func (r *ItemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*readmodel.ItemRM, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	ds := pg.From("items").
		Select(itemColumns...).
		Where(goqu.C("request_id").In(requestIDs)).
		Order(goqu.C("id").Asc())
	return r.list(ctx, ds, "failed to list items by requests")
}

func (r *ItemRepository) list(ctx context.Context, ds *goqu.SelectDataset, msg string) ([]*readmodel.ItemRM, error) {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	var result []*readmodel.ItemRM
	for rows.Next() {
		rm, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return result, nil
}
