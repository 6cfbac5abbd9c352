package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (*readmodel.CommentRM, error) {
	sql, args, err := pg.Insert("comments").
		Rows(goqu.Record{
			"text":      c.Text(),
			"item_id":   c.ItemID(),
			"author_id": c.AuthorID(),
			"created":   c.Created(),
		}).
		Returning("id").
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build insert comment query", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("referenced row not found", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to insert comment", err)
	}
	return r.findByID(ctx, id)
}

func (r *CommentRepository) findByID(ctx context.Context, id int64) (*readmodel.CommentRM, error) {
	sql, args, err := commentView().
		Where(goqu.I("c.id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build select comment query", err)
	}

	var rm readmodel.CommentRM
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(
		&rm.ID, &rm.Text, &rm.ItemID, &rm.AuthorID, &rm.AuthorName, &rm.Created,
	); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("comment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to select comment", err)
	}
	return &rm, nil
}

func commentView() *goqu.SelectDataset {
	return pg.From(goqu.T("comments").As("c")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("c.author_id")))).
		Select(
			goqu.I("c.id"), goqu.I("c.text"), goqu.I("c.item_id"), goqu.I("c.author_id"),
			goqu.I("u.name"), goqu.I("c.created"),
		)
}

func (r *CommentRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*readmodel.CommentRM, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	sql, args, err := commentView().
		Where(goqu.I("c.item_id").In(itemIDs)).
		Order(goqu.I("c.created").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build comments-by-items query", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments by items", err)
	}
	defer rows.Close()

	var result []*readmodel.CommentRM
	for rows.Next() {
		var rm readmodel.CommentRM
		if err := rows.Scan(&rm.ID, &rm.Text, &rm.ItemID, &rm.AuthorID, &rm.AuthorName, &rm.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return result, nil
}
