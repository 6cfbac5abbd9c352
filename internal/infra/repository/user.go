package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error) {
	sql, args, err := pg.Insert("users").
		Rows(goqu.Record{"name": u.Name(), "email": u.Email().Value()}).
		Returning("id", "name", "email").
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build insert user query", err)
	}

	var rm readmodel.UserRM
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&rm.ID, &rm.Name, &rm.Email); err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("email already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert user", err)
	}
	return &rm, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, name, email string) (*readmodel.UserRM, error) {
	sql, args, err := pg.Update("users").
		Set(goqu.Record{"name": name, "email": email}).
		Where(goqu.C("id").Eq(id)).
		Returning("id", "name", "email").
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build update user query", err)
	}

	var rm readmodel.UserRM
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&rm.ID, &rm.Name, &rm.Email); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("email already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update user", err)
	}
	return &rm, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	sql, args, err := pg.From("users").
		Select("id", "name", "email").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build select user query", err)
	}

	var rm readmodel.UserRM
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&rm.ID, &rm.Name, &rm.Email); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to select user", err)
	}
	return &rm, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*readmodel.UserRM, error) {
	sql, args, err := pg.From("users").
		Select("id", "name", "email").
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build select users query", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select users", err)
	}
	defer rows.Close()

	var result []*readmodel.UserRM
	for rows.Next() {
		var rm readmodel.UserRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return result, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := pg.Delete("users").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build delete user query", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	return nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, goqu.C("id").Eq(id), "failed to check user existence")
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, goqu.C("email").Eq(email), "failed to check email existence")
}

func (r *UserRepository) exists(ctx context.Context, cond goqu.Expression, msg string) (bool, error) {
	sql, args, err := pg.From("users").
		Select(goqu.L("1")).
		Where(cond).
		Limit(1).
		Prepared(true).ToSQL()
	if err != nil {
		return false, infra.WrapRepoErr(msg, err)
	}

	var one int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr(msg, err)
	}
	return true, nil
}
