package user

import (
	c "authd/internal/core/domain/common"
	e "authd/internal/core/domain/errors"
	"authd/internal/core/domain/user"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, password_hash, password_reset_token_hash, password_reset_expires_at, created_at`

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) *PgxUserRepository {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxUserRepository{pool: pool}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO "user" (email, password_hash, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1`,
		string(email),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByResetTokenHash(
	ctx context.Context,
	hash user.PasswordResetTokenHash,
	now time.Time,
) (u user.User, err error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT `+userColumns+`
		 FROM "user"
		 WHERE password_reset_token_hash = $1 AND password_reset_expires_at > $2`,
		string(hash),
		now,
	)
	u, err = scanUser(row)
	// Absent and expired tokens are indistinguishable to the caller.
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) SetPasswordResetToken(
	ctx context.Context,
	id user.ID,
	hash user.PasswordResetTokenHash,
	expiresAt time.Time,
) error {
	commandTag, err := r.pool.Exec(
		ctx,
		`UPDATE "user"
		 SET password_reset_token_hash = $2, password_reset_expires_at = $3
		 WHERE id = $1`,
		int64(id),
		string(hash),
		expiresAt,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) UpdatePasswordByResetToken(
	ctx context.Context,
	hash user.PasswordResetTokenHash,
	newPassword user.PasswordHash,
	now time.Time,
) (u user.User, err error) {
	// Single guarded update: setting the new password and clearing the token
	// fields either both happen or neither does, and a token consumed by a
	// concurrent request no longer matches.
	row := r.pool.QueryRow(
		ctx,
		`UPDATE "user"
		 SET password_hash = $2, password_reset_token_hash = NULL, password_reset_expires_at = NULL
		 WHERE password_reset_token_hash = $1 AND password_reset_expires_at > $3
		 RETURNING `+userColumns,
		string(hash),
		string(newPassword),
		now,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var resetTokenHash sql.NullString
	var resetExpiresAt sql.NullTime
	err = row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&resetTokenHash,
		&resetExpiresAt,
		&u.CreatedAt,
	)
	if err != nil {
		return u, err
	}
	u.PasswordResetTokenHash = c.NewOptional(
		user.PasswordResetTokenHash(resetTokenHash.String),
		resetTokenHash.Valid,
	)
	u.PasswordResetExpiresAt = c.NewOptional(resetExpiresAt.Time, resetExpiresAt.Valid)
	return u, nil
}
