package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"compatron/internal/models"
)

type UserRepository struct {
	store
}

func NewUserRepository(db *sql.DB, d Dialect) *UserRepository {
	return &UserRepository{store{db: db, dialect: d}}
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	id, err := r.insert(ctx, `INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)`,
		user.Username, user.Password, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}
	user.ID = id
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.scanUser(r.queryRow(ctx, `SELECT id, username, password, created_at FROM users WHERE username = ?`, username))
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.scanUser(r.queryRow(ctx, `SELECT id, username, password, created_at FROM users WHERE id = ?`, id))
}

func (r *UserRepository) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrNoRecord
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
