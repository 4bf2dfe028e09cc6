package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/secondary"
)

// UserRepository implements secondary.UserRepository.
type UserRepository struct {
	conn *db.Connector
}

// NewUserRepository creates a new user repository.
func NewUserRepository(conn *db.Connector) *UserRepository {
	return &UserRepository{conn: conn}
}

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.conn.Do(ctx, "user.create", func(ctx context.Context, c *db.Conn) error {
		var err error
		id, err = c.InsertReturningID(ctx,
			"INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)",
			user.Username, user.PasswordHash, user.Role,
		)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetByUsername retrieves a user by name. Returns nil, nil when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "user.get", "username = ?", username)
}

// GetByID retrieves a user by ID. Returns nil, nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, "user.get_by_id", "id = ?", id)
}

func (r *UserRepository) getOne(ctx context.Context, op, where string, arg any) (*models.User, error) {
	var user *models.User
	err := r.conn.Do(ctx, op, func(ctx context.Context, c *db.Conn) error {
		rows, err := c.QueryContext(ctx,
			"SELECT id, username, password_hash, role, created_at FROM users WHERE "+where,
			arg,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		if !rows.Next() {
			return rows.Err()
		}
		var createdAt sql.NullTime
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &createdAt); err != nil {
			return fmt.Errorf("failed to scan user: %w", err)
		}
		u.CreatedAt = createdAt.Time
		user = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Ensure UserRepository implements the interface.
var _ secondary.UserRepository = (*UserRepository)(nil)
