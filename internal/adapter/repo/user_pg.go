package repo

import (
	"context"

	"campusfund/internal/domain"
	"campusfund/internal/infra"
	"campusfund/internal/sqlinline"
)

// UserRepositoryPG implements UserRepository using PostgreSQL.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new user repo.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

// Create inserts a user. A duplicate email yields domain.ErrEmailTaken.
func (r *UserRepositoryPG) Create(ctx context.Context, u *domain.User) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertUser,
		u.ID, u.Name, u.Email, string(u.Role), u.StudentID, u.Department, u.ProfileImage,
		u.PasswordHash, u.IsVerified, u.CreatedAt)
	if infra.IsUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	return err
}

// GetByID looks up a user by ID.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, sqlinline.QSelectUserByID, id)
}

// GetByEmail looks up a user by email.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, sqlinline.QSelectUserByEmail, email)
}

func (r *UserRepositoryPG) get(ctx context.Context, query, arg string) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := r.sql.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &role, &u.StudentID, &u.Department,
		&u.ProfileImage, &u.PasswordHash, &u.IsVerified, &u.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
