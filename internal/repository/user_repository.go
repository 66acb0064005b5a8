package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kmenon/travel-booking/internal/model"
	"github.com/kmenon/travel-booking/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts the user, returning the new id.
// The plaintext never reaches the database. A duplicate email maps to
// ErrEmailExists (MySQL error 1062).
func (r *UserRepo) Create(ctx context.Context, name, email, password, homeCity string, budget float64, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, home_city, budget) VALUES (?,?,?,?,?)",
		name, email, hash, homeCity, budget)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email. sql.ErrNoRows passes
// through so callers can treat an unknown email like a bad password.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,home_city,budget,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.HomeCity, &u.Budget, &u.CreatedAt)
	return u, err
}
