package repository

import (
	"database/sql"
	"errors"

	"portal/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetUserByUsername(username string) (*models.User, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewUserRepository(db *sqlx.DB, log *logrus.Logger) UserRepository {
	return &userRepository{db: db, log: log}
}

func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, password_hash, roles, created_at FROM users WHERE username = $1`
	err := r.db.Get(&user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		r.log.Errorf("Failed to query user %s: %v", username, err)
		return nil, err
	}
	return &user, nil
}
