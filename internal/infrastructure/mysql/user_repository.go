package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cinehub/internal/domain"
)

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

const userColumns = `id, username, hashed_password, age, gender, profile_image_url, last_login, created_at`

func scanUser(row interface {
	Scan(dest ...interface{}) error
}) (*domain.User, error) {
	var user domain.User
	var profileImage sql.NullString
	var lastLogin sql.NullTime

	err := row.Scan(&user.ID, &user.Username, &user.HashedPassword, &user.Age,
		&user.Gender, &profileImage, &lastLogin, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	user.ProfileImageURL = profileImage.String
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}
	return &user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *MySQLUserRepository) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	query := `
        INSERT INTO users (username, hashed_password, age, gender, profile_image_url)
        VALUES (?, ?, ?, ?, ?)
    `
	result, err := r.db.ExecContext(ctx, query,
		user.Username, user.HashedPassword, user.Age, user.Gender,
		nullString(user.ProfileImageURL))
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, domain.ErrUsernameTaken
		}
		return 0, err
	}
	return result.LastInsertId()
}

func (r *MySQLUserRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return user, err
}

func (r *MySQLUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return user, err
}

func (r *MySQLUserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *MySQLUserRepository) SearchUsers(ctx context.Context, params domain.UserSearchParams) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	var args []interface{}

	if params.Username != "" {
		query += ` AND username LIKE ?`
		args = append(args, "%"+params.Username+"%")
	}
	if params.Age > 0 {
		query += ` AND age = ?`
		args = append(args, params.Age)
	}
	if params.Gender != "" {
		query += ` AND gender = ?`
		args = append(args, params.Gender)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *MySQLUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET username = ?, hashed_password = ?, age = ?, gender = ?, profile_image_url = ?
        WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		user.Username, user.HashedPassword, user.Age, user.Gender,
		nullString(user.ProfileImageURL), user.ID)
	if err != nil && isDuplicateEntry(err) {
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *MySQLUserRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	query := `UPDATE users SET last_login = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, at, userID)
	return err
}

func (r *MySQLUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM users WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func collectUsers(rows *sql.Rows) ([]*domain.User, error) {
	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
