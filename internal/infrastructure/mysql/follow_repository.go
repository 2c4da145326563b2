package mysql

import (
	"context"
	"database/sql"
	"errors"

	"cinehub/internal/domain"
)

type MySQLFollowRepository struct {
	db *sql.DB
}

func NewMySQLFollowRepository(db *sql.DB) *MySQLFollowRepository {
	return &MySQLFollowRepository{db: db}
}

const followColumns = `id, follower_id, following_id, is_following, created_at`

func (r *MySQLFollowRepository) getFollow(ctx context.Context, followerID, followingID int64) (*domain.Follow, error) {
	query := `SELECT ` + followColumns + ` FROM follows WHERE follower_id = ? AND following_id = ?`

	var follow domain.Follow
	err := r.db.QueryRowContext(ctx, query, followerID, followingID).Scan(
		&follow.ID, &follow.FollowerID, &follow.FollowingID,
		&follow.IsFollowing, &follow.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *MySQLFollowRepository) GetOrCreateFollow(ctx context.Context, followerID, followingID int64) (*domain.Follow, bool, error) {
	follow, err := r.getFollow(ctx, followerID, followingID)
	if err == nil {
		return follow, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	query := `INSERT INTO follows (follower_id, following_id, is_following) VALUES (?, ?, 1)`
	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		// Lost a race against a concurrent insert for the same pair.
		if isDuplicateEntry(err) {
			follow, err := r.getFollow(ctx, followerID, followingID)
			return follow, false, err
		}
		return nil, false, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, false, err
	}
	return &domain.Follow{ID: id, FollowerID: followerID, FollowingID: followingID, IsFollowing: true}, true, nil
}

func (r *MySQLFollowRepository) SetFollowing(ctx context.Context, followID int64, following bool) error {
	query := `UPDATE follows SET is_following = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, following, followID)
	return err
}

func (r *MySQLFollowRepository) ListFollowers(ctx context.Context, userID int64) ([]*domain.User, error) {
	query := `
        SELECT u.id, u.username, u.hashed_password, u.age, u.gender, u.profile_image_url, u.last_login, u.created_at
        FROM users u
        JOIN follows f ON f.follower_id = u.id
        WHERE f.following_id = ? AND f.is_following = 1
        ORDER BY u.id
    `
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *MySQLFollowRepository) ListFollowing(ctx context.Context, userID int64) ([]*domain.User, error) {
	query := `
        SELECT u.id, u.username, u.hashed_password, u.age, u.gender, u.profile_image_url, u.last_login, u.created_at
        FROM users u
        JOIN follows f ON f.following_id = u.id
        WHERE f.follower_id = ? AND f.is_following = 1
        ORDER BY u.id
    `
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}
