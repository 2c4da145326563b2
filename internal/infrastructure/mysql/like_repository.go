package mysql

import (
	"context"
	"database/sql"
	"errors"

	"cinehub/internal/domain"
)

type MySQLReviewLikeRepository struct {
	db *sql.DB
}

func NewMySQLReviewLikeRepository(db *sql.DB) *MySQLReviewLikeRepository {
	return &MySQLReviewLikeRepository{db: db}
}

const reviewLikeColumns = `id, user_id, review_id, is_liked, created_at`

func (r *MySQLReviewLikeRepository) getLike(ctx context.Context, userID, reviewID int64) (*domain.ReviewLike, error) {
	query := `SELECT ` + reviewLikeColumns + ` FROM review_likes WHERE user_id = ? AND review_id = ?`

	var like domain.ReviewLike
	err := r.db.QueryRowContext(ctx, query, userID, reviewID).Scan(
		&like.ID, &like.UserID, &like.ReviewID, &like.IsLiked, &like.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *MySQLReviewLikeRepository) GetOrCreateLike(ctx context.Context, userID, reviewID int64) (*domain.ReviewLike, bool, error) {
	like, err := r.getLike(ctx, userID, reviewID)
	if err == nil {
		return like, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	query := `INSERT INTO review_likes (user_id, review_id, is_liked) VALUES (?, ?, 1)`
	result, err := r.db.ExecContext(ctx, query, userID, reviewID)
	if err != nil {
		// Lost a race against a concurrent insert for the same pair.
		if isDuplicateEntry(err) {
			like, err := r.getLike(ctx, userID, reviewID)
			return like, false, err
		}
		return nil, false, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, false, err
	}
	return &domain.ReviewLike{ID: id, UserID: userID, ReviewID: reviewID, IsLiked: true}, true, nil
}

func (r *MySQLReviewLikeRepository) SetLiked(ctx context.Context, likeID int64, liked bool) error {
	query := `UPDATE review_likes SET is_liked = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, liked, likeID)
	return err
}

func (r *MySQLReviewLikeRepository) CountLikes(ctx context.Context, reviewID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM review_likes WHERE review_id = ? AND is_liked = 1`

	var count int64
	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(&count)
	return count, err
}
