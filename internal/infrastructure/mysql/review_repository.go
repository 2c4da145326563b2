package mysql

import (
	"context"
	"database/sql"
	"errors"

	"cinehub/internal/domain"
)

type MySQLReviewRepository struct {
	db *sql.DB
}

func NewMySQLReviewRepository(db *sql.DB) *MySQLReviewRepository {
	return &MySQLReviewRepository{db: db}
}

const reviewColumns = `id, user_id, movie_id, title, content, rating, created_at`

func scanReview(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Review, error) {
	var review domain.Review
	err := row.Scan(&review.ID, &review.UserID, &review.MovieID,
		&review.Title, &review.Content, &review.Rating, &review.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *MySQLReviewRepository) CreateReview(ctx context.Context, review *domain.Review) (int64, error) {
	query := `
        INSERT INTO reviews (user_id, movie_id, title, content, rating)
        VALUES (?, ?, ?, ?, ?)
    `
	result, err := r.db.ExecContext(ctx, query,
		review.UserID, review.MovieID, review.Title, review.Content, review.Rating)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *MySQLReviewRepository) GetReview(ctx context.Context, reviewID int64) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = ?`

	review, err := scanReview(r.db.QueryRowContext(ctx, query, reviewID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return review, err
}

func (r *MySQLReviewRepository) ListMovieReviews(ctx context.Context, movieID int64) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE movie_id = ? ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *MySQLReviewRepository) UpdateReview(ctx context.Context, review *domain.Review) error {
	query := `UPDATE reviews SET title = ?, content = ?, rating = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, review.Title, review.Content, review.Rating, review.ID)
	return err
}

func (r *MySQLReviewRepository) DeleteReview(ctx context.Context, reviewID int64) error {
	query := `DELETE FROM reviews WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, reviewID)
	return err
}
