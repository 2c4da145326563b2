package mysql

import (
	"context"
	"database/sql"
	"errors"

	"cinehub/internal/domain"
)

type MySQLMovieReactionRepository struct {
	db *sql.DB
}

func NewMySQLMovieReactionRepository(db *sql.DB) *MySQLMovieReactionRepository {
	return &MySQLMovieReactionRepository{db: db}
}

func (r *MySQLMovieReactionRepository) UpsertReaction(ctx context.Context, userID, movieID int64, reaction domain.ReactionType) (*domain.MovieReaction, error) {
	query := `
        INSERT INTO movie_reactions (user_id, movie_id, type)
        VALUES (?, ?, ?)
        ON DUPLICATE KEY UPDATE type = VALUES(type)
    `
	if _, err := r.db.ExecContext(ctx, query, userID, movieID, reaction); err != nil {
		return nil, err
	}

	selectQuery := `
        SELECT id, user_id, movie_id, type, created_at
        FROM movie_reactions WHERE user_id = ? AND movie_id = ?
    `
	var row domain.MovieReaction
	err := r.db.QueryRowContext(ctx, selectQuery, userID, movieID).Scan(
		&row.ID, &row.UserID, &row.MovieID, &row.Type, &row.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *MySQLMovieReactionRepository) DeleteReaction(ctx context.Context, userID, movieID int64) error {
	query := `DELETE FROM movie_reactions WHERE user_id = ? AND movie_id = ?`
	result, err := r.db.ExecContext(ctx, query, userID, movieID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MySQLMovieReactionRepository) CountReactions(ctx context.Context, movieID int64, reaction domain.ReactionType) (int64, error) {
	query := `SELECT COUNT(*) FROM movie_reactions WHERE movie_id = ? AND type = ?`

	var count int64
	err := r.db.QueryRowContext(ctx, query, movieID, reaction).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return count, err
}
