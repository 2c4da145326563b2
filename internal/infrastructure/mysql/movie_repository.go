package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"cinehub/internal/domain"
)

type MySQLMovieRepository struct {
	db *sql.DB
}

func NewMySQLMovieRepository(db *sql.DB) *MySQLMovieRepository {
	return &MySQLMovieRepository{db: db}
}

const movieColumns = `id, title, plot, cast_members, playtime, genre, poster_image_url, created_at`

func scanMovie(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Movie, error) {
	var movie domain.Movie
	var castRaw []byte
	var poster sql.NullString

	err := row.Scan(&movie.ID, &movie.Title, &movie.Plot, &castRaw,
		&movie.Playtime, &movie.Genre, &poster, &movie.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(castRaw) > 0 {
		if err := json.Unmarshal(castRaw, &movie.Cast); err != nil {
			return nil, err
		}
	}
	movie.PosterImageURL = poster.String
	return &movie, nil
}

func (r *MySQLMovieRepository) CreateMovie(ctx context.Context, movie *domain.Movie) (int64, error) {
	castRaw, err := json.Marshal(movie.Cast)
	if err != nil {
		return 0, err
	}

	query := `
        INSERT INTO movies (title, plot, cast_members, playtime, genre, poster_image_url)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	result, err := r.db.ExecContext(ctx, query,
		movie.Title, movie.Plot, castRaw, movie.Playtime, movie.Genre,
		nullString(movie.PosterImageURL))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *MySQLMovieRepository) GetMovie(ctx context.Context, movieID int64) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`

	movie, err := scanMovie(r.db.QueryRowContext(ctx, query, movieID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return movie, err
}

func (r *MySQLMovieRepository) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMovies(rows)
}

func (r *MySQLMovieRepository) SearchMovies(ctx context.Context, params domain.MovieSearchParams) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE 1=1`
	var args []interface{}

	if params.Title != "" {
		query += ` AND title LIKE ?`
		args = append(args, "%"+params.Title+"%")
	}
	if params.Genre != "" {
		query += ` AND genre = ?`
		args = append(args, params.Genre)
	}
	if params.Plot != "" {
		query += ` AND plot LIKE ?`
		args = append(args, "%"+params.Plot+"%")
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMovies(rows)
}

func (r *MySQLMovieRepository) UpdateMovie(ctx context.Context, movie *domain.Movie) error {
	castRaw, err := json.Marshal(movie.Cast)
	if err != nil {
		return err
	}

	query := `
        UPDATE movies
        SET title = ?, plot = ?, cast_members = ?, playtime = ?, genre = ?, poster_image_url = ?
        WHERE id = ?
    `
	_, err = r.db.ExecContext(ctx, query,
		movie.Title, movie.Plot, castRaw, movie.Playtime, movie.Genre,
		nullString(movie.PosterImageURL), movie.ID)
	return err
}

func (r *MySQLMovieRepository) DeleteMovie(ctx context.Context, movieID int64) error {
	query := `DELETE FROM movies WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, movieID)
	return err
}

func (r *MySQLMovieRepository) TopLikedMovies(ctx context.Context, limit int) ([]*domain.TrendingMovie, error) {
	query := `
        SELECT m.id, m.title, COUNT(mr.id) AS like_count
        FROM movies m
        JOIN movie_reactions mr ON mr.movie_id = m.id AND mr.type = ?
        GROUP BY m.id, m.title
        ORDER BY like_count DESC, m.id
        LIMIT ?
    `
	rows, err := r.db.QueryContext(ctx, query, domain.ReactionLike, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []*domain.TrendingMovie
	for rows.Next() {
		var movie domain.TrendingMovie
		if err := rows.Scan(&movie.MovieID, &movie.Title, &movie.LikeCount); err != nil {
			return nil, err
		}
		movies = append(movies, &movie)
	}
	return movies, rows.Err()
}

func collectMovies(rows *sql.Rows) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}
