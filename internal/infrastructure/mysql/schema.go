package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a unique-key violation.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,
		username VARCHAR(50) NOT NULL,
		hashed_password VARCHAR(128) NOT NULL,
		age INT NOT NULL,
		gender VARCHAR(6) NOT NULL,
		profile_image_url VARCHAR(255) NULL,
		last_login DATETIME(6) NULL,
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		UNIQUE KEY uid_users_username (username)
	) CHARACTER SET utf8mb4`,
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,
		title VARCHAR(255) NOT NULL,
		plot TEXT NOT NULL,
		cast_members JSON NULL,
		playtime INT NOT NULL,
		genre VARCHAR(20) NOT NULL,
		poster_image_url VARCHAR(255) NULL,
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
	) CHARACTER SET utf8mb4`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,
		user_id BIGINT NOT NULL,
		movie_id BIGINT NOT NULL,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		rating INT NOT NULL,
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		KEY idx_reviews_movie_id (movie_id),
		CONSTRAINT fk_reviews_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT fk_reviews_movie FOREIGN KEY (movie_id) REFERENCES movies (id) ON DELETE CASCADE
	) CHARACTER SET utf8mb4`,
	`CREATE TABLE IF NOT EXISTS review_likes (
		id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,
		user_id BIGINT NOT NULL,
		review_id BIGINT NOT NULL,
		is_liked BOOL NOT NULL DEFAULT 1,
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		UNIQUE KEY uid_review_likes_user_review (user_id, review_id),
		CONSTRAINT fk_review_likes_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT fk_review_likes_review FOREIGN KEY (review_id) REFERENCES reviews (id) ON DELETE CASCADE
	) CHARACTER SET utf8mb4`,
	`CREATE TABLE IF NOT EXISTS movie_reactions (
		id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,
		user_id BIGINT NOT NULL,
		movie_id BIGINT NOT NULL,
		type VARCHAR(7) NOT NULL DEFAULT 'like',
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		UNIQUE KEY uid_movie_reactions_user_movie (user_id, movie_id),
		CONSTRAINT fk_movie_reactions_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT fk_movie_reactions_movie FOREIGN KEY (movie_id) REFERENCES movies (id) ON DELETE CASCADE
	) CHARACTER SET utf8mb4`,
	`CREATE TABLE IF NOT EXISTS follows (
		id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,
		follower_id BIGINT NOT NULL,
		following_id BIGINT NOT NULL,
		is_following BOOL NOT NULL DEFAULT 1,
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		UNIQUE KEY uid_follows_follower_following (follower_id, following_id),
		CONSTRAINT fk_follows_follower FOREIGN KEY (follower_id) REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT fk_follows_following FOREIGN KEY (following_id) REFERENCES users (id) ON DELETE CASCADE
	) CHARACTER SET utf8mb4`,
}

// InitSchema creates all tables if they do not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
