package domain

import (
	"context"
	"time"
)

// Repository interfaces
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) (int64, error)
	GetUser(ctx context.Context, userID int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	SearchUsers(ctx context.Context, params UserSearchParams) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) error
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	DeleteUser(ctx context.Context, userID int64) error
}

type MovieRepository interface {
	CreateMovie(ctx context.Context, movie *Movie) (int64, error)
	GetMovie(ctx context.Context, movieID int64) (*Movie, error)
	ListMovies(ctx context.Context) ([]*Movie, error)
	SearchMovies(ctx context.Context, params MovieSearchParams) ([]*Movie, error)
	UpdateMovie(ctx context.Context, movie *Movie) error
	DeleteMovie(ctx context.Context, movieID int64) error
	TopLikedMovies(ctx context.Context, limit int) ([]*TrendingMovie, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *Review) (int64, error)
	GetReview(ctx context.Context, reviewID int64) (*Review, error)
	ListMovieReviews(ctx context.Context, movieID int64) ([]*Review, error)
	UpdateReview(ctx context.Context, review *Review) error
	DeleteReview(ctx context.Context, reviewID int64) error
}

type ReviewLikeRepository interface {
	// GetOrCreateLike returns the like row for (user, review), inserting an
	// active one if none exists. The second result reports a fresh insert.
	GetOrCreateLike(ctx context.Context, userID, reviewID int64) (*ReviewLike, bool, error)
	SetLiked(ctx context.Context, likeID int64, liked bool) error
	CountLikes(ctx context.Context, reviewID int64) (int64, error)
}

type MovieReactionRepository interface {
	// UpsertReaction inserts or retypes the (user, movie) reaction row.
	UpsertReaction(ctx context.Context, userID, movieID int64, reaction ReactionType) (*MovieReaction, error)
	DeleteReaction(ctx context.Context, userID, movieID int64) error
	CountReactions(ctx context.Context, movieID int64, reaction ReactionType) (int64, error)
}

type FollowRepository interface {
	// GetOrCreateFollow returns the follow row for (follower, following),
	// inserting an active one if none exists. The second result reports a
	// fresh insert.
	GetOrCreateFollow(ctx context.Context, followerID, followingID int64) (*Follow, bool, error)
	SetFollowing(ctx context.Context, followID int64, following bool) error
	ListFollowers(ctx context.Context, userID int64) ([]*User, error)
	ListFollowing(ctx context.Context, userID int64) ([]*User, error)
}

// Cache interfaces
type LikeCountCache interface {
	GetReviewLikeCount(ctx context.Context, reviewID int64) (int64, bool, error)
	SetReviewLikeCount(ctx context.Context, reviewID, count int64) error
	InvalidateReviewLikeCount(ctx context.Context, reviewID int64) error
}

type TrendingCache interface {
	SetTrending(ctx context.Context, movies []*TrendingMovie) error
	GetTrending(ctx context.Context) ([]*TrendingMovie, error)
}

// Auth interface
type TokenVerifier interface {
	VerifyToken(token string) (int64, error)
}

// WebSocket interfaces
type Connection interface {
	Send(message interface{}) error
	Close() error
	UserID() int64
}

// ConnectionRegistry tracks which users currently have a live notification
// connection. A user maps to at most one connection; registering a second
// connection for the same user replaces the first.
type ConnectionRegistry interface {
	Register(userID int64, conn Connection)
	Remove(conn Connection)
	Lookup(userID int64) (Connection, bool)
}

// UserNotifier delivers a message to a user if they are currently connected.
// Delivery is best effort: an offline user or a dead connection is never an
// error for the caller.
type UserNotifier interface {
	Notify(ctx context.Context, userID int64, message string) error
}
