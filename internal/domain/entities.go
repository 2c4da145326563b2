package domain

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type User struct {
	ID              int64
	Username        string
	HashedPassword  string
	Age             int
	Gender          Gender
	ProfileImageURL string
	LastLogin       *time.Time
	CreatedAt       time.Time
}

type UserSearchParams struct {
	Username string
	Age      int
	Gender   Gender
}

type Genre string

const (
	GenreAction    Genre = "action"
	GenreDrama     Genre = "drama"
	GenreComedy    Genre = "comedy"
	GenreRomance   Genre = "romance"
	GenreHorror    Genre = "horror"
	GenreSF        Genre = "sf"
	GenreThriller  Genre = "thriller"
	GenreAnimation Genre = "animation"
)

func (g Genre) Valid() bool {
	switch g {
	case GenreAction, GenreDrama, GenreComedy, GenreRomance,
		GenreHorror, GenreSF, GenreThriller, GenreAnimation:
		return true
	}
	return false
}

type Movie struct {
	ID             int64
	Title          string
	Plot           string
	Cast           map[string]interface{}
	Playtime       int
	Genre          Genre
	PosterImageURL string
	CreatedAt      time.Time
}

type MovieSearchParams struct {
	Title string
	Genre Genre
	Plot  string
}

type Review struct {
	ID        int64
	UserID    int64
	MovieID   int64
	Title     string
	Content   string
	Rating    int
	CreatedAt time.Time
}

type ReviewLike struct {
	ID        int64
	UserID    int64
	ReviewID  int64
	IsLiked   bool
	CreatedAt time.Time
}

type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

func (t ReactionType) Valid() bool {
	return t == ReactionLike || t == ReactionDislike
}

type MovieReaction struct {
	ID        int64
	UserID    int64
	MovieID   int64
	Type      ReactionType
	CreatedAt time.Time
}

// Follow is a soft relationship row: unfollow flips IsFollowing instead of
// deleting, so the unique (follower, following) pair survives re-follows.
type Follow struct {
	ID          int64
	FollowerID  int64
	FollowingID int64
	IsFollowing bool
	CreatedAt   time.Time
}

type TrendingMovie struct {
	MovieID   int64  `json:"movie_id"`
	Title     string `json:"title"`
	LikeCount int64  `json:"like_count"`
}
