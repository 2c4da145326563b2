package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"cinehub/internal/domain"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[int64]*domain.User)}
	for _, user := range users {
		repo.users[user.ID] = user
		if user.ID > repo.nextID {
			repo.nextID = user.ID
		}
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return 0, domain.ErrUsernameTaken
		}
	}
	r.nextID++
	copied := *user
	copied.ID = r.nextID
	r.users[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, userID int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) ListUsers(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*domain.User
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) SearchUsers(_ context.Context, params domain.UserSearchParams) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*domain.User
	for _, user := range r.users {
		if params.Username != "" && !strings.Contains(user.Username, params.Username) {
			continue
		}
		if params.Age > 0 && user.Age != params.Age {
			continue
		}
		if params.Gender != "" && user.Gender != params.Gender {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	user.LastLogin = &at
	return nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	nextID  int64
	reviews map[int64]*domain.Review
}

func newFakeReviewRepo(reviews ...*domain.Review) *fakeReviewRepo {
	repo := &fakeReviewRepo{reviews: make(map[int64]*domain.Review)}
	for _, review := range reviews {
		repo.reviews[review.ID] = review
		if review.ID > repo.nextID {
			repo.nextID = review.ID
		}
	}
	return repo
}

func (r *fakeReviewRepo) CreateReview(_ context.Context, review *domain.Review) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	copied := *review
	copied.ID = r.nextID
	r.reviews[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakeReviewRepo) GetReview(_ context.Context, reviewID int64) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[reviewID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return review, nil
}

func (r *fakeReviewRepo) ListMovieReviews(_ context.Context, movieID int64) ([]*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var reviews []*domain.Review
	for _, review := range r.reviews {
		if review.MovieID == movieID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *fakeReviewRepo) UpdateReview(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[review.ID]; !ok {
		return domain.ErrNotFound
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) DeleteReview(_ context.Context, reviewID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reviews, reviewID)
	return nil
}

type fakeMovieRepo struct {
	mu       sync.Mutex
	nextID   int64
	movies   map[int64]*domain.Movie
	trending []*domain.TrendingMovie
}

func newFakeMovieRepo(movies ...*domain.Movie) *fakeMovieRepo {
	repo := &fakeMovieRepo{movies: make(map[int64]*domain.Movie)}
	for _, movie := range movies {
		repo.movies[movie.ID] = movie
		if movie.ID > repo.nextID {
			repo.nextID = movie.ID
		}
	}
	return repo
}

func (r *fakeMovieRepo) CreateMovie(_ context.Context, movie *domain.Movie) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	copied := *movie
	copied.ID = r.nextID
	r.movies[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakeMovieRepo) GetMovie(_ context.Context, movieID int64) (*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	movie, ok := r.movies[movieID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return movie, nil
}

func (r *fakeMovieRepo) ListMovies(_ context.Context) ([]*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var movies []*domain.Movie
	for _, movie := range r.movies {
		movies = append(movies, movie)
	}
	return movies, nil
}

func (r *fakeMovieRepo) SearchMovies(_ context.Context, params domain.MovieSearchParams) ([]*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var movies []*domain.Movie
	for _, movie := range r.movies {
		if params.Title != "" && !strings.Contains(movie.Title, params.Title) {
			continue
		}
		if params.Genre != "" && movie.Genre != params.Genre {
			continue
		}
		movies = append(movies, movie)
	}
	return movies, nil
}

func (r *fakeMovieRepo) UpdateMovie(_ context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movies[movie.ID]; !ok {
		return domain.ErrNotFound
	}
	r.movies[movie.ID] = movie
	return nil
}

func (r *fakeMovieRepo) DeleteMovie(_ context.Context, movieID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.movies, movieID)
	return nil
}

func (r *fakeMovieRepo) TopLikedMovies(_ context.Context, limit int) ([]*domain.TrendingMovie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.trending) {
		limit = len(r.trending)
	}
	return r.trending[:limit], nil
}

type followKey struct {
	follower  int64
	following int64
}

type fakeFollowRepo struct {
	mu      sync.Mutex
	nextID  int64
	follows map[followKey]*domain.Follow
	byID    map[int64]*domain.Follow
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{
		follows: make(map[followKey]*domain.Follow),
		byID:    make(map[int64]*domain.Follow),
	}
}

func (r *fakeFollowRepo) GetOrCreateFollow(_ context.Context, followerID, followingID int64) (*domain.Follow, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := followKey{follower: followerID, following: followingID}
	if follow, ok := r.follows[key]; ok {
		copied := *follow
		return &copied, false, nil
	}
	r.nextID++
	follow := &domain.Follow{
		ID:          r.nextID,
		FollowerID:  followerID,
		FollowingID: followingID,
		IsFollowing: true,
	}
	r.follows[key] = follow
	r.byID[follow.ID] = follow
	copied := *follow
	return &copied, true, nil
}

func (r *fakeFollowRepo) SetFollowing(_ context.Context, followID int64, following bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	follow, ok := r.byID[followID]
	if !ok {
		return domain.ErrNotFound
	}
	follow.IsFollowing = following
	return nil
}

func (r *fakeFollowRepo) ListFollowers(_ context.Context, userID int64) ([]*domain.User, error) {
	return nil, nil
}

func (r *fakeFollowRepo) ListFollowing(_ context.Context, userID int64) ([]*domain.User, error) {
	return nil, nil
}

type likeKey struct {
	user   int64
	review int64
}

type fakeLikeRepo struct {
	mu     sync.Mutex
	nextID int64
	likes  map[likeKey]*domain.ReviewLike
	byID   map[int64]*domain.ReviewLike
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{
		likes: make(map[likeKey]*domain.ReviewLike),
		byID:  make(map[int64]*domain.ReviewLike),
	}
}

func (r *fakeLikeRepo) GetOrCreateLike(_ context.Context, userID, reviewID int64) (*domain.ReviewLike, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{user: userID, review: reviewID}
	if like, ok := r.likes[key]; ok {
		copied := *like
		return &copied, false, nil
	}
	r.nextID++
	like := &domain.ReviewLike{
		ID:       r.nextID,
		UserID:   userID,
		ReviewID: reviewID,
		IsLiked:  true,
	}
	r.likes[key] = like
	r.byID[like.ID] = like
	copied := *like
	return &copied, true, nil
}

func (r *fakeLikeRepo) SetLiked(_ context.Context, likeID int64, liked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	like, ok := r.byID[likeID]
	if !ok {
		return domain.ErrNotFound
	}
	like.IsLiked = liked
	return nil
}

func (r *fakeLikeRepo) CountLikes(_ context.Context, reviewID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, like := range r.likes {
		if like.ReviewID == reviewID && like.IsLiked {
			count++
		}
	}
	return count, nil
}

type reactionKey struct {
	user  int64
	movie int64
}

type fakeReactionRepo struct {
	mu        sync.Mutex
	nextID    int64
	reactions map[reactionKey]*domain.MovieReaction
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[reactionKey]*domain.MovieReaction)}
}

func (r *fakeReactionRepo) UpsertReaction(_ context.Context, userID, movieID int64, reaction domain.ReactionType) (*domain.MovieReaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := reactionKey{user: userID, movie: movieID}
	if row, ok := r.reactions[key]; ok {
		row.Type = reaction
		copied := *row
		return &copied, nil
	}
	r.nextID++
	row := &domain.MovieReaction{
		ID:      r.nextID,
		UserID:  userID,
		MovieID: movieID,
		Type:    reaction,
	}
	r.reactions[key] = row
	copied := *row
	return &copied, nil
}

func (r *fakeReactionRepo) DeleteReaction(_ context.Context, userID, movieID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := reactionKey{user: userID, movie: movieID}
	if _, ok := r.reactions[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.reactions, key)
	return nil
}

func (r *fakeReactionRepo) CountReactions(_ context.Context, movieID int64, reaction domain.ReactionType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, row := range r.reactions {
		if row.MovieID == movieID && row.Type == reaction {
			count++
		}
	}
	return count, nil
}

type fakeCountCache struct {
	mu     sync.Mutex
	counts map[int64]int64
}

func newFakeCountCache() *fakeCountCache {
	return &fakeCountCache{counts: make(map[int64]int64)}
}

func (c *fakeCountCache) GetReviewLikeCount(_ context.Context, reviewID int64) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[reviewID]
	return count, ok, nil
}

func (c *fakeCountCache) SetReviewLikeCount(_ context.Context, reviewID, count int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[reviewID] = count
	return nil
}

func (c *fakeCountCache) InvalidateReviewLikeCount(_ context.Context, reviewID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, reviewID)
	return nil
}

type sentNotification struct {
	UserID  int64
	Message string
}

// recordingNotifier captures every delivery attempt.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) Notify(_ context.Context, userID int64, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{UserID: userID, Message: message})
	return nil
}

func (n *recordingNotifier) sentTo(userID int64) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var messages []string
	for _, s := range n.sent {
		if s.UserID == userID {
			messages = append(messages, s.Message)
		}
	}
	return messages
}

func (n *recordingNotifier) total() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type fakeTrendingCache struct {
	mu     sync.Mutex
	movies []*domain.TrendingMovie
}

func (c *fakeTrendingCache) SetTrending(_ context.Context, movies []*domain.TrendingMovie) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movies = movies
	return nil
}

func (c *fakeTrendingCache) GetTrending(_ context.Context) ([]*domain.TrendingMovie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movies, nil
}
