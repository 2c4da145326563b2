package services

import (
	"context"
	"errors"

	"cinehub/internal/domain"
	"cinehub/pkg/logger"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type CreateReviewInput struct {
	Title   string
	Content string
	Rating  int
}

type UpdateReviewInput struct {
	Title   *string
	Content *string
	Rating  *int
}

type ReviewService struct {
	reviews domain.ReviewRepository
	movies  domain.MovieRepository
	log     logger.Logger
}

func NewReviewService(reviews domain.ReviewRepository, movies domain.MovieRepository, log logger.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		movies:  movies,
		log:     log,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, userID, movieID int64, input CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.movies.GetMovie(ctx, movieID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		UserID:  userID,
		MovieID: movieID,
		Title:   input.Title,
		Content: input.Content,
		Rating:  input.Rating,
	}

	id, err := s.reviews.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = id
	return review, nil
}

func (s *ReviewService) GetReview(ctx context.Context, reviewID int64) (*domain.Review, error) {
	return s.reviews.GetReview(ctx, reviewID)
}

func (s *ReviewService) ListMovieReviews(ctx context.Context, movieID int64) ([]*domain.Review, error) {
	if _, err := s.movies.GetMovie(ctx, movieID); err != nil {
		return nil, err
	}
	return s.reviews.ListMovieReviews(ctx, movieID)
}

// UpdateReview applies a partial update. Only the author may edit.
func (s *ReviewService) UpdateReview(ctx context.Context, userID, reviewID int64, input UpdateReviewInput) (*domain.Review, error) {
	review, err := s.reviews.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		review.Title = *input.Title
	}
	if input.Content != nil {
		review.Content = *input.Content
	}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, ErrInvalidRating
		}
		review.Rating = *input.Rating
	}

	if err := s.reviews.UpdateReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID int64) error {
	review, err := s.reviews.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return domain.ErrForbidden
	}
	return s.reviews.DeleteReview(ctx, reviewID)
}
