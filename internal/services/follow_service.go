package services

import (
	"context"

	"cinehub/internal/domain"
	"cinehub/pkg/logger"
)

// FollowService owns the follow/unfollow write path. Notifications are
// emitted explicitly after the row is committed, and only on a genuine
// transition into the following state: re-following someone you already
// follow stays silent.
type FollowService struct {
	follows  domain.FollowRepository
	users    domain.UserRepository
	triggers *NotificationTriggers
	log      logger.Logger
}

func NewFollowService(follows domain.FollowRepository, users domain.UserRepository,
	triggers *NotificationTriggers, log logger.Logger) *FollowService {
	return &FollowService{
		follows:  follows,
		users:    users,
		triggers: triggers,
		log:      log,
	}
}

func (s *FollowService) Follow(ctx context.Context, followerID, followingID int64) (*domain.Follow, error) {
	if followerID == followingID {
		return nil, domain.ErrSelfFollow
	}

	if _, err := s.users.GetUser(ctx, followingID); err != nil {
		return nil, err
	}

	follow, created, err := s.follows.GetOrCreateFollow(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}

	activated := created
	if !created && !follow.IsFollowing {
		if err := s.follows.SetFollowing(ctx, follow.ID, true); err != nil {
			return nil, err
		}
		follow.IsFollowing = true
		activated = true
	}

	if activated {
		s.triggers.HandleFollowEvent(ctx, domain.FollowEvent{
			FollowerID:  followerID,
			FollowingID: followingID,
		})
	}

	return follow, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID int64) (*domain.Follow, error) {
	if followerID == followingID {
		return nil, domain.ErrSelfFollow
	}

	if _, err := s.users.GetUser(ctx, followingID); err != nil {
		return nil, err
	}

	follow, created, err := s.follows.GetOrCreateFollow(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}

	// Entering the inactive state never notifies anyone.
	if created || follow.IsFollowing {
		if err := s.follows.SetFollowing(ctx, follow.ID, false); err != nil {
			return nil, err
		}
		follow.IsFollowing = false
	}

	return follow, nil
}

func (s *FollowService) Followers(ctx context.Context, userID int64) ([]*domain.User, error) {
	return s.follows.ListFollowers(ctx, userID)
}

func (s *FollowService) Following(ctx context.Context, userID int64) ([]*domain.User, error) {
	return s.follows.ListFollowing(ctx, userID)
}
