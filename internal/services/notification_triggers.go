package services

import (
	"context"
	"fmt"

	"cinehub/internal/domain"
	"cinehub/pkg/logger"
)

// NotificationTriggers turns committed follow and review-like writes into
// best-effort websocket notifications. Handlers run after the row is
// committed; every failure in here is logged and dropped so the write path
// that emitted the event never sees it.
type NotificationTriggers struct {
	users    domain.UserRepository
	reviews  domain.ReviewRepository
	notifier domain.UserNotifier
	log      logger.Logger
}

func NewNotificationTriggers(users domain.UserRepository, reviews domain.ReviewRepository,
	notifier domain.UserNotifier, log logger.Logger) *NotificationTriggers {
	return &NotificationTriggers{
		users:    users,
		reviews:  reviews,
		notifier: notifier,
		log:      log,
	}
}

func (t *NotificationTriggers) HandleFollowEvent(ctx context.Context, event domain.FollowEvent) {
	follower, err := t.users.GetUser(ctx, event.FollowerID)
	if err != nil {
		t.log.Error("Failed to resolve follower for notification",
			"follower_id", event.FollowerID, "error", err)
		return
	}

	message := fmt.Sprintf("%s started following you.", follower.Username)
	if err := t.notifier.Notify(ctx, event.FollowingID, message); err != nil {
		t.log.Error("Failed to notify followed user",
			"user_id", event.FollowingID, "error", err)
	}
}

func (t *NotificationTriggers) HandleReviewLikeEvent(ctx context.Context, event domain.ReviewLikeEvent) {
	review, err := t.reviews.GetReview(ctx, event.ReviewID)
	if err != nil {
		t.log.Error("Failed to resolve review for notification",
			"review_id", event.ReviewID, "error", err)
		return
	}

	liker, err := t.users.GetUser(ctx, event.UserID)
	if err != nil {
		t.log.Error("Failed to resolve liking user for notification",
			"user_id", event.UserID, "error", err)
		return
	}

	// The notification targets the review author, not the liker.
	message := fmt.Sprintf("%s liked your review!", liker.Username)
	if err := t.notifier.Notify(ctx, review.UserID, message); err != nil {
		t.log.Error("Failed to notify review author",
			"user_id", review.UserID, "error", err)
	}
}
