package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub/internal/domain"
	"cinehub/pkg/logger"
)

func TestFollowEventMessageNamesFollower(t *testing.T) {
	users := newFakeUserRepo(&domain.User{ID: 7, Username: "carol"})
	notifier := &recordingNotifier{}
	triggers := NewNotificationTriggers(users, newFakeReviewRepo(), notifier, logger.NewNop())

	triggers.HandleFollowEvent(context.Background(), domain.FollowEvent{FollowerID: 7, FollowingID: 8})

	messages := notifier.sentTo(8)
	require.Len(t, messages, 1)
	assert.Equal(t, "carol started following you.", messages[0])
}

func TestReviewLikeEventTargetsReviewAuthor(t *testing.T) {
	users := newFakeUserRepo(
		&domain.User{ID: 1, Username: "alice"},
		&domain.User{ID: 2, Username: "bob"},
	)
	reviews := newFakeReviewRepo(&domain.Review{ID: 10, UserID: 2, MovieID: 1})
	notifier := &recordingNotifier{}
	triggers := NewNotificationTriggers(users, reviews, notifier, logger.NewNop())

	triggers.HandleReviewLikeEvent(context.Background(), domain.ReviewLikeEvent{UserID: 1, ReviewID: 10})

	assert.Empty(t, notifier.sentTo(1))
	messages := notifier.sentTo(2)
	require.Len(t, messages, 1)
	assert.Equal(t, "alice liked your review!", messages[0])
}

func TestFollowEventWithMissingFollowerIsDropped(t *testing.T) {
	notifier := &recordingNotifier{}
	triggers := NewNotificationTriggers(newFakeUserRepo(), newFakeReviewRepo(), notifier, logger.NewNop())

	triggers.HandleFollowEvent(context.Background(), domain.FollowEvent{FollowerID: 1, FollowingID: 2})

	assert.Zero(t, notifier.total())
}

func TestReviewLikeEventWithMissingReviewIsDropped(t *testing.T) {
	users := newFakeUserRepo(&domain.User{ID: 1, Username: "alice"})
	notifier := &recordingNotifier{}
	triggers := NewNotificationTriggers(users, newFakeReviewRepo(), notifier, logger.NewNop())

	triggers.HandleReviewLikeEvent(context.Background(), domain.ReviewLikeEvent{UserID: 1, ReviewID: 99})

	assert.Zero(t, notifier.total())
}
