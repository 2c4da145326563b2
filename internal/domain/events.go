package domain

// FollowEvent is emitted after a follow row is committed in the active state.
// It fires only on a genuine absent-to-active or inactive-to-active
// transition, never on an idempotent re-save.
type FollowEvent struct {
	FollowerID  int64
	FollowingID int64
}

// ReviewLikeEvent is emitted after a review like row is committed in the
// liked state, with the same transition-only firing rule as FollowEvent.
type ReviewLikeEvent struct {
	UserID   int64
	ReviewID int64
}
