package service

import (
	"context"

	"linkden/internal/models"
	"linkden/internal/store"
)

// VoteAggregate owns the one-vote-per-user invariant and score computation.
// The caller has already verified that the post exists.
type VoteAggregate struct {
	store store.Store
}

func NewVoteAggregate(st store.Store) *VoteAggregate {
	return &VoteAggregate{store: st}
}

// CastVote upserts the voter's vote on the post, last writer wins, then
// returns the post with its score recomputed from all current votes.
// Casting the same value twice is a plain overwrite; there is no un-vote.
func (a *VoteAggregate) CastVote(ctx context.Context, post *models.Post, voterID string, value int) (*models.Post, error) {
	if err := a.store.UpsertVote(ctx, voterID, post.ID, value); err != nil {
		return nil, err
	}
	score, err := a.store.SumVotes(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.Score = score
	return post, nil
}

// Score recomputes the post's score by summation. Used on the read path;
// never cached.
func (a *VoteAggregate) Score(ctx context.Context, postID string) (int, error) {
	return a.store.SumVotes(ctx, postID)
}
