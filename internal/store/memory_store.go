package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"linkden/internal/models"
)

type voteKey struct {
	userID string
	postID string
}

// MemoryStore implements Store with indexed maps. It stands in for the
// database in tests; a single mutex linearizes all writes.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
	posts map[string]models.Post
	votes map[voteKey]models.Vote
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]models.User),
		posts: make(map[string]models.Post),
		votes: make(map[voteKey]models.Vote),
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (s *MemoryStore) CreatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[post.AuthorID]; !ok {
		return ErrNoAuthor
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	s.posts[post.ID] = *post
	return nil
}

func (s *MemoryStore) GetPost(ctx context.Context, id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (s *MemoryStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *MemoryStore) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.posts, id)
	for key := range s.votes {
		if key.postID == id {
			delete(s.votes, key)
		}
	}
	return nil
}

func (s *MemoryStore) UpsertVote(ctx context.Context, voterID, postID string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := voteKey{userID: voterID, postID: postID}
	vote, ok := s.votes[key]
	if !ok {
		vote = models.Vote{UserID: voterID, PostID: postID, CreatedAt: time.Now()}
	}
	vote.Value = value
	vote.UpdatedAt = time.Now()
	s.votes[key] = vote
	return nil
}

func (s *MemoryStore) SumVotes(ctx context.Context, postID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := 0
	for key, vote := range s.votes {
		if key.postID == postID {
			sum += vote.Value
		}
	}
	return sum, nil
}
