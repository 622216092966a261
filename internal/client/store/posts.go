package store

import (
	"context"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

var postID = func(p models.Post) string { return p.ID }

func (s *Store) FetchPosts(ctx context.Context, params api.ListParams) error {
	tok := beginFetch(s, &s.posts, fragPostsList)
	page, err := s.api.Posts.List(ctx, params)
	if err != nil {
		rejectFetch(s, &s.posts, fragPostsList, tok, s.failure(ctx, err, "failed to fetch posts"))
		return err
	}
	fulfillList(s, &s.posts, fragPostsList, tok, page)
	return nil
}

func (s *Store) FetchPostByID(ctx context.Context, id string) error {
	tok := beginFetch(s, &s.posts, fragPostsCurrent)
	post, err := s.api.Posts.Get(ctx, id)
	if err != nil {
		rejectFetch(s, &s.posts, fragPostsCurrent, tok, s.failure(ctx, err, "failed to fetch post"))
		return err
	}
	fulfillCurrent(s, &s.posts, fragPostsCurrent, tok, *post)
	return nil
}

func (s *Store) SearchPosts(ctx context.Context, params api.ListParams) error {
	tok := beginFetch(s, &s.posts, fragPostsList)
	page, err := s.api.Posts.Search(ctx, params)
	if err != nil {
		rejectFetch(s, &s.posts, fragPostsList, tok, s.failure(ctx, err, "failed to search posts"))
		return err
	}
	fulfillList(s, &s.posts, fragPostsList, tok, page)
	return nil
}

func (s *Store) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	beginMutation(s, &s.posts)
	created, err := s.api.Posts.Create(ctx, post)
	if err != nil {
		rejectMutation(s, &s.posts, s.failure(ctx, err, "failed to create post"))
		return nil, err
	}
	fulfillCreated(s, &s.posts, *created)
	return created, nil
}

func (s *Store) UpdatePost(ctx context.Context, id string, post models.Post) (*models.Post, error) {
	beginMutation(s, &s.posts)
	updated, err := s.api.Posts.Update(ctx, id, post)
	if err != nil {
		rejectMutation(s, &s.posts, s.failure(ctx, err, "failed to update post"))
		return nil, err
	}
	fulfillUpdated(s, &s.posts, *updated, postID)
	return updated, nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	beginMutation(s, &s.posts)
	if err := s.api.Posts.Delete(ctx, id); err != nil {
		rejectMutation(s, &s.posts, s.failure(ctx, err, "failed to delete post"))
		return err
	}
	fulfillDeleted(s, &s.posts, id, postID)
	return nil
}

// LikePost resolves with the fresh liker-id list without touching
// collections; merge it via ApplyPostLikes.
func (s *Store) LikePost(ctx context.Context, id string) ([]string, error) {
	beginMutation(s, &s.posts)
	likes, err := s.api.Posts.Like(ctx, id)
	if err != nil {
		rejectMutation(s, &s.posts, s.failure(ctx, err, "failed to like post"))
		return nil, err
	}
	finishMutation(s, &s.posts)
	return likes, nil
}

func (s *Store) UnlikePost(ctx context.Context, id string) ([]string, error) {
	beginMutation(s, &s.posts)
	likes, err := s.api.Posts.Unlike(ctx, id)
	if err != nil {
		rejectMutation(s, &s.posts, s.failure(ctx, err, "failed to unlike post"))
		return nil, err
	}
	finishMutation(s, &s.posts)
	return likes, nil
}

// AddComment resolves with the confirmed comment; refetch the thread with
// FetchPostComments and merge via ApplyPostComments.
func (s *Store) AddComment(ctx context.Context, id string, comment models.Comment) (*models.Comment, error) {
	beginMutation(s, &s.posts)
	created, err := s.api.Posts.AddComment(ctx, id, comment)
	if err != nil {
		rejectMutation(s, &s.posts, s.failure(ctx, err, "failed to add comment"))
		return nil, err
	}
	finishMutation(s, &s.posts)
	return created, nil
}

func (s *Store) DeleteComment(ctx context.Context, id, commentID string) error {
	beginMutation(s, &s.posts)
	if err := s.api.Posts.DeleteComment(ctx, id, commentID); err != nil {
		rejectMutation(s, &s.posts, s.failure(ctx, err, "failed to delete comment"))
		return err
	}
	finishMutation(s, &s.posts)
	return nil
}

// FetchPostComments reads the fresh comment thread without touching state.
func (s *Store) FetchPostComments(ctx context.Context, id string) ([]models.Comment, error) {
	return s.api.Posts.Comments(ctx, id)
}

// ApplyPostLikes merges a fresh liker-id list into the current post and
// the matching list entry.
func (s *Store) ApplyPostLikes(id string, likes []string) {
	s.mu.Lock()
	if s.posts.Current != nil && s.posts.Current.ID == id {
		s.posts.Current.Likes = likes
	}
	for i := range s.posts.Items {
		if s.posts.Items[i].ID == id {
			s.posts.Items[i].Likes = likes
		}
	}
	s.mu.Unlock()
	s.notify()
}

// ApplyPostComments merges a fresh comment thread into the current post
// and the matching list entry.
func (s *Store) ApplyPostComments(id string, comments []models.Comment) {
	s.mu.Lock()
	if s.posts.Current != nil && s.posts.Current.ID == id {
		s.posts.Current.Comments = comments
	}
	for i := range s.posts.Items {
		if s.posts.Items[i].ID == id {
			s.posts.Items[i].Comments = comments
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetPostFilters(filters map[string]string) { setFilters(s, &s.posts, filters) }
func (s *Store) ClearPostFilters()                        { clearFilters(s, &s.posts) }
func (s *Store) SetPostsPage(page int)                    { setPage(s, &s.posts, page) }
func (s *Store) ClearPostsError()                         { clearError(s, &s.posts) }
