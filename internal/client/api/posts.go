package api

import (
	"context"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

// PostsAPI covers the forum: /posts plus the likes and comments
// sub-resources.
type PostsAPI struct {
	c *Client
}

func (p *PostsAPI) List(ctx context.Context, params ListParams) (*models.Page[models.Post], error) {
	return getPage[models.Post](ctx, p.c, "/posts", params.Values())
}

func (p *PostsAPI) Get(ctx context.Context, id string) (*models.Post, error) {
	return getJSON[models.Post](ctx, p.c, "/posts/"+id, nil)
}

func (p *PostsAPI) Search(ctx context.Context, params ListParams) (*models.Page[models.Post], error) {
	return getPage[models.Post](ctx, p.c, "/posts/search", params.Values())
}

func (p *PostsAPI) Create(ctx context.Context, post models.Post) (*models.Post, error) {
	return postJSON[models.Post](ctx, p.c, "/posts", post)
}

func (p *PostsAPI) Update(ctx context.Context, id string, post models.Post) (*models.Post, error) {
	return putJSON[models.Post](ctx, p.c, "/posts/"+id, post)
}

func (p *PostsAPI) Delete(ctx context.Context, id string) error {
	return p.c.Delete(ctx, "/posts/"+id, nil)
}

// Like marks the post liked by the authenticated user and returns the
// fresh liker-id list.
func (p *PostsAPI) Like(ctx context.Context, id string) ([]string, error) {
	var likes []string
	if err := p.c.Post(ctx, "/posts/"+id+"/likes", nil, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

// Unlike removes the like and returns the fresh liker-id list.
func (p *PostsAPI) Unlike(ctx context.Context, id string) ([]string, error) {
	var likes []string
	if err := p.c.Delete(ctx, "/posts/"+id+"/likes", &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

// Comments returns the full, current comment list of a post.
func (p *PostsAPI) Comments(ctx context.Context, id string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := p.c.Get(ctx, "/posts/"+id+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (p *PostsAPI) AddComment(ctx context.Context, id string, comment models.Comment) (*models.Comment, error) {
	return postJSON[models.Comment](ctx, p.c, "/posts/"+id+"/comments", comment)
}

func (p *PostsAPI) DeleteComment(ctx context.Context, id, commentID string) error {
	return p.c.Delete(ctx, "/posts/"+id+"/comments/"+commentID, nil)
}
