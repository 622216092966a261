package api

import (
	"context"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

// ActivitiesAPI covers the /activities resource family, including the
// participants sub-resource and favorites.
type ActivitiesAPI struct {
	c *Client
}

func (a *ActivitiesAPI) List(ctx context.Context, p ListParams) (*models.Page[models.Activity], error) {
	return getPage[models.Activity](ctx, a.c, "/activities", p.Values())
}

func (a *ActivitiesAPI) Get(ctx context.Context, id string) (*models.Activity, error) {
	return getJSON[models.Activity](ctx, a.c, "/activities/"+id, nil)
}

func (a *ActivitiesAPI) Search(ctx context.Context, p ListParams) (*models.Page[models.Activity], error) {
	return getPage[models.Activity](ctx, a.c, "/activities/search", p.Values())
}

func (a *ActivitiesAPI) Create(ctx context.Context, activity models.Activity) (*models.Activity, error) {
	return postJSON[models.Activity](ctx, a.c, "/activities", activity)
}

func (a *ActivitiesAPI) Update(ctx context.Context, id string, activity models.Activity) (*models.Activity, error) {
	return putJSON[models.Activity](ctx, a.c, "/activities/"+id, activity)
}

func (a *ActivitiesAPI) Delete(ctx context.Context, id string) error {
	return a.c.Delete(ctx, "/activities/"+id, nil)
}

// Participants returns the current participant user ids.
func (a *ActivitiesAPI) Participants(ctx context.Context, id string) ([]string, error) {
	var participants []string
	if err := a.c.Get(ctx, "/activities/"+id+"/participants", nil, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

// Join adds the authenticated user to the activity and returns the fresh
// participants list the server responds with.
func (a *ActivitiesAPI) Join(ctx context.Context, id string) ([]string, error) {
	var participants []string
	if err := a.c.Post(ctx, "/activities/"+id+"/participants", nil, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

// Leave removes the authenticated user and returns the fresh participants
// list.
func (a *ActivitiesAPI) Leave(ctx context.Context, id string) ([]string, error) {
	var participants []string
	if err := a.c.Delete(ctx, "/activities/"+id+"/participants", &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (a *ActivitiesAPI) Favorite(ctx context.Context, id string) error {
	return a.c.Post(ctx, "/activities/"+id+"/favorite", nil, nil)
}

func (a *ActivitiesAPI) Unfavorite(ctx context.Context, id string) error {
	return a.c.Delete(ctx, "/activities/"+id+"/favorite", nil)
}

func (a *ActivitiesAPI) FavoriteStatus(ctx context.Context, id string) (bool, error) {
	var status struct {
		Favorited bool `json:"favorited"`
	}
	if err := a.c.Get(ctx, "/activities/"+id+"/favorite-status", nil, &status); err != nil {
		return false, err
	}
	return status.Favorited, nil
}
