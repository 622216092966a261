package api

import (
	"context"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

// LocationsAPI covers the /locations resource family. Create/update/delete
// hit admin-only endpoints; regular UI flows only read and favorite.
type LocationsAPI struct {
	c *Client
}

func (l *LocationsAPI) List(ctx context.Context, p ListParams) (*models.Page[models.Location], error) {
	return getPage[models.Location](ctx, l.c, "/locations", p.Values())
}

func (l *LocationsAPI) Get(ctx context.Context, id string) (*models.Location, error) {
	return getJSON[models.Location](ctx, l.c, "/locations/"+id, nil)
}

func (l *LocationsAPI) Search(ctx context.Context, p ListParams) (*models.Page[models.Location], error) {
	return getPage[models.Location](ctx, l.c, "/locations/search", p.Values())
}

func (l *LocationsAPI) Create(ctx context.Context, loc models.Location) (*models.Location, error) {
	return postJSON[models.Location](ctx, l.c, "/locations", loc)
}

func (l *LocationsAPI) Update(ctx context.Context, id string, loc models.Location) (*models.Location, error) {
	return putJSON[models.Location](ctx, l.c, "/locations/"+id, loc)
}

func (l *LocationsAPI) Delete(ctx context.Context, id string) error {
	return l.c.Delete(ctx, "/locations/"+id, nil)
}

func (l *LocationsAPI) Favorite(ctx context.Context, id string) error {
	return l.c.Post(ctx, "/locations/"+id+"/favorite", nil, nil)
}

func (l *LocationsAPI) Unfavorite(ctx context.Context, id string) error {
	return l.c.Delete(ctx, "/locations/"+id+"/favorite", nil)
}

// FavoriteStatus reports whether the authenticated user has favorited the
// location.
func (l *LocationsAPI) FavoriteStatus(ctx context.Context, id string) (bool, error) {
	var status struct {
		Favorited bool `json:"favorited"`
	}
	if err := l.c.Get(ctx, "/locations/"+id+"/favorite-status", nil, &status); err != nil {
		return false, err
	}
	return status.Favorited, nil
}
