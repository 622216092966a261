package api

import (
	"context"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

// RoutesAPI covers the /routes resource family, including the ratings
// sub-resource.
type RoutesAPI struct {
	c *Client
}

// List returns routes, optionally restricted to one location via the
// locationId filter.
func (r *RoutesAPI) List(ctx context.Context, locationID string, p ListParams) (*models.Page[models.Route], error) {
	v := p.Values()
	if locationID != "" {
		v.Set("locationId", locationID)
	}
	return getPage[models.Route](ctx, r.c, "/routes", v)
}

func (r *RoutesAPI) Get(ctx context.Context, id string) (*models.Route, error) {
	return getJSON[models.Route](ctx, r.c, "/routes/"+id, nil)
}

func (r *RoutesAPI) Search(ctx context.Context, p ListParams) (*models.Page[models.Route], error) {
	return getPage[models.Route](ctx, r.c, "/routes/search", p.Values())
}

func (r *RoutesAPI) Create(ctx context.Context, route models.Route) (*models.Route, error) {
	return postJSON[models.Route](ctx, r.c, "/routes", route)
}

func (r *RoutesAPI) Update(ctx context.Context, id string, route models.Route) (*models.Route, error) {
	return putJSON[models.Route](ctx, r.c, "/routes/"+id, route)
}

func (r *RoutesAPI) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, "/routes/"+id, nil)
}

// Ratings returns the full, current ratings list of a route.
func (r *RoutesAPI) Ratings(ctx context.Context, id string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.c.Get(ctx, "/routes/"+id+"/ratings", nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RoutesAPI) AddRating(ctx context.Context, id string, rating models.Rating) (*models.Rating, error) {
	return postJSON[models.Rating](ctx, r.c, "/routes/"+id+"/ratings", rating)
}

func (r *RoutesAPI) DeleteRating(ctx context.Context, id, ratingID string) error {
	return r.c.Delete(ctx, "/routes/"+id+"/ratings/"+ratingID, nil)
}
