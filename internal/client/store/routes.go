package store

import (
	"context"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

var routeID = func(r models.Route) string { return r.ID }

// FetchRoutes lists routes, optionally restricted to one location.
func (s *Store) FetchRoutes(ctx context.Context, locationID string, params api.ListParams) error {
	tok := beginFetch(s, &s.routes, fragRoutesList)
	page, err := s.api.Routes.List(ctx, locationID, params)
	if err != nil {
		rejectFetch(s, &s.routes, fragRoutesList, tok, s.failure(ctx, err, "failed to fetch routes"))
		return err
	}
	fulfillList(s, &s.routes, fragRoutesList, tok, page)
	return nil
}

func (s *Store) FetchRouteByID(ctx context.Context, id string) error {
	tok := beginFetch(s, &s.routes, fragRoutesCurrent)
	route, err := s.api.Routes.Get(ctx, id)
	if err != nil {
		rejectFetch(s, &s.routes, fragRoutesCurrent, tok, s.failure(ctx, err, "failed to fetch route"))
		return err
	}
	fulfillCurrent(s, &s.routes, fragRoutesCurrent, tok, *route)
	return nil
}

func (s *Store) SearchRoutes(ctx context.Context, params api.ListParams) error {
	tok := beginFetch(s, &s.routes, fragRoutesList)
	page, err := s.api.Routes.Search(ctx, params)
	if err != nil {
		rejectFetch(s, &s.routes, fragRoutesList, tok, s.failure(ctx, err, "failed to search routes"))
		return err
	}
	fulfillList(s, &s.routes, fragRoutesList, tok, page)
	return nil
}

func (s *Store) CreateRoute(ctx context.Context, route models.Route) (*models.Route, error) {
	beginMutation(s, &s.routes)
	created, err := s.api.Routes.Create(ctx, route)
	if err != nil {
		rejectMutation(s, &s.routes, s.failure(ctx, err, "failed to create route"))
		return nil, err
	}
	fulfillCreated(s, &s.routes, *created)
	return created, nil
}

func (s *Store) UpdateRoute(ctx context.Context, id string, route models.Route) (*models.Route, error) {
	beginMutation(s, &s.routes)
	updated, err := s.api.Routes.Update(ctx, id, route)
	if err != nil {
		rejectMutation(s, &s.routes, s.failure(ctx, err, "failed to update route"))
		return nil, err
	}
	fulfillUpdated(s, &s.routes, *updated, routeID)
	return updated, nil
}

func (s *Store) DeleteRoute(ctx context.Context, id string) error {
	beginMutation(s, &s.routes)
	if err := s.api.Routes.Delete(ctx, id); err != nil {
		rejectMutation(s, &s.routes, s.failure(ctx, err, "failed to delete route"))
		return err
	}
	fulfillDeleted(s, &s.routes, id, routeID)
	return nil
}

// RateRoute performs only the network call and returns the confirmed
// rating; merging the fresh ratings array into state is the caller's
// second step via ApplyRouteRatings.
func (s *Store) RateRoute(ctx context.Context, id string, rating models.Rating) (*models.Rating, error) {
	beginMutation(s, &s.routes)
	created, err := s.api.Routes.AddRating(ctx, id, rating)
	if err != nil {
		rejectMutation(s, &s.routes, s.failure(ctx, err, "failed to rate route"))
		return nil, err
	}
	finishMutation(s, &s.routes)
	return created, nil
}

func (s *Store) DeleteRouteRating(ctx context.Context, id, ratingID string) error {
	beginMutation(s, &s.routes)
	if err := s.api.Routes.DeleteRating(ctx, id, ratingID); err != nil {
		rejectMutation(s, &s.routes, s.failure(ctx, err, "failed to delete rating"))
		return err
	}
	finishMutation(s, &s.routes)
	return nil
}

// FetchRouteRatings reads the fresh ratings sub-collection without
// touching state; pair it with ApplyRouteRatings.
func (s *Store) FetchRouteRatings(ctx context.Context, id string) ([]models.Rating, error) {
	return s.api.Routes.Ratings(ctx, id)
}

// ApplyRouteRatings merges a fresh ratings array into the current route
// and the matching list entry.
func (s *Store) ApplyRouteRatings(id string, ratings []models.Rating) {
	s.mu.Lock()
	if s.routes.Current != nil && s.routes.Current.ID == id {
		s.routes.Current.Ratings = ratings
	}
	for i := range s.routes.Items {
		if s.routes.Items[i].ID == id {
			s.routes.Items[i].Ratings = ratings
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetRouteFilters(filters map[string]string) { setFilters(s, &s.routes, filters) }
func (s *Store) ClearRouteFilters()                        { clearFilters(s, &s.routes) }
func (s *Store) SetRoutesPage(page int)                    { setPage(s, &s.routes, page) }
func (s *Store) ClearRoutesError()                         { clearError(s, &s.routes) }
