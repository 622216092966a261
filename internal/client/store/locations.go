package store

import (
	"context"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

var locationID = func(l models.Location) string { return l.ID }

// FetchLocations replaces the locations list and pagination with the
// requested page.
func (s *Store) FetchLocations(ctx context.Context, params api.ListParams) error {
	tok := beginFetch(s, &s.locations, fragLocationsList)
	page, err := s.api.Locations.List(ctx, params)
	if err != nil {
		rejectFetch(s, &s.locations, fragLocationsList, tok, s.failure(ctx, err, "failed to fetch locations"))
		return err
	}
	fulfillList(s, &s.locations, fragLocationsList, tok, page)
	return nil
}

// FetchLocationByID overwrites the current location wholesale.
func (s *Store) FetchLocationByID(ctx context.Context, id string) error {
	tok := beginFetch(s, &s.locations, fragLocationsCurrent)
	loc, err := s.api.Locations.Get(ctx, id)
	if err != nil {
		rejectFetch(s, &s.locations, fragLocationsCurrent, tok, s.failure(ctx, err, "failed to fetch location"))
		return err
	}
	fulfillCurrent(s, &s.locations, fragLocationsCurrent, tok, *loc)
	return nil
}

func (s *Store) SearchLocations(ctx context.Context, params api.ListParams) error {
	tok := beginFetch(s, &s.locations, fragLocationsList)
	page, err := s.api.Locations.Search(ctx, params)
	if err != nil {
		rejectFetch(s, &s.locations, fragLocationsList, tok, s.failure(ctx, err, "failed to search locations"))
		return err
	}
	fulfillList(s, &s.locations, fragLocationsList, tok, page)
	return nil
}

func (s *Store) CreateLocation(ctx context.Context, loc models.Location) (*models.Location, error) {
	beginMutation(s, &s.locations)
	created, err := s.api.Locations.Create(ctx, loc)
	if err != nil {
		rejectMutation(s, &s.locations, s.failure(ctx, err, "failed to create location"))
		return nil, err
	}
	fulfillCreated(s, &s.locations, *created)
	return created, nil
}

func (s *Store) UpdateLocation(ctx context.Context, id string, loc models.Location) (*models.Location, error) {
	beginMutation(s, &s.locations)
	updated, err := s.api.Locations.Update(ctx, id, loc)
	if err != nil {
		rejectMutation(s, &s.locations, s.failure(ctx, err, "failed to update location"))
		return nil, err
	}
	fulfillUpdated(s, &s.locations, *updated, locationID)
	return updated, nil
}

func (s *Store) DeleteLocation(ctx context.Context, id string) error {
	beginMutation(s, &s.locations)
	if err := s.api.Locations.Delete(ctx, id); err != nil {
		rejectMutation(s, &s.locations, s.failure(ctx, err, "failed to delete location"))
		return err
	}
	fulfillDeleted(s, &s.locations, id, locationID)
	return nil
}

// FavoriteLocation and UnfavoriteLocation are fire-and-confirm calls; the
// favorite flag lives server-side and is re-read via FavoriteStatus.
func (s *Store) FavoriteLocation(ctx context.Context, id string) error {
	beginMutation(s, &s.locations)
	if err := s.api.Locations.Favorite(ctx, id); err != nil {
		rejectMutation(s, &s.locations, s.failure(ctx, err, "failed to favorite location"))
		return err
	}
	finishMutation(s, &s.locations)
	return nil
}

func (s *Store) UnfavoriteLocation(ctx context.Context, id string) error {
	beginMutation(s, &s.locations)
	if err := s.api.Locations.Unfavorite(ctx, id); err != nil {
		rejectMutation(s, &s.locations, s.failure(ctx, err, "failed to unfavorite location"))
		return err
	}
	finishMutation(s, &s.locations)
	return nil
}

// Synchronous setters, no network.

func (s *Store) SetLocationFilters(filters map[string]string) { setFilters(s, &s.locations, filters) }
func (s *Store) ClearLocationFilters()                        { clearFilters(s, &s.locations) }
func (s *Store) SetLocationsPage(page int)                    { setPage(s, &s.locations, page) }
func (s *Store) ClearLocationsError()                         { clearError(s, &s.locations) }
