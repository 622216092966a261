package store

import (
	"context"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

var activityID = func(a models.Activity) string { return a.ID }

func (s *Store) FetchActivities(ctx context.Context, params api.ListParams) error {
	tok := beginFetch(s, &s.activities, fragActivitiesList)
	page, err := s.api.Activities.List(ctx, params)
	if err != nil {
		rejectFetch(s, &s.activities, fragActivitiesList, tok, s.failure(ctx, err, "failed to fetch activities"))
		return err
	}
	fulfillList(s, &s.activities, fragActivitiesList, tok, page)
	return nil
}

func (s *Store) FetchActivityByID(ctx context.Context, id string) error {
	tok := beginFetch(s, &s.activities, fragActivitiesCur)
	activity, err := s.api.Activities.Get(ctx, id)
	if err != nil {
		rejectFetch(s, &s.activities, fragActivitiesCur, tok, s.failure(ctx, err, "failed to fetch activity"))
		return err
	}
	fulfillCurrent(s, &s.activities, fragActivitiesCur, tok, *activity)
	return nil
}

func (s *Store) SearchActivities(ctx context.Context, params api.ListParams) error {
	tok := beginFetch(s, &s.activities, fragActivitiesList)
	page, err := s.api.Activities.Search(ctx, params)
	if err != nil {
		rejectFetch(s, &s.activities, fragActivitiesList, tok, s.failure(ctx, err, "failed to search activities"))
		return err
	}
	fulfillList(s, &s.activities, fragActivitiesList, tok, page)
	return nil
}

func (s *Store) CreateActivity(ctx context.Context, activity models.Activity) (*models.Activity, error) {
	beginMutation(s, &s.activities)
	created, err := s.api.Activities.Create(ctx, activity)
	if err != nil {
		rejectMutation(s, &s.activities, s.failure(ctx, err, "failed to create activity"))
		return nil, err
	}
	fulfillCreated(s, &s.activities, *created)
	return created, nil
}

func (s *Store) UpdateActivity(ctx context.Context, id string, activity models.Activity) (*models.Activity, error) {
	beginMutation(s, &s.activities)
	updated, err := s.api.Activities.Update(ctx, id, activity)
	if err != nil {
		rejectMutation(s, &s.activities, s.failure(ctx, err, "failed to update activity"))
		return nil, err
	}
	fulfillUpdated(s, &s.activities, *updated, activityID)
	return updated, nil
}

func (s *Store) DeleteActivity(ctx context.Context, id string) error {
	beginMutation(s, &s.activities)
	if err := s.api.Activities.Delete(ctx, id); err != nil {
		rejectMutation(s, &s.activities, s.failure(ctx, err, "failed to delete activity"))
		return err
	}
	fulfillDeleted(s, &s.activities, id, activityID)
	return nil
}

// JoinActivity performs only the network call and returns the fresh
// participants list; the caller merges it via ApplyActivityParticipants
// (second step of the two-step mutation).
func (s *Store) JoinActivity(ctx context.Context, id string) ([]string, error) {
	beginMutation(s, &s.activities)
	participants, err := s.api.Activities.Join(ctx, id)
	if err != nil {
		rejectMutation(s, &s.activities, s.failure(ctx, err, "failed to join activity"))
		return nil, err
	}
	finishMutation(s, &s.activities)
	return participants, nil
}

func (s *Store) LeaveActivity(ctx context.Context, id string) ([]string, error) {
	beginMutation(s, &s.activities)
	participants, err := s.api.Activities.Leave(ctx, id)
	if err != nil {
		rejectMutation(s, &s.activities, s.failure(ctx, err, "failed to leave activity"))
		return nil, err
	}
	finishMutation(s, &s.activities)
	return participants, nil
}

// ApplyActivityParticipants merges a fresh participants list into the
// current activity and the matching list entry.
func (s *Store) ApplyActivityParticipants(id string, participants []string) {
	s.mu.Lock()
	if s.activities.Current != nil && s.activities.Current.ID == id {
		s.activities.Current.Participants = participants
	}
	for i := range s.activities.Items {
		if s.activities.Items[i].ID == id {
			s.activities.Items[i].Participants = participants
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SetActivityFilters(filters map[string]string) { setFilters(s, &s.activities, filters) }
func (s *Store) ClearActivityFilters()                        { clearFilters(s, &s.activities) }
func (s *Store) SetActivitiesPage(page int)                   { setPage(s, &s.activities, page) }
func (s *Store) ClearActivitiesError()                        { clearError(s, &s.activities) }
