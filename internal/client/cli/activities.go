package cli

import (
	"context"
	"fmt"
)

func (a *App) Activities(ctx context.Context) error {
	snap := a.store.Activities()
	if err := a.store.FetchActivities(ctx, listParams(snap.Pagination.Page, snap.Filters)); err != nil {
		printlnFn("error:", a.store.Activities().Error)
		return err
	}

	snap = a.store.Activities()
	for _, act := range snap.Items {
		printlnFn(fmt.Sprintf("%s  %s  %s  %d/%d  [%s]",
			act.ID, act.Title, act.Date.Format("2006-01-02"),
			len(act.Participants), act.MaxParticipants, act.Status))
	}
	printlnFn(fmt.Sprintf("page %d/%d, %d total", snap.Pagination.Page, snap.Pagination.TotalPages, snap.Pagination.Total))
	return nil
}

func (a *App) Activity(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: activity <id>")
		return nil
	}
	if err := a.store.FetchActivityByID(ctx, id); err != nil {
		printlnFn("error:", a.store.Activities().Error)
		return err
	}

	act := a.store.Activities().Current
	if act == nil {
		return nil
	}
	printlnFn(act.Title)
	if act.Description != "" {
		printlnFn(act.Description)
	}
	printlnFn("When:", act.Date.Format("2006-01-02 15:04"))
	printlnFn("Status:", act.Status)
	printlnFn(fmt.Sprintf("Participants: %d/%d", len(act.Participants), act.MaxParticipants))
	return nil
}

// Join signs the user up and then folds the fresh participant list into
// both the current activity and the matching list entry.
func (a *App) Join(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: join <id>")
		return nil
	}
	participants, err := a.store.JoinActivity(ctx, id)
	if err != nil {
		printlnFn("error:", a.store.Activities().Error)
		return err
	}
	a.store.ApplyActivityParticipants(id, participants)
	printlnFn(fmt.Sprintf("Joined, %d participants now", len(participants)))
	return nil
}

func (a *App) Leave(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: leave <id>")
		return nil
	}
	participants, err := a.store.LeaveActivity(ctx, id)
	if err != nil {
		printlnFn("error:", a.store.Activities().Error)
		return err
	}
	a.store.ApplyActivityParticipants(id, participants)
	printlnFn("Left the activity")
	return nil
}
