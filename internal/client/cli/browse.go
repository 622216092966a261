package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

// listParams assembles the fetch parameters from the slice's own filters
// and pagination, the way page components compose a fetch after a filter
// or page change.
func listParams(page int, filters map[string]string) api.ListParams {
	if page < 1 {
		page = 1
	}
	return api.ListParams{Page: page, Limit: defaultPageSize, Filters: filters}
}

func (a *App) Locations(ctx context.Context) error {
	snap := a.store.Locations()
	if err := a.store.FetchLocations(ctx, listParams(snap.Pagination.Page, snap.Filters)); err != nil {
		printlnFn("error:", a.store.Locations().Error)
		return err
	}

	snap = a.store.Locations()
	for _, loc := range snap.Items {
		printlnFn(fmt.Sprintf("%s  %s [%s-%s] (%d routes)",
			loc.ID, loc.Name, loc.MinDifficulty, loc.MaxDifficulty, loc.RouteCount))
	}
	printlnFn(fmt.Sprintf("page %d/%d, %d total", snap.Pagination.Page, snap.Pagination.TotalPages, snap.Pagination.Total))
	return nil
}

func (a *App) Location(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: location <id>")
		return nil
	}
	if err := a.store.FetchLocationByID(ctx, id); err != nil {
		printlnFn("error:", a.store.Locations().Error)
		return err
	}

	loc := a.store.Locations().Current
	if loc == nil {
		return nil
	}
	printlnFn(loc.Name)
	if loc.Description != "" {
		printlnFn(loc.Description)
	}
	printlnFn(fmt.Sprintf("at %.5f,%.5f", loc.Latitude, loc.Longitude))
	for _, f := range loc.Features {
		printlnFn(" -", f)
	}
	return nil
}

func (a *App) Routes(ctx context.Context, locationID string) error {
	if locationID == "" {
		printlnFn("Usage: routes <locationId>")
		return nil
	}
	snap := a.store.Routes()
	if err := a.store.FetchRoutes(ctx, locationID, listParams(snap.Pagination.Page, snap.Filters)); err != nil {
		printlnFn("error:", a.store.Routes().Error)
		return err
	}

	for _, r := range a.store.Routes().Items {
		printlnFn(fmt.Sprintf("%s  %s  %s %s", r.ID, r.Name, r.Difficulty, r.Type))
	}
	return nil
}

func (a *App) Route(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: route <id>")
		return nil
	}
	if err := a.store.FetchRouteByID(ctx, id); err != nil {
		printlnFn("error:", a.store.Routes().Error)
		return err
	}

	r := a.store.Routes().Current
	if r == nil {
		return nil
	}
	printlnFn(fmt.Sprintf("%s  %s %s", r.Name, r.Difficulty, r.Type))
	for _, rating := range r.Ratings {
		printlnFn(fmt.Sprintf(" %d/5  %s", rating.Score, rating.Comment))
	}
	return nil
}

// Rate posts a rating and then merges the refreshed rating list into the
// routes slice, so the detail view reflects it without a full refetch.
func (a *App) Rate(ctx context.Context, routeID string) error {
	if routeID == "" {
		printlnFn("Usage: rate <routeId>")
		return nil
	}
	scoreText, err := GetSimpleText(a.reader, "Score (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	score, err := strconv.Atoi(scoreText)
	if err != nil || score < 1 || score > 5 {
		printlnFn("Score must be a number from 1 to 5")
		return nil
	}
	comment, err := GetSimpleText(a.reader, "Comment (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.store.RateRoute(ctx, routeID, models.Rating{Score: score, Comment: comment}); err != nil {
		printlnFn("error:", a.store.Routes().Error)
		return err
	}
	ratings, err := a.store.FetchRouteRatings(ctx, routeID)
	if err != nil {
		printlnFn("error:", a.store.Routes().Error)
		return err
	}
	a.store.ApplyRouteRatings(routeID, ratings)
	printlnFn("Rating saved")
	return nil
}

func (a *App) Search(ctx context.Context, resource, query string) error {
	if resource == "" || query == "" {
		printlnFn("Usage: search <locations|routes|activities|posts> <query>")
		return nil
	}
	params := api.ListParams{Query: query, Limit: defaultPageSize}

	switch resource {
	case "locations":
		if err := a.store.SearchLocations(ctx, params); err != nil {
			printlnFn("error:", a.store.Locations().Error)
			return err
		}
		for _, loc := range a.store.Locations().Items {
			printlnFn(loc.ID, " ", loc.Name)
		}
	case "routes":
		if err := a.store.SearchRoutes(ctx, params); err != nil {
			printlnFn("error:", a.store.Routes().Error)
			return err
		}
		for _, r := range a.store.Routes().Items {
			printlnFn(r.ID, " ", r.Name, " ", r.Difficulty)
		}
	case "activities":
		if err := a.store.SearchActivities(ctx, params); err != nil {
			printlnFn("error:", a.store.Activities().Error)
			return err
		}
		for _, act := range a.store.Activities().Items {
			printlnFn(act.ID, " ", act.Title)
		}
	case "posts":
		if err := a.store.SearchPosts(ctx, params); err != nil {
			printlnFn("error:", a.store.Posts().Error)
			return err
		}
		for _, p := range a.store.Posts().Items {
			printlnFn(p.ID, " ", p.Title)
		}
	default:
		printlnFn("Unknown resource:", resource)
	}
	return nil
}

func (a *App) Filter(ctx context.Context, resource string, tokens []string) error {
	filters := ParseFilters(tokens)
	switch resource {
	case "locations":
		a.store.SetLocationFilters(filters)
	case "routes":
		a.store.SetRouteFilters(filters)
	case "activities":
		a.store.SetActivityFilters(filters)
	case "posts":
		a.store.SetPostFilters(filters)
	default:
		printlnFn("Unknown resource:", resource)
	}
	return nil
}

func (a *App) ClearFilters(ctx context.Context, resource string) error {
	switch resource {
	case "locations":
		a.store.ClearLocationFilters()
	case "routes":
		a.store.ClearRouteFilters()
	case "activities":
		a.store.ClearActivityFilters()
	case "posts":
		a.store.ClearPostFilters()
	default:
		printlnFn("Unknown resource:", resource)
	}
	return nil
}

// Page records the new page number; the next list command re-fetches with
// it.
func (a *App) Page(ctx context.Context, resource, page string) error {
	n, err := strconv.Atoi(page)
	if err != nil || n < 1 {
		printlnFn("Usage: page <resource> <n>")
		return nil
	}
	switch resource {
	case "locations":
		a.store.SetLocationsPage(n)
	case "routes":
		a.store.SetRoutesPage(n)
	case "activities":
		a.store.SetActivitiesPage(n)
	case "posts":
		a.store.SetPostsPage(n)
	default:
		printlnFn("Unknown resource:", resource)
	}
	return nil
}
