// Package store is the client's single source of truth for server-derived
// state. It holds one slice per resource domain and exposes async
// operations that call the API and synchronize results into state.
//
// Every async operation follows three phases: pending (Loading set, Error
// cleared), fulfilled (payload replaces the relevant state fragment), and
// rejected (Error set, prior data untouched). State transitions run synchronously
// under the store mutex, so no two state mutations interleave. Nothing is
// cached and nothing is retried; every dispatch issues a fresh network
// call.
//
// Sub-collection mutations (participants, likes, comments, ratings) are
// two-step: the operation only performs the network call and returns the
// fresh sub-collection; a separate Apply* method merges it into state.
// Success of the call and the new derived array stay decoupled.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/common"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/logging"
)

// Session is the slice of the session layer the store needs for auth flows.
type Session interface {
	SetCredentials(ctx context.Context, token string, user *models.User) error
	User(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

// fragment identifies one fenced state fragment. Each fetch takes a
// sequence token for its fragment at dispatch; a completion whose token is
// no longer the latest is dropped, so a slow stale response can never
// overwrite the result of a newer request.
type fragment string

const (
	fragLocationsList    fragment = "locations.list"
	fragLocationsCurrent fragment = "locations.current"
	fragRoutesList       fragment = "routes.list"
	fragRoutesCurrent    fragment = "routes.current"
	fragActivitiesList   fragment = "activities.list"
	fragActivitiesCur    fragment = "activities.current"
	fragPostsList        fragment = "posts.list"
	fragPostsCurrent     fragment = "posts.current"
)

// Store owns all client state. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	api     *api.Client
	session Session
	log     logging.Logger

	auth       AuthState
	locations  Resource[models.Location]
	routes     Resource[models.Route]
	activities Resource[models.Activity]
	posts      Resource[models.Post]

	seq     map[fragment]uint64
	subs    map[int]func()
	nextSub int
}

func New(client *api.Client, session Session, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Store{
		api:        client,
		session:    session,
		log:        log,
		locations:  newResource[models.Location](),
		routes:     newResource[models.Route](),
		activities: newResource[models.Activity](),
		posts:      newResource[models.Post](),
		seq:        map[fragment]uint64{},
		subs:       map[int]func(){},
	}
}

// Subscribe registers fn to run after every state change and returns the
// matching unsubscribe function. Callbacks run outside the store mutex, so
// they may read snapshots freely.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Snapshots.

func (s *Store) Locations() Resource[models.Location] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(&s.locations)
}

func (s *Store) Routes() Resource[models.Route] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(&s.routes)
}

func (s *Store) Activities() Resource[models.Activity] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(&s.activities)
}

func (s *Store) Posts() Resource[models.Post] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(&s.posts)
}

// failure converts err into the string stored in a slice's Error field:
// the backend message when there is one, the normalized connectivity
// message for transport failures, otherwise the operation's fallback.
func (s *Store) failure(ctx context.Context, err error, fallback string) string {
	msg := messageFor(err, fallback)
	s.log.Warn(ctx, "operation rejected", "err", err, "stored", msg)
	return msg
}

func messageFor(err error, fallback string) string {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, common.ErrConnection):
		return common.ErrConnection.Error()
	case errors.Is(err, common.ErrUnauthorized):
		return common.ErrUnauthorized.Error()
	default:
		return fallback
	}
}

// Three-phase helpers for fenced fetches.

func beginFetch[T any](s *Store, r *Resource[T], frag fragment) uint64 {
	s.mu.Lock()
	s.seq[frag]++
	tok := s.seq[frag]
	r.Loading = true
	r.Error = ""
	s.mu.Unlock()
	s.notify()
	return tok
}

func fulfillList[T any](s *Store, r *Resource[T], frag fragment, tok uint64, page *models.Page[T]) {
	s.mu.Lock()
	if s.seq[frag] != tok {
		s.mu.Unlock()
		return
	}
	r.Loading = false
	r.Error = ""
	r.Items = page.Items
	r.Pagination = Pagination{Total: page.Total, Page: page.Page, Limit: page.Limit, TotalPages: page.TotalPages}
	s.mu.Unlock()
	s.notify()
}

func fulfillCurrent[T any](s *Store, r *Resource[T], frag fragment, tok uint64, item T) {
	s.mu.Lock()
	if s.seq[frag] != tok {
		s.mu.Unlock()
		return
	}
	r.Loading = false
	r.Error = ""
	r.Current = &item
	s.mu.Unlock()
	s.notify()
}

func rejectFetch[T any](s *Store, r *Resource[T], frag fragment, tok uint64, msg string) {
	s.mu.Lock()
	if s.seq[frag] != tok {
		s.mu.Unlock()
		return
	}
	r.Loading = false
	r.Error = msg
	s.mu.Unlock()
	s.notify()
}

// Helpers for mutations. Mutations are not fenced: a create/update/delete
// that succeeded on the server is always reflected in state.

func beginMutation[T any](s *Store, r *Resource[T]) {
	s.mu.Lock()
	r.Loading = true
	r.Error = ""
	s.mu.Unlock()
	s.notify()
}

func rejectMutation[T any](s *Store, r *Resource[T], msg string) {
	s.mu.Lock()
	r.Loading = false
	r.Error = msg
	s.mu.Unlock()
	s.notify()
}

// finishMutation resolves a mutation that does not touch the slice's
// collections itself (the two-step sub-collection operations).
func finishMutation[T any](s *Store, r *Resource[T]) {
	s.mu.Lock()
	r.Loading = false
	r.Error = ""
	s.mu.Unlock()
	s.notify()
}

func fulfillCreated[T any](s *Store, r *Resource[T], item T) {
	s.mu.Lock()
	r.Loading = false
	r.Error = ""
	r.Items = append([]T{item}, r.Items...)
	s.mu.Unlock()
	s.notify()
}

func fulfillUpdated[T any](s *Store, r *Resource[T], item T, id func(T) string) {
	s.mu.Lock()
	r.Loading = false
	r.Error = ""
	replaceByID(r.Items, item, id)
	if r.Current != nil && id(*r.Current) == id(item) {
		r.Current = &item
	}
	s.mu.Unlock()
	s.notify()
}

func fulfillDeleted[T any](s *Store, r *Resource[T], deletedID string, id func(T) string) {
	s.mu.Lock()
	r.Loading = false
	r.Error = ""
	r.Items = removeByID(r.Items, deletedID, id)
	if r.Current != nil && id(*r.Current) == deletedID {
		r.Current = nil
	}
	s.mu.Unlock()
	s.notify()
}

// Synchronous helpers shared by the per-slice filter/pagination
// setters.

func setFilters[T any](s *Store, r *Resource[T], filters map[string]string) {
	s.mu.Lock()
	if r.Filters == nil {
		r.Filters = map[string]string{}
	}
	for k, v := range filters {
		r.Filters[k] = v
	}
	s.mu.Unlock()
	s.notify()
}

func clearFilters[T any](s *Store, r *Resource[T]) {
	s.mu.Lock()
	r.Filters = map[string]string{}
	s.mu.Unlock()
	s.notify()
}

func setPage[T any](s *Store, r *Resource[T], page int) {
	s.mu.Lock()
	r.Pagination.Page = page
	s.mu.Unlock()
	s.notify()
}

func clearError[T any](s *Store, r *Resource[T]) {
	s.mu.Lock()
	r.Error = ""
	s.mu.Unlock()
	s.notify()
}
