package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExec records every dispatched command so tests can assert the REPL
// routed input to the right handler with the right arguments.
type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Me(ctx context.Context) error { return f.record("me") }

func (f *fakeExec) Locations(ctx context.Context) error { return f.record("locations") }
func (f *fakeExec) Location(ctx context.Context, id string) error {
	return f.record("location %s", id)
}
func (f *fakeExec) Routes(ctx context.Context, locationID string) error {
	return f.record("routes %s", locationID)
}
func (f *fakeExec) Route(ctx context.Context, id string) error { return f.record("route %s", id) }
func (f *fakeExec) Rate(ctx context.Context, routeID string) error {
	return f.record("rate %s", routeID)
}

func (f *fakeExec) Activities(ctx context.Context) error { return f.record("activities") }
func (f *fakeExec) Activity(ctx context.Context, id string) error {
	return f.record("activity %s", id)
}
func (f *fakeExec) Join(ctx context.Context, id string) error  { return f.record("join %s", id) }
func (f *fakeExec) Leave(ctx context.Context, id string) error { return f.record("leave %s", id) }

func (f *fakeExec) Posts(ctx context.Context) error            { return f.record("posts") }
func (f *fakeExec) Post(ctx context.Context, id string) error  { return f.record("post %s", id) }
func (f *fakeExec) NewPost(ctx context.Context) error          { return f.record("newpost") }
func (f *fakeExec) Like(ctx context.Context, id string) error  { return f.record("like %s", id) }
func (f *fakeExec) Comment(ctx context.Context, id string) error {
	return f.record("comment %s", id)
}

func (f *fakeExec) Search(ctx context.Context, resource, query string) error {
	return f.record("search %s %s", resource, query)
}
func (f *fakeExec) Filter(ctx context.Context, resource string, tokens []string) error {
	return f.record("filter %s %s", resource, strings.Join(tokens, ","))
}
func (f *fakeExec) ClearFilters(ctx context.Context, resource string) error {
	return f.record("clearfilters %s", resource)
}
func (f *fakeExec) Page(ctx context.Context, resource, page string) error {
	return f.record("page %s %s", resource, page)
}

func (f *fakeExec) Upload(ctx context.Context, path string) error {
	return f.record("upload %s", path)
}

func runScript(t *testing.T, f *fakeExec, lines ...string) []string {
	t.Helper()

	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, fmt.Sprintln(a...))
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return out
}

func TestREPLDispatchesCommands(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f,
		"login",
		"locations",
		"location loc1",
		"routes loc1",
		"route r1",
		"rate r1",
		"activities",
		"activity a1",
		"join a1",
		"leave a1",
		"posts",
		"post p1",
		"newpost",
		"like p1",
		"comment p1",
		"search routes crimpy slab",
		"filter locations difficulty=5.10 type=sport",
		"clearfilters locations",
		"page posts 3",
		"upload topo.jpg",
		"me",
		"logout",
		"exit",
	)

	require.Equal(t, []string{
		"login",
		"locations",
		"location loc1",
		"routes loc1",
		"route r1",
		"rate r1",
		"activities",
		"activity a1",
		"join a1",
		"leave a1",
		"posts",
		"post p1",
		"newpost",
		"like p1",
		"comment p1",
		"search routes crimpy slab",
		"filter locations difficulty=5.10,type=sport",
		"clearfilters locations",
		"page posts 3",
		"upload topo.jpg",
		"me",
		"logout",
	}, f.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "belay", "exit")

	require.Empty(t, f.calls)
	assert.Contains(t, strings.Join(out, ""), "Unknown command: belay")
}

func TestREPLHelpDependsOnLoginState(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "help")
	assert.Contains(t, strings.Join(out, ""), helpLoggedOut)

	f = &fakeExec{loggedIn: true}
	out = runScript(t, f, "help")
	assert.Contains(t, strings.Join(out, ""), helpLoggedIn)
}

func TestREPLSkipsBlankLines(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "", "   ", "posts", "quit")

	require.Equal(t, []string{"posts"}, f.calls)
}

func TestREPLFilterRequiresTokens(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "filter locations", "exit")

	require.Empty(t, f.calls)
	assert.Contains(t, strings.Join(out, ""), "Usage: filter")
}
