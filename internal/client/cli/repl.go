package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error

	Locations(ctx context.Context) error
	Location(ctx context.Context, id string) error
	Routes(ctx context.Context, locationID string) error
	Route(ctx context.Context, id string) error
	Rate(ctx context.Context, routeID string) error

	Activities(ctx context.Context) error
	Activity(ctx context.Context, id string) error
	Join(ctx context.Context, id string) error
	Leave(ctx context.Context, id string) error

	Posts(ctx context.Context) error
	Post(ctx context.Context, id string) error
	NewPost(ctx context.Context) error
	Like(ctx context.Context, id string) error
	Comment(ctx context.Context, id string) error

	Search(ctx context.Context, resource, query string) error
	Filter(ctx context.Context, resource string, tokens []string) error
	ClearFilters(ctx context.Context, resource string) error
	Page(ctx context.Context, resource, page string) error

	Upload(ctx context.Context, path string) error
}

const (
	helpLoggedOut = "Available commands: register, login, locations, location <id>, routes <locationId>, posts, post <id>, search <resource> <q>, exit"
	helpLoggedIn  = "Available commands: locations, location <id>, routes <locationId>, route <id>, rate <routeId>, activities, activity <id>, join <id>, leave <id>, posts, post <id>, newpost, like <postId>, comment <postId>, search <resource> <q>, filter <resource> k=v..., clearfilters <resource>, page <resource> <n>, upload <path>, me, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the climbing client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// render their own errors from slice state. This keeps the REPL loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("climb %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "me":
			_ = a.Me(ctx)

		case "locations":
			_ = a.Locations(ctx)

		case "location":
			_ = a.Location(ctx, arg(0))

		case "routes":
			_ = a.Routes(ctx, arg(0))

		case "route":
			_ = a.Route(ctx, arg(0))

		case "rate":
			_ = a.Rate(ctx, arg(0))

		case "activities":
			_ = a.Activities(ctx)

		case "activity":
			_ = a.Activity(ctx, arg(0))

		case "join":
			_ = a.Join(ctx, arg(0))

		case "leave":
			_ = a.Leave(ctx, arg(0))

		case "posts":
			_ = a.Posts(ctx)

		case "post":
			_ = a.Post(ctx, arg(0))

		case "newpost":
			_ = a.NewPost(ctx)

		case "like":
			_ = a.Like(ctx, arg(0))

		case "comment":
			_ = a.Comment(ctx, arg(0))

		case "search":
			_ = a.Search(ctx, arg(0), strings.Join(args[min(1, len(args)):], " "))

		case "filter":
			if len(args) < 2 {
				printlnFn("Usage: filter <resource> name=value ...")
				continue
			}
			_ = a.Filter(ctx, args[0], args[1:])

		case "clearfilters":
			_ = a.ClearFilters(ctx, arg(0))

		case "page":
			_ = a.Page(ctx, arg(0), arg(1))

		case "upload":
			_ = a.Upload(ctx, arg(0))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
