package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	auth := a.store.Auth()
	if auth.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", auth.User.Nickname)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the Dali climbing client (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
