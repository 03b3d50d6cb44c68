package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/cheaguirre/nexuscards/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	role() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	LoginAdministrator(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Catalog(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	Rarity(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	SetCount(ctx context.Context, args []string) error
	Wish(ctx context.Context, args []string) error
	Collection(ctx context.Context) error
	Wishlist(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Reload(ctx context.Context) error
	Wipe(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the NexusCards CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. Unknown commands are reported back to the user. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
// The command set depends on who is signed in:
//
//	Not signed in:
//	  - help           — show available commands
//	  - register       — create a collector account
//	  - login          — sign in as a collector
//	  - admin          — sign in as the administrator
//	  - forgot         — reset a password via the security question
//	  - import <file>  — load an account and collection from a JSON file
//	  - exit | quit    — leave the program
//
//	Collector:
//	  - catalog        — browse the card catalog with the current view settings
//	  - search <term>  — filter the catalog by name or type ("search" alone clears)
//	  - sort <order>   — id | name-asc | name-desc | rarity
//	  - rarity <tier>  — all | common | rare | ultra
//	  - show <id>      — show a single card with owned count and wishlist state
//	  - set <id> <n>   — set the owned count for a card (0 removes it)
//	  - wish <id>      — toggle a card on the wishlist
//	  - collection     — list owned cards
//	  - wishlist       — list wished-for cards
//	  - export <file>  — write the account and collection to a JSON file
//	  - import <file>  — load an account and collection from a JSON file
//	  - logout         — sign out
//
//	Administrator:
//	  - reload         — refetch the card catalog
//	  - wipe           — delete every account and collection
//	  - import <file>  — load an account from a JSON file
//	  - logout         — sign out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nx> %s > ", statusFn()))
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

		switch cmd {
		case "help":
			switch a.role() {
			case models.RoleCollector:
				printlnFn("Available commands: catalog, search <term>, sort <order>, rarity <tier>, show <id>, set <id> <count>, wish <id>, collection, wishlist, export <file>, import <file>, logout, exit")
			case models.RoleAdministrator:
				printlnFn("Available commands: reload, wipe, import <file>, logout, exit")
			default:
				printlnFn("Available commands: register, login, admin, forgot, import <file>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "admin":
			_ = a.LoginAdministrator(ctx)

		case "forgot":
			_ = a.ResetPassword(ctx)

		case "catalog":
			_ = a.Catalog(ctx)

		case "search":
			_ = a.Search(ctx, args)

		case "sort":
			_ = a.Sort(ctx, args)

		case "rarity":
			_ = a.Rarity(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "set":
			_ = a.SetCount(ctx, args)

		case "wish":
			_ = a.Wish(ctx, args)

		case "collection":
			_ = a.Collection(ctx)

		case "wishlist":
			_ = a.Wishlist(ctx)

		case "export":
			_ = a.Export(ctx, args)

		case "import":
			_ = a.Import(ctx, args)

		case "reload":
			_ = a.Reload(ctx)

		case "wipe":
			_ = a.Wipe(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
