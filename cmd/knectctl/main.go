// Command knectctl is a terminal client for Knect: it signs in, shows the user's pass, records
// scans and lists connections.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"knect/internal/client/protocol"
	domainerrors "knect/internal/domain/errors"

	"github.com/pkg/errors"
)

type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, rt *runtime, args []string) error
}

func commands() []command {
	return []command{
		{"signup", "signup --email E --password P [--name N]", "Create an account", runSignUp},
		{"signin", "signin --email E --password P", "Sign in", runSignIn},
		{"signout", "signout", "Sign out and forget the stored session", runSignOut},
		{"whoami", "whoami", "Show the signed-in user", runWhoAmI},
		{"profile", "profile [show | set --name N --title T ...]", "Show or edit your profile", runProfile},
		{"avatar", "avatar <image file>", "Upload a profile picture", runAvatar},
		{"pass", "pass [--out file.png]", "Print your pass token or save its QR code", runPass},
		{"scan", "scan [--lat L --lng L --timeout D --deny-location] <payload>", "Connect with the owner of a scanned pass", runScan},
		{"list", "list [--q query]", "List your connections, newest first", runList},
		{"delete", "delete <connection id>", "Remove a connection", runDelete},
		{"map", "map", "Print your located connections as GeoJSON", runMap},
		{"watch", "watch", "Follow connection changes until interrupted", runWatch},
	}
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describe(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, args []string) error {
	for _, cmd := range commands() {
		if cmd.name != name {
			continue
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rt, err := newRuntime(cfg)
		if err != nil {
			return err
		}
		defer rt.close()

		return cmd.run(ctx, rt, args)
	}

	printUsage()

	return errors.Errorf("unknown command %q", name)
}

// describe renders an error the way the user should see it.
func describe(err error) string {
	var appErr domainerrors.AppError
	if errors.Is(err, protocol.ErrBusy) || errors.As(err, &appErr) {
		msg := protocol.Message(err)
		if appErr != nil && appErr.Details() != "" {
			msg += " (" + appErr.Details() + ")"
		}

		return msg
	}

	return err.Error()
}

func printUsage() {
	fmt.Println("Usage: knectctl <command> [flags] [args]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, cmd := range commands() {
		fmt.Printf("  %-10s %s\n", cmd.name, cmd.summary)
		fmt.Printf("  %-10s   knectctl %s\n", "", cmd.usage)
	}
}
