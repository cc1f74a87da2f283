package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"knect/internal/client/location"
	"knect/internal/client/session"
	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func parse(fs *flag.FlagSet, args []string) error {
	return errors.Wrapf(fs.Parse(args), "failed to parse %s flags", fs.Name())
}

func credentialsFlags(name string) (*flag.FlagSet, *string, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")

	return fs, email, password
}

func runSignUp(ctx context.Context, rt *runtime, args []string) error {
	fs, email, password := credentialsFlags("signup")
	name := fs.String("name", "", "Full name shown on your profile")
	if err := parse(fs, args); err != nil {
		return err
	}

	if err := rt.backend.SignUp(ctx, *email, *password, *name); err != nil {
		return err
	}
	id, err := rt.backend.CurrentIdentity(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome to Knect. Signed in as %s\n", id)

	return nil
}

func runSignIn(ctx context.Context, rt *runtime, args []string) error {
	fs, email, password := credentialsFlags("signin")
	if err := parse(fs, args); err != nil {
		return err
	}

	if err := rt.backend.SignIn(ctx, *email, *password); err != nil {
		return err
	}
	id, err := rt.backend.CurrentIdentity(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s\n", id)

	return nil
}

func runSignOut(ctx context.Context, rt *runtime, _ []string) error {
	if err := rt.backend.SignOut(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out")

	return nil
}

// requireSession starts the store and fails when nobody is signed in.
func requireSession(ctx context.Context, rt *runtime) (session.Snapshot, error) {
	if err := rt.start(ctx); err != nil {
		return session.Snapshot{}, err
	}

	snap := rt.store.Snapshot()
	if snap.State != session.StateAuthenticated {
		return snap, domainerrors.ErrAuthRequired
	}

	return snap, nil
}

func runWhoAmI(ctx context.Context, rt *runtime, _ []string) error {
	snap, err := requireSession(ctx, rt)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", snap.Profile.DisplayName(), snap.UserID)
	fmt.Printf("Connections: %d\n", len(snap.Connections))
	if snap.Location != nil {
		fmt.Printf("Location: %.5f, %.5f\n", snap.Location.Point.Lat(), snap.Location.Point.Lon())
	}

	return nil
}

func runProfile(ctx context.Context, rt *runtime, args []string) error {
	if len(args) == 0 || args[0] == "show" {
		snap, err := requireSession(ctx, rt)
		if err != nil {
			return err
		}

		return printProfile(snap.Profile, snap.AvatarURL())
	}
	if args[0] != "set" {
		return errors.Errorf("unknown profile action %q", args[0])
	}

	fs := flag.NewFlagSet("profile set", flag.ContinueOnError)
	var input usecase.ProfileInput
	fs.StringVar(&input.FullName, "name", "", "Full name")
	fs.StringVar(&input.JobTitle, "title", "", "Job title")
	fs.StringVar(&input.LinkedIn, "linkedin", "", "LinkedIn handle")
	fs.StringVar(&input.GitHub, "github", "", "GitHub handle")
	fs.StringVar(&input.Twitter, "twitter", "", "Twitter handle")
	fs.StringVar(&input.Instagram, "instagram", "", "Instagram handle")
	if err := parse(fs, args[1:]); err != nil {
		return err
	}

	snap, err := requireSession(ctx, rt)
	if err != nil {
		return err
	}
	// Unset flags keep their stored value.
	if current := snap.Profile; current != nil {
		keep(&input.FullName, current.FullName)
		keep(&input.JobTitle, current.JobTitle)
		keep(&input.LinkedIn, current.LinkedIn)
		keep(&input.GitHub, current.GitHub)
		keep(&input.Twitter, current.Twitter)
		keep(&input.Instagram, current.Instagram)
	}

	profile, err := rt.store.SaveProfile(ctx, input)
	if err != nil {
		return err
	}

	return printProfile(profile, profile.Avatar())
}

func keep(field *string, current string) {
	if *field == "" {
		*field = current
	}
}

func printProfile(profile *entity.Profile, avatar string) error {
	if profile == nil {
		fmt.Println("No profile yet. Create one with: knectctl profile set --name ...")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name\t%s\n", profile.DisplayName())
	fmt.Fprintf(w, "Title\t%s\n", profile.JobTitle)
	fmt.Fprintf(w, "LinkedIn\t%s\n", profile.LinkedIn)
	fmt.Fprintf(w, "GitHub\t%s\n", profile.GitHub)
	fmt.Fprintf(w, "Twitter\t%s\n", profile.Twitter)
	fmt.Fprintf(w, "Instagram\t%s\n", profile.Instagram)
	fmt.Fprintf(w, "Avatar\t%s\n", avatar)

	return errors.WithStack(w.Flush())
}

func runAvatar(ctx context.Context, rt *runtime, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: knectctl avatar <image file>")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return errors.WithStack(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read image")
	}
	if _, err := requireSession(ctx, rt); err != nil {
		return err
	}

	url, err := rt.store.UpdateAvatar(ctx, "file://"+path, data, http.DetectContentType(data))
	if err != nil {
		return err
	}
	fmt.Println(url)

	return nil
}

func runPass(ctx context.Context, rt *runtime, args []string) error {
	fs := flag.NewFlagSet("pass", flag.ContinueOnError)
	out := fs.String("out", "", "Write the QR code PNG to this file")
	if err := parse(fs, args); err != nil {
		return err
	}

	if *out == "" {
		token, err := rt.backend.PassToken(ctx)
		if err != nil {
			return err
		}
		fmt.Println(token)

		return nil
	}

	png, err := rt.backend.PassQRCode(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return errors.Wrap(err, "failed to write QR code")
	}
	fmt.Printf("Pass saved to %s\n", *out)

	return nil
}

func runScan(ctx context.Context, rt *runtime, args []string) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	lat := fs.Float64("lat", 0, "Latitude of the meeting place")
	lng := fs.Float64("lng", 0, "Longitude of the meeting place")
	timeout := fs.Duration("timeout", rt.cfg.Location.Timeout, "How long to wait for a fresh position")
	deny := fs.Bool("deny-location", false, "Record the meeting without a location")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: knectctl scan [flags] <payload>")
	}

	latitude, longitude := rt.cfg.Location.Latitude, rt.cfg.Location.Longitude
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			latitude = lat
		case "lng":
			longitude = lng
		}
	})

	if _, err := requireSession(ctx, rt); err != nil {
		return err
	}

	permitted := rt.cfg.Location.Permitted && !*deny
	result, err := rt.scanner(rt.locator(permitted, latitude, longitude, *timeout)).HandleScan(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Println(result.Message)
	if coord := result.Pair[0].Location(); coord != nil {
		fmt.Printf("Met at %.5f, %.5f\n", coord.Latitude, coord.Longitude)
	} else {
		fmt.Println("Location unknown")
	}

	return nil
}

func runList(ctx context.Context, rt *runtime, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	query := fs.String("q", "", "Only show connections whose name or title contains this text")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := requireSession(ctx, rt); err != nil {
		return err
	}

	views := rt.store.Search(*query)
	if len(views) == 0 {
		fmt.Println("No connections yet. Scan someone's pass to connect.")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTITLE\tMET\tWHERE")
	for _, v := range views {
		where := "-"
		if coord := v.Location(); coord != nil {
			where = fmt.Sprintf("%.4f,%.4f", coord.Latitude, coord.Longitude)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			v.ID, displayName(v.FullName), v.JobTitle, v.MetAt.Local().Format(time.DateTime), where)
	}

	return errors.WithStack(w.Flush())
}

func displayName(name string) string {
	return (&entity.Profile{FullName: name}).DisplayName()
}

func runDelete(ctx context.Context, rt *runtime, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: knectctl delete <connection id>")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("connection id must be a UUID")
	}
	if _, err := requireSession(ctx, rt); err != nil {
		return err
	}

	if err := rt.store.DeleteConnection(ctx, id); err != nil {
		return err
	}
	fmt.Println("Connection removed")

	return nil
}

func runMap(ctx context.Context, rt *runtime, _ []string) error {
	snap, err := requireSession(ctx, rt)
	if err != nil {
		return err
	}

	collection, err := rt.backend.ConnectionMap(ctx)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Println(string(encoded))

	if fix := snap.Location; fix != nil {
		bound := location.Region(fix)
		fmt.Fprintf(os.Stderr, "Region around you: %v to %v\n", bound.Min, bound.Max)
	}

	return nil
}

func runWatch(ctx context.Context, rt *runtime, _ []string) error {
	snap, err := requireSession(ctx, rt)
	if err != nil {
		return err
	}
	fmt.Printf("Watching %s's connections. Press Ctrl+C to stop.\n", snap.Profile.DisplayName())

	seen := len(snap.Connections)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-rt.store.Updates():
			snap = rt.store.Snapshot()
			if snap.State != session.StateAuthenticated {
				fmt.Println("Signed out")

				return nil
			}
			if len(snap.Connections) == seen {
				continue
			}
			seen = len(snap.Connections)
			fmt.Printf("%s  %d connections\n", time.Now().Format(time.TimeOnly), seen)
			if seen > 0 {
				fmt.Printf("  newest: %s\n", displayName(snap.Connections[0].FullName))
			}
		}
	}
}
