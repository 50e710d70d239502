// Package cli wires the screens of the platform client: every command maps
// to one page of the original web application, backed by the typed API
// client, the persisted session and the response cache.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"hatra/internal/cache"
	"hatra/internal/hatraapi"
	"hatra/internal/platform"
	"hatra/internal/session"
)

type App struct {
	Cfg     *platform.Config
	Api     *hatraapi.Client
	Session *session.Session
	Cache   *cache.Cache
	Out     io.Writer
}

func NewApp(cfg *platform.Config, api *hatraapi.Client, sess *session.Session, out io.Writer) *App {
	return &App{
		Cfg:     cfg,
		Api:     api,
		Session: sess,
		Cache:   cache.New(),
		Out:     out,
	}
}

// Run dispatches one command invocation. args excludes the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}
	command, rest := args[0], args[1:]
	switch command {
	case "login":
		return a.login(ctx, rest)
	case "admin-login":
		return a.adminLogin(ctx, rest)
	case "register":
		return a.register(ctx, rest)
	case "registration-deposit":
		return a.registrationDeposit(ctx, rest)
	case "logout":
		return a.logout()
	case "profile":
		return a.profile(ctx, rest)
	case "dashboard":
		return a.dashboard(ctx)
	case "scratch":
		return a.scratch(ctx)
	case "rewards":
		return a.rewards(ctx)
	case "referrals":
		return a.referrals(ctx, rest)
	case "transactions":
		return a.transactions(ctx, rest)
	case "deposit":
		return a.deposit(ctx, rest)
	case "withdraw":
		return a.withdraw(ctx, rest)
	case "admin":
		return a.admin(ctx, rest)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.Out, `Usage: hatra <command> [flags]

Account
  login                 -email -password
  admin-login           -email -password
  register              -username -email -password [-referral-code]
  registration-deposit  -hash [-amount]
  logout
  profile               [-name] [-email] [-password]

Screens
  dashboard             balance, team, daily reward, level progress
  scratch               claim today's scratch-card reward
  rewards               level ladder and current progress
  referrals             [-page] [-limit]
  transactions          [-page] [-limit]
  deposit               [-hash -amount] list or file a deposit
  withdraw              [-amount -wallet] list or file a withdrawal

Back office
  admin <subcommand>    see "hatra admin help"
`)
}

// routeError converts an API failure into what the screen shows. The rules
// are strict about credentials: only a genuine auth failure clears the
// session; maintenance and kill-switch refusals leave it intact so the
// user is signed in again the moment the platform returns.
func (a *App) routeError(err error) error {
	var apiErr *hatraapi.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch {
	case apiErr.Maintenance():
		fmt.Fprintln(a.Out, "The platform is under maintenance. Please check back soon; your session is preserved.")
	case apiErr.FeatureDisabled():
		fmt.Fprintln(a.Out, hatraapi.DisplayMessage(err))
	case apiErr.AuthFailure():
		if clearErr := a.Session.Clear(); clearErr != nil {
			platform.Logger.Error("session clear failed: " + clearErr.Error())
		}
		fmt.Fprintln(a.Out, "Your session has expired. Please log in again.")
	default:
		fmt.Fprintln(a.Out, hatraapi.DisplayMessage(err))
	}
	platform.Logger.Error(err.Error())
	return err
}

func (a *App) requireAuth() error {
	if !a.Session.Active() {
		fmt.Fprintln(a.Out, "Please log in first.")
		return errors.New("not logged in")
	}
	return nil
}

// requireAdmin re-verifies against a fresh profile fetch. The persisted
// snapshot's isAdmin flag is a routing hint only; the server stays the
// authority on every back-office entry.
func (a *App) requireAdmin(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	user, err := a.Api.Profile(ctx)
	if err != nil {
		return a.routeError(err)
	}
	if err := a.Session.SetProfile(user); err != nil {
		platform.Logger.Error("session save failed: " + err.Error())
	}
	if !user.IsAdmin {
		fmt.Fprintln(a.Out, "This area requires administrator access.")
		return errors.New("admin access required")
	}
	return nil
}

// freshProfile is the server-authoritative refetch used after any mutation
// that moves the balance. The mutation response is never trusted for state.
func (a *App) freshProfile(ctx context.Context) (*platform.User, error) {
	user, err := a.Api.Profile(ctx)
	if err != nil {
		return nil, err
	}
	a.Cache.Set("profile", user, cache.DefaultTTL)
	if err := a.Session.SetProfile(user); err != nil {
		platform.Logger.Error("session save failed: " + err.Error())
	}
	return user, nil
}

func (a *App) cachedProfile(ctx context.Context) (*platform.User, error) {
	if value, ok := a.Cache.Get("profile"); ok {
		return value.(*platform.User), nil
	}
	return a.freshProfile(ctx)
}

func (a *App) publicSettings(ctx context.Context) (*platform.PublicSettings, error) {
	if value, ok := a.Cache.Get("settings"); ok {
		return value.(*platform.PublicSettings), nil
	}
	settings, err := a.Api.PublicSettings(ctx)
	if err != nil {
		return nil, err
	}
	a.Cache.Set("settings", settings, cache.LongTTL)
	return settings, nil
}
