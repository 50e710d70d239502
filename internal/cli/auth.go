package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"hatra/internal/platform"
	"hatra/internal/wallet"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("email and password are required")
	}

	user, err := a.Api.Login(ctx, *email, *password)
	if err != nil {
		return a.routeError(err)
	}
	if err := a.Session.SetAuth(user.Token, user); err != nil {
		return err
	}
	a.Cache.Flush()
	fmt.Fprintf(a.Out, "Welcome back, %s.\n", user.Username)
	if !user.IsActive {
		fmt.Fprintln(a.Out, "Your account is pending activation. Submit your registration deposit with \"hatra registration-deposit\".")
	}
	return nil
}

func (a *App) adminLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin-login", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("email and password are required")
	}

	user, err := a.Api.AdminLogin(ctx, *email, *password)
	if err != nil {
		return a.routeError(err)
	}
	if err := a.Session.SetAuth(user.Token, user); err != nil {
		return err
	}
	a.Cache.Flush()
	fmt.Fprintf(a.Out, "Admin session opened for %s.\n", user.Username)
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	username := fs.String("username", "", "unique username")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	referralCode := fs.String("referral-code", "", "sponsor's referral code (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *email == "" || *password == "" {
		return errors.New("username, email and password are required")
	}

	user, err := a.Api.Register(ctx, *username, *email, *password, *referralCode)
	if err != nil {
		return a.routeError(err)
	}
	if user.Token != "" {
		if err := a.Session.SetAuth(user.Token, user); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.Out, "Account %s created. Your referral code is %s.\n", user.Username, user.ReferralCode)
	fmt.Fprintln(a.Out, "Activate it by sending the activation deposit and submitting the hash with \"hatra registration-deposit\".")
	return nil
}

// registrationDeposit files the activation deposit hash. The account stays
// inactive until an admin verifies it against the chain.
func (a *App) registrationDeposit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("registration-deposit", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	hash := fs.String("hash", "", "USDT transfer transaction hash")
	amount := fs.Float64("amount", 0, "deposited amount")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	settings, err := a.publicSettings(ctx)
	if err != nil {
		return a.routeError(err)
	}
	if *hash == "" {
		fmt.Fprintf(a.Out, "Send at least %.2f USDT to %s to activate your account.\n",
			settings.MinDepositAmount(), settings.DepositWallet)
		if settings.DepositQrUrl != "" {
			fmt.Fprintf(a.Out, "QR code: %s\n", settings.DepositQrUrl)
		}
		fmt.Fprintln(a.Out, "Then submit the transfer hash: hatra registration-deposit -hash <tx>")
		return nil
	}
	if *amount == 0 {
		*amount = settings.MinDepositAmount()
	}
	if err := wallet.ValidateDeposit(*hash, *amount, settings.MinDepositAmount()); err != nil {
		fmt.Fprintln(a.Out, err.Error())
		return err
	}

	user, err := a.cachedProfile(ctx)
	if err != nil {
		return a.routeError(err)
	}
	if err := a.Api.SubmitRegistrationDeposit(ctx, user.Id, *hash, *amount); err != nil {
		return a.routeError(err)
	}
	fmt.Fprintln(a.Out, "Activation deposit submitted. An administrator will verify it shortly.")
	return nil
}

func (a *App) logout() error {
	if err := a.Session.Clear(); err != nil {
		return err
	}
	a.Cache.Flush()
	fmt.Fprintln(a.Out, "Logged out.")
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	name := fs.String("name", "", "new username")
	email := fs.String("email", "", "new email")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if *name != "" {
		fields["username"] = *name
	}
	if *email != "" {
		fields["email"] = *email
	}
	if *password != "" {
		fields["password"] = *password
	}

	var user *platform.User
	var err error
	if len(fields) > 0 {
		user, err = a.Api.UpdateProfile(ctx, fields)
		if err != nil {
			return a.routeError(err)
		}
		a.Cache.Invalidate("profile")
		if err := a.Session.SetProfile(user); err != nil {
			platform.Logger.Error("session save failed: " + err.Error())
		}
		fmt.Fprintln(a.Out, "Profile updated.")
	} else {
		user, err = a.freshProfile(ctx)
		if err != nil {
			return a.routeError(err)
		}
	}

	fmt.Fprintf(a.Out, "Username:      %s\n", user.Username)
	fmt.Fprintf(a.Out, "Email:         %s\n", user.Email)
	fmt.Fprintf(a.Out, "Referral code: %s\n", user.ReferralCode)
	fmt.Fprintf(a.Out, "Balance:       %.2f USDT\n", user.Balance)
	if !user.IsActive {
		fmt.Fprintln(a.Out, "Status:        pending activation")
	}
	return nil
}
