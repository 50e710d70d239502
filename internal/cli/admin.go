package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sort"

	"hatra/internal/platform"
	"hatra/internal/wallet"
)

// admin dispatches the back-office screens. Every entry re-verifies the
// admin capability against a fresh profile before doing anything.
func (a *App) admin(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		a.adminUsage()
		return nil
	}
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	command, rest := args[0], args[1:]
	switch command {
	case "stats":
		return a.adminStats(ctx)
	case "users":
		return a.adminUsers(ctx, rest)
	case "user":
		return a.adminUser(ctx, rest)
	case "deposits":
		return a.adminDeposits(ctx, rest)
	case "withdrawals":
		return a.adminWithdrawals(ctx, rest)
	case "decide-deposit":
		return a.adminDecideDeposit(ctx, rest)
	case "decide-withdrawal":
		return a.adminDecideWithdrawal(ctx, rest)
	case "transactions":
		return a.adminTransactions(ctx, rest)
	case "registrations":
		return a.adminRegistrations(ctx)
	case "verify-registration":
		return a.adminVerifyRegistration(ctx, rest)
	case "bonus":
		return a.adminBonus(ctx, rest)
	case "settings":
		return a.adminSettings(ctx)
	case "set":
		return a.adminSetSetting(ctx, rest)
	case "create-admin":
		return a.adminCreateAdmin(ctx, rest)
	case "finance":
		return a.adminFinance(ctx)
	case "averages":
		return a.adminAverages(ctx, rest)
	default:
		a.adminUsage()
		return fmt.Errorf("unknown admin command %q", command)
	}
}

func (a *App) adminUsage() {
	fmt.Fprint(a.Out, `Usage: hatra admin <subcommand> [flags]

  stats                    platform aggregates
  users                    [-page] [-limit]
  user                     -id [-set key=value ...]
  deposits                 [-page] [-limit] pending deposit requests
  withdrawals              [-page] [-limit] pending withdrawal requests
  decide-deposit           -id -status [-notes]
  decide-withdrawal        -id -status [-tx-hash] [-notes]
  transactions             [-page] [-limit] | [-recent N]
  registrations            pending activation deposits
  verify-registration      -id -status [-notes]
  bonus                    -user -amount [-description]
  settings                 show the switchboard
  set                      -key -value [-description]
  create-admin             -username -email -password -passcode [-role]
  finance                  deposits vs withdrawals overview
  averages                 [-days] [-page] [-limit]
`)
}

func (a *App) adminStats(ctx context.Context) error {
	stats, err := a.Api.AdminStats(ctx)
	if err != nil {
		return a.routeError(err)
	}
	printFlatMap(a, stats)
	return nil
}

func (a *App) adminUsers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin users", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	pageNum := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "rows per page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	users, pagination, err := a.Api.AdminUsers(ctx, *pageNum, *limit)
	if err != nil {
		return a.routeError(err)
	}
	for _, user := range users {
		status := "active"
		if !user.IsActive {
			status = "pending"
		}
		fmt.Fprintf(a.Out, "%-26s %-20s %9.2f USDT  %-7s %s\n",
			user.Id, user.Username, user.Balance, status, user.Email)
	}
	fmt.Fprintf(a.Out, "Page %d of %d (%d total)\n", pagination.Page, pagination.Pages, pagination.Total)
	return nil
}

func (a *App) adminUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin user", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "user id")
	balance := fs.Float64("balance", -1, "set balance")
	active := fs.String("active", "", "set active: true or false")
	remove := fs.Bool("delete", false, "delete the user")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("user id is required")
	}

	if *remove {
		if err := a.Api.AdminDeleteUser(ctx, *id); err != nil {
			return a.routeError(err)
		}
		a.Cache.Invalidate("admin:users", "admin:stats")
		fmt.Fprintln(a.Out, "User deleted.")
		return nil
	}

	fields := map[string]interface{}{}
	if *balance >= 0 {
		fields["balance"] = *balance
	}
	if *active != "" {
		fields["isActive"] = *active == "true"
	}
	if len(fields) > 0 {
		user, err := a.Api.AdminUpdateUser(ctx, *id, fields)
		if err != nil {
			return a.routeError(err)
		}
		a.Cache.Invalidate("admin:users")
		fmt.Fprintf(a.Out, "User %s updated.\n", user.Username)
		return nil
	}

	user, err := a.Api.AdminUser(ctx, *id)
	if err != nil {
		return a.routeError(err)
	}
	fmt.Fprintf(a.Out, "Username: %s\nEmail:    %s\nBalance:  %.2f USDT\nActive:   %v\nAdmin:    %v\nLevels:   %v\n",
		user.Username, user.Email, user.Balance, user.IsActive, user.IsAdmin, user.AchievedLevels)
	return nil
}

func (a *App) adminDeposits(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin deposits", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	pageNum := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "rows per page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	requests, pagination, err := a.Api.AdminDeposits(ctx, *pageNum, *limit)
	if err != nil {
		return a.routeError(err)
	}
	for _, request := range requests {
		fmt.Fprintf(a.Out, "%-26s %8.2f USDT  %-9s %s\n",
			request.Id, request.Amount, request.Status, request.TransactionHash)
	}
	fmt.Fprintf(a.Out, "Page %d of %d (%d total)\n", pagination.Page, pagination.Pages, pagination.Total)
	return nil
}

func (a *App) adminDecideDeposit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin decide-deposit", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "deposit request id")
	status := fs.String("status", "", "approved or rejected")
	notes := fs.String("notes", "", "admin notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("request id is required")
	}
	if !wallet.CanTransition(platform.RequestPending, *status) {
		fmt.Fprintln(a.Out, wallet.ErrUnknownDecision.Error())
		return wallet.ErrUnknownDecision
	}
	if err := a.Api.AdminDecideDeposit(ctx, *id, *status, *notes); err != nil {
		return a.routeError(err)
	}
	a.Cache.Invalidate("admin:deposits", "admin:stats", "admin:transactions")
	fmt.Fprintf(a.Out, "Deposit request %s %s.\n", *id, *status)
	return nil
}

func (a *App) adminWithdrawals(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin withdrawals", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	pageNum := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "rows per page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	requests, pagination, err := a.Api.AdminWithdrawals(ctx, *pageNum, *limit)
	if err != nil {
		return a.routeError(err)
	}
	for _, request := range requests {
		fmt.Fprintf(a.Out, "%-26s %8.2f USDT  %-9s %s\n",
			request.Id, request.Amount, request.Status, request.WalletAddress)
	}
	fmt.Fprintf(a.Out, "Page %d of %d (%d total)\n", pagination.Page, pagination.Pages, pagination.Total)
	return nil
}

// adminDecideWithdrawal settles a withdrawal. The settlement hash rule is
// enforced locally before the request leaves, then again by the server.
func (a *App) adminDecideWithdrawal(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin decide-withdrawal", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "withdrawal request id")
	status := fs.String("status", "", "approved or rejected")
	txHash := fs.String("tx-hash", "", "settlement transaction hash of the payout")
	notes := fs.String("notes", "", "admin notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("request id is required")
	}
	if err := wallet.ValidateWithdrawalDecision(platform.RequestPending, *status, *txHash); err != nil {
		fmt.Fprintln(a.Out, err.Error())
		return err
	}
	if err := a.Api.AdminDecideWithdrawal(ctx, *id, *status, *txHash, *notes); err != nil {
		return a.routeError(err)
	}
	a.Cache.Invalidate("admin:withdrawals", "admin:stats", "admin:transactions")
	fmt.Fprintf(a.Out, "Withdrawal request %s %s.\n", *id, *status)
	return nil
}

func (a *App) adminTransactions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin transactions", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	pageNum := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "rows per page")
	recent := fs.Int("recent", 0, "show only the N most recent")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *recent > 0 {
		items, err := a.Api.AdminRecentTransactions(ctx, *recent)
		if err != nil {
			return a.routeError(err)
		}
		for _, tx := range items {
			fmt.Fprintf(a.Out, "%s  %-13s %9.2f USDT  %-9s %s\n",
				tx.CreatedAt.Format("2006-01-02 15:04"), tx.Type, tx.Amount, tx.Status, tx.Description)
		}
		return nil
	}

	items, pagination, err := a.Api.AdminTransactions(ctx, *pageNum, *limit)
	if err != nil {
		return a.routeError(err)
	}
	for _, tx := range items {
		fmt.Fprintf(a.Out, "%s  %-13s %9.2f USDT  %-9s %s\n",
			tx.CreatedAt.Format("2006-01-02 15:04"), tx.Type, tx.Amount, tx.Status, tx.Description)
	}
	fmt.Fprintf(a.Out, "Page %d of %d (%d total)\n", pagination.Page, pagination.Pages, pagination.Total)
	return nil
}

func (a *App) adminRegistrations(ctx context.Context) error {
	pending, err := a.Api.AdminPendingRegistrations(ctx)
	if err != nil {
		return a.routeError(err)
	}
	if len(pending) == 0 {
		fmt.Fprintln(a.Out, "No pending activation deposits.")
		return nil
	}
	for _, registration := range pending {
		fmt.Fprintf(a.Out, "%-26s %-20s %8.2f USDT  %s\n",
			registration.Id, registration.Username, registration.Amount, registration.TransactionHash)
	}
	return nil
}

func (a *App) adminVerifyRegistration(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin verify-registration", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "registration deposit id")
	status := fs.String("status", "", "approved or rejected")
	notes := fs.String("notes", "", "admin notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("registration id is required")
	}
	if !wallet.CanTransition(platform.RequestPending, *status) {
		fmt.Fprintln(a.Out, wallet.ErrUnknownDecision.Error())
		return wallet.ErrUnknownDecision
	}
	if err := a.Api.AdminVerifyRegistration(ctx, *id, *status, *notes); err != nil {
		return a.routeError(err)
	}
	a.Cache.Invalidate("admin:registrations", "admin:users", "admin:stats")
	fmt.Fprintf(a.Out, "Registration %s %s.\n", *id, *status)
	return nil
}

func (a *App) adminBonus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin bonus", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	userId := fs.String("user", "", "user id to credit")
	amount := fs.Float64("amount", 0, "bonus amount")
	description := fs.String("description", "", "reason shown in the user's history")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userId == "" || *amount <= 0 {
		return errors.New("user id and a positive amount are required")
	}
	if err := a.Api.AdminCreditBonus(ctx, *userId, *amount, *description); err != nil {
		return a.routeError(err)
	}
	a.Cache.Invalidate("admin:users", "admin:transactions", "admin:stats")
	fmt.Fprintf(a.Out, "Credited %.2f USDT to %s.\n", *amount, *userId)
	return nil
}

func (a *App) adminSettings(ctx context.Context) error {
	settings, err := a.Api.AdminSettings(ctx)
	if err != nil {
		return a.routeError(err)
	}
	fmt.Fprintf(a.Out, "Deposit wallet:     %s\n", settings.DepositWallet)
	fmt.Fprintf(a.Out, "Deposits:           %.2f - %.2f USDT, enabled=%v\n", settings.MinDeposit, settings.MaxDeposit, settings.DepositsEnabled)
	fmt.Fprintf(a.Out, "Withdrawals:        %.2f - %.2f USDT, enabled=%v\n", settings.MinWithdraw, settings.MaxWithdraw, settings.WithdrawalsEnabled)
	fmt.Fprintf(a.Out, "Withdrawal lock:    %.2f USDT for %d days\n", settings.WithdrawLockAmount, settings.WithdrawLockDays)
	fmt.Fprintf(a.Out, "Daily reward:       %.2f - %.2f USDT\n", settings.MinDailyReward, settings.MaxDailyReward)
	fmt.Fprintf(a.Out, "Referral bonus:     %.2f USDT\n", settings.ReferralBonus)
	fmt.Fprintf(a.Out, "User limit:         %d\n", settings.UserLimit)
	fmt.Fprintf(a.Out, "Registrations open: %v\n", settings.NewRegistrations)
	fmt.Fprintf(a.Out, "Maintenance mode:   %v\n", settings.MaintenanceMode)
	fmt.Fprintf(a.Out, "Support:            %s / %s / %s\n", settings.SupportEmail, settings.TelegramSupport, settings.CompanyPhone)
	return nil
}

func (a *App) adminSetSetting(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin set", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	key := fs.String("key", "", "setting key, e.g. maintenanceMode")
	value := fs.String("value", "", "new value")
	description := fs.String("description", "", "optional description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *key == "" {
		return errors.New("setting key is required")
	}
	update := platform.SettingUpdate{Key: *key, Value: coerceSettingValue(*value), Description: *description}
	if err := a.Api.AdminUpdateSettings(ctx, []platform.SettingUpdate{update}); err != nil {
		return a.routeError(err)
	}
	a.Cache.Invalidate("admin:settings", "settings")
	fmt.Fprintf(a.Out, "Setting %s updated.\n", *key)
	return nil
}

// coerceSettingValue keeps the wire types the settings endpoint expects:
// booleans and numbers go as themselves, everything else as a string.
func coerceSettingValue(raw string) interface{} {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	var number float64
	if _, err := fmt.Sscanf(raw, "%g", &number); err == nil {
		return number
	}
	return raw
}

func (a *App) adminCreateAdmin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin create-admin", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	username := fs.String("username", "", "admin username")
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	passcode := fs.String("passcode", "", "shared admin creation passcode")
	role := fs.String("role", "", "optional role")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *email == "" || *password == "" || *passcode == "" {
		return errors.New("username, email, password and passcode are required")
	}
	if err := a.Api.AdminCreateAdmin(ctx, *username, *email, *password, *role, *passcode); err != nil {
		return a.routeError(err)
	}
	fmt.Fprintf(a.Out, "Admin account %s created.\n", *username)
	return nil
}

func (a *App) adminFinance(ctx context.Context) error {
	overview, err := a.Api.AdminFinanceOverview(ctx)
	if err != nil {
		return a.routeError(err)
	}
	printFlatMap(a, overview)
	return nil
}

func (a *App) adminAverages(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin averages", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	days := fs.Int("days", 30, "averaging window in days")
	pageNum := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "rows per page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rows, pagination, err := a.Api.AdminUserAverages(ctx, *days, *pageNum, *limit)
	if err != nil {
		return a.routeError(err)
	}
	for _, row := range rows {
		printFlatMap(a, row)
		fmt.Fprintln(a.Out)
	}
	fmt.Fprintf(a.Out, "Page %d of %d (%d total)\n", pagination.Page, pagination.Pages, pagination.Total)
	return nil
}

func printFlatMap(a *App, values map[string]interface{}) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(a.Out, "%-24s %v\n", key, values[key])
	}
}
