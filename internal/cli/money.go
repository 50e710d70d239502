package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"hatra/internal/cache"
	"hatra/internal/hatraapi"
	"hatra/internal/platform"
	"hatra/internal/wallet"
)

// deposit lists the user's deposit requests, or files a new one when a
// hash and amount are given. Amount and hash are validated locally before
// anything goes on the wire.
func (a *App) deposit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("deposit", flag.ContinueOnError)
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

	if *hash == "" && *amount == 0 {
		fmt.Fprintf(a.Out, "Deposit wallet: %s (min %.2f USDT)\n\n", settings.DepositWallet, settings.MinDepositAmount())
		requests, err := a.Api.Deposits(ctx)
		if err != nil {
			return a.routeError(err)
		}
		for _, request := range requests {
			fmt.Fprintf(a.Out, "%s  %8.2f USDT  %-9s %s\n",
				request.CreatedAt.Format("2006-01-02"), request.Amount, request.Status, request.TransactionHash)
		}
		if len(requests) == 0 {
			fmt.Fprintln(a.Out, "No deposits yet.")
		}
		return nil
	}

	if err := wallet.ValidateDeposit(*hash, *amount, settings.MinDepositAmount()); err != nil {
		fmt.Fprintln(a.Out, err.Error())
		return err
	}
	request, err := a.Api.CreateDeposit(ctx, *hash, *amount, settings.DepositWallet)
	if err != nil {
		return a.routeError(err)
	}
	a.Cache.Invalidate("deposits", "profile")
	fmt.Fprintf(a.Out, "Deposit request %s filed for %.2f USDT, pending review.\n", request.Id, request.Amount)
	return nil
}

// withdraw lists withdrawal requests, or files a new one. The submission
// is checked against the computed available balance so the locked portion
// can never be requested.
func (a *App) withdraw(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("withdraw", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	amount := fs.Float64("amount", 0, "amount to withdraw")
	walletAddress := fs.String("wallet", "", "destination USDT wallet")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	user, err := a.freshProfile(ctx)
	if err != nil {
		return a.routeError(err)
	}
	settings, err := a.publicSettings(ctx)
	if err != nil {
		return a.routeError(err)
	}
	now := time.Now()
	available := wallet.Available(user.Balance, user.CreatedAt, now, settings.LockAmount(), settings.LockDays())

	if *amount == 0 && *walletAddress == "" {
		fmt.Fprintf(a.Out, "Available: %.2f USDT", available)
		if locked := wallet.Locked(user.Balance, available); locked > 0 {
			fmt.Fprintf(a.Out, " (%.2f locked until %s)",
				locked, wallet.LockReleaseAt(user.CreatedAt, settings.LockDays()).Format("2006-01-02"))
		}
		fmt.Fprintln(a.Out)
		requests, err := a.Api.Withdrawals(ctx)
		if err != nil {
			return a.routeError(err)
		}
		for _, request := range requests {
			fmt.Fprintf(a.Out, "%s  %8.2f USDT  %-9s %s\n",
				request.CreatedAt.Format("2006-01-02"), request.Amount, request.Status, request.WalletAddress)
		}
		if len(requests) == 0 {
			fmt.Fprintln(a.Out, "No withdrawals yet.")
		}
		return nil
	}

	if err := wallet.ValidateWithdrawal(*amount, available, settings.MinWithdrawAmount(), *walletAddress); err != nil {
		fmt.Fprintln(a.Out, err.Error())
		return err
	}
	request, err := a.Api.CreateWithdrawal(ctx, *amount, *walletAddress)
	if err != nil {
		return a.routeError(err)
	}
	a.Cache.Invalidate("withdrawals", "profile")
	fmt.Fprintf(a.Out, "Withdrawal request %s filed for %.2f USDT, pending review.\n", request.Id, request.Amount)
	return nil
}

func (a *App) transactions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("transactions", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	pageNum := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 10, "rows per page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	key := fmt.Sprintf("transactions:page:%d:%d", *pageNum, *limit)
	if value, ok := a.Cache.Get(key); ok {
		a.printTransactions(value.(transactionPage))
		return nil
	}
	items, pagination, err := a.Api.Transactions(ctx, *pageNum, *limit)
	if err != nil {
		return a.routeError(err)
	}
	page := transactionPage{Items: items, Pagination: pagination}
	a.Cache.Set(key, page, cache.DefaultTTL)
	a.printTransactions(page)
	return nil
}

type transactionPage struct {
	Items      []platform.Transaction
	Pagination hatraapi.Pagination
}

func (a *App) printTransactions(page transactionPage) {
	for _, tx := range page.Items {
		fmt.Fprintf(a.Out, "%s  %-13s %9.2f USDT  %-9s %s\n",
			tx.CreatedAt.Format("2006-01-02 15:04"), tx.Type, tx.Amount, tx.Status, tx.Description)
	}
	if len(page.Items) == 0 {
		fmt.Fprintln(a.Out, "No transactions yet.")
		return
	}
	fmt.Fprintf(a.Out, "Page %d of %d (%d total)\n", page.Pagination.Page, page.Pagination.Pages, page.Pagination.Total)
}
