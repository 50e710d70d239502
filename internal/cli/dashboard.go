package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"hatra/internal/cache"
	"hatra/internal/hatraapi"
	"hatra/internal/platform"
	"hatra/internal/referral"
	"hatra/internal/rewards"
	"hatra/internal/wallet"
	"hatra/internal/worker"
)

// dashboard is the landing screen: balance with the lock breakdown, team
// counts, daily reward state and progress toward the next level.
func (a *App) dashboard(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	// the three fetches are independent, overlap them
	var (
		user     *platform.User
		settings *platform.PublicSettings
		counts   platform.TeamCounts
	)
	pool := worker.NewPool(3, 3)
	pool.Exec(func() error {
		var err error
		user, err = a.freshProfile(ctx)
		return err
	})
	pool.Exec(func() error {
		var err error
		settings, err = a.publicSettings(ctx)
		return err
	})
	pool.Exec(func() error {
		var err error
		counts, err = a.teamCounts(ctx)
		return err
	})
	if err := pool.Wait(); err != nil {
		return a.routeError(err)
	}

	now := time.Now()
	available := wallet.Available(user.Balance, user.CreatedAt, now, settings.LockAmount(), settings.LockDays())
	locked := wallet.Locked(user.Balance, available)

	fmt.Fprintf(a.Out, "Hello %s\n\n", user.Username)
	fmt.Fprintf(a.Out, "Balance:   %.2f USDT\n", user.Balance)
	fmt.Fprintf(a.Out, "Available: %.2f USDT\n", available)
	if locked > 0 {
		release := wallet.LockReleaseAt(user.CreatedAt, settings.LockDays())
		fmt.Fprintf(a.Out, "Locked:    %.2f USDT until %s\n", locked, release.Format("2006-01-02"))
	}

	fmt.Fprintf(a.Out, "\nTeam: %d left / %d right\n", counts.Left, counts.Right)

	status := rewards.CanClaim(now, user.SpinWheelLastUsed)
	if status.Eligible {
		fmt.Fprintln(a.Out, "Daily reward: ready to claim (\"hatra scratch\")")
	} else if now.Weekday() == time.Sunday {
		fmt.Fprintln(a.Out, "Daily reward: closed on Sundays, back "+status.NextEligibleAt.Format("Monday"))
	} else {
		fmt.Fprintf(a.Out, "Daily reward: claimed, next in %s\n", rewards.Countdown(now, status.NextEligibleAt))
	}

	target := rewards.NextTarget(user.AchievedLevels)
	level := rewards.Levels[target]
	progress := rewards.Progress(counts.Left, counts.Right, level.LeftRequired)
	fmt.Fprintf(a.Out, "Level %d (%s): %.0f%% toward %s\n", level.Level, level.Rank, progress*100, level.Reward)
	return nil
}

// teamCounts prefers the server aggregate and falls back to a single-page
// tally only when the backend sends the legacy bare-array shape.
func (a *App) teamCounts(ctx context.Context) (platform.TeamCounts, error) {
	if value, ok := a.Cache.Get("referrals:counts"); ok {
		return value.(platform.TeamCounts), nil
	}
	page, err := a.Api.Referrals(ctx, 1, 1)
	if err != nil {
		return platform.TeamCounts{}, err
	}
	if page.CountsFromPage {
		platform.Logger.Warn("team counts tallied from one page, not authoritative")
	}
	a.Cache.Set("referrals:counts", page.TeamCounts, cache.DefaultTTL)
	return page.TeamCounts, nil
}

// scratch claims today's scratch-card reward. Eligibility is pre-checked
// locally for a fast refusal, then the server decides for real; the new
// balance comes from a profile refetch, never from the claim response.
func (a *App) scratch(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	user, err := a.freshProfile(ctx)
	if err != nil {
		return a.routeError(err)
	}

	now := time.Now()
	status := rewards.CanClaim(now, user.SpinWheelLastUsed)
	if !status.Eligible {
		if now.Weekday() == time.Sunday {
			fmt.Fprintln(a.Out, "Scratch cards are closed on Sundays. Come back Monday.")
		} else {
			fmt.Fprintf(a.Out, "Already claimed today. Next card in %s.\n", rewards.Countdown(now, status.NextEligibleAt))
		}
		return nil
	}

	reward, err := a.Api.SpinWheel(ctx)
	if err != nil {
		return a.routeError(err)
	}
	a.Cache.Invalidate("profile", "transactions")
	updated, err := a.freshProfile(ctx)
	if err != nil {
		return a.routeError(err)
	}
	fmt.Fprintf(a.Out, "You won %.2f USDT! New balance: %.2f USDT.\n", reward, updated.Balance)
	return nil
}

// rewards prints the level ladder and asks the server to re-check tier
// achievements, so a just-completed level pays out on the next refresh.
func (a *App) rewards(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if err := a.Api.CheckLevelRewards(ctx); err != nil {
		return a.routeError(err)
	}
	a.Cache.Invalidate("profile", "transactions")
	user, err := a.freshProfile(ctx)
	if err != nil {
		return a.routeError(err)
	}
	counts, err := a.teamCounts(ctx)
	if err != nil {
		return a.routeError(err)
	}

	achieved := map[int]bool{}
	for _, lvl := range user.AchievedLevels {
		achieved[lvl] = true
	}
	target := rewards.NextTarget(user.AchievedLevels)

	fmt.Fprintln(a.Out, "Level  Required(L/R)  Reward                                   Rank")
	for _, level := range rewards.Levels[1:] {
		marker := "  "
		if achieved[level.Level] {
			marker = "* "
		} else if level.Level == target {
			marker = "> "
		}
		fmt.Fprintf(a.Out, "%s%-5d %4d/%-8d %-40s %s\n",
			marker, level.Level, level.LeftRequired, level.RightRequired, level.Reward, level.Rank)
	}
	level := rewards.Levels[target]
	progress := rewards.Progress(counts.Left, counts.Right, level.LeftRequired)
	fmt.Fprintf(a.Out, "\nCurrent target: level %d, %.0f%% complete (%d/%d left, %d/%d right)\n",
		target, progress*100, counts.Left, level.LeftRequired, counts.Right, level.RightRequired)
	return nil
}

func (a *App) referrals(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("referrals", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	pageNum := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 10, "rows per page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	key := fmt.Sprintf("referrals:page:%d:%d", *pageNum, *limit)
	if value, fresh, ok := a.Cache.GetStale(key); ok && !fresh {
		// keep the previous page on screen while refetching
		a.printReferralPage(value.(hatraapi.ReferralPage))
	}
	page, err := a.Api.Referrals(ctx, *pageNum, *limit)
	if err != nil {
		return a.routeError(err)
	}
	a.Cache.Set(key, page, cache.DefaultTTL)
	a.printReferralPage(page)
	return nil
}

func (a *App) printReferralPage(page hatraapi.ReferralPage) {
	fmt.Fprintf(a.Out, "Team: %d left / %d right", page.TeamCounts.Left, page.TeamCounts.Right)
	if page.CountsFromPage {
		fmt.Fprint(a.Out, " (this page only)")
	}
	fmt.Fprintln(a.Out)

	left, right := referral.SplitSides(page.Items)
	fmt.Fprintln(a.Out, "\nLeft side:")
	for _, edge := range left {
		fmt.Fprintf(a.Out, "  %-20s joined %s\n", edge.Referred.Username, edge.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintln(a.Out, "Right side:")
	for _, edge := range right {
		fmt.Fprintf(a.Out, "  %-20s joined %s\n", edge.Referred.Username, edge.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(a.Out, "Page %d of %d (%d total)\n", page.Pagination.Page, page.Pagination.Pages, page.Pagination.Total)
}
