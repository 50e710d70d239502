package rewards

// Level is one rung of the fixed referral-reward ladder. Left and right
// requirements are equal at every level. Level 0 is the starting point and
// carries no reward; it is never a target.
type Level struct {
	Level         int
	LeftRequired  int
	RightRequired int
	Reward        string // display amount, empty at level 0
	Rank          string
	Description   string
}

const MaxLevel = 12

var Levels = []Level{
	{0, 0, 0, "", "", "No reward at this level"},
	{1, 1, 1, "$11", "", "First level reward - Get started!"},
	{2, 6, 6, "$67", "", "Initial level reward"},
	{3, 12, 12, "$89", "Director", "Achieve Director rank"},
	{4, 25, 25, "$167", "Executive Director", "Reach Executive Director status"},
	{5, 50, 50, "$278", "Bronze Member", "Become a Bronze Member"},
	{6, 75, 75, "$389 (10,000 + 25,000 Bonus → 35,000 INR)", "Silver Member", "Unlock Silver Member status with bonus"},
	{7, 120, 120, "$556 (Electric Bike equivalent)", "Gold Member", "Gold Member with electric bike reward"},
	{8, 160, 160, "$1333 (Car Down Payment)", "Platinum Member", "Platinum Member with car down payment"},
	{9, 220, 220, "$1667 (Indonesia Tour)", "Diamond Member", "Exclusive Indonesia tour package"},
	{10, 300, 300, "$2500 (Bullet Bike)", "District Officer", "Classic Bullet Bike reward"},
	{11, 500, 500, "$8889 (Car)", "State Officer", "Full car reward"},
	{12, 1500, 1500, "$50,000 (Flat / Bungalow)", "National Officer", "Ultimate property reward"},
}

// NextTarget returns the level the user is currently working toward:
// one past the highest achieved level, capped at MaxLevel, level 1 when
// nothing has been achieved yet.
func NextTarget(achievedLevels []int) int {
	if len(achievedLevels) == 0 {
		return 1
	}
	maxAchieved := achievedLevels[0]
	for _, lvl := range achievedLevels[1:] {
		if lvl > maxAchieved {
			maxAchieved = lvl
		}
	}
	if maxAchieved+1 > MaxLevel {
		return MaxLevel
	}
	if maxAchieved+1 < 1 {
		return 1
	}
	return maxAchieved + 1
}

// Progress is the completion fraction toward a level. Both sides must meet
// the requirement independently, so the smaller side governs.
func Progress(left, right, required int) float64 {
	if required <= 0 {
		return 1
	}
	min := left
	if right < left {
		min = right
	}
	p := float64(min) / float64(required)
	if p > 1 {
		return 1
	}
	return p
}
