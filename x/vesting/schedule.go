package vesting

// tier maps an allocation above the given threshold to the number of
// periods it vests over. Tiers are ordered by descending threshold.
type tier struct {
	above   uint64
	periods uint64
}

var tiers = []tier{
	{above: 300000000000, periods: 12},
	{above: 150000000000, periods: 9},
	{above: 75000000000, periods: 6},
}

// minTierPeriods is the number of periods of the smallest allocations. It
// is also the upper limit of periods unlocked by a single tollgate.
const minTierPeriods = 3

// TotalPeriods returns the number of periods over which the given amount
// fully vests.
func TotalPeriods(amount uint64) uint64 {
	for _, t := range tiers {
		if amount > t.above {
			return t.periods
		}
	}
	return minTierPeriods
}
