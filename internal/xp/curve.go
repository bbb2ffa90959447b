// Package xp holds the experience curve shared by the player profile
// and per-skill levels.
package xp

import "math"

const (
	// RequiredCoef scales the level curve: XP_req = 100 * (Level^1.5).
	RequiredCoef = 100.0

	// Per-item base awards used when a schedule item has no linked task.
	BaseItemXP = 10
	WorkItemXP = 25
	TaskItemXP = 20
)

// RequiredForLevel returns the total XP threshold required to be at the
// given level. Level 0 requires 0 XP.
func RequiredForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	req := RequiredCoef * math.Pow(float64(level), 1.5)
	// Ceil so float rounding never makes a threshold easier.
	return int(math.Ceil(req))
}

// LevelForXP returns the highest level L such that
// totalXP >= RequiredForLevel(L).
func LevelForXP(totalXP int) int {
	if totalXP <= 0 {
		return 0
	}

	// Exponential search for an upper bound, then binary search.
	low := 0
	high := 1
	for RequiredForLevel(high) <= totalXP {
		low = high
		high *= 2
		if high > 1_000_000 {
			break
		}
	}

	for low+1 < high {
		mid := low + (high-low)/2
		if RequiredForLevel(mid) <= totalXP {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}
