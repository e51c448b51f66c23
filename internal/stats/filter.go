// Package stats is the dashboard core: filtering the match collection,
// aggregating per-champion statistics and sorting the result. Every
// function here is pure over the immutable match collection; derived
// collections are rebuilt from scratch on every call.
package stats

import (
	"strconv"
	"strings"
	"time"

	"github.com/echoez0401/lol-dashboard/internal/model"
)

// Period selector values understood by FilterMatches. Anything else
// (including malformed patch selectors) applies no time filtering.
const (
	PeriodAll        = "all"
	PeriodThisWeek   = "this_week"
	PeriodLastWeek   = "last_week"
	PeriodLast30Days = "last_30_days"
	PeriodLast7Days  = "last_7_days"

	patchPrefix = "patch_"
)

// ModeAll passes every queue.
const ModeAll = "all"

// FilterState is the pair of filter selectors currently in effect.
// The two axes are independent and combined with AND.
type FilterState struct {
	Period string `json:"period"`
	Mode   string `json:"mode"`
}

// FilterMatches returns the subsequence of matches passing both the
// period and the mode selector, preserving the original order. An
// unrecognized selector on either axis leaves that axis unfiltered
// rather than dropping data.
func FilterMatches(matches []model.Match, period, mode string, clock Clock) []model.Match {
	filtered := matches

	if period != PeriodAll {
		if keep := periodPredicate(period, clock); keep != nil {
			filtered = filterBy(filtered, keep)
		}
	}

	if mode != ModeAll {
		// A non-numeric mode is ignored, same as "all".
		if queueID, err := strconv.Atoi(mode); err == nil {
			filtered = filterBy(filtered, func(m model.Match) bool {
				return m.QueueID == queueID
			})
		}
	}

	return filtered
}

// filterBy copies the matches passing keep into a fresh slice.
func filterBy(matches []model.Match, keep func(model.Match) bool) []model.Match {
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// periodPredicate builds the time-window predicate for a period
// selector, or nil when the selector is not recognized.
func periodPredicate(period string, clock Clock) func(model.Match) bool {
	if strings.HasPrefix(period, patchPrefix) {
		patch := strings.TrimPrefix(period, patchPrefix)
		return func(m model.Match) bool {
			return strings.HasPrefix(m.GameVersion, patch)
		}
	}

	now := clock.Now()

	switch period {
	case PeriodThisWeek:
		threshold := startOfWeek(now).UnixMilli()
		return func(m model.Match) bool {
			return m.GameCreation >= threshold
		}
	case PeriodLastWeek:
		thisMonday := startOfWeek(now)
		lastMonday := thisMonday.AddDate(0, 0, -7)
		start := lastMonday.UnixMilli()
		end := thisMonday.UnixMilli()
		return func(m model.Match) bool {
			return m.GameCreation >= start && m.GameCreation < end
		}
	case PeriodLast30Days:
		threshold := now.AddDate(0, 0, -30).UnixMilli()
		return func(m model.Match) bool {
			return m.GameCreation >= threshold
		}
	case PeriodLast7Days:
		threshold := now.AddDate(0, 0, -7).UnixMilli()
		return func(m model.Match) bool {
			return m.GameCreation >= threshold
		}
	}

	return nil
}

// startOfWeek returns midnight of the most recent Monday in now's
// location. If now is a Monday, that day's midnight is returned.
func startOfWeek(now time.Time) time.Time {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}
