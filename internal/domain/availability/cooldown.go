package availability

import "time"

// CooldownDecision is the outcome of checking a manual refresh against the cooldown window.
type CooldownDecision struct {
	Allowed   bool
	Remaining time.Duration
}

// RemainingMinutes is the wait in fractional minutes, zero when allowed.
func (d CooldownDecision) RemainingMinutes() float64 {
	if d.Allowed {
		return 0
	}
	return d.Remaining.Minutes()
}

// CheckCooldown allows a refresh when nothing has been refreshed yet or when at least window has
// elapsed since last.
func CheckCooldown(last *time.Time, now time.Time, window time.Duration) CooldownDecision {
	if last == nil {
		return CooldownDecision{Allowed: true}
	}
	elapsed := now.Sub(*last)
	if elapsed < window {
		return CooldownDecision{Allowed: false, Remaining: window - elapsed}
	}
	return CooldownDecision{Allowed: true}
}
