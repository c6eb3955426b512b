package models

// TapKind names the three engagement tap counters.
type TapKind string

const (
	TapStart    TapKind = "start"
	TapSwap     TapKind = "swap"
	TapComplete TapKind = "complete"
)

// EngagementMetrics holds per-session engagement counters. Counters only ever
// grow; a process restart is the only reset.
type EngagementMetrics struct {
	Taps         map[TapKind]int `json:"taps"`
	PlanAccepted bool            `json:"planAccepted"`
	StreakCount  int             `json:"streakCount"`
}

// NewEngagementMetrics returns zeroed counters.
func NewEngagementMetrics() EngagementMetrics {
	return EngagementMetrics{
		Taps: map[TapKind]int{
			TapStart:    0,
			TapSwap:     0,
			TapComplete: 0,
		},
	}
}

// Clone returns a copy safe to hand to readers.
func (m EngagementMetrics) Clone() EngagementMetrics {
	taps := make(map[TapKind]int, len(m.Taps))
	for k, v := range m.Taps {
		taps[k] = v
	}
	out := m
	out.Taps = taps
	return out
}
