package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned for tiers outside Easy, Normal and Hard
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects a speed profile
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Difficulties lists every tier in menu order
var Difficulties = [3]Difficulty{Easy, Normal, Hard}

// Profile holds the speed scaling parameters of a tier.
// Speeds are tick intervals: lower is faster.
type Profile struct {
	InitialSpeed  time.Duration
	SpeedDecrease time.Duration
	MinSpeed      time.Duration
}

var profiles = map[Difficulty]Profile{
	Easy:   {InitialSpeed: 300 * time.Millisecond, SpeedDecrease: 1 * time.Millisecond, MinSpeed: 150 * time.Millisecond},
	Normal: {InitialSpeed: 150 * time.Millisecond, SpeedDecrease: 5 * time.Millisecond, MinSpeed: 50 * time.Millisecond},
	Hard:   {InitialSpeed: 100 * time.Millisecond, SpeedDecrease: 8 * time.Millisecond, MinSpeed: 30 * time.Millisecond},
}

// Profile returns the immutable settings for d
func (d Difficulty) Profile() (Profile, error) {
	p, ok := profiles[d]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	return p, nil
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a tier name to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Next returns the interval after one food event, floored at MinSpeed
func (p Profile) Next(speed time.Duration) time.Duration {
	return max(p.MinSpeed, speed-p.SpeedDecrease)
}
