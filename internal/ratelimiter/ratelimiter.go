package ratelimiter

import "time"

// Limiter decides whether the client identified by key may proceed. When it
// may not, the returned duration is how long until its window resets.
type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
