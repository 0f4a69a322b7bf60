package service

// RateLimiter throttles actions per key.
type RateLimiter interface {
	Allow(key string) bool
}
