package middleware

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

// Run with: go test -race -count=1 ./internal/middleware/ -run TestRateLimiterConcurrent
func TestRateLimiterConcurrentAccess(t *testing.T) {
	limiter := NewRateLimiter(100, 100, "test-concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				key := "user-shared"
				if j%3 == 0 {
					key = "user-" + strconv.Itoa(goroutineID%10)
				}
				limiter.reserve(key)
			}
		}(i)
	}
	wg.Wait()
}

func TestRateLimiterConcurrentWithEviction(t *testing.T) {
	limiter := NewRateLimiter(5, 5, "test-eviction-race")
	limiter.idleTTL = time.Millisecond

	stop := make(chan struct{})
	go limiter.Cleanup(stop)
	defer close(stop)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				limiter.reserve("ip:10.0.0." + strconv.Itoa(id%10))
				if j%10 == 0 {
					time.Sleep(time.Millisecond)
				}
			}
		}(i)
	}
	wg.Wait()
}
