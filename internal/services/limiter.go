package services

import "context"

// MatchLimiter bounds how many match computations run at once. Requests
// past the bound wait rather than fail, unless their context expires
// first.
type MatchLimiter struct {
	slots chan struct{}
}

func NewMatchLimiter(concurrency int) *MatchLimiter {
	if concurrency < 1 {
		concurrency = 1
	}
	return &MatchLimiter{slots: make(chan struct{}, concurrency)}
}

func (l *MatchLimiter) Acquire(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *MatchLimiter) Release() {
	<-l.slots
}
