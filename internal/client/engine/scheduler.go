package engine

import "time"

// CancelFunc stops a scheduled callback. Calling it after the callback has
// fired is a no-op; calling it twice is safe.
type CancelFunc func()

// Scheduler arms a delayed callback and hands back a cancellation handle.
// The engine holds at most one live handle and always cancels it before
// arming a new one, which is what turns edit bursts into a single push.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

// Schedule arms fn to run on its own goroutine after d.
func (TimerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
