package leaktest

import (
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		close(done)
	}()
	<-done

	checker.Check(0)
}

func TestGoroutineChecker_ToleratesBoundedGrowth(t *testing.T) {
	checker := NewGoroutineChecker(t)

	stop := make(chan struct{})
	go func() {
		<-stop
	}()
	defer func() {
		close(stop)
		time.Sleep(10 * time.Millisecond)
	}()

	// The long-lived goroutine above is within the allowed tolerance.
	checker.Check(1)
}
