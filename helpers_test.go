package barrier

import (
	"sync"
	"testing"
	"time"
)

// waitWithTimeout fails the test if wg isn't done within d, catching the
// deadlock that a barrier bug (wrong N, missed arrival) would otherwise
// hang the whole suite on.
func waitWithTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("deadlock: goroutines did not complete within deadline")
	}
}
