package barrier

import (
	"runtime"
	"sync/atomic"
)

// allOnes is the sense value used to mean "released this episode"; the
// complementary value is always zero. Only equality comparisons are ever
// made against a sense word (never ordering), so the width is
// semantically irrelevant as long as it's fixed per instance.
const allOnes uint32 = ^uint32(0)

// word is the shared atomically-addressed storage every barrier
// algorithm spins on: a count, a sense flag, or a signaling flag.
// Kept as its own named type so the five algorithms read as spinning on
// "a word" instead of reaching for sync/atomic ad hoc in each file.
type word struct {
	v atomic.Uint32
}

// faaUint atomically adds x to w and returns the prior value.
// Acquire+release: the fetch must not be reordered across wait entry/exit.
func faaUint(w *word, x uint32) uint32 {
	return w.v.Add(x) - x
}

// loadUint is an acquire-ordered load.
func loadUint(w *word) uint32 {
	return w.v.Load()
}

// storeUint is a release-ordered store.
func storeUint(w *word, v uint32) {
	w.v.Store(v)
}

// casUint is a release-acquire compare-and-swap, used by the spinlock
// that serializes combining-tree topology construction.
func casUint(w *word, old, new uint32) bool {
	return w.v.CompareAndSwap(old, new)
}

// stall is the CPU pause/yield hint threads use between spin iterations.
// runtime.Gosched() is the idiomatic stand-in for a hardware PAUSE
// instruction in pure Go: it doesn't block, it just gives the scheduler
// a chance to run another goroutine before the next spin.
func stall() {
	runtime.Gosched()
}
