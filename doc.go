// Package barrier implements a library of thread barriers:
// synchronization primitives that block a set of cooperating goroutines
// (standing in for OS threads) until every member of the set has
// arrived, then release them together.
//
// Five algorithms are provided, each a different trade-off between bus
// traffic, spin locality, and arrival/wakeup latency:
//
//   - Centralized: a single shared counter and sense flag.
//   - CombiningTree: a dynamically constructed software combining tree.
//   - Dissemination: O(log N) rounds of pairwise signaling, no hotspot.
//   - Tournament: statically assigned roles, an arrival pass and a
//     wakeup pass per episode.
//   - MCSTree: a 4-ary arrival tree with a binary release tree.
//
// Every algorithm is reusable without an explicit reset: each exposes a
// wait operation that re-arms itself via sense reversal, so a topology
// can be waited on an unbounded number of times once built. None of them
// support blocking (descheduling) waits, timeouts, cancellation, dynamic
// membership change mid-episode, or payload reduction. Each constructor
// allocates all of a topology's storage itself; callers do not supply
// backing memory. Wait performs no allocation.
package barrier
