package barrier

import "fmt"

// flagSlot is one round's signaling pair for one thread: tflag is the
// flag other threads set on this thread; pflag points at the partner's
// tflag for the same round, computed once at topology init.
type flagSlot struct {
	tflag word
	pflag *word
}

// Dissemination is an all-to-all signaling barrier: O(log N) rounds,
// pairwise flags, no central hotspot. flags[i][parity][round] holds
// thread i's slot for that parity and round.
type Dissemination struct {
	n      int
	r      uint
	flags  [][2][]flagSlot
	nextID word
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

func partnerOf(i int, k uint, n int) int {
	step := 1 << k
	if isPow2(n) {
		return (i + step) & (n - 1)
	}
	return (i + step) % n
}

// NewDissemination builds the partner-flag topology for n participants.
func NewDissemination(n int) *Dissemination {
	if n < 1 {
		panic("barrier: n must be >= 1")
	}
	d := &Dissemination{n: n, r: roundsFor(uint(n))}
	d.flags = make([][2][]flagSlot, n)
	for i := range d.flags {
		d.flags[i][0] = make([]flagSlot, d.r)
		d.flags[i][1] = make([]flagSlot, d.r)
	}
	for i := 0; i < n; i++ {
		for k := uint(0); k < d.r; k++ {
			j := partnerOf(i, k, n)
			d.flags[i][0][k].pflag = &d.flags[j][0][k].tflag
			d.flags[i][1][k].pflag = &d.flags[j][1][k].tflag
		}
	}
	return d
}

// Size returns the number of internal flag slots each thread needs
// across both parities: 2*ceil(log2(next_pow2(n))).
func (d *Dissemination) Size() int { return 2 * int(d.r) }

// Rounds returns the number of signaling rounds per parity, for tests
// and diagnostics only.
func (d *Dissemination) Rounds() uint { return d.r }

// Flag returns the current tflag value for thread i's slot at the given
// parity and round, for tests and diagnostics only.
func (d *Dissemination) Flag(i int, parity, round uint) uint32 {
	return loadUint(&d.flags[i][parity][round].tflag)
}

// String reports the topology size and round count.
func (d *Dissemination) String() string {
	return fmt.Sprintf("Dissemination(n=%d, rounds=%d)", d.n, d.r)
}

// DissemState is one thread's parity, sense, and virtual id.
type DissemState struct {
	id     int
	parity uint32
	sense  uint32
}

// NewState assigns the next sequential virtual thread id and returns a
// fresh state with parity 0, sense all-ones.
func (d *Dissemination) NewState() *DissemState {
	id := faaUint(&d.nextID, 1)
	return &DissemState{id: int(id), sense: allOnes}
}

// Wait signals this thread's partner in every round, then spins on its
// own flag in that round, before advancing parity (and, every second
// episode, inverting sense).
func (d *Dissemination) Wait(s *DissemState) {
	for k := uint(0); k < d.r; k++ {
		slot := &d.flags[s.id][s.parity][k]
		storeUint(slot.pflag, s.sense)
		for loadUint(&slot.tflag) != s.sense {
			stall()
		}
	}

	if s.parity == 1 {
		s.sense ^= allOnes
	}
	s.parity = 1 - s.parity
}
