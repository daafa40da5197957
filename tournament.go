package barrier

import "fmt"

type tourRole uint8

const (
	roleDropout tourRole = iota // sentinel: round 0, and the wakeup-loop terminator
	roleWinner
	roleBye
	roleLoser
	roleChampion
)

type tourRound struct {
	role     tourRole
	opponent int
}

// Tournament is a barrier with statically assigned per-round roles: each
// thread spins only on its own flag, giving good cache locality on
// NUMA/CC systems at the cost of precomputing a role table.
type Tournament struct {
	n      int
	r      uint // total rounds, including the round-0 dropout sentinel
	rounds [][]tourRound
	flags  [][]word
	nextID word
}

// NewTournament builds the role table and flag storage for n participants.
func NewTournament(n int) *Tournament {
	if n < 1 {
		panic("barrier: n must be >= 1")
	}
	t := &Tournament{n: n, r: roundsFor(uint(n)) + 1}

	t.rounds = make([][]tourRound, n)
	t.flags = make([][]word, n)
	for i := range t.rounds {
		t.rounds[i] = make([]tourRound, t.r)
		t.flags[i] = make([]word, t.r)
	}

	for k := uint(1); k < t.r; k++ {
		twok := 1 << k
		twokm1 := 1 << (k - 1)
		for i := 0; i < n; i++ {
			imod := i % twok
			switch {
			case imod == twokm1:
				t.rounds[i][k] = tourRound{role: roleLoser, opponent: i - twokm1}
			case imod == 0 && i == 0 && twok >= n:
				t.rounds[i][k] = tourRound{role: roleChampion, opponent: i + twokm1}
			case imod == 0 && i+twokm1 < n && twok < n:
				t.rounds[i][k] = tourRound{role: roleWinner, opponent: i + twokm1}
			case imod == 0:
				t.rounds[i][k] = tourRound{role: roleBye}
			default:
				// never visited: this thread already dropped out as a
				// LOSER at an earlier round along its climb.
				t.rounds[i][k] = tourRound{role: roleDropout}
			}
		}
	}
	return t
}

// Size returns the number of rounds a thread may traverse:
// ceil(log2(next_pow2(n))) + 1.
func (t *Tournament) Size() int { return int(t.r) }

// Flag returns the current release flag for thread i at round k, for
// tests and diagnostics only.
func (t *Tournament) Flag(i int, k uint) uint32 { return loadUint(&t.flags[i][k]) }

// Role returns thread i's assigned role and opponent at round k, for
// tests and diagnostics only.
func (t *Tournament) Role(i int, k uint) (role tourRole, opponent int) {
	rd := t.rounds[i][k]
	return rd.role, rd.opponent
}

// String reports the topology size and round count.
func (t *Tournament) String() string {
	return fmt.Sprintf("Tournament(n=%d, rounds=%d)", t.n, t.r)
}

// TournamentState is one thread's expected sense and virtual id.
type TournamentState struct {
	id    int
	sense uint32
}

// NewState assigns the next sequential virtual thread id and returns a
// fresh state with sense all-ones.
func (t *Tournament) NewState() *TournamentState {
	id := faaUint(&t.nextID, 1)
	return &TournamentState{id: int(id), sense: allOnes}
}

// Wait runs the two-pass arrival/wakeup traversal across rounds.
func (t *Tournament) Wait(s *TournamentState) {
	terminal := t.arrive(s)
	t.wake(s, terminal)
	s.sense ^= allOnes
}

// arrive climbs rounds in ascending order until this thread becomes a
// LOSER or CHAMPION (or runs out of rounds), returning the round to
// start the wakeup pass from.
func (t *Tournament) arrive(s *TournamentState) int {
	for k := uint(1); k < t.r; k++ {
		rd := t.rounds[s.id][k]
		switch rd.role {
		case roleBye:
			continue
		case roleWinner:
			for loadUint(&t.flags[s.id][k]) != s.sense {
				stall()
			}
		case roleLoser:
			storeUint(&t.flags[rd.opponent][k], s.sense)
			for loadUint(&t.flags[s.id][k]) != s.sense {
				stall()
			}
			return int(k) - 1
		case roleChampion:
			for loadUint(&t.flags[s.id][k]) != s.sense {
				stall()
			}
			storeUint(&t.flags[rd.opponent][k], s.sense)
			return int(k) - 1
		}
	}
	return int(t.r) - 1
}

// wake descends from the terminal round, cascading release flags back
// down to every loser that fed into a winner along the way.
func (t *Tournament) wake(s *TournamentState, terminal int) {
	for k := terminal; k >= 0; k-- {
		rd := t.rounds[s.id][k]
		switch rd.role {
		case roleDropout:
			return
		case roleWinner:
			storeUint(&t.flags[rd.opponent][k], s.sense)
		}
	}
}
