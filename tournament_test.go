package barrier

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTournamentSingleThreadNoSpin(t *testing.T) {
	tn := NewTournament(1)
	require.Equal(t, 1, tn.Size())
	s := tn.NewState()

	done := make(chan struct{})
	go func() {
		tn.Wait(s)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("single participant blocked on Wait")
	}
}

// TestTournamentRoleTable checks that for N=5, the role table has
// exactly one CHAMPION (thread 0 at round 3), a BYE at round 1 for
// thread 4, and LOSER/WINNER pairs at rounds 1 and 2. It also verifies
// the role table is well-defined for every (i, k), including i=0 at
// every round.
func TestTournamentRoleTable(t *testing.T) {
	const n = 5
	tn := NewTournament(n)
	require.Equal(t, uint(4), tn.r) // ceil(log2(8)) + 1 = 4

	champions := 0
	for i := 0; i < n; i++ {
		for k := uint(0); k < tn.r; k++ {
			if tn.rounds[i][k].role == roleChampion {
				champions++
				require.Equal(t, 0, i, "champion must be thread 0")
				require.Equal(t, uint(3), k, "champion must appear at round 3")
			}
		}
	}
	require.Equal(t, 1, champions, "exactly one champion across the whole table")

	require.Equal(t, roleBye, tn.rounds[4][1].role, "thread 4 is a BYE at round 1")
	require.Equal(t, roleLoser, tn.rounds[1][1].role)
	require.Equal(t, roleWinner, tn.rounds[0][1].role)
	require.Equal(t, roleLoser, tn.rounds[2][2].role)
	require.Equal(t, roleWinner, tn.rounds[0][2].role)

	// round 0 is always the dropout sentinel, for every thread.
	for i := 0; i < n; i++ {
		require.Equal(t, roleDropout, tn.rounds[i][0].role)
	}
}

func TestTournamentMemoryFence(t *testing.T) {
	const n = 13 // not a power of two
	const episodes = 300
	tn := NewTournament(n)

	published := make([]int64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			s := tn.NewState()
			for e := 1; e <= episodes; e++ {
				atomic.StoreInt64(&published[id], int64(e))
				tn.Wait(s)
				for j := 0; j < n; j++ {
					require.Equal(t, int64(e), atomic.LoadInt64(&published[j]),
						"episode %d: thread %d did not observe thread %d's publish", e, id, j)
				}
			}
		}(i)
	}
	waitWithTimeout(t, &wg, 30*time.Second)
}

func TestTournamentBoundaryN(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 13, 16} {
		n := n
		t.Run("", func(t *testing.T) {
			tn := NewTournament(n)
			var wg sync.WaitGroup
			wg.Add(n)
			for i := 0; i < n; i++ {
				go func() {
					defer wg.Done()
					s := tn.NewState()
					for e := 0; e < 50; e++ {
						tn.Wait(s)
					}
				}()
			}
			waitWithTimeout(t, &wg, 10*time.Second)
		})
	}
}
