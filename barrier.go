package barrier

// Awaitable is the common shape every barrier algorithm's per-thread
// handle satisfies: a single Wait that blocks until this episode's
// arrivals are complete. It lets a caller that wants a
// runtime-selectable barrier hold a slice of handles without caring
// which of the five algorithms backs each one.
type Awaitable interface {
	Wait()
}

// CentralizedHandle binds a Centralized barrier to one thread's state.
type CentralizedHandle struct {
	b *Centralized
	s *CentralizedState
}

// NewHandle returns an Awaitable bound to a fresh per-thread state.
func (c *Centralized) NewHandle() *CentralizedHandle {
	return &CentralizedHandle{b: c, s: c.NewState()}
}

// Wait implements Awaitable.
func (h *CentralizedHandle) Wait() { h.b.Wait(h.s) }

// CombiningHandle binds a combining-tree Group to one thread's state.
type CombiningHandle struct {
	g *Group
	s *CombiningState
}

// NewHandle returns an Awaitable bound to a fresh per-thread state.
func (g *Group) NewHandle() *CombiningHandle {
	return &CombiningHandle{g: g, s: g.NewState()}
}

// Wait implements Awaitable.
func (h *CombiningHandle) Wait() { h.g.Wait(h.s) }

// DissemHandle binds a Dissemination barrier to one thread's state.
type DissemHandle struct {
	b *Dissemination
	s *DissemState
}

// NewHandle returns an Awaitable bound to a fresh per-thread state.
func (d *Dissemination) NewHandle() *DissemHandle {
	return &DissemHandle{b: d, s: d.NewState()}
}

// Wait implements Awaitable.
func (h *DissemHandle) Wait() { h.b.Wait(h.s) }

// TournamentHandle binds a Tournament barrier to one thread's state.
type TournamentHandle struct {
	b *Tournament
	s *TournamentState
}

// NewHandle returns an Awaitable bound to a fresh per-thread state.
func (t *Tournament) NewHandle() *TournamentHandle {
	return &TournamentHandle{b: t, s: t.NewState()}
}

// Wait implements Awaitable.
func (h *TournamentHandle) Wait() { h.b.Wait(h.s) }

// MCSHandle binds an MCSTree barrier to one thread's state.
type MCSHandle struct {
	b *MCSTree
	s *MCSState
}

// NewHandle returns an Awaitable bound to a fresh per-thread state.
func (t *MCSTree) NewHandle() *MCSHandle {
	return &MCSHandle{b: t, s: t.NewState()}
}

// Wait implements Awaitable.
func (h *MCSHandle) Wait() { h.b.Wait(h.s) }

var (
	_ Awaitable = (*CentralizedHandle)(nil)
	_ Awaitable = (*CombiningHandle)(nil)
	_ Awaitable = (*DissemHandle)(nil)
	_ Awaitable = (*TournamentHandle)(nil)
	_ Awaitable = (*MCSHandle)(nil)
)
