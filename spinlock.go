package barrier

// spinlock is a test-and-set lock with no fairness guarantee, used only
// during combining-tree topology construction; the wait path never
// touches it.
type spinlock struct {
	locked word
}

func (s *spinlock) lock() {
	for {
		state := loadUint(&s.locked)
		if state == 0 && casUint(&s.locked, 0, 1) {
			return
		}
		stall()
	}
}

func (s *spinlock) unlock() {
	storeUint(&s.locked, 0)
}
