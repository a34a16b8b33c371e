package character

// Health is the character's stat model. Bounds are left to callers.
type Health struct {
	Current int
}

func (h *Health) Change(delta int) {
	h.Current += delta
}
