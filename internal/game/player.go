package game

// Player is a seat at the table. Values returned by Game are copies.
type Player struct {
	ID    int
	Chips int
	State PlayerState
	// LastPot is the newest pot the player is eligible to win.
	LastPot int
}

// CanAct reports whether the player still takes turns this hand.
func (p Player) CanAct() bool {
	return p.State == In || p.State == ToCall
}

// IsActive reports whether the player was dealt in and has not folded.
func (p Player) IsActive() bool {
	return p.State != Out && p.State != Skip
}
