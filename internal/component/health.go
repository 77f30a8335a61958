package component

// Hurt subtracts n HP, keeping HP within [0, MaxHP], and returns the HP left.
func (a *Actor) Hurt(n int) int {
	a.HP -= n
	if a.HP < 0 {
		a.HP = 0
	}
	if a.HP > a.MaxHP {
		a.HP = a.MaxHP
	}
	return a.HP
}

// Heal adds n HP up to MaxHP and returns the HP left.
func (a *Actor) Heal(n int) int {
	a.HP += n
	if a.HP > a.MaxHP {
		a.HP = a.MaxHP
	}
	return a.HP
}

// Alive reports whether the actor has HP left.
func (a *Actor) Alive() bool { return a.HP > 0 }
