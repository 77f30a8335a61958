package component

// PlayerTraits holds the state only the player carries.
type PlayerTraits struct {
	// Inventory lists item identifiers in pickup order; duplicates allowed.
	Inventory []string
	// HurtCooldown is the seconds left before contact damage can land again.
	HurtCooldown float64
}

// AddItem appends an item to the inventory.
func (p *PlayerTraits) AddItem(item string) {
	p.Inventory = append(p.Inventory, item)
}

// TickCooldown decrements the hurt cooldown by dt, flooring at 0.
func (p *PlayerTraits) TickCooldown(dt float64) {
	p.HurtCooldown -= dt
	if p.HurtCooldown < 0 {
		p.HurtCooldown = 0
	}
}
