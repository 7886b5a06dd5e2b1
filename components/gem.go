package components

// Gem marks a collectible granting Bonus on contact
type Gem struct {
	Bonus int
}
