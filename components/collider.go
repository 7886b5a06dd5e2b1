package components

import "github.com/solarlune/resolv"

// Collider links an entity to its body in the collision space
type Collider struct {
	Object *resolv.Object
}
