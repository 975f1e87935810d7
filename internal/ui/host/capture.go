package host

// Capture is the pointer capture slot. While an owner holds it, every pointer
// event is routed to that owner regardless of what lies under the pointer.
type Capture struct {
	owner string
}

// Set gives the capture to owner. It fails when another owner holds it.
func (c *Capture) Set(owner string) bool {
	if c.owner != "" && c.owner != owner {
		return false
	}
	c.owner = owner
	return true
}

// Release frees the capture if owner holds it.
func (c *Capture) Release(owner string) {
	if c.owner == owner {
		c.owner = ""
	}
}

// Owner returns the current owner, if any.
func (c *Capture) Owner() (string, bool) {
	return c.owner, c.owner != ""
}

// Holds reports whether owner has the capture.
func (c *Capture) Holds(owner string) bool {
	return owner != "" && c.owner == owner
}
