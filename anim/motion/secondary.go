package motion

import "github.com/automoto/doomerang-brawl/anim/spring"

// SecondaryCascade drags a chain of springs behind a driver value, each link
// following the one before it. Used for hair, cloth and tails.
type SecondaryCascade struct {
	links  []*spring.Spring
	values []float64
}

// NewSecondaryCascade builds n links. Each link is softer than its parent by falloff.
func NewSecondaryCascade(n int, stiffness, falloff float64) *SecondaryCascade {
	if n < 0 {
		n = 0
	}
	c := &SecondaryCascade{
		links:  make([]*spring.Spring, n),
		values: make([]float64, n),
	}
	k := stiffness
	for i := range c.links {
		// Slightly underdamped so the tail visibly trails and settles.
		c.links[i] = spring.New(k, spring.CriticalDamping(k)*0.7, 0)
		k *= falloff
	}
	return c
}

// Update pulls the first link toward driver and every other link toward its
// parent. The returned slice is reused between calls.
func (c *SecondaryCascade) Update(dt, driver float64) []float64 {
	target := driver
	for i, l := range c.links {
		l.SetTarget(target)
		c.values[i] = l.Update(dt)
		target = c.values[i]
	}
	return c.values
}

// Len is the number of links.
func (c *SecondaryCascade) Len() int { return len(c.links) }

// IsAtRest reports whether every link has settled.
func (c *SecondaryCascade) IsAtRest(eps float64) bool {
	for _, l := range c.links {
		if !l.IsAtRest(eps) {
			return false
		}
	}
	return true
}
