package visitors

import "github.com/adamluzsi/solid/animal"

// Census counts the visited animals per kind.
// The zero value is ready to use.
type Census struct {
	Counts map[animal.Kind]int
}

func (c *Census) VisitCat(*animal.Cat) { c.add(animal.KindCat) }
func (c *Census) VisitDog(*animal.Dog) { c.add(animal.KindDog) }

func (c *Census) add(k animal.Kind) {
	if c.Counts == nil {
		c.Counts = make(map[animal.Kind]int)
	}
	c.Counts[k]++
}

func (c *Census) Total() int {
	var total int
	for _, n := range c.Counts {
		total += n
	}
	return total
}
