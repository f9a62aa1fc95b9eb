// Package visitors adds operations to the animal kinds without modifying them.
//
// Each operation reports its result through the state it was constructed with,
// so the Visitor methods don't need a return value that would fit every kind.
package visitors

import "github.com/adamluzsi/solid/animal"

// Lifespan writes the expected lifespan in years into Years.
type Lifespan struct {
	Years *int
}

func (l Lifespan) VisitCat(*animal.Cat) { *l.Years = 10 }
func (l Lifespan) VisitDog(*animal.Dog) { *l.Years = 13 }

func LifespanOf(a animal.Animal) int {
	var years int
	a.Accept(Lifespan{Years: &years})
	return years
}
