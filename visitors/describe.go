package visitors

import (
	"fmt"

	"github.com/adamluzsi/solid/animal"
)

// Describe writes a short human readable description into Out.
type Describe struct {
	Out *string
}

func (d Describe) VisitCat(c *animal.Cat) {
	where := "outdoor"
	if c.Indoor {
		where = "indoor"
	}
	*d.Out = fmt.Sprintf("cat %q (%s)", c.Name, where)
}

func (d Describe) VisitDog(dog *animal.Dog) {
	breed := dog.Breed
	if breed == "" {
		breed = "mixed"
	}
	*d.Out = fmt.Sprintf("dog %q (%s)", dog.Name, breed)
}

func DescriptionOf(a animal.Animal) string {
	var out string
	a.Accept(Describe{Out: &out})
	return out
}
