package animal

import "go.llib.dev/frameless/pkg/slicekit"

// Zoo is an ordered collection of animals that were verified to dispatch as themselves.
type Zoo struct {
	animals []Animal
}

func NewZoo(animals ...Animal) (*Zoo, error) {
	if err := Verify(animals...); err != nil {
		return nil, err
	}
	return &Zoo{animals: slicekit.Clone(animals)}, nil
}

// Visit applies the Visitor to each animal in order.
func (z *Zoo) Visit(v Visitor) {
	for _, a := range z.animals {
		a.Accept(v)
	}
}

func (z *Zoo) Animals() []Animal {
	return slicekit.Clone(z.animals)
}

func (z *Zoo) Len() int {
	return len(z.animals)
}
