// Package animal is a closed set of kinds that can be extended with new operations through Visitor.
package animal

import (
	"github.com/adamluzsi/solid"
)

// Animal is the common capability surface of every kind in this package.
//
// The set of kinds is closed: the unexported marker method
// prevents other packages from declaring new kinds on their own.
type Animal interface {
	solid.Acceptor[Visitor]
	isAnimal()
}

type Cat struct {
	Name   string
	Indoor bool
}

func (c *Cat) Accept(v Visitor) { v.VisitCat(c) }
func (c *Cat) isAnimal()        {}

type Dog struct {
	Name  string
	Breed string
}

func (d *Dog) Accept(v Visitor) { v.VisitDog(d) }
func (d *Dog) isAnimal()        {}

// New makes an Animal of the given kind.
func New(kind Kind, name string) (Animal, error) {
	switch kind {
	case KindCat:
		return &Cat{Name: name}, nil
	case KindDog:
		return &Dog{Name: name}, nil
	default:
		return nil, ErrUnknownKind.F("%s", kind)
	}
}
