package animalcontracts

import (
	"testing"

	"github.com/adamluzsi/solid/animal"
	"github.com/adamluzsi/solid/doubles"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
)

// Hierarchy describes what a set of animals must do to take part in double dispatch:
// each of them calls exactly one Visitor case, and passes itself to it.
//
// Use it on every type that claims to be one of the animal kinds,
// especially the ones that are assembled from embedding.
func Hierarchy(makeAnimals func(testing.TB) []animal.Animal) contract.Contract {
	s := testcase.NewSpec(nil)

	animals := testcase.Let(s, func(t *testcase.T) []animal.Animal {
		return makeAnimals(t)
	})

	visit := func(a animal.Animal) *doubles.SpyVisitor {
		spy := &doubles.SpyVisitor{}
		a.Accept(spy)
		return spy
	}

	s.Test(`every animal calls exactly one visitor case`, func(t *testcase.T) {
		for _, a := range animals.Get(t) {
			t.Must.Equal(1, len(visit(a).Calls))
		}
	})

	s.Test(`the called case receives the animal itself`, func(t *testcase.T) {
		for _, a := range animals.Get(t) {
			spy := visit(a)
			t.Must.Equal(1, len(spy.Visited))
			t.Must.True(spy.Visited[0] == any(a), "animal dispatched as an other value")
		}
	})

	s.Test(`dispatch is repeatable`, func(t *testcase.T) {
		for _, a := range animals.Get(t) {
			first, _ := visit(a).Last()
			second, _ := visit(a).Last()
			t.Must.Equal(first, second)
		}
	})

	s.Test(`the set passes verification`, func(t *testcase.T) {
		t.Must.Nil(animal.Verify(animals.Get(t)...))
	})

	return s.AsSuite("Hierarchy")
}
