package visitors_test

import (
	"testing"

	"github.com/adamluzsi/solid/animal"
	"github.com/adamluzsi/solid/fixtures"
	"github.com/adamluzsi/solid/visitors"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

var (
	_ animal.Visitor = visitors.Lifespan{}
	_ animal.Visitor = visitors.Describe{}
	_ animal.Visitor = &visitors.Census{}
)

func TestLifespan(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		years = testcase.Let(s, func(t *testcase.T) *int {
			n := t.Random.Int()
			return &n
		})
		subject = testcase.Var[animal.Animal]{ID: "animal"}
	)
	act := func(t *testcase.T) {
		subject.Get(t).Accept(visitors.Lifespan{Years: years.Get(t)})
	}

	s.When(`a cat is visited`, func(s *testcase.Spec) {
		cat := testcase.Let(s, func(t *testcase.T) *animal.Cat {
			return fixtures.NewCat()
		})
		subject.Let(s, func(t *testcase.T) animal.Animal {
			return cat.Get(t)
		})

		s.Then(`the output is 10`, func(t *testcase.T) {
			act(t)
			t.Must.Equal(10, *years.Get(t))
		})

		s.Then(`the cat is left untouched`, func(t *testcase.T) {
			before := *cat.Get(t)
			act(t)
			t.Must.Equal(before, *cat.Get(t))
		})
	})

	s.When(`a dog is visited`, func(s *testcase.Spec) {
		dog := testcase.Let(s, func(t *testcase.T) *animal.Dog {
			return fixtures.NewDog()
		})
		subject.Let(s, func(t *testcase.T) animal.Animal {
			return dog.Get(t)
		})

		s.Then(`the output is 13`, func(t *testcase.T) {
			act(t)
			t.Must.Equal(13, *years.Get(t))
		})

		s.Then(`the dog is left untouched`, func(t *testcase.T) {
			before := *dog.Get(t)
			act(t)
			t.Must.Equal(before, *dog.Get(t))
		})
	})
}

func TestLifespanOf(t *testing.T) {
	assert.Equal(t, 10, visitors.LifespanOf(fixtures.NewCat()))
	assert.Equal(t, 13, visitors.LifespanOf(fixtures.NewDog()))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, `cat "Tom" (indoor)`, visitors.DescriptionOf(&animal.Cat{Name: "Tom", Indoor: true}))
	assert.Equal(t, `cat "Tom" (outdoor)`, visitors.DescriptionOf(&animal.Cat{Name: "Tom"}))
	assert.Equal(t, `dog "Rex" (beagle)`, visitors.DescriptionOf(&animal.Dog{Name: "Rex", Breed: "beagle"}))
	assert.Equal(t, `dog "Rex" (mixed)`, visitors.DescriptionOf(&animal.Dog{Name: "Rex"}))
}

func TestCensus(t *testing.T) {
	s := testcase.NewSpec(t)

	animals := testcase.Let(s, func(t *testcase.T) []animal.Animal {
		return fixtures.NewAnimals(t.Random.IntBetween(0, 42))
	})
	census := testcase.Let(s, func(t *testcase.T) *visitors.Census {
		return &visitors.Census{}
	})
	act := func(t *testcase.T) {
		for _, a := range animals.Get(t) {
			a.Accept(census.Get(t))
		}
	}

	s.Then(`the total equals the number of visited animals`, func(t *testcase.T) {
		act(t)
		t.Must.Equal(len(animals.Get(t)), census.Get(t).Total())
	})

	s.Then(`animals are counted per kind`, func(t *testcase.T) {
		act(t)
		exp := make(map[animal.Kind]int)
		for _, a := range animals.Get(t) {
			exp[animal.KindOf(a)]++
		}
		for _, k := range animal.Kinds() {
			t.Must.Equal(exp[k], census.Get(t).Counts[k])
		}
	})
}

func TestVisitors_orderIndependence(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := testcase.Let(s, func(t *testcase.T) animal.Animal {
		return fixtures.NewAnimal()
	})

	type results struct {
		Years       int
		Description string
	}
	apply := func(t *testcase.T, lifespanFirst bool) results {
		var r results
		lifespan := visitors.Lifespan{Years: &r.Years}
		describe := visitors.Describe{Out: &r.Description}
		if lifespanFirst {
			subject.Get(t).Accept(lifespan)
			subject.Get(t).Accept(describe)
		} else {
			subject.Get(t).Accept(describe)
			subject.Get(t).Accept(lifespan)
		}
		return r
	}

	s.Test(`applying D1 then D2 yields the same results as D2 then D1`, func(t *testcase.T) {
		t.Must.Equal(apply(t, true), apply(t, false))
	})

	s.Test(`results match the single dispatcher helpers`, func(t *testcase.T) {
		r := apply(t, t.Random.Bool())
		t.Must.Equal(visitors.LifespanOf(subject.Get(t)), r.Years)
		t.Must.Equal(visitors.DescriptionOf(subject.Get(t)), r.Description)
	})
}
