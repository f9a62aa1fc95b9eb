package doubles

import "github.com/adamluzsi/solid/animal"

// SpyVisitor records which Visitor cases were called, and with what.
type SpyVisitor struct {
	Calls   []animal.Kind
	Visited []any
}

func (s *SpyVisitor) VisitCat(c *animal.Cat) { s.record(animal.KindCat, c) }
func (s *SpyVisitor) VisitDog(d *animal.Dog) { s.record(animal.KindDog, d) }

func (s *SpyVisitor) record(k animal.Kind, v any) {
	s.Calls = append(s.Calls, k)
	s.Visited = append(s.Visited, v)
}

// Last returns the most recently called case.
func (s *SpyVisitor) Last() (animal.Kind, bool) {
	if len(s.Calls) == 0 {
		return 0, false
	}
	return s.Calls[len(s.Calls)-1], true
}
