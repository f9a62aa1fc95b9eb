package animal

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

// Verify checks that every given Animal dispatches as itself.
//
// A type that embeds one of the kinds gets a promoted Accept method,
// and that method calls the Visitor case of the embedded kind with the embedded value.
// The compiler accepts this, so the mistake has to be caught when the animals are assembled.
//
// Verify reports every problem it finds, not only the first one.
func Verify(animals ...Animal) error {
	var errs []error
	for i, a := range animals {
		errs = append(errs, verify(i, a))
	}
	return errorkit.Merge(errs...)
}

func verify(index int, a Animal) error {
	if a == nil {
		return ErrNilAnimal.F("at index %d", index)
	}
	var p dispatchProbe
	a.Accept(&p)
	switch {
	case len(p.calls) != 1:
		return ErrStaleDispatch.F("%T at index %d called %d visitor cases %v instead of one", a, index, len(p.calls), p.calls)
	case p.isNil:
		return ErrNilAnimal.F("%T at index %d", a, index)
	case p.got != any(a):
		return ErrStaleDispatch.F("%T at index %d dispatched as %s", a, index, p.calls[0])
	}
	return nil
}

type dispatchProbe struct {
	calls []Kind
	got   any
	isNil bool
}

func (p *dispatchProbe) VisitCat(c *Cat) {
	p.calls = append(p.calls, KindCat)
	p.got, p.isNil = c, c == nil
}

func (p *dispatchProbe) VisitDog(d *Dog) {
	p.calls = append(p.calls, KindDog)
	p.got, p.isNil = d, d == nil
}
