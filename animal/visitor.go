package animal

// Visitor is an operation over every Animal kind.
//
// It has exactly one method per kind.
// When a new kind is introduced, a new method must be added here,
// and every Visitor implementation will fail to compile until it handles it.
type Visitor interface {
	VisitCat(*Cat)
	VisitDog(*Dog)
}

// KindOf tells the Kind of an Animal, as the Animal dispatches itself.
func KindOf(a Animal) Kind {
	var k kindVisitor
	a.Accept(&k)
	return Kind(k)
}

type kindVisitor Kind

func (k *kindVisitor) VisitCat(*Cat) { *k = kindVisitor(KindCat) }
func (k *kindVisitor) VisitDog(*Dog) { *k = kindVisitor(KindDog) }
