package solid

// Acceptor is the customization point of a closed set of kinds.
//
// Accept must call back the Visitor method that belongs to the implementing type's own kind.
// Every kind must declare its own Accept method,
// an Accept promoted from an embedded kind dispatches as the embedded kind.
type Acceptor[Visitor any] interface {
	Accept(Visitor)
}
