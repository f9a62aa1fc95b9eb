/*

Package solid -> notes on keeping code open for extension





Pre Words

What follows is how I like to apply two of the SOLID principles in Go, not the only correct way to do it.
The code in this module is intentionally small.
What matters more is the two ideas it tries to represent,
and how they look like when they are written in Go instead of in a language with class hierarchies.





Open for extension, closed for modification

Suppose you use a set of types that someone else designed,
and you wish the set had an operation specific to the needs of your application.
The designer probably didn't add it, because they don't know your application.
Maybe they are not your types, or the operation only makes sense in your program,
and cluttering the general interface with the particulars of every consumer would break encapsulation.

When the set of kinds is closed (there is a fixed number of them, and you know them all),
the kinds can expose a single customization point: Accept.
Accept takes a Visitor, and calls back the Visitor method that matches the kind's own concrete type.
This is called double dispatch:

	1. the call on the interface resolves to the concrete kind's Accept method
	2. inside that method the kind statically knows itself, so it calls Visitor.VisitCat or Visitor.VisitDog

With this, anybody can add a new operation by writing a new Visitor implementation,
without touching the definition of the kinds.
Results are communicated through the state the Visitor was constructed with, usually a pointer.

The price is that the set of kinds is closed.
Adding a new kind means adding a new method to the Visitor interface,
and every Visitor implementation stops compiling until it handles the new kind.
I consider this a feature, because the compiler tells you every place that must be updated.

There is one trap in Go.
Struct embedding promotes methods, so a new type that embeds an existing kind
will have an Accept method, but that Accept dispatches as the embedded kind.
No error, no panic, just silently wrong results.
Because the compiler can't forbid this, collections of kinds should be verified at construction time,
see animal.Verify and animal.NewZoo.





Depend on the capability, not on the concrete type

A consumer should depend only on the operations it actually uses.
If a thumbnail service only needs to know how many pages a folder has,
then it should not depend on an S3 folder, or on a Folder base type with twenty methods.

In Go there are two ways to express this:

	• interfaces: the consumer receives an interface value, and the binding is resolved at runtime
	• type parameters: the consumer is generic over a constraint, and the binding is resolved at compile time

Both are structural. The supplier never has to declare that it implements anything.
The trade-off is the usual one between dynamism and efficiency.

When the value only becomes known at runtime (for example it comes from a registry as an `any`),
the capability package checks the value against the contract and reports every missing or mismatching method.
Binding must fail loudly at that point, instead of degrading later.





Layout

	• solid      the Acceptor capability surface
	• animal     a closed variant set (Cat, Dog) and its Visitor contract
	• visitors   operations added to the animal kinds from the outside
	• capability structural contract checks for runtime binding
	• thumbnail  a consumer that depends only on a page count capability
	• doubles    test doubles
	• fixtures   random fixtures for testing
	• mocks      generated mocks
	• cmd/zoo    a demo wiring all of the above, configured from the environment





Resources

https://en.wikipedia.org/wiki/Open%E2%80%93closed_principle
https://en.wikipedia.org/wiki/Dependency_inversion_principle
https://en.wikipedia.org/wiki/Visitor_pattern
https://en.wikipedia.org/wiki/Double_dispatch
https://go.dev/ref/spec#Interface_types

*/
package solid
