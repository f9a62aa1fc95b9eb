// Package capability checks at runtime whether a value structurally satisfies an interface.
//
// When the concrete type is known at compile time, a type parameter or an interface assignment
// is the better tool, and the compiler reports the missing methods.
// This package is for the cases where the value only arrives as an `any`,
// and the binding still has to fail early, telling which methods are missing or mismatching.
package capability

import (
	"reflect"
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrNotInterface      errorkit.Error = "capability contract must be an interface type"
	ErrNilSubject        errorkit.Error = "nil value can't satisfy a capability contract"
	ErrMissingMethod     errorkit.Error = "missing method"
	ErrSignatureMismatch errorkit.Error = "incompatible method signature"
)

// Contract is the set of methods described by an interface type.
// The zero value has no interface type, and every check against it fails with ErrNotInterface.
type Contract struct {
	typ reflect.Type

	convertibleResults bool
}

type Option interface {
	configure(*Contract)
}

type optionFunc func(*Contract)

func (fn optionFunc) configure(c *Contract) { fn(c) }

// ConvertibleResults relaxes the result type check,
// so a method result only has to be convertible to the required result type.
// For example, Pages() int64 satisfies Pages() int.
func ConvertibleResults() Option {
	return optionFunc(func(c *Contract) { c.convertibleResults = true })
}

// Of makes a Contract from the I interface type.
func Of[I any](opts ...Option) (Contract, error) {
	return OfType(reflect.TypeFor[I](), opts...)
}

func OfType(typ reflect.Type, opts ...Option) (Contract, error) {
	if typ == nil || typ.Kind() != reflect.Interface {
		return Contract{}, ErrNotInterface.F("got %v", typ)
	}
	c := Contract{typ: typ}
	for _, opt := range opts {
		opt.configure(&c)
	}
	return c, nil
}

// Check is a shorthand for making a Contract from I and checking v against it.
func Check[I any](v any, opts ...Option) error {
	c, err := Of[I](opts...)
	if err != nil {
		return err
	}
	return c.Check(v)
}

// Type is the interface type the Contract was made from.
func (c Contract) Type() reflect.Type { return c.typ }

// Methods returns the names of the required methods in sorted order.
func (c Contract) Methods() []string {
	if c.typ == nil {
		return nil
	}
	names := make([]string, 0, c.typ.NumMethod())
	for i := range c.typ.NumMethod() {
		names = append(names, c.typ.Method(i).Name)
	}
	slices.Sort(names)
	return names
}

// Check returns nil when v satisfies the contract.
// Otherwise every missing or mismatching method is reported in the returned error.
func (c Contract) Check(v any) error {
	if c.typ == nil {
		return ErrNotInterface.F("zero Contract")
	}
	if v == nil {
		return ErrNilSubject
	}
	typ := reflect.TypeOf(v)
	if typ.Implements(c.typ) {
		return nil
	}
	var errs []error
	for i := range c.typ.NumMethod() {
		want := c.typ.Method(i)
		got, ok := typ.MethodByName(want.Name)
		if !ok {
			errs = append(errs, ErrMissingMethod.F("%s lacks %s%s", typ, want.Name, signature(want.Type)))
			continue
		}
		// methods of a concrete type carry the receiver as their first argument
		gotType := withoutReceiver(got.Type)
		if !c.compatible(want.Type, gotType) {
			errs = append(errs, ErrSignatureMismatch.F("%s has %s%s, but %s%s is required",
				typ, want.Name, signature(gotType), want.Name, signature(want.Type)))
		}
	}
	if len(errs) == 0 && !c.convertibleResults {
		// per method checks must never be looser than Implements
		return ErrSignatureMismatch.F("%s does not implement %s", typ, c.typ)
	}
	return errorkit.Merge(errs...)
}

func (c Contract) compatible(want, got reflect.Type) bool {
	if want.NumIn() != got.NumIn() || want.NumOut() != got.NumOut() || want.IsVariadic() != got.IsVariadic() {
		return false
	}
	for i := range want.NumIn() {
		if want.In(i) != got.In(i) {
			return false
		}
	}
	for i := range want.NumOut() {
		if !c.resultCompatible(want.Out(i), got.Out(i)) {
			return false
		}
	}
	return true
}

// Without ConvertibleResults, result types must be identical, as they must be for interface satisfaction.
func (c Contract) resultCompatible(want, got reflect.Type) bool {
	if want == got {
		return true
	}
	if !c.convertibleResults {
		return false
	}
	if got.AssignableTo(want) {
		return true
	}
	// int to string is a rune conversion, not a meaningful value conversion
	if want.Kind() == reflect.String && got.Kind() != reflect.String {
		return false
	}
	return got.ConvertibleTo(want)
}

func withoutReceiver(fn reflect.Type) reflect.Type {
	var in, out []reflect.Type
	for i := 1; i < fn.NumIn(); i++ {
		in = append(in, fn.In(i))
	}
	for i := range fn.NumOut() {
		out = append(out, fn.Out(i))
	}
	return reflect.FuncOf(in, out, fn.IsVariadic())
}

func signature(fn reflect.Type) string {
	return strings.TrimPrefix(fn.String(), "func")
}
