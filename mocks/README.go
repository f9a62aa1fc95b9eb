// Package mocks provide pregenerated gomock files for working with tests.
// If you are interested in testing your component with an implementation that behaves closely to a real one,
// you may find the doubles package more interesting.
// The primary goal of this package is to assert interactions strictly,
// for example that a Visitor received exactly one call, and no other case was touched.
package mocks

//go:generate mockgen -package mocks -destination MockVisitor.go github.com/adamluzsi/solid/animal Visitor
//go:generate mockgen -package mocks -destination MockFolder.go github.com/adamluzsi/solid/thumbnail Folder
