package animal

import "go.llib.dev/frameless/pkg/errorkit"

const (
	ErrUnknownKind   errorkit.Error = "unknown animal kind"
	ErrNilAnimal     errorkit.Error = "nil animal"
	ErrStaleDispatch errorkit.Error = "animal does not dispatch as itself"
)
