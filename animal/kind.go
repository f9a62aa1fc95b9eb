package animal

import (
	"fmt"
	"strings"
)

type Kind int

const (
	_ Kind = iota
	KindCat
	KindDog
)

var kindNames = map[Kind]string{
	KindCat: "Cat",
	KindDog: "Dog",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every kind of the closed set in declaration order.
func Kinds() []Kind {
	return []Kind{KindCat, KindDog}
}

// ParseKind parses a kind name case-insensitively, such as "cat" or "Dog".
func ParseKind(raw string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(strings.TrimSpace(raw), k.String()) {
			return k, nil
		}
	}
	return 0, ErrUnknownKind.F("%q", raw)
}
