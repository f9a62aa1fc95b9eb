package thumbnail

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/adamluzsi/solid/capability"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Bind turns a value that is only known at runtime into a Folder.
//
// A Folder is used as is.
// Otherwise, v must have a Pages method without arguments
// whose result has an integer type, such as Pages() int64 or Pages() uint16.
// Unsigned counts above math.MaxInt are reported as math.MaxInt.
// When v can't be bound, the returned error lists the missing or mismatching methods.
func Bind(ctx context.Context, v any) (Folder, error) {
	if f, ok := v.(Folder); ok {
		return f, nil
	}
	if err := checkPager(v); err != nil {
		logger.Debug(ctx, "value can't be bound as a thumbnail input folder",
			logging.Field("type", fmt.Sprintf("%T", v)),
			logging.ErrField(err))
		return nil, err
	}
	var f Folder = boundFolder{pages: reflect.ValueOf(v).MethodByName("Pages")}
	if n, ok := v.(Namer); ok {
		f = namedFolder{Folder: f, Namer: n}
	}
	return f, nil
}

func checkPager(v any) error {
	if err := capability.Check[Pager[int]](v, capability.ConvertibleResults()); err != nil {
		return err
	}
	// floats convert to int as well, but NaN, infinities and fractions are not page counts
	if out := reflect.ValueOf(v).MethodByName("Pages").Type().Out(0); !isInteger(out.Kind()) {
		return capability.ErrSignatureMismatch.F("%T has Pages() %s, but an integer page count is required", v, out)
	}
	return nil
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

type boundFolder struct {
	pages reflect.Value
}

func (f boundFolder) Pages() int {
	out := f.pages.Call(nil)[0]
	if out.CanUint() {
		return clampUint(out.Uint())
	}
	return clampInt(out.Int())
}

func clampUint(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

func clampInt(n int64) int {
	switch {
	case n > math.MaxInt:
		return math.MaxInt
	case n < math.MinInt:
		return math.MinInt
	default:
		return int(n)
	}
}

type namedFolder struct {
	Folder
	Namer
}
