package thumbnailcontracts

import (
	"testing"

	"github.com/adamluzsi/solid/thumbnail"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
)

// Folder describes what the thumbnail Service expects from its input folder.
// A supplier, such as an S3 or a local directory adapter, should run it in its own test suite.
func Folder(subject func(testing.TB) thumbnail.Folder) contract.Contract {
	s := testcase.NewSpec(nil)

	folder := testcase.Let(s, func(t *testcase.T) thumbnail.Folder {
		return subject(t)
	})

	s.Test(`page count is never negative`, func(t *testcase.T) {
		t.Must.True(0 <= folder.Get(t).Pages())
	})

	s.Test(`page count is stable between consecutive calls`, func(t *testcase.T) {
		t.Must.Equal(folder.Get(t).Pages(), folder.Get(t).Pages())
	})

	s.Test(`the service plans one thumbnail per page`, func(t *testcase.T) {
		plan := thumbnail.NewService(folder.Get(t)).Plan()
		t.Must.Equal(folder.Get(t).Pages(), len(plan))
	})

	s.When(`the folder has a name`, func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			if _, ok := folder.Get(t).(thumbnail.Namer); !ok {
				t.Skip("folder is not a thumbnail.Namer")
			}
		})

		s.Then(`the name is stable between consecutive calls`, func(t *testcase.T) {
			n := folder.Get(t).(thumbnail.Namer)
			t.Must.Equal(n.Name(), n.Name())
		})
	})

	return s.AsSuite("Folder")
}
