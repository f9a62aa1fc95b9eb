package doubles

import "github.com/adamluzsi/solid/thumbnail"

// StubFolder is a thumbnail.Folder and thumbnail.Namer with stubbable behavior.
type StubFolder struct {
	PagesFunc  func() int
	FolderName string
}

func (s StubFolder) Pages() int {
	if s.PagesFunc == nil {
		return 0
	}
	return s.PagesFunc()
}

func (s StubFolder) Name() string { return s.FolderName }

// StubPager satisfies thumbnail.Pager with any page count type,
// without having a Name method.
type StubPager[N thumbnail.Count] struct {
	Count N
}

func (s StubPager[N]) Pages() N { return s.Count }
