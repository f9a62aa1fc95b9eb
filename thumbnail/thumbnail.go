// Package thumbnail plans thumbnails for the pages of an input folder.
//
// The service only needs a page count from its folder,
// so that is the only capability it depends on.
// Where the folder lives (S3, a local directory, a test stub) is none of its business.
package thumbnail

import "fmt"

// Folder is the capability the Service depends on.
type Folder interface {
	Pages() int
}

// Namer is an optional capability of a folder.
// When the input folder has a name, the thumbnails are placed under it.
type Namer interface {
	Name() string
}

type Thumbnail struct {
	// Page is the 1-based page number.
	Page int
	Name string
}

// Service binds its folder through an interface value, resolved at runtime.
type Service struct {
	InputFolder Folder
}

func NewService(inputFolder Folder) *Service {
	return &Service{InputFolder: inputFolder}
}

func (s *Service) Plan() []Thumbnail {
	return plan(s.InputFolder.Pages(), s.InputFolder)
}

// page counts come from the folder, so they don't size allocations up front
const maxPrealloc = 1024

func plan(pages int, folder any) []Thumbnail {
	if pages <= 0 {
		return nil
	}
	var prefix string
	if n, ok := folder.(Namer); ok && n.Name() != "" {
		prefix = n.Name() + "/"
	}
	thumbnails := make([]Thumbnail, 0, min(pages, maxPrealloc))
	for i := range pages {
		thumbnails = append(thumbnails, Thumbnail{
			Page: i + 1,
			Name: fmt.Sprintf("%sthumbnail-%03d", prefix, i+1),
		})
	}
	return thumbnails
}
