package thumbnail

// Count is any integer type a page count can be expressed with.
type Count interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Pager is the page count capability, with the result type left open.
type Pager[N Count] interface {
	Pages() N
}

// GenericService binds its folder at compile time.
// Any type with a Pages method returning an integer type can be used,
// without declaring that it implements anything.
type GenericService[N Count, F Pager[N]] struct {
	InputFolder F
}

// New makes a GenericService.
// The folder type is inferred, only the page count type has to be named:
//
//	thumbnail.New[int](folder)
func New[N Count, F Pager[N]](inputFolder F) *GenericService[N, F] {
	return &GenericService[N, F]{InputFolder: inputFolder}
}

// Pages is the page count of the input folder as an int.
// Counts above math.MaxInt are reported as math.MaxInt, negative counts as zero.
func (s *GenericService[N, F]) Pages() int {
	pages := s.InputFolder.Pages()
	if pages < 0 {
		return 0
	}
	return clampUint(uint64(pages))
}

func (s *GenericService[N, F]) Plan() []Thumbnail {
	return plan(s.Pages(), s.InputFolder)
}
