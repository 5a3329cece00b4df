package author

// Index is the name → record mapping loaded once per scan run. Post
// validation resolves every authors entry against one Index rather than
// going back to the authors directory per entry.
type Index map[string]*Author

func NewIndex(authors []Author) Index {
	ix := make(Index, len(authors))
	for i := range authors {
		ix[authors[i].Name] = &authors[i]
	}
	return ix
}

// Resolve looks up an authors entry by exact name match.
func (ix Index) Resolve(name string) (*Author, bool) {
	a, ok := ix[name]
	return a, ok
}
