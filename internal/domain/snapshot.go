package domain

// Snapshot is an immutable, point-in-time view of the content catalog.
// Producers must publish a fully-formed Snapshot by replacing the reference,
// never by mutating one in place, so concurrent readers see no torn state.
type Snapshot struct {
	Items      []ContentItem
	Tags       []Tag
	Authors    []Author
	Categories []Category

	tagsByID       map[string]Tag
	authorsByID    map[string]Author
	categoriesByID map[string]Category
	itemsByID      map[string]*ContentItem
}

// Index builds the lookup maps. Call once after the Snapshot is assembled;
// the engine relies on it for tag/category name resolution.
func (s *Snapshot) Index() *Snapshot {
	s.tagsByID = make(map[string]Tag, len(s.Tags))
	for _, t := range s.Tags {
		s.tagsByID[t.ID] = t
	}
	s.authorsByID = make(map[string]Author, len(s.Authors))
	for _, a := range s.Authors {
		s.authorsByID[a.ID] = a
	}
	s.categoriesByID = make(map[string]Category, len(s.Categories))
	for _, c := range s.Categories {
		s.categoriesByID[c.ID] = c
	}
	s.itemsByID = make(map[string]*ContentItem, len(s.Items))
	for i := range s.Items {
		s.itemsByID[s.Items[i].ID] = &s.Items[i]
	}
	return s
}

func (s *Snapshot) ItemByID(id string) (*ContentItem, bool) {
	item, ok := s.itemsByID[id]
	return item, ok
}

func (s *Snapshot) TagByID(id string) (Tag, bool) {
	t, ok := s.tagsByID[id]
	return t, ok
}

func (s *Snapshot) AuthorByID(id string) (Author, bool) {
	a, ok := s.authorsByID[id]
	return a, ok
}

func (s *Snapshot) CategoryByID(id string) (Category, bool) {
	c, ok := s.categoriesByID[id]
	return c, ok
}

// TagNames resolves tag ids to display names, skipping unknown ids.
func (s *Snapshot) TagNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if t, ok := s.tagsByID[id]; ok {
			names = append(names, t.Name)
		}
	}
	return names
}

// Interactions is the per-user view of the interaction store: the two
// disjoint sets of liked and bookmarked content item ids.
type Interactions struct {
	Liked      map[string]struct{}
	Bookmarked map[string]struct{}
}

// Empty reports whether the user has no interaction history at all.
func (in *Interactions) Empty() bool {
	return in == nil || (len(in.Liked) == 0 && len(in.Bookmarked) == 0)
}

// Interacted reports whether the user has liked or bookmarked the item.
func (in *Interactions) Interacted(itemID string) bool {
	if in == nil {
		return false
	}
	if _, ok := in.Liked[itemID]; ok {
		return true
	}
	_, ok := in.Bookmarked[itemID]
	return ok
}
