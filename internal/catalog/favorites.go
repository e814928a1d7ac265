package catalog

// FavoriteSet is a user's set of favorited product ids. Operations never
// mutate the receiver; Toggle returns a fresh set so snapshots held by
// concurrent readers stay valid.
type FavoriteSet map[string]struct{}

// NewFavoriteSet builds a set from a stored id list. Duplicates collapse.
func NewFavoriteSet(ids []string) FavoriteSet {
	s := make(FavoriteSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports membership of the product id.
func (s FavoriteSet) Contains(productID string) bool {
	_, ok := s[productID]
	return ok
}

// Toggle returns a new set with productID added if absent or removed if
// present. Toggling the same id twice returns a set equal to the original.
func (s FavoriteSet) Toggle(productID string) FavoriteSet {
	next := make(FavoriteSet, len(s)+1)
	for id := range s {
		next[id] = struct{}{}
	}
	if _, ok := next[productID]; ok {
		delete(next, productID)
	} else {
		next[productID] = struct{}{}
	}
	return next
}

// IDs returns the members as a slice, in unspecified order.
func (s FavoriteSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}
