package domain

import "sort"

// Move directions for sibling reordering.
const (
	MoveUp   = -1
	MoveDown = +1
)

// parentKey collapses a nullable parent reference into a group key;
// nil and "" both mean the top-level group.
func parentKey(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// siblingList is a positional view over one ordered collection, letting
// the swap logic run identically across the four entity kinds.
type siblingList struct {
	size     int
	id       func(i int) string
	key      func(i int) string
	order    func(i int) int
	setOrder func(i, v int)
}

// swapWithNeighbour finds the node in its sibling group (same parent
// key, sorted ascending by order, stable so equal orders keep insertion
// order) and swaps order values with the adjacent sibling in direction
// dir. Returns false, leaving all orders untouched, when the node is
// missing or already at the group boundary.
func swapWithNeighbour(l siblingList, id string, dir int) bool {
	idx := -1
	for i := 0; i < l.size; i++ {
		if l.id(i) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	groupKey := l.key(idx)
	var group []int
	for i := 0; i < l.size; i++ {
		if l.key(i) == groupKey {
			group = append(group, i)
		}
	}
	sort.SliceStable(group, func(a, b int) bool {
		return l.order(group[a]) < l.order(group[b])
	})

	pos := -1
	for p, i := range group {
		if i == idx {
			pos = p
			break
		}
	}
	swap := pos + dir
	if swap < 0 || swap >= len(group) {
		return false
	}

	a, b := group[pos], group[swap]
	ao, bo := l.order(a), l.order(b)
	l.setOrder(a, bo)
	l.setOrder(b, ao)
	return true
}

// AppendOrder is the order of a node joining a sibling group: one past
// the group's maximum, or 0 when the group is empty.
func AppendOrder(orders []int) int {
	if len(orders) == 0 {
		return 0
	}
	max := orders[0]
	for _, o := range orders[1:] {
		if o > max {
			max = o
		}
	}
	return max + 1
}

// TailOrder is the order of a freshly created node: one past the
// collection-wide maximum (never below 1, matching how the editor has
// always numbered new nodes).
func TailOrder(orders []int) int {
	max := 0
	for _, o := range orders {
		if o > max {
			max = o
		}
	}
	return max + 1
}

// MoveCategory swaps the category's order with its adjacent sibling in
// direction dir. No-op at the boundary.
func (b *Brand) MoveCategory(id string, dir int) bool {
	list := b.Categories
	return swapWithNeighbour(siblingList{
		size:     len(list),
		id:       func(i int) string { return list[i].ID },
		key:      func(i int) string { return parentKey(list[i].ParentID) },
		order:    func(i int) int { return list[i].Order },
		setOrder: func(i, v int) { list[i].Order = v },
	}, id, dir)
}

// MoveSubcategory swaps the subcategory's order with its adjacent
// sibling in direction dir. No-op at the boundary.
func (b *Brand) MoveSubcategory(id string, dir int) bool {
	list := b.Subcategories
	return swapWithNeighbour(siblingList{
		size:     len(list),
		id:       func(i int) string { return list[i].ID },
		key:      func(i int) string { return parentKey(list[i].ParentCategory) },
		order:    func(i int) int { return list[i].Order },
		setOrder: func(i, v int) { list[i].Order = v },
	}, id, dir)
}

// MoveGlobalCategory swaps a global category's order with its adjacent
// sibling in direction dir. No-op at the boundary.
func (s *LobbyState) MoveGlobalCategory(id string, dir int) bool {
	list := s.GlobalCategories
	return swapWithNeighbour(siblingList{
		size:     len(list),
		id:       func(i int) string { return list[i].ID },
		key:      func(i int) string { return parentKey(list[i].ParentID) },
		order:    func(i int) int { return list[i].Order },
		setOrder: func(i, v int) { list[i].Order = v },
	}, id, dir)
}

// MoveGlobalSubcategory swaps a global subcategory's order with its
// adjacent sibling in direction dir. No-op at the boundary.
func (s *LobbyState) MoveGlobalSubcategory(id string, dir int) bool {
	list := s.GlobalCategorySubcategories
	return swapWithNeighbour(siblingList{
		size:     len(list),
		id:       func(i int) string { return list[i].ID },
		key:      func(i int) string { return parentKey(list[i].ParentCategory) },
		order:    func(i int) int { return list[i].Order },
		setOrder: func(i, v int) { list[i].Order = v },
	}, id, dir)
}
