// Package reorder implements drag-to-reorder for flat lists and trees.
//
// The tree helpers are pure: Move never touches its input and hands back a
// fresh snapshot, so a caller holding the previous tree keeps a valid value.
package reorder

import "slices"

// Item is a node of a reorderable list or tree. IDs are unique in the tree.
type Item struct {
	ID       string
	Label    string
	Icon     string // icon name, see package icons
	Children []Item
	Expanded *bool // nil means expanded
}

// HasChildren reports whether the item has at least one child.
func (it Item) HasChildren() bool {
	return len(it.Children) > 0
}

// Collapsed returns a pointer to false, for initializing Item.Expanded.
func Collapsed() *bool {
	f := false
	return &f
}

// Find returns the item with id.
func Find(items []Item, id string) (*Item, bool) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], true
		}
		if it, ok := Find(items[i].Children, id); ok {
			return it, true
		}
	}
	return nil, false
}

// Locate returns the sequence holding id and its index in it.
func Locate(items *[]Item, id string) (parent *[]Item, index int, ok bool) {
	for i := range *items {
		if (*items)[i].ID == id {
			return items, i, true
		}
		if p, j, ok := Locate(&(*items)[i].Children, id); ok {
			return p, j, true
		}
	}
	return nil, 0, false
}

// Clone deep-copies items.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it
		out[i].Children = Clone(it.Children)
		if it.Expanded != nil {
			e := *it.Expanded
			out[i].Expanded = &e
		}
	}
	return out
}

// IsDescendant reports whether targetID sits somewhere below sourceID.
func IsDescendant(items []Item, sourceID, targetID string) bool {
	src, ok := Find(items, sourceID)
	if !ok {
		return false
	}
	_, found := Find(src.Children, targetID)
	return found
}

// IDs lists every id depth-first.
func IDs(items []Item) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.ID)
		out = append(out, IDs(it.Children)...)
	}
	return out
}

// Move returns a copy of items with draggedID moved relative to targetID.
// Onto appends it to the target's children; Before and After insert it next
// to the target in the target's sequence. ok is false, and items is returned
// unchanged, when the move is not possible: unknown ids, a node dropped on
// itself or on its own subtree, or no position.
func Move(items []Item, draggedID, targetID string, pos DropPosition) (out []Item, ok bool) {
	if pos == None || draggedID == targetID || IsDescendant(items, draggedID, targetID) {
		return items, false
	}
	if _, found := Find(items, targetID); !found {
		return items, false
	}

	out = Clone(items)
	src, i, found := Locate(&out, draggedID)
	if !found {
		return items, false
	}
	node := (*src)[i]
	*src = slices.Delete(*src, i, i+1)

	if pos == Onto {
		target, _ := Find(out, targetID)
		target.Children = append(target.Children, node)
		return out, true
	}

	dst, j, _ := Locate(&out, targetID)
	if pos == After {
		j++
	}
	*dst = slices.Insert(*dst, j, node)
	return out, true
}
