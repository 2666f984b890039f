package depqueue

import "fmt"

// Topic is a named vertex in the dependency graph: the items that
// provide it and the items that require it. Topic is a passive record;
// all mutation happens in Queue under the monitor (spec.md §4.4).
type Topic struct {
	name       string
	providedBy []*Item
	requiredBy []*Item
}

func newTopic(name string) (*Topic, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: topic name must be non-empty", ErrInvalidArgument)
	}
	return &Topic{name: name}, nil
}

// Name returns the topic's name.
func (t *Topic) Name() string { return t.name }

// ProvidedBy returns a snapshot of the items providing this topic, in
// insertion order.
func (t *Topic) ProvidedBy() []*Item {
	out := make([]*Item, len(t.providedBy))
	copy(out, t.providedBy)
	return out
}

// RequiredBy returns a snapshot of the items requiring this topic, in
// insertion order.
func (t *Topic) RequiredBy() []*Item {
	out := make([]*Item, len(t.requiredBy))
	copy(out, t.requiredBy)
	return out
}

// empty reports whether neither providedBy nor requiredBy has entries —
// the condition under which the Topic must be removed from the Queue's
// map (spec.md §3: "destroyed when its provided-by and required-by both
// become empty").
func (t *Topic) empty() bool {
	return len(t.providedBy) == 0 && len(t.requiredBy) == 0
}

// satisfied reports whether every item providing this topic has
// completed — the point at which items requiring it may be notified
// (spec.md glossary: "An item requiring topic t waits until every item
// providing t is complete").
func (t *Topic) satisfied() bool {
	return len(t.providedBy) == 0
}

func (t *Topic) addProvidedBy(it *Item) {
	t.providedBy = append(t.providedBy, it)
}

func (t *Topic) addRequiredBy(it *Item) {
	t.requiredBy = append(t.requiredBy, it)
}

func (t *Topic) removeProvidedBy(it *Item) {
	t.providedBy = removeItem(t.providedBy, it)
}

func (t *Topic) removeRequiredBy(it *Item) {
	t.requiredBy = removeItem(t.requiredBy, it)
}

func removeItem(items []*Item, target *Item) []*Item {
	for i, it := range items {
		if it == target {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}
