package content

import "github.com/pkg/errors"

// ErrImmutableContentModified is raised by a frozen CommittedArea when a
// mutation is attempted.
var ErrImmutableContentModified = errors.New("immutable content modified")

// MutableArea backs both the working area and the staging area: a list of
// mutable content, looked up by linear scan over path. Put on an existing
// path mutates that entry's byte reference in place (any earlier-obtained
// pointer to it observes the new bytes); put on a new path appends.
type MutableArea struct {
	items []*Content
}

// NewMutableArea returns an empty working/staging area.
func NewMutableArea() *MutableArea {
	return &MutableArea{}
}

// PutContent inserts or in-place updates the content at path, returning
// the (possibly pre-existing) handle.
func (a *MutableArea) PutContent(path string, bytes []byte) *Content {
	for _, c := range a.items {
		if c.Path == path {
			c.Set(path, bytes)
			return c
		}
	}
	c := NewMutable(path, bytes)
	a.items = append(a.items, c)
	return c
}

// GetContent looks up content by path.
func (a *MutableArea) GetContent(path string) (*Content, bool) {
	for _, c := range a.items {
		if c.Path == path {
			return c, true
		}
	}
	return nil, false
}

// RemoveContent deletes the entry at path, if any.
func (a *MutableArea) RemoveContent(path string) {
	for i, c := range a.items {
		if c.Path == path {
			a.items = append(a.items[:i], a.items[i+1:]...)
			return
		}
	}
}

// HasContent reports whether path is present.
func (a *MutableArea) HasContent(path string) bool {
	_, ok := a.GetContent(path)
	return ok
}

// SnapshotAsList returns the area's entries in insertion order.
func (a *MutableArea) SnapshotAsList() []*Content {
	out := make([]*Content, len(a.items))
	copy(out, a.items)
	return out
}

// SnapshotAsMap returns the area's entries keyed by path.
func (a *MutableArea) SnapshotAsMap() map[string]*Content {
	out := make(map[string]*Content, len(a.items))
	for _, c := range a.items {
		out[c.Path] = c
	}
	return out
}

// Clear empties the area.
func (a *MutableArea) Clear() {
	a.items = nil
}

// CommittedArea is a mutable map of immutable content: the materialized
// snapshot of the last commit or checkout. It supports a one-way freeze
// transition after which Put/Remove fail with ErrImmutableContentModified,
// until Clear unfreezes it.
type CommittedArea struct {
	items  map[string]*Content
	frozen bool
}

// NewCommittedArea returns an empty, unfrozen committed area.
func NewCommittedArea() *CommittedArea {
	return &CommittedArea{items: make(map[string]*Content)}
}

// PutContent creates a new immutable wrapper at path, replacing whatever
// was there. Fails if the area is frozen.
func (a *CommittedArea) PutContent(path string, bytes []byte) (*Content, error) {
	if a.frozen {
		return nil, errors.Wrapf(ErrImmutableContentModified, "put %q", path)
	}
	c := NewImmutable(path, bytes)
	a.items[path] = c
	return c, nil
}

// GetContent looks up content by path.
func (a *CommittedArea) GetContent(path string) (*Content, bool) {
	c, ok := a.items[path]
	return c, ok
}

// RemoveContent deletes the entry at path. Fails if the area is frozen.
func (a *CommittedArea) RemoveContent(path string) error {
	if a.frozen {
		return errors.Wrapf(ErrImmutableContentModified, "remove %q", path)
	}
	delete(a.items, path)
	return nil
}

// HasContent reports whether path is present.
func (a *CommittedArea) HasContent(path string) bool {
	_, ok := a.items[path]
	return ok
}

// SnapshotAsMap returns a copy of the area's path→content mapping.
func (a *CommittedArea) SnapshotAsMap() map[string]*Content {
	out := make(map[string]*Content, len(a.items))
	for k, v := range a.items {
		out[k] = v
	}
	return out
}

// SnapshotAsList returns the area's entries in unspecified map order.
func (a *CommittedArea) SnapshotAsList() []*Content {
	out := make([]*Content, 0, len(a.items))
	for _, v := range a.items {
		out = append(out, v)
	}
	return out
}

// Clear empties the area and unfreezes it in one step.
func (a *CommittedArea) Clear() {
	a.items = make(map[string]*Content)
	a.frozen = false
}

// Freeze transitions the area into its read-only state.
func (a *CommittedArea) Freeze() {
	a.frozen = true
}

// Frozen reports the area's current freeze state.
func (a *CommittedArea) Frozen() bool {
	return a.frozen
}
