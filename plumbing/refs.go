package plumbing

import (
	"github.com/pkg/errors"
)

// ReferenceCollection is a named-hash lookup table, used for both the
// `heads` and `tags` collections on a repo's database.
type ReferenceCollection struct {
	refs map[string]Hash
}

// NewReferenceCollection returns an empty collection.
func NewReferenceCollection() *ReferenceCollection {
	return &ReferenceCollection{refs: make(map[string]Hash)}
}

// Get looks up a reference by name.
func (c *ReferenceCollection) Get(name string) (Hash, bool) {
	h, ok := c.refs[name]
	return h, ok
}

// Update creates the reference if absent, or overwrites its hash if
// present.
func (c *ReferenceCollection) Update(name string, h Hash) {
	c.refs[name] = h
}

// Remove deletes a reference; removing an absent name is a silent no-op.
func (c *ReferenceCollection) Remove(name string) {
	delete(c.refs, name)
}

// Names returns every reference name currently held.
func (c *ReferenceCollection) Names() []string {
	names := make([]string, 0, len(c.refs))
	for n := range c.refs {
		names = append(names, n)
	}
	return names
}

// Len reports how many references exist.
func (c *ReferenceCollection) Len() int {
	return len(c.refs)
}

// SymbolicReference is the HEAD slot: an indirection holding the name of
// a head reference. Nil means no checkout has occurred yet.
type SymbolicReference struct {
	name *string
}

// ReferenceName returns the symbolic reference's target name, if set.
func (s *SymbolicReference) ReferenceName() (string, bool) {
	if s == nil || s.name == nil {
		return "", false
	}
	return *s.name, true
}

// SymbolicRef points the symbolic reference (typically HEAD) at name,
// creating it if this is the first call.
func SymbolicRef(ref **SymbolicReference, name string) {
	if *ref == nil {
		*ref = &SymbolicReference{}
	}
	n := name
	(*ref).name = &n
}

// UpdateRef creates or overwrites a named reference's hash within the
// given collection (heads or tags).
func UpdateRef(collection *ReferenceCollection, name string, h Hash) {
	collection.Update(name, h)
}

// ResolveReference resolves a name to a head reference's hash.
//
// Passing "HEAD" dereferences once through head.ReferenceName(); if HEAD's
// reference name is itself the literal string "HEAD", resolution fails
// (cycle guard) rather than looping. Any other name is looked up directly
// in heads — note this never falls back to the object store, so a
// checkout that stashed a raw commit hash into HEAD's reference name will
// not resolve here (see ResolveCommit, and design note 5).
func ResolveReference(head *SymbolicReference, heads *ReferenceCollection, nameOrHEAD string) (Hash, error) {
	name := nameOrHEAD
	if name == "HEAD" {
		refName, ok := head.ReferenceName()
		if !ok {
			return "", errors.Wrap(ErrReferenceNotFound, "HEAD is not set")
		}
		if refName == "HEAD" {
			return "", errors.Wrap(ErrReferenceNotFound, "HEAD points at itself")
		}
		name = refName
	}
	h, ok := heads.Get(name)
	if !ok {
		return "", errors.Wrapf(ErrReferenceNotFound, "head %q", name)
	}
	return h, nil
}

// ResolveCommit resolves a name, hash, or "HEAD" to a Commit hash.
//
// "HEAD" dereferences via head.ReferenceName() and recurses. Otherwise,
// if the input itself resolves in the object store to a Commit, that hash
// is returned directly. Failing that, it is looked up as a head reference
// and that ref's hash is returned. Anything else fails with
// ErrReferenceNotFound.
func ResolveCommit(store *ObjectStore, head *SymbolicReference, heads *ReferenceCollection, nameOrHashOrHEAD string) (Hash, error) {
	if nameOrHashOrHEAD == "HEAD" {
		refName, ok := head.ReferenceName()
		if !ok {
			return "", errors.Wrap(ErrReferenceNotFound, "HEAD is not set")
		}
		return ResolveCommit(store, head, heads, refName)
	}

	if obj, ok := store.Get(Hash(nameOrHashOrHEAD)); ok {
		if obj.Type() == CommitType {
			return obj.Hash(), nil
		}
	}

	if h, ok := heads.Get(nameOrHashOrHEAD); ok {
		return h, nil
	}

	return "", errors.Wrapf(ErrReferenceNotFound, "commit-ish %q", nameOrHashOrHEAD)
}
