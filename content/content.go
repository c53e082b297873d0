package content

// Content is a (absolute_path, bytes) pair. Mutable content's path and
// byte reference may be reassigned in place by any holder of a pointer to
// it — that aliasing is the mechanism behind the "handle observes later
// puts at the same path" contract in working/staging areas. Immutable
// content is frozen at construction and used only by the committed area.
type Content struct {
	Path      string
	Bytes     []byte
	immutable bool
}

// NewMutable constructs a content entry whose fields may be reassigned in
// place via Set.
func NewMutable(path string, bytes []byte) *Content {
	return &Content{Path: path, Bytes: bytes}
}

// NewImmutable constructs a content entry that rejects Set.
func NewImmutable(path string, bytes []byte) *Content {
	return &Content{Path: path, Bytes: bytes, immutable: true}
}

// Set reassigns the path and bytes of a mutable content entry in place,
// so any other holder of this pointer observes the update. It panics if
// called on immutable content — callers must never do this; immutable
// areas never call Set, they always construct a fresh Content instead.
func (c *Content) Set(path string, bytes []byte) {
	if c.immutable {
		panic("content: Set called on immutable content")
	}
	c.Path = path
	c.Bytes = bytes
}

// Immutable reports whether this entry rejects in-place mutation.
func (c *Content) Immutable() bool {
	return c.immutable
}
