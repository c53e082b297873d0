package plumbing

// ObjectStore is a hash-indexed mapping from Hash to RepoObject, with a
// secondary two-level index grouping objects by their hash's first two hex
// characters, mirroring Git's on-disk fan-out even though everything here
// lives in process memory. Insertion is idempotent: putting an object
// whose hash already exists is a no-op — the incoming instance is dropped
// and the first writer's object stays addressable.
type ObjectStore struct {
	objects map[Hash]RepoObject
	prefix  map[string]map[string]RepoObject
}

// NewObjectStore returns an empty store.
func NewObjectStore() *ObjectStore {
	return &ObjectStore{
		objects: make(map[Hash]RepoObject),
		prefix:  make(map[string]map[string]RepoObject),
	}
}

// Put idempotently inserts an object. It has already been assigned its
// hash by the caller (HashObjectWrite).
func (s *ObjectStore) Put(obj RepoObject) {
	h := obj.Hash()
	if _, exists := s.objects[h]; exists {
		return
	}
	s.objects[h] = obj

	prefixKey, suffixKey := splitHash(h)
	bucket, ok := s.prefix[prefixKey]
	if !ok {
		bucket = make(map[string]RepoObject)
		s.prefix[prefixKey] = bucket
	}
	bucket[suffixKey] = obj
}

// Get looks up an object by its full hash.
func (s *ObjectStore) Get(h Hash) (RepoObject, bool) {
	obj, ok := s.objects[h]
	return obj, ok
}

// Remove deletes an object from both structures, pruning the prefix bucket
// if it becomes empty.
func (s *ObjectStore) Remove(h Hash) {
	if _, ok := s.objects[h]; !ok {
		return
	}
	delete(s.objects, h)

	prefixKey, suffixKey := splitHash(h)
	if bucket, ok := s.prefix[prefixKey]; ok {
		delete(bucket, suffixKey)
		if len(bucket) == 0 {
			delete(s.prefix, prefixKey)
		}
	}
}

// Clear empties the store.
func (s *ObjectStore) Clear() {
	s.objects = make(map[Hash]RepoObject)
	s.prefix = make(map[string]map[string]RepoObject)
}

// Len returns the number of distinct objects held.
func (s *ObjectStore) Len() int {
	return len(s.objects)
}

// Prefix returns every object whose hash starts with the given two-hex-char
// prefix, for cheap debug-dump iteration.
func (s *ObjectStore) Prefix(prefixKey string) map[string]RepoObject {
	return s.prefix[prefixKey]
}

func splitHash(h Hash) (prefixKey, suffixKey string) {
	s := string(h)
	if len(s) < 2 {
		return s, ""
	}
	return s[:2], s[2:]
}

// HashObjectWrite serializes obj, derives its hash, assigns it, and
// idempotently inserts it into the store. Returns the (possibly
// pre-existing) hash.
func HashObjectWrite(store *ObjectStore, obj RepoObject) Hash {
	h := HashObject(obj.Type(), obj.Encode())
	obj.SetHash(h)
	store.Put(obj)
	return h
}

// HashObjectWriteBlob is the common case of wrapping raw bytes in a Blob
// and writing it.
func HashObjectWriteBlob(store *ObjectStore, content []byte) (*Blob, Hash) {
	b := NewBlob(content)
	h := HashObjectWrite(store, b)
	return b, h
}

// HashObjectWriteString wraps a UTF-8 string as a Blob and writes it.
func HashObjectWriteString(store *ObjectStore, s string) (*Blob, Hash) {
	return HashObjectWriteBlob(store, []byte(s))
}

// CatFile returns the object for a hash.
func CatFile(store *ObjectStore, h Hash) (RepoObject, bool) {
	return store.Get(h)
}

// CatFileType returns the object type for a hash.
func CatFileType(store *ObjectStore, h Hash) (ObjectType, bool) {
	obj, ok := store.Get(h)
	if !ok {
		return "", false
	}
	return obj.Type(), true
}
