package plumbing

import (
	"github.com/pkg/errors"

	"github.com/brickster241/nanovc/content"
)

// entryRef points at one slot in a buildTree's not-yet-hashed entry list,
// so a child tree's eventual hash can be written back into its parent's
// entry once the child itself has been hashed.
type entryRef struct {
	tree  *buildTree
	index int
}

// buildTree is write_tree's working representation of one tree node while
// its children are still being discovered and hashed.
type buildTree struct {
	path    string
	entries []TreeEntry
}

// WriteTree folds the staging area into a single root Tree and returns its
// hash. Every hash appearing in the result (and everything it reaches) is
// resolvable in store by the time this returns, because blobs are hashed
// first, then trees are hashed deepest-first.
func WriteTree(store *ObjectStore, staging *content.MutableArea) Hash {
	root := &buildTree{path: "/"}
	pathToTree := map[string]*buildTree{"/": root}
	creationOrder := []*buildTree{root}
	parentEntryOf := map[string]entryRef{}

	type pendingBlob struct {
		bytes []byte
		ref   entryRef
	}
	var pending []pendingBlob

	for _, item := range staging.SnapshotAsList() {
		segments := content.SplitIntoParts(item.Path)
		current := root
		currentPath := "/"

		for i, seg := range segments {
			last := i == len(segments)-1
			if last {
				idx := len(current.entries)
				current.entries = append(current.entries, TreeEntry{Name: seg})
				pending = append(pending, pendingBlob{bytes: item.Bytes, ref: entryRef{tree: current, index: idx}})
				continue
			}

			childPath := content.Resolve(currentPath, seg) + "/"
			child, exists := pathToTree[childPath]
			if !exists {
				child = &buildTree{path: childPath}
				pathToTree[childPath] = child
				creationOrder = append(creationOrder, child)

				idx := len(current.entries)
				current.entries = append(current.entries, TreeEntry{Name: seg})
				parentEntryOf[childPath] = entryRef{tree: current, index: idx}
			}
			current = child
			currentPath = childPath
		}
	}

	// Blobs hashed in insertion order, then their bound leaf entries filled in.
	for _, p := range pending {
		_, h := HashObjectWriteBlob(store, p.bytes)
		p.ref.tree.entries[p.ref.index].HashValue = h
		p.ref.tree.entries[p.ref.index].ObjectType = BlobType
	}

	// Trees hashed deepest-first: walk the creation order in reverse.
	var rootHash Hash
	var rootTree *Tree
	for i := len(creationOrder) - 1; i >= 0; i-- {
		bt := creationOrder[i]
		tree := &Tree{Entries: bt.entries}
		h := HashObjectWrite(store, tree)
		if bt.path == "/" {
			rootHash = h
			rootTree = tree
			continue
		}
		ref := parentEntryOf[bt.path]
		ref.tree.entries[ref.index].HashValue = h
		ref.tree.entries[ref.index].ObjectType = TreeType
	}

	_ = rootTree
	return rootHash
}

// ReadTree expands a tree back into content, writing each Blob entry into
// staging at prefixPath+.../name (overwriting any entry already there) and
// returning the accumulated list. Tree entries recurse with the extended
// prefix; Commit entries are ignored. Fails with ErrInvalidTree if
// rootHash does not resolve to a Tree.
func ReadTree(store *ObjectStore, staging *content.MutableArea, rootHash Hash, prefixPath string) ([]*content.Content, error) {
	obj, ok := store.Get(rootHash)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidTree, "hash %q not found in store", rootHash)
	}
	tree, ok := obj.(*Tree)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidTree, "hash %q is a %s, not a tree", rootHash, obj.Type())
	}

	var results []*content.Content
	if err := readTreeRecursive(store, staging, tree, prefixPath, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func readTreeRecursive(store *ObjectStore, staging *content.MutableArea, tree *Tree, prefix string, results *[]*content.Content) error {
	for _, e := range tree.Entries {
		switch e.ObjectType {
		case BlobType:
			obj, ok := store.Get(e.HashValue)
			if !ok {
				return errors.Wrapf(ErrInvalidTree, "blob %q referenced by %q missing", e.HashValue, e.Name)
			}
			blob, ok := obj.(*Blob)
			if !ok {
				return errors.Wrapf(ErrUnexpectedTreeEntry, "entry %q tagged blob is a %s", e.Name, obj.Type())
			}
			path := content.Resolve(prefix, e.Name)
			c := staging.PutContent(path, blob.Content)
			*results = append(*results, c)

		case TreeType:
			obj, ok := store.Get(e.HashValue)
			if !ok {
				return errors.Wrapf(ErrInvalidTree, "tree %q referenced by %q missing", e.HashValue, e.Name)
			}
			subtree, ok := obj.(*Tree)
			if !ok {
				return errors.Wrapf(ErrUnexpectedTreeEntry, "entry %q tagged tree is a %s", e.Name, obj.Type())
			}
			childPrefix := content.Resolve(prefix, e.Name) + "/"
			if err := readTreeRecursive(store, staging, subtree, childPrefix, results); err != nil {
				return err
			}

		case CommitType:
			// Commit entries (submodule-like references) are ignored on read.

		default:
			return errors.Wrapf(ErrUnexpectedTreeEntry, "entry %q has unknown type", e.Name)
		}
	}
	return nil
}
