package porcelain

import (
	"github.com/pkg/errors"

	"github.com/brickster241/nanovc/content"
	"github.com/brickster241/nanovc/plumbing"
)

// Checkout resolves nameOrHashOrHEAD to a commit, walks back -revisionOffset
// steps through its parent chain (a positive offset resolves no commit and
// fails with ErrCommitsNotFound), clears and rehydrates all three content
// areas from that commit's tree, and — unless the target was literally
// "HEAD" — points HEAD's symbolic reference name at the raw input string.
// Matches RepoEngine.checkout, including design note 5: a checkout by
// hash therefore leaves HEAD's reference name unresolvable through
// ResolveReference (only ResolveCommit's object-store fallback handles it).
func (r *Repo) Checkout(nameOrHashOrHEAD string, revisionOffset int) (*plumbing.Commit, error) {
	startHash, err := plumbing.ResolveCommit(r.DB.Store, r.DB.HEAD, r.DB.Heads, nameOrHashOrHEAD)
	if err != nil {
		return nil, errors.Wrapf(plumbing.ErrCommitNotFound, "resolve %q: %s", nameOrHashOrHEAD, err)
	}

	commits, err := plumbing.RevListDepth(r.DB.Store, startHash, -revisionOffset)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, errors.Wrapf(plumbing.ErrCommitsNotFound, "no commit at offset %d from %q", revisionOffset, nameOrHashOrHEAD)
	}
	target := commits[len(commits)-1]

	r.Working.Clear()
	r.Staging.Clear()
	r.Committed.Clear()

	if err := r.walkAndCheckoutTree(target.TreeHash, "/"); err != nil {
		return nil, err
	}
	r.Committed.Freeze()

	if nameOrHashOrHEAD != "HEAD" {
		plumbing.SymbolicRef(&r.DB.HEAD, nameOrHashOrHEAD)
	}

	logger.WithFields(map[string]interface{}{
		"repo_id": r.ID,
		"hash":    target.Hash(),
	}).Info("checkout")

	return target, nil
}

// walkAndCheckoutTree recursively materializes a tree into all three
// content areas, aliasing the same byte slice across each — matching
// RepoEngine.walk_and_checkout_tree_recursively.
func (r *Repo) walkAndCheckoutTree(treeHash plumbing.Hash, prefix string) error {
	obj, ok := r.DB.Store.Get(treeHash)
	if !ok {
		return errors.Wrapf(plumbing.ErrInvalidTree, "hash %q not found in store", treeHash)
	}
	tree, ok := obj.(*plumbing.Tree)
	if !ok {
		return errors.Wrapf(plumbing.ErrInvalidTree, "hash %q is a %s, not a tree", treeHash, obj.Type())
	}

	for _, e := range tree.Entries {
		switch e.ObjectType {
		case plumbing.BlobType:
			blobObj, ok := r.DB.Store.Get(e.HashValue)
			if !ok {
				return errors.Wrapf(plumbing.ErrInvalidTree, "blob %q referenced by %q missing", e.HashValue, e.Name)
			}
			blob, ok := blobObj.(*plumbing.Blob)
			if !ok {
				return errors.Wrapf(plumbing.ErrUnexpectedTreeEntry, "entry %q tagged blob is a %s", e.Name, blobObj.Type())
			}

			path := content.Resolve(prefix, e.Name)
			r.Working.PutContent(path, blob.Content)
			r.Staging.PutContent(path, blob.Content)
			if _, err := r.Committed.PutContent(path, blob.Content); err != nil {
				return err
			}

		case plumbing.TreeType:
			childPrefix := content.Resolve(prefix, e.Name) + "/"
			if err := r.walkAndCheckoutTree(e.HashValue, childPrefix); err != nil {
				return err
			}

		default:
			return errors.Wrapf(plumbing.ErrUnexpectedTreeEntry, "entry %q has unexpected type", e.Name)
		}
	}
	return nil
}

// CheckoutPath copies a single committed-area entry back into the
// working area, deep-copying its bytes. Matches
// RepoEngine.checkout_path.
func (r *Repo) CheckoutPath(path string) (*content.Content, error) {
	abs := content.ToAbsolute(path)
	c, ok := r.Committed.GetContent(abs)
	if !ok {
		return nil, errors.Wrapf(plumbing.ErrReferenceNotFound, "no committed content at %q", abs)
	}
	copied := append([]byte(nil), c.Bytes...)
	return r.Working.PutContent(abs, copied), nil
}

// CheckoutPattern does the same as CheckoutPath for every committed-area
// entry whose path satisfies pred. Matches RepoEngine.checkout_pattern.
func (r *Repo) CheckoutPattern(pred func(path string) bool) []*content.Content {
	var out []*content.Content
	for path, c := range r.Committed.SnapshotAsMap() {
		if !pred(path) {
			continue
		}
		copied := append([]byte(nil), c.Bytes...)
		out = append(out, r.Working.PutContent(path, copied))
	}
	return out
}
