package porcelain

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/brickster241/nanovc/plumbing"
)

// ValidateInvariants checks spec.md §8 invariants 4 and 5 (tree closure,
// commit parent closure) against every commit reachable from every head.
// It aggregates every violation found rather than stopping at the first
// one, the way the teacher's CLI commands fail fast on a single error —
// this is a test/debug helper, not part of the committed contract.
func (r *Repo) ValidateInvariants() error {
	var merr *multierror.Error
	seen := map[plumbing.Hash]bool{}

	for _, name := range r.DB.Heads.Names() {
		h, _ := r.DB.Heads.Get(name)
		commits, err := plumbing.GetCommits(r.DB.Store, h)
		if err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "walking head %q", name))
			continue
		}
		for _, c := range commits {
			if seen[c.Hash()] {
				continue
			}
			seen[c.Hash()] = true
			r.validateCommit(c, &merr)
		}
	}
	return merr.ErrorOrNil()
}

func (r *Repo) validateCommit(c *plumbing.Commit, merr **multierror.Error) {
	for _, parent := range c.ParentHashes {
		if _, ok := r.DB.Store.Get(parent); !ok {
			*merr = multierror.Append(*merr, errors.Errorf("commit %q: parent %q not in store", c.Hash(), parent))
		}
	}

	treeObj, ok := r.DB.Store.Get(c.TreeHash)
	if !ok {
		*merr = multierror.Append(*merr, errors.Errorf("commit %q: tree %q not in store", c.Hash(), c.TreeHash))
		return
	}
	tree, ok := treeObj.(*plumbing.Tree)
	if !ok {
		*merr = multierror.Append(*merr, errors.Errorf("commit %q: tree_hash %q is a %s, not a tree", c.Hash(), c.TreeHash, treeObj.Type()))
		return
	}
	r.validateTreeClosure(tree, merr)
}

func (r *Repo) validateTreeClosure(t *plumbing.Tree, merr **multierror.Error) {
	for _, e := range t.Entries {
		obj, ok := r.DB.Store.Get(e.HashValue)
		if !ok {
			*merr = multierror.Append(*merr, errors.Errorf("tree entry %q: hash %q not in store", e.Name, e.HashValue))
			continue
		}
		if e.ObjectType == plumbing.TreeType {
			if subtree, ok := obj.(*plumbing.Tree); ok {
				r.validateTreeClosure(subtree, merr)
			}
		}
	}
}
