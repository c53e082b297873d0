package porcelain

import (
	"bytes"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/brickster241/nanovc/plumbing"
)

// DiffKind classifies one path's change between a common ancestor and a
// side of a three-way merge.
type DiffKind int

const (
	Added DiffKind = iota
	Changed
	Deleted
)

// DiffEntry is one path's change relative to the common ancestor.
type DiffEntry struct {
	Path  string
	Kind  DiffKind
	Bytes []byte
}

// ErrNoCommonAncestor is raised when the two commits being merged share
// no history at all.
var ErrNoCommonAncestor = errors.New("no common ancestor")

// Merge performs a three-way merge of commits a and b into destBranch:
// it finds their common ancestor, diffs each side against it, checks out
// destBranch, applies a's diff then b's diff (b wins conflicts), and
// commits the result. Matches spec.md §4.13 — this driver has no
// equivalent method body anywhere in the original source (see
// DESIGN.md); it is built from the already-grounded RevList/Checkout
// primitives.
func (r *Repo) Merge(aCommitish, bCommitish, destBranch, message string) (*plumbing.Commit, error) {
	aHash, err := plumbing.ResolveCommit(r.DB.Store, r.DB.HEAD, r.DB.Heads, aCommitish)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve merge source %q", aCommitish)
	}
	bHash, err := plumbing.ResolveCommit(r.DB.Store, r.DB.HEAD, r.DB.Heads, bCommitish)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve merge source %q", bCommitish)
	}

	ancestorHash, err := commonAncestor(r.DB.Store, aHash, bHash)
	if err != nil {
		return nil, err
	}

	if _, err := r.Checkout(string(ancestorHash), 0); err != nil {
		return nil, errors.Wrap(err, "checkout common ancestor")
	}
	ancestorSnapshot := r.snapshotCommittedBytes()

	if _, err := r.Checkout(string(aHash), 0); err != nil {
		return nil, errors.Wrapf(err, "checkout %q", aCommitish)
	}
	aDiff := diffAgainst(ancestorSnapshot, r.snapshotCommittedBytes())

	if _, err := r.Checkout(string(bHash), 0); err != nil {
		return nil, errors.Wrapf(err, "checkout %q", bCommitish)
	}
	bDiff := diffAgainst(ancestorSnapshot, r.snapshotCommittedBytes())

	if _, err := r.Checkout(destBranch, 0); err != nil {
		return nil, errors.Wrapf(err, "checkout destination branch %q", destBranch)
	}

	var merr *multierror.Error
	applyDiff(r, aDiff, &merr)
	applyDiff(r, bDiff, &merr) // b wins where both touch the same path
	if merr != nil {
		if err := merr.ErrorOrNil(); err != nil {
			return nil, err
		}
	}

	r.AddAll(true)
	commit, err := r.CommitAll(message, true)
	if err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"repo_id": r.ID,
		"branch":  destBranch,
		"hash":    commit.Hash(),
	}).Info("merge committed")

	return commit, nil
}

// commonAncestor finds the first hash in a's ancestor set (DFS pre-order,
// as produced by RevList) that also appears in b's ancestor set.
func commonAncestor(store *plumbing.ObjectStore, a, b plumbing.Hash) (plumbing.Hash, error) {
	aAncestors, err := plumbing.RevList(store, a)
	if err != nil {
		return "", err
	}
	bAncestors, err := plumbing.RevList(store, b)
	if err != nil {
		return "", err
	}

	bSet := make(map[plumbing.Hash]bool, len(bAncestors))
	for _, c := range bAncestors {
		bSet[c.Hash()] = true
	}
	for _, c := range aAncestors {
		if bSet[c.Hash()] {
			return c.Hash(), nil
		}
	}
	return "", ErrNoCommonAncestor
}

func (r *Repo) snapshotCommittedBytes() map[string][]byte {
	out := map[string][]byte{}
	for path, c := range r.Committed.SnapshotAsMap() {
		out[path] = c.Bytes
	}
	return out
}

// diffAgainst computes side's changes relative to ancestor: Added for
// paths absent in ancestor, Deleted for paths absent in side, Changed
// for paths present in both with different bytes.
func diffAgainst(ancestor, side map[string][]byte) []DiffEntry {
	var out []DiffEntry
	for path, b := range side {
		if ab, ok := ancestor[path]; !ok {
			out = append(out, DiffEntry{Path: path, Kind: Added, Bytes: b})
		} else if !bytes.Equal(ab, b) {
			out = append(out, DiffEntry{Path: path, Kind: Changed, Bytes: b})
		}
	}
	for path := range ancestor {
		if _, ok := side[path]; !ok {
			out = append(out, DiffEntry{Path: path, Kind: Deleted})
		}
	}
	return out
}

// applyDiff replays one side's diff onto the working area. Later calls
// win on conflicting paths, which is how "b's diff wins" is implemented
// — it's simply applied second.
func applyDiff(r *Repo, diff []DiffEntry, merr **multierror.Error) {
	for _, d := range diff {
		switch d.Kind {
		case Added, Changed:
			r.Working.PutContent(d.Path, d.Bytes)
		case Deleted:
			r.Working.RemoveContent(d.Path)
		default:
			*merr = multierror.Append(*merr, errors.Errorf("unknown diff kind for %q", d.Path))
		}
	}
}
