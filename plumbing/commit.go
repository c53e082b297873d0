package plumbing

import (
	"time"

	"github.com/pkg/errors"
)

// CommitTree constructs a Commit object from its fields and inserts it
// into the store, returning its hash.
func CommitTree(
	store *ObjectStore,
	treeHash Hash,
	message string,
	author string,
	authorTimestamp time.Time,
	committer string,
	committerTimestamp time.Time,
	parentHashes ...Hash,
) (*Commit, Hash) {
	c := &Commit{
		TreeHash:           treeHash,
		Author:             author,
		AuthorTimestamp:    authorTimestamp,
		Committer:          committer,
		CommitterTimestamp: committerTimestamp,
		Message:            message,
		ParentHashes: append([]Hash(nil), parentHashes...),
	}
	h := HashObjectWrite(store, c)
	return c, h
}

// LogEntry projects a Commit's loggable fields.
type LogEntry struct {
	Hash               Hash
	Author             string
	AuthorTimestamp    time.Time
	Committer          string
	CommitterTimestamp time.Time
	Message            string
}

// RevList returns every commit reachable from commitHash by DFS over
// parent_hashes, emitted once each in pre-order of first visit — not
// chronological order, despite what a docstring might suggest elsewhere.
// This is the unlimited top-level call; see RevListDepth for the bounded
// variant checkout uses.
func RevList(store *ObjectStore, commitHash Hash) ([]*Commit, error) {
	seen := make(map[Hash]bool)
	var out []*Commit
	if err := walkRevList(store, commitHash, seen, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RevListDepth is RevList bounded to depthLimit hops from commitHash:
// depthLimit < 0 visits nothing at all; depthLimit == 0 visits only
// commitHash itself; depthLimit == n also visits every ancestor reachable
// within n parent-hops. Checkout derives depthLimit from a caller-supplied
// revision offset (depthLimit = -revisionOffset).
func RevListDepth(store *ObjectStore, commitHash Hash, depthLimit int) ([]*Commit, error) {
	if depthLimit < 0 {
		return nil, nil
	}
	seen := make(map[Hash]bool)
	var out []*Commit
	if err := walkRevListDepth(store, commitHash, depthLimit, seen, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func walkRevList(store *ObjectStore, h Hash, seen map[Hash]bool, out *[]*Commit) error {
	if h.Empty() || seen[h] {
		return nil
	}

	obj, ok := store.Get(h)
	if !ok {
		return errors.Wrapf(ErrInvalidCommit, "hash %q not found", h)
	}
	commit, ok := obj.(*Commit)
	if !ok {
		return errors.Wrapf(ErrInvalidCommit, "hash %q is a %s, not a commit", h, obj.Type())
	}

	seen[h] = true
	*out = append(*out, commit)

	for _, parent := range commit.ParentHashes {
		if err := walkRevList(store, parent, seen, out); err != nil {
			return err
		}
	}
	return nil
}

func walkRevListDepth(store *ObjectStore, h Hash, depthLimit int, seen map[Hash]bool, out *[]*Commit) error {
	if h.Empty() || seen[h] {
		return nil
	}

	obj, ok := store.Get(h)
	if !ok {
		return errors.Wrapf(ErrInvalidCommit, "hash %q not found", h)
	}
	commit, ok := obj.(*Commit)
	if !ok {
		return errors.Wrapf(ErrInvalidCommit, "hash %q is a %s, not a commit", h, obj.Type())
	}

	seen[h] = true
	*out = append(*out, commit)

	if depthLimit == 0 {
		return nil
	}
	for _, parent := range commit.ParentHashes {
		if err := walkRevListDepth(store, parent, depthLimit-1, seen, out); err != nil {
			return err
		}
	}
	return nil
}

func toLogEntries(commits []*Commit) []LogEntry {
	out := make([]LogEntry, len(commits))
	for i, c := range commits {
		out[i] = LogEntry{
			Hash:               c.Hash(),
			Author:             c.Author,
			AuthorTimestamp:    c.AuthorTimestamp,
			Committer:          c.Committer,
			CommitterTimestamp: c.CommitterTimestamp,
			Message:            c.Message,
		}
	}
	return out
}

// LogFromCommitHash maps RevList's result onto log entries.
func LogFromCommitHash(store *ObjectStore, commitHash Hash) ([]LogEntry, error) {
	commits, err := RevList(store, commitHash)
	if err != nil {
		return nil, err
	}
	return toLogEntries(commits), nil
}

// LogFromReferenceName logs from heads[name]'s hash, failing with
// ErrReferenceNotFound if the name is absent.
func LogFromReferenceName(store *ObjectStore, heads *ReferenceCollection, name string) ([]LogEntry, error) {
	h, ok := heads.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrReferenceNotFound, "head %q", name)
	}
	return LogFromCommitHash(store, h)
}

// Log dispatches on nameOrHash: if it resolves in the store to a Commit,
// log from that hash directly; otherwise treat it as a head name.
func Log(store *ObjectStore, heads *ReferenceCollection, nameOrHash string) ([]LogEntry, error) {
	if obj, ok := store.Get(Hash(nameOrHash)); ok {
		if obj.Type() == CommitType {
			return LogFromCommitHash(store, obj.Hash())
		}
	}
	return LogFromReferenceName(store, heads, nameOrHash)
}

// GetCommits is the eager convenience wrapper over RevList returning
// Commit objects directly (supplemental — see SPEC_FULL.md §5).
func GetCommits(store *ObjectStore, commitHash Hash) ([]*Commit, error) {
	return RevList(store, commitHash)
}

// GetCommitStream is the lazy counterpart to GetCommits, yielding commits
// one at a time via a callback instead of building a full slice up front.
// Returning false from yield stops the walk early.
func GetCommitStream(store *ObjectStore, commitHash Hash, yield func(*Commit) bool) error {
	seen := make(map[Hash]bool)
	return walkRevListStream(store, commitHash, seen, yield)
}

func walkRevListStream(store *ObjectStore, h Hash, seen map[Hash]bool, yield func(*Commit) bool) error {
	if h.Empty() || seen[h] {
		return nil
	}
	obj, ok := store.Get(h)
	if !ok {
		return errors.Wrapf(ErrInvalidCommit, "hash %q not found", h)
	}
	commit, ok := obj.(*Commit)
	if !ok {
		return errors.Wrapf(ErrInvalidCommit, "hash %q is a %s, not a commit", h, obj.Type())
	}
	seen[h] = true
	if !yield(commit) {
		return nil
	}
	for _, parent := range commit.ParentHashes {
		if err := walkRevListStream(store, parent, seen, yield); err != nil {
			return err
		}
	}
	return nil
}
