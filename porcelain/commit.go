package porcelain

import (
	"time"

	"github.com/brickster241/nanovc/plumbing"
)

// CommitAll composes write_tree + commit_tree + ref update: it snapshots
// staging into the object store, rebuilds the committed area from
// staging, writes a commit object parented on the current branch's
// commit (if any), and advances that branch. Matches
// RepoEngine.commitAll.
func (r *Repo) CommitAll(message string, createSnapshots bool) (*plumbing.Commit, error) {
	var parents []plumbing.Hash
	if refName, ok := r.DB.HEAD.ReferenceName(); ok {
		if h, ok := r.DB.Heads.Get(refName); ok {
			parents = append(parents, h)
		}
	}
	return r.commitAllWithParents(message, createSnapshots, parents...)
}

// CommitAllUseCommitParentHashes is CommitAll without deriving the parent
// from HEAD's branch — callers supply explicit parents instead. (Merge
// does not call it; it commits through CommitAll.) Matches
// RepoEngine.commitAll_UseCommitParentHashes.
func (r *Repo) CommitAllUseCommitParentHashes(message string, createSnapshots bool, parents ...plumbing.Hash) (*plumbing.Commit, error) {
	return r.commitAllWithParents(message, createSnapshots, parents...)
}

func (r *Repo) commitAllWithParents(message string, createSnapshots bool, parents ...plumbing.Hash) (*plumbing.Commit, error) {
	treeHash := plumbing.WriteTree(r.DB.Store, r.Staging)

	r.Committed.Clear()
	for _, item := range r.Staging.SnapshotAsList() {
		payload := item.Bytes
		if createSnapshots {
			payload = append([]byte(nil), item.Bytes...)
		}
		if _, err := r.Committed.PutContent(item.Path, payload); err != nil {
			return nil, err
		}
	}
	r.Committed.Freeze()

	author, committer := "", ""
	if a, err := r.DB.Config.AuthorInfo(); err == nil {
		author = a.Name + " <" + a.Email + ">"
		committer = author
	}

	now := time.Now()
	commit, hash := plumbing.CommitTree(r.DB.Store, treeHash, message, author, now, committer, now, parents...)

	if refName, ok := r.DB.HEAD.ReferenceName(); ok {
		plumbing.UpdateRef(r.DB.Heads, refName, hash)
	}

	logger.WithFields(map[string]interface{}{
		"repo_id": r.ID,
		"hash":    hash,
	}).Info("commit created")

	return commit, nil
}
