package porcelain

import "github.com/brickster241/nanovc/plumbing"

// Branch creates (or moves) a head ref named name to HEAD's current
// commit. A no-op if HEAD isn't resolvable yet (pre-first-commit state).
// Matches RepoEngine.branch.
func (r *Repo) Branch(name string) {
	hash, err := plumbing.ResolveReference(r.DB.HEAD, r.DB.Heads, "HEAD")
	if err != nil {
		return
	}
	plumbing.UpdateRef(r.DB.Heads, name, hash)

	logger.WithFields(map[string]interface{}{
		"repo_id": r.ID,
		"branch":  name,
		"hash":    hash,
	}).Info("branch created")
}

// BranchDelete removes the named heads, silently skipping any name that
// isn't present. Matches RepoEngine.branch_delete.
func (r *Repo) BranchDelete(names ...string) {
	for _, name := range names {
		r.DB.Heads.Remove(name)
		logger.WithFields(map[string]interface{}{
			"repo_id": r.ID,
			"branch":  name,
		}).Info("branch deleted")
	}
}

// CurrentBranchName returns HEAD's reference name, or false if HEAD
// hasn't been set yet. Matches RepoEngine.getCurrentBranchName.
func (r *Repo) CurrentBranchName() (string, bool) {
	return r.DB.HEAD.ReferenceName()
}

// GetBranchNames returns every head name currently defined (supplemental
// — see SPEC_FULL.md §5).
func (r *Repo) GetBranchNames() []string {
	return r.DB.Heads.Names()
}

// GetBranchCommitReferenceMap returns a snapshot of every head name to
// its commit hash (supplemental — see SPEC_FULL.md §5).
func (r *Repo) GetBranchCommitReferenceMap() map[string]plumbing.Hash {
	out := map[string]plumbing.Hash{}
	for _, name := range r.DB.Heads.Names() {
		if h, ok := r.DB.Heads.Get(name); ok {
			out[name] = h
		}
	}
	return out
}
