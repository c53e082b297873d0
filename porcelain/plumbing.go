package porcelain

import (
	"time"

	"github.com/brickster241/nanovc/content"
	"github.com/brickster241/nanovc/plumbing"
)

// The methods below are thin repo-bound facades over the plumbing
// package's free functions — the "plumbing" half of spec.md §6's public
// API surface, scoped to one Repo's object store and refs.

func (r *Repo) CatFile(hash plumbing.Hash) (plumbing.RepoObject, bool) {
	return plumbing.CatFile(r.DB.Store, hash)
}

func (r *Repo) CatFileType(hash plumbing.Hash) (plumbing.ObjectType, bool) {
	return plumbing.CatFileType(r.DB.Store, hash)
}

func (r *Repo) HashObject(objType plumbing.ObjectType, payload []byte) plumbing.Hash {
	return plumbing.HashObject(objType, payload)
}

func (r *Repo) HashObjectWrite(obj plumbing.RepoObject) plumbing.Hash {
	return plumbing.HashObjectWrite(r.DB.Store, obj)
}

func (r *Repo) HashObjectWriteBlob(payload []byte) (*plumbing.Blob, plumbing.Hash) {
	return plumbing.HashObjectWriteBlob(r.DB.Store, payload)
}

func (r *Repo) HashObjectWriteString(s string) (*plumbing.Blob, plumbing.Hash) {
	return plumbing.HashObjectWriteString(r.DB.Store, s)
}

func (r *Repo) WriteTree() plumbing.Hash {
	return plumbing.WriteTree(r.DB.Store, r.Staging)
}

// ReadTree expands a tree back into staging-area content, matching
// plumbing.ReadTree.
func (r *Repo) ReadTree(rootHash plumbing.Hash, prefix string) ([]*content.Content, error) {
	return plumbing.ReadTree(r.DB.Store, r.Staging, rootHash, prefix)
}

func (r *Repo) CommitTree(treeHash plumbing.Hash, message string, parents ...plumbing.Hash) (*plumbing.Commit, plumbing.Hash) {
	author, committer := "", ""
	if a, err := r.DB.Config.AuthorInfo(); err == nil {
		author = a.Name + " <" + a.Email + ">"
		committer = author
	}
	now := time.Now()
	return plumbing.CommitTree(r.DB.Store, treeHash, message, author, now, committer, now, parents...)
}

func (r *Repo) RevList(commitHash plumbing.Hash) ([]*plumbing.Commit, error) {
	return plumbing.RevList(r.DB.Store, commitHash)
}

func (r *Repo) UpdateRefInHeads(name string, hash plumbing.Hash) {
	plumbing.UpdateRef(r.DB.Heads, name, hash)
}

func (r *Repo) UpdateRefInTags(name string, hash plumbing.Hash) {
	plumbing.UpdateRef(r.DB.Tags, name, hash)
}

func (r *Repo) SymbolicRef(name string) {
	plumbing.SymbolicRef(&r.DB.HEAD, name)
}

// ResolveCommit resolves a name, hash, or "HEAD" to a commit hash,
// matching plumbing.ResolveCommit scoped to this repo.
func (r *Repo) ResolveCommit(nameOrHashOrHEAD string) (plumbing.Hash, error) {
	return plumbing.ResolveCommit(r.DB.Store, r.DB.HEAD, r.DB.Heads, nameOrHashOrHEAD)
}

// ResolveReference resolves a name or "HEAD" to a head reference's hash,
// matching plumbing.ResolveReference scoped to this repo.
func (r *Repo) ResolveReference(nameOrHEAD string) (plumbing.Hash, error) {
	return plumbing.ResolveReference(r.DB.HEAD, r.DB.Heads, nameOrHEAD)
}

// Log dispatches on nameOrHash the way plumbing.Log does, scoped to this
// repo's store and heads.
func (r *Repo) Log(nameOrHash string) ([]plumbing.LogEntry, error) {
	return plumbing.Log(r.DB.Store, r.DB.Heads, nameOrHash)
}
