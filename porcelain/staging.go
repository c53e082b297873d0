package porcelain

import (
	"github.com/pkg/errors"

	"github.com/brickster241/nanovc/content"
	"github.com/brickster241/nanovc/plumbing"
)

// PutWorkingAreaContent is a thin facade over the working area, matching
// RepoEngine.putWorkingAreaContent.
func (r *Repo) PutWorkingAreaContent(path string, bytes []byte) *content.Content {
	return r.Working.PutContent(content.ToAbsolute(path), bytes)
}

// GetWorkingAreaContent is a thin facade over the working area, matching
// RepoEngine.getWorkingAreaContent.
func (r *Repo) GetWorkingAreaContent(path string) (*content.Content, bool) {
	return r.Working.GetContent(content.ToAbsolute(path))
}

// Stage bypasses the working area and places content directly in the
// staging area, matching RepoEngine.stage.
func (r *Repo) Stage(path string, bytes []byte) *content.Content {
	return r.Staging.PutContent(content.ToAbsolute(path), bytes)
}

// UpdateIndexAdd copies working-area content at path into the staging
// area by reference, with no byte copy, matching
// RepoEngine.update_index_add.
func (r *Repo) UpdateIndexAdd(path string) error {
	abs := content.ToAbsolute(path)
	c, ok := r.Working.GetContent(abs)
	if !ok {
		return errors.Wrapf(plumbing.ErrReferenceNotFound, "no working-area content at %q", abs)
	}
	r.Staging.PutContent(c.Path, c.Bytes)
	return nil
}

// UpdateIndexAddCacheInfo fetches a Blob (or any object's serialized
// bytes) by hash and creates staging content at stagingPath, matching
// RepoEngine.update_index_add_cacheInfo.
func (r *Repo) UpdateIndexAddCacheInfo(hash plumbing.Hash, stagingPath string) (*content.Content, error) {
	obj, ok := plumbing.CatFile(r.DB.Store, hash)
	if !ok {
		return nil, errors.Wrapf(plumbing.ErrInvalidTree, "hash %q not found in store", hash)
	}

	var payload []byte
	if blob, ok := obj.(*plumbing.Blob); ok {
		payload = blob.Content
	} else {
		payload = obj.Encode()
	}

	return r.Staging.PutContent(content.ToAbsolute(stagingPath), payload), nil
}

// AddAll iterates every working-area item and writes it to the staging
// area. If createSnapshots is true, each payload is deep-copied;
// otherwise the byte slice is aliased directly, matching
// RepoEngine.addAll. Note it only ever adds — it never removes a staging
// entry whose working counterpart was deleted (open question 3); a
// deletion must be staged explicitly via RemoveContent on both areas.
func (r *Repo) AddAll(createSnapshots bool) {
	for _, item := range r.Working.SnapshotAsList() {
		payload := item.Bytes
		if createSnapshots {
			payload = append([]byte(nil), item.Bytes...)
		}
		r.Staging.PutContent(item.Path, payload)
	}
}
