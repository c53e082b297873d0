package porcelain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brickster241/nanovc/content"
	"github.com/brickster241/nanovc/plumbing"
)

// GetDebugString renders a human-readable dump of the whole repo:
// working/staging/committed areas, refs, HEAD, and every commit
// reachable from every head, ordered by committer timestamp. Matches
// RepoEngine.getDebugString/buildTreeMap — this is the one place
// commits are sorted chronologically; rev_list/log deliberately stay
// DFS pre-order (spec.md open question 2). Supplemental, see
// SPEC_FULL.md §5.
func (r *Repo) GetDebugString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "repo %s\n", r.ID)
	if name, ok := r.DB.HEAD.ReferenceName(); ok {
		fmt.Fprintf(&b, "HEAD -> %s\n", name)
	} else {
		fmt.Fprintln(&b, "HEAD -> (unset)")
	}

	fmt.Fprintln(&b, "heads:")
	for _, name := range sortedStrings(r.DB.Heads.Names()) {
		h, _ := r.DB.Heads.Get(name)
		fmt.Fprintf(&b, "  %s -> %s\n", name, h)
	}

	fmt.Fprintln(&b, "working:")
	writeContentList(&b, r.Working.SnapshotAsList())
	fmt.Fprintln(&b, "staging:")
	writeContentList(&b, r.Staging.SnapshotAsList())
	fmt.Fprintln(&b, "committed:")
	writeContentList(&b, r.Committed.SnapshotAsList())

	fmt.Fprintln(&b, "commits:")
	for _, commit := range r.allReachableCommitsByTimestamp() {
		fmt.Fprintf(&b, "  %s %s %q\n", commit.Hash(), commit.CommitterTimestamp.Format("2006-01-02T15:04:05Z07:00"), commit.Message)
	}

	return b.String()
}

func writeContentList(b *strings.Builder, items []*content.Content) {
	byPath := make(map[string]*content.Content, len(items))
	for _, c := range items {
		byPath[c.Path] = c
	}
	for _, path := range sortedStrings(keysOf(byPath)) {
		fmt.Fprintf(b, "  %s (%d bytes)\n", path, len(byPath[path].Bytes))
	}
}

func keysOf(m map[string]*content.Content) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func sortedStrings(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func (r *Repo) allReachableCommitsByTimestamp() []*plumbing.Commit {
	seen := map[plumbing.Hash]bool{}
	var out []*plumbing.Commit
	for _, name := range r.DB.Heads.Names() {
		h, _ := r.DB.Heads.Get(name)
		commits, err := plumbing.GetCommits(r.DB.Store, h)
		if err != nil {
			continue
		}
		for _, c := range commits {
			if seen[c.Hash()] {
				continue
			}
			seen[c.Hash()] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CommitterTimestamp.Before(out[j].CommitterTimestamp)
	})
	return out
}
