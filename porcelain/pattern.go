package porcelain

import "path"

// PatternFromGlob turns a shell-style glob into the one predicate the
// core consumes (CheckoutPattern). Per spec.md §1, glob translation is
// deliberately an external collaborator's concern — stdlib path.Match
// is enough here since pulling in a third-party glob engine for this one
// boundary call would contradict the spec's own scoping.
func PatternFromGlob(glob string) func(path string) bool {
	return func(p string) bool {
		matched, err := match(glob, p)
		return err == nil && matched
	}
}

func match(glob, p string) (bool, error) {
	return path.Match(glob, p)
}
