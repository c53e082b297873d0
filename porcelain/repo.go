package porcelain

import (
	"github.com/google/uuid"

	"github.com/brickster241/nanovc/content"
	"github.com/brickster241/nanovc/plumbing"
)

// Info holds the repo-wide ignore patterns a caller may want to consult
// before calling AddAll. The core never reads it itself — per spec.md §1,
// glob/pattern matching over paths is an external collaborator's concern,
// consumed through the one predicate PatternFromGlob produces.
type Info struct {
	IgnorePatterns []string
}

// Database is the repo's non-content aggregate: description, config,
// HEAD, the heads/tags reference collections, the object store, hooks and
// info. Only Store, HEAD and Heads are semantically load-bearing for the
// core's invariants; Description, Config, Tags, Hooks and Info exist to
// round out the aggregate the way the teacher's on-disk .git directory
// does.
type Database struct {
	Description string
	Config      *Config
	HEAD        *plumbing.SymbolicReference
	Heads       *plumbing.ReferenceCollection
	Tags        *plumbing.ReferenceCollection
	Store       *plumbing.ObjectStore
	Hooks       map[string]string
	Info        *Info
}

// Repo aggregates the working, staging and committed content areas with
// the Database of refs/objects/config behind them. Every content-area
// mutation and every plumbing write for one repo goes through this one
// struct; a caller versioning several independent entities constructs one
// Repo per entity (spec.md §5's "one repo per logical entity" model).
type Repo struct {
	ID uuid.UUID

	Working   *content.MutableArea
	Staging   *content.MutableArea
	Committed *content.CommittedArea

	DB *Database
}

// Init constructs a fresh repo: empty working/staging/committed areas, an
// empty object store, no heads or tags yet, and HEAD set as a symbolic
// reference to "master" — the branch itself is created lazily on the
// first commit, per spec.md §6 ("Initial branch").
func Init() *Repo {
	db := &Database{
		Description: "Unnamed repository; edit this description to name it.",
		Config:      defaultConfig(),
		Heads:       plumbing.NewReferenceCollection(),
		Tags:        plumbing.NewReferenceCollection(),
		Store:       plumbing.NewObjectStore(),
		Hooks:       map[string]string{},
		Info:        &Info{},
	}
	plumbing.SymbolicRef(&db.HEAD, "master")

	repo := &Repo{
		ID:        uuid.New(),
		Working:   content.NewMutableArea(),
		Staging:   content.NewMutableArea(),
		Committed: content.NewCommittedArea(),
		DB:        db,
	}

	logger.WithField("repo_id", repo.ID).Info("repo initialized")
	return repo
}
