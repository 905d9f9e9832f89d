package model

import (
	"time"

	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

// Release is GitHub's release object reduced to the fields the orchestration
// sequences need. It is fetched fresh per operation and never persisted.
type Release struct {
	ID              types.ReleaseID
	TagName         types.TagName
	TargetCommitish string
	Prerelease      bool
	HTMLURL         string
	Body            string
}

// ReleaseBranch is a git branch named by convention (rc/<version>)
type ReleaseBranch struct {
	Name    types.BranchName
	HeadSHA types.CommitSHA
	TreeSHA string
}

// Repository holds the repository metadata used by the flows
type Repository struct {
	Owner         string
	Name          string
	DefaultBranch types.BranchName
	Archived      bool
	Disabled      bool
}

// Commit is a commit reduced from GitHub's representation
type Commit struct {
	SHA            types.CommitSHA
	Message        string
	Author         string
	AuthorDate     time.Time
	TreeSHA        string
	FirstParentSHA types.CommitSHA
}

// TagRef is a tag reference. SHA points at a tag object for annotated tags
// ("tag" object type) and directly at a commit for lightweight tags.
type TagRef struct {
	Name       types.TagName
	SHA        types.CommitSHA
	ObjectType string
}

// TagObject is an annotated tag object with its own metadata
type TagObject struct {
	SHA       types.CommitSHA
	Tag       types.TagName
	Message   string
	Date      time.Time
	ObjectSHA types.CommitSHA
}

// Comparison is the diff summary between two refs
type Comparison struct {
	AheadBy  int
	BehindBy int
	HTMLURL  string
	Commits  []*Commit
}

// User is the authenticated GitHub user, used as tagger identity
type User struct {
	Login string
	Email string
}
