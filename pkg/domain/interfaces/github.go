package interfaces

//go:generate moq -out ../mock/github.go -pkg mock . GitHubClient

import (
	"context"

	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

// AnnotatedTagInput creates a tag object. Creating the tag reference is a
// separate call; GitHub's Git Data API requires the two-step sequence for
// annotated tags.
type AnnotatedTagInput struct {
	Tag       types.TagName
	Message   string
	ObjectSHA types.CommitSHA
}

// CommitInput creates a commit from an existing tree
type CommitInput struct {
	Message   string
	TreeSHA   string
	ParentSHA types.CommitSHA
}

// ReleaseInput creates or updates a GitHub release. Nil / empty fields are
// left untouched on update.
type ReleaseInput struct {
	TagName         types.TagName
	Name            string
	TargetCommitish string
	Body            string
	Prerelease      *bool
}

// GitHubClient is the typed wrapper over the GitHub REST and Git Data API.
// Implementations send cache-busting headers on every request; the remote
// repository is the sole source of truth and nothing is cached locally.
type GitHubClient interface {
	GetRepository(ctx context.Context, repo model.GitHubRepo) (*model.Repository, error)

	// GetLatestRelease returns nil without error when the repository has no
	// release yet.
	GetLatestRelease(ctx context.Context, repo model.GitHubRepo) (*model.Release, error)
	ListReleases(ctx context.Context, repo model.GitHubRepo) ([]*model.Release, error)
	CreateRelease(ctx context.Context, repo model.GitHubRepo, input *ReleaseInput) (*model.Release, error)
	UpdateRelease(ctx context.Context, repo model.GitHubRepo, id types.ReleaseID, input *ReleaseInput) (*model.Release, error)

	GetBranch(ctx context.Context, repo model.GitHubRepo, branch types.BranchName) (*model.ReleaseBranch, error)
	GetCommit(ctx context.Context, repo model.GitHubRepo, sha types.CommitSHA) (*model.Commit, error)
	ListCommits(ctx context.Context, repo model.GitHubRepo, branch types.BranchName, limit int) ([]*model.Commit, error)
	CompareCommits(ctx context.Context, repo model.GitHubRepo, base, head string) (*model.Comparison, error)

	// CreateRef fails with a types.TagRefAlreadyExists tagged error when the
	// reference exists, so that callers can surface the conflicting name.
	CreateRef(ctx context.Context, repo model.GitHubRepo, ref string, sha types.CommitSHA) error
	ForceUpdateRef(ctx context.Context, repo model.GitHubRepo, ref string, sha types.CommitSHA) error
	CreateTagObject(ctx context.Context, repo model.GitHubRepo, input *AnnotatedTagInput) (types.CommitSHA, error)
	GetTagObject(ctx context.Context, repo model.GitHubRepo, sha types.CommitSHA) (*model.TagObject, error)
	GetTagRef(ctx context.Context, repo model.GitHubRepo, tag types.TagName) (*model.TagRef, error)
	ListTags(ctx context.Context, repo model.GitHubRepo) ([]*model.TagRef, error)

	CreateCommit(ctx context.Context, repo model.GitHubRepo, input *CommitInput) (types.CommitSHA, error)

	// Merge returns nil without error when base already contains head
	Merge(ctx context.Context, repo model.GitHubRepo, base types.BranchName, head types.CommitSHA, message string) (*model.Commit, error)

	ListOwnerRepos(ctx context.Context, owner string) ([]*model.Repository, error)
	AuthenticatedUser(ctx context.Context) (*model.User, error)
}
