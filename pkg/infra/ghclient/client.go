package ghclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/secmon-lab/shipwright/pkg/domain/interfaces"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

// Client is a typed wrapper over the GitHub REST and Git Data API. It holds
// no state of its own; the remote repository is the sole source of truth.
type Client struct {
	gh *github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

// cacheBustTransport sends an empty If-None-Match header on every request so
// GitHub never serves a 304 from its ETag cache. Flows must always observe
// the current remote state.
type cacheBustTransport struct {
	base http.RoundTripper
}

func (x *cacheBustTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("If-None-Match", "")
	return x.base.RoundTrip(r)
}

// New creates a client authenticated with a personal access token
func New(token types.GitHubToken) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Transport = &cacheBustTransport{base: httpClient.Transport}

	return &Client{gh: github.NewClient(httpClient)}, nil
}

// NewApp creates a client authenticated as a GitHub App installation
func NewApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	itr, err := ghinstallation.New(http.DefaultTransport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github app transport")
	}

	httpClient := &http.Client{Transport: &cacheBustTransport{base: itr}}

	return &Client{gh: github.NewClient(httpClient)}, nil
}

func isRefAlreadyExists(err error) bool {
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) {
		return false
	}
	return strings.Contains(ghErr.Message, "Reference already exists")
}

func isNotFound(resp *github.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}

func (x *Client) GetRepository(ctx context.Context, repo model.GitHubRepo) (*model.Repository, error) {
	r, _, err := x.gh.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("repo", repo))
	}

	return &model.Repository{
		Owner:         r.GetOwner().GetLogin(),
		Name:          r.GetName(),
		DefaultBranch: types.BranchName(r.GetDefaultBranch()),
		Archived:      r.GetArchived(),
		Disabled:      r.GetDisabled(),
	}, nil
}

func toRelease(r *github.RepositoryRelease) *model.Release {
	return &model.Release{
		ID:              types.ReleaseID(r.GetID()),
		TagName:         types.TagName(r.GetTagName()),
		TargetCommitish: r.GetTargetCommitish(),
		Prerelease:      r.GetPrerelease(),
		HTMLURL:         r.GetHTMLURL(),
		Body:            r.GetBody(),
	}
}

func (x *Client) GetLatestRelease(ctx context.Context, repo model.GitHubRepo) (*model.Release, error) {
	rel, resp, err := x.gh.Repositories.GetLatestRelease(ctx, repo.Owner, repo.Name)
	if err != nil {
		if isNotFound(resp) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get latest release", goerr.V("repo", repo))
	}

	return toRelease(rel), nil
}

func (x *Client) ListReleases(ctx context.Context, repo model.GitHubRepo) ([]*model.Release, error) {
	var releases []*model.Release
	opts := &github.ListOptions{PerPage: 100}

	for {
		result, resp, err := x.gh.Repositories.ListReleases(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list releases", goerr.V("repo", repo))
		}

		for _, rel := range result {
			releases = append(releases, toRelease(rel))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return releases, nil
}

func (x *Client) CreateRelease(ctx context.Context, repo model.GitHubRepo, input *interfaces.ReleaseInput) (*model.Release, error) {
	rel := &github.RepositoryRelease{
		TagName:         github.String(string(input.TagName)),
		Name:            github.String(input.Name),
		TargetCommitish: github.String(input.TargetCommitish),
		Body:            github.String(input.Body),
		Prerelease:      input.Prerelease,
	}

	created, _, err := x.gh.Repositories.CreateRelease(ctx, repo.Owner, repo.Name, rel)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.V("repo", repo),
			goerr.V("tag", input.TagName),
		)
	}

	return toRelease(created), nil
}

func (x *Client) UpdateRelease(ctx context.Context, repo model.GitHubRepo, id types.ReleaseID, input *interfaces.ReleaseInput) (*model.Release, error) {
	rel := &github.RepositoryRelease{
		Prerelease: input.Prerelease,
	}
	if input.TagName != "" {
		rel.TagName = github.String(string(input.TagName))
	}
	if input.Name != "" {
		rel.Name = github.String(input.Name)
	}
	if input.Body != "" {
		rel.Body = github.String(input.Body)
	}

	updated, _, err := x.gh.Repositories.EditRelease(ctx, repo.Owner, repo.Name, int64(id), rel)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update release",
			goerr.V("repo", repo),
			goerr.V("id", id),
		)
	}

	return toRelease(updated), nil
}

func (x *Client) GetBranch(ctx context.Context, repo model.GitHubRepo, branch types.BranchName) (*model.ReleaseBranch, error) {
	b, _, err := x.gh.Repositories.GetBranch(ctx, repo.Owner, repo.Name, string(branch), true)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get branch",
			goerr.V("repo", repo),
			goerr.V("branch", branch),
		)
	}

	return &model.ReleaseBranch{
		Name:    types.BranchName(b.GetName()),
		HeadSHA: types.CommitSHA(b.GetCommit().GetSHA()),
		TreeSHA: b.GetCommit().GetCommit().GetTree().GetSHA(),
	}, nil
}

func toCommit(c *github.RepositoryCommit) *model.Commit {
	commit := &model.Commit{
		SHA:        types.CommitSHA(c.GetSHA()),
		Message:    c.GetCommit().GetMessage(),
		Author:     c.GetCommit().GetAuthor().GetName(),
		AuthorDate: c.GetCommit().GetAuthor().GetDate().Time,
		TreeSHA:    c.GetCommit().GetTree().GetSHA(),
	}
	if len(c.Parents) > 0 {
		commit.FirstParentSHA = types.CommitSHA(c.Parents[0].GetSHA())
	}
	return commit
}

func (x *Client) GetCommit(ctx context.Context, repo model.GitHubRepo, sha types.CommitSHA) (*model.Commit, error) {
	c, _, err := x.gh.Repositories.GetCommit(ctx, repo.Owner, repo.Name, string(sha), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit",
			goerr.V("repo", repo),
			goerr.V("sha", sha),
		)
	}

	return toCommit(c), nil
}

func (x *Client) ListCommits(ctx context.Context, repo model.GitHubRepo, branch types.BranchName, limit int) ([]*model.Commit, error) {
	opts := &github.CommitsListOptions{
		SHA:         string(branch),
		ListOptions: github.ListOptions{PerPage: limit},
	}

	result, _, err := x.gh.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits",
			goerr.V("repo", repo),
			goerr.V("branch", branch),
		)
	}

	commits := make([]*model.Commit, 0, len(result))
	for _, c := range result {
		commits = append(commits, toCommit(c))
	}

	return commits, nil
}

func (x *Client) CompareCommits(ctx context.Context, repo model.GitHubRepo, base, head string) (*model.Comparison, error) {
	cmp, _, err := x.gh.Repositories.CompareCommits(ctx, repo.Owner, repo.Name, base, head, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compare commits",
			goerr.V("repo", repo),
			goerr.V("base", base),
			goerr.V("head", head),
		)
	}

	comparison := &model.Comparison{
		AheadBy:  cmp.GetAheadBy(),
		BehindBy: cmp.GetBehindBy(),
		HTMLURL:  cmp.GetHTMLURL(),
	}
	for _, c := range cmp.Commits {
		comparison.Commits = append(comparison.Commits, toCommit(c))
	}

	return comparison, nil
}

func (x *Client) CreateRef(ctx context.Context, repo model.GitHubRepo, ref string, sha types.CommitSHA) error {
	reference := &github.Reference{
		Ref:    github.String(ref),
		Object: &github.GitObject{SHA: github.String(string(sha))},
	}

	if _, _, err := x.gh.Git.CreateRef(ctx, repo.Owner, repo.Name, reference); err != nil {
		if isRefAlreadyExists(err) {
			return goerr.Wrap(err, "reference already exists",
				goerr.V("ref", ref),
				goerr.T(types.TagRefAlreadyExists),
			)
		}
		return goerr.Wrap(err, "failed to create ref",
			goerr.V("repo", repo),
			goerr.V("ref", ref),
		)
	}

	return nil
}

func (x *Client) ForceUpdateRef(ctx context.Context, repo model.GitHubRepo, ref string, sha types.CommitSHA) error {
	reference := &github.Reference{
		Ref:    github.String(ref),
		Object: &github.GitObject{SHA: github.String(string(sha))},
	}

	if _, _, err := x.gh.Git.UpdateRef(ctx, repo.Owner, repo.Name, reference, true); err != nil {
		return goerr.Wrap(err, "failed to force update ref",
			goerr.V("repo", repo),
			goerr.V("ref", ref),
			goerr.V("sha", sha),
		)
	}

	return nil
}

func (x *Client) CreateTagObject(ctx context.Context, repo model.GitHubRepo, input *interfaces.AnnotatedTagInput) (types.CommitSHA, error) {
	tag := &github.Tag{
		Tag:     github.String(string(input.Tag)),
		Message: github.String(input.Message),
		Object: &github.GitObject{
			SHA:  github.String(string(input.ObjectSHA)),
			Type: github.String("commit"),
		},
	}

	created, _, err := x.gh.Git.CreateTag(ctx, repo.Owner, repo.Name, tag)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create tag object",
			goerr.V("repo", repo),
			goerr.V("tag", input.Tag),
		)
	}

	return types.CommitSHA(created.GetSHA()), nil
}

func (x *Client) GetTagObject(ctx context.Context, repo model.GitHubRepo, sha types.CommitSHA) (*model.TagObject, error) {
	tag, _, err := x.gh.Git.GetTag(ctx, repo.Owner, repo.Name, string(sha))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tag object",
			goerr.V("repo", repo),
			goerr.V("sha", sha),
		)
	}

	return &model.TagObject{
		SHA:       types.CommitSHA(tag.GetSHA()),
		Tag:       types.TagName(tag.GetTag()),
		Message:   tag.GetMessage(),
		Date:      tag.GetTagger().GetDate().Time,
		ObjectSHA: types.CommitSHA(tag.GetObject().GetSHA()),
	}, nil
}

func (x *Client) GetTagRef(ctx context.Context, repo model.GitHubRepo, tag types.TagName) (*model.TagRef, error) {
	ref, _, err := x.gh.Git.GetRef(ctx, repo.Owner, repo.Name, "tags/"+string(tag))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tag ref",
			goerr.V("repo", repo),
			goerr.V("tag", tag),
		)
	}

	return &model.TagRef{
		Name:       tag,
		SHA:        types.CommitSHA(ref.GetObject().GetSHA()),
		ObjectType: ref.GetObject().GetType(),
	}, nil
}

func (x *Client) ListTags(ctx context.Context, repo model.GitHubRepo) ([]*model.TagRef, error) {
	var tags []*model.TagRef
	opts := &github.ListOptions{PerPage: 100}

	for {
		result, resp, err := x.gh.Repositories.ListTags(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list tags", goerr.V("repo", repo))
		}

		for _, t := range result {
			tags = append(tags, &model.TagRef{
				Name: types.TagName(t.GetName()),
				SHA:  types.CommitSHA(t.GetCommit().GetSHA()),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return tags, nil
}

func (x *Client) CreateCommit(ctx context.Context, repo model.GitHubRepo, input *interfaces.CommitInput) (types.CommitSHA, error) {
	commit := &github.Commit{
		Message: github.String(input.Message),
		Tree:    &github.Tree{SHA: github.String(input.TreeSHA)},
		Parents: []*github.Commit{
			{SHA: github.String(string(input.ParentSHA))},
		},
	}

	created, _, err := x.gh.Git.CreateCommit(ctx, repo.Owner, repo.Name, commit)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create commit",
			goerr.V("repo", repo),
			goerr.V("tree", input.TreeSHA),
			goerr.V("parent", input.ParentSHA),
		)
	}

	return types.CommitSHA(created.GetSHA()), nil
}

func (x *Client) Merge(ctx context.Context, repo model.GitHubRepo, base types.BranchName, head types.CommitSHA, message string) (*model.Commit, error) {
	req := &github.RepositoryMergeRequest{
		Base:          github.String(string(base)),
		Head:          github.String(string(head)),
		CommitMessage: github.String(message),
	}

	merged, resp, err := x.gh.Repositories.Merge(ctx, repo.Owner, repo.Name, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge",
			goerr.V("repo", repo),
			goerr.V("base", base),
			goerr.V("head", head),
		)
	}

	// 204 means base already contains head; nothing was merged
	if resp.StatusCode == http.StatusNoContent || merged == nil {
		return nil, nil
	}

	return toCommit(merged), nil
}

func (x *Client) ListOwnerRepos(ctx context.Context, owner string) ([]*model.Repository, error) {
	var repos []*model.Repository
	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		result, resp, err := x.gh.Repositories.List(ctx, owner, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("owner", owner))
		}

		for _, r := range result {
			repos = append(repos, &model.Repository{
				Owner:         r.GetOwner().GetLogin(),
				Name:          r.GetName(),
				DefaultBranch: types.BranchName(r.GetDefaultBranch()),
				Archived:      r.GetArchived(),
				Disabled:      r.GetDisabled(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repos, nil
}

func (x *Client) AuthenticatedUser(ctx context.Context) (*model.User, error) {
	u, _, err := x.gh.Users.Get(ctx, "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get authenticated user")
	}

	return &model.User{
		Login: u.GetLogin(),
		Email: u.GetEmail(),
	}, nil
}
