package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/shipwright/pkg/domain/interfaces"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/secmon-lab/shipwright/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	notify  model.StepNotifyFn
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithStepNotify registers a callback invoked after every completed network
// call of an orchestration sequence. The callback is display-only; the
// sequences never branch on it.
func WithStepNotify(fn model.StepNotifyFn) Option {
	return func(x *UseCase) {
		x.notify = fn
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// stepLog is the append-only progress log of one sequence. Each completed
// network call appends exactly one step; progress is completed/total only.
type stepLog struct {
	steps  []model.ResponseStep
	total  int
	notify model.StepNotifyFn
}

func (x *UseCase) newStepLog(total int) *stepLog {
	return &stepLog{total: total, notify: x.notify}
}

func (x *stepLog) add(step model.ResponseStep) {
	if step.Icon == "" {
		step.Icon = model.IconSuccess
	}
	x.steps = append(x.steps, step)
	if x.notify != nil {
		x.notify(step, len(x.steps), x.total)
	}
}

// refExistsError rewrites GitHub's "Reference already exists" conflict into a
// message naming the conflicting branch or tag. Any other error is returned
// verbatim.
func refExistsError(err error, kind, name string) error {
	if goerr.HasTag(err, types.TagRefAlreadyExists) {
		return goerr.Wrap(err, fmt.Sprintf("%s %q already exists on GitHub, can not create a new one", kind, name))
	}
	return err
}

// getTagDate returns the date of an annotated tag. For lightweight tags the
// tag object lookup fails and the referenced commit's author date is used
// instead; that fallback is intentional, not an error.
func (x *UseCase) getTagDate(ctx context.Context, repo model.GitHubRepo, tag types.TagName) (time.Time, error) {
	ref, err := x.clients.GitHub().GetTagRef(ctx, repo, tag)
	if err != nil {
		return time.Time{}, err
	}

	if ref.ObjectType == "tag" {
		if obj, err := x.clients.GitHub().GetTagObject(ctx, repo, ref.SHA); err == nil {
			return obj.Date, nil
		}
	}

	commit, err := x.clients.GitHub().GetCommit(ctx, repo, ref.SHA)
	if err != nil {
		return time.Time{}, err
	}

	return commit.AuthorDate, nil
}

// latestParsedRelease fetches the latest release and parses its tag against
// the project's versioning strategy. A missing release yields
// types.ErrNoRelease; a mismatching tag yields types.ErrStrategyMismatch.
func (x *UseCase) latestParsedRelease(ctx context.Context, project model.Project) (*model.Release, *model.TagParts, error) {
	release, err := x.clients.GitHub().GetLatestRelease(ctx, project.GitHubRepo)
	if err != nil {
		return nil, nil, err
	}
	if release == nil {
		return nil, nil, goerr.Wrap(types.ErrNoRelease, "the repository has no release",
			goerr.V("repo", project.GitHubRepo),
		)
	}

	parts, err := model.ParseTag(release.TagName, project.VersioningStrategy)
	if err != nil {
		return nil, nil, err
	}

	return release, parts, nil
}
