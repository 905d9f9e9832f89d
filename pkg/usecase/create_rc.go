package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/secmon-lab/shipwright/pkg/domain/interfaces"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
)

const createRcTotalSteps = 5

// CreateRc cuts a new release candidate: a release branch at the default
// branch head, an annotated tag on it, and a prerelease whose body is the
// comparison against the previous release. The chain is strictly sequential;
// the first failure aborts it and later calls are never issued.
func (x *UseCase) CreateRc(ctx context.Context, input *model.CreateRcInput) (*model.CreateRcResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	repo := input.Project.GitHubRepo
	steps := x.newStepLog(createRcTotalSteps)

	repository, err := gh.GetRepository(ctx, repo)
	if err != nil {
		return nil, err
	}

	branch, err := gh.GetBranch(ctx, repo, repository.DefaultBranch)
	if err != nil {
		return nil, err
	}

	latestRelease, err := gh.GetLatestRelease(ctx, repo)
	if err != nil {
		return nil, err
	}

	var next *model.TagParts
	if latestRelease != nil {
		prev, err := model.ParseTag(latestRelease.TagName, input.Project.VersioningStrategy)
		if err != nil {
			return nil, err
		}
		next = prev.NextRc(logging.CtxTime(ctx))
	} else {
		next = model.InitialRc(input.Project.VersioningStrategy, logging.CtxTime(ctx))
	}

	nextTag := next.Name()
	rcBranch := next.BranchName()

	logging.From(ctx).Info("cutting release candidate",
		"repo", repo.String(),
		"tag", nextTag,
		"branch", rcBranch,
		"head", branch.HeadSHA,
	)

	// (1) release branch at the default branch head
	if err := gh.CreateRef(ctx, repo, "refs/heads/"+string(rcBranch), branch.HeadSHA); err != nil {
		return nil, refExistsError(err, "branch", string(rcBranch))
	}
	steps.add(model.ResponseStep{
		Message:          fmt.Sprintf("Created release branch %q", rcBranch),
		SecondaryMessage: fmt.Sprintf("at %s", branch.HeadSHA.Short()),
	})

	// (2) annotated tag object at the same commit
	tagObjSHA, err := gh.CreateTagObject(ctx, repo, &interfaces.AnnotatedTagInput{
		Tag:       nextTag,
		Message:   fmt.Sprintf("Release candidate %s", next.Version()),
		ObjectSHA: branch.HeadSHA,
	})
	if err != nil {
		return nil, err
	}
	steps.add(model.ResponseStep{
		Message:          fmt.Sprintf("Created tag object %q", nextTag),
		SecondaryMessage: fmt.Sprintf("object %s", tagObjSHA.Short()),
	})

	// (3) tag reference pointing at the tag object
	if err := gh.CreateRef(ctx, repo, "refs/tags/"+string(nextTag), tagObjSHA); err != nil {
		return nil, refExistsError(err, "tag", string(nextTag))
	}
	steps.add(model.ResponseStep{
		Message: fmt.Sprintf("Created tag reference %q", nextTag),
		Link:    repo.TagURL(nextTag),
	})

	// (4) comparison against the previous release's target branch
	var comparison *model.Comparison
	body := "Initial release candidate."
	if latestRelease != nil {
		comparison, err = gh.CompareCommits(ctx, repo, latestRelease.TargetCommitish, string(rcBranch))
		if err != nil {
			return nil, err
		}
		body = renderComparisonBody(latestRelease.TargetCommitish, comparison)
		steps.add(model.ResponseStep{
			Message:          fmt.Sprintf("Compared %q with %q", latestRelease.TargetCommitish, rcBranch),
			SecondaryMessage: fmt.Sprintf("%d commits ahead", comparison.AheadBy),
			Link:             comparison.HTMLURL,
		})
	} else {
		steps.add(model.ResponseStep{
			Message: "No previous release, skipping comparison",
			Icon:    model.IconSkipped,
		})
	}

	// (5) the prerelease itself
	prerelease := true
	release, err := gh.CreateRelease(ctx, repo, &interfaces.ReleaseInput{
		TagName:         nextTag,
		Name:            string(nextTag),
		TargetCommitish: string(rcBranch),
		Body:            body,
		Prerelease:      &prerelease,
	})
	if err != nil {
		return nil, err
	}
	steps.add(model.ResponseStep{
		Message: fmt.Sprintf("Created prerelease %q", nextTag),
		Link:    release.HTMLURL,
	})

	return &model.CreateRcResult{
		TagName:    nextTag,
		BranchName: rcBranch,
		ReleaseURL: release.HTMLURL,
		Comparison: comparison,
		Steps:      steps.steps,
	}, nil
}

func renderComparisonBody(base string, cmp *model.Comparison) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "**Compared with %q**\n\n", base)
	if cmp.HTMLURL != "" {
		fmt.Fprintf(&sb, "%s\n\n", cmp.HTMLURL)
	}

	for _, c := range cmp.Commits {
		subject := c.Message
		if idx := strings.IndexByte(subject, '\n'); idx >= 0 {
			subject = subject[:idx]
		}
		fmt.Fprintf(&sb, "- %s %s\n", c.SHA.Short(), subject)
	}

	return sb.String()
}
