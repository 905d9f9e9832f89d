package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/shipwright/pkg/domain/interfaces"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
)

const patchTotalSteps = 8

// Patch cherry-picks a commit onto the current release branch through the
// Git Data API and tags the result with the patch component bumped by one.
// The chain is sequential and non-transactional: a failure after the first
// force-update leaves the branch at the intermediate commit. There is no
// rollback; the next successful patch or release candidate supersedes it.
func (x *UseCase) Patch(ctx context.Context, input *model.PatchInput) (*model.PatchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	repo := input.Project.GitHubRepo
	steps := x.newStepLog(patchTotalSteps)

	release, prev, err := x.latestParsedRelease(ctx, input.Project)
	if err != nil {
		return nil, err
	}

	branchName := types.BranchName(release.TargetCommitish)
	branch, err := gh.GetBranch(ctx, repo, branchName)
	if err != nil {
		return nil, err
	}

	selected, err := gh.GetCommit(ctx, repo, input.CommitSHA)
	if err != nil {
		return nil, err
	}
	if selected.FirstParentSHA == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "can not cherry-pick a commit without a parent",
			goerr.V("sha", selected.SHA),
		)
	}

	next := prev.BumpPatch()
	nextTag := next.Name()

	logging.From(ctx).Info("patching release",
		"repo", repo.String(),
		"branch", branchName,
		"commit", selected.SHA,
		"tag", nextTag,
	)

	// (1) temporary commit carrying the branch tree, parented at the
	// selected commit's parent so the merge below yields a cherry-pick tree
	tempSHA, err := gh.CreateCommit(ctx, repo, &interfaces.CommitInput{
		Message:   fmt.Sprintf("temporary commit for patch %s", next.Version()),
		TreeSHA:   branch.TreeSHA,
		ParentSHA: selected.FirstParentSHA,
	})
	if err != nil {
		return nil, err
	}
	steps.add(model.ResponseStep{
		Message:          "Created temporary commit",
		SecondaryMessage: fmt.Sprintf("commit %s", tempSHA.Short()),
	})

	// (2) point the branch head at it
	if err := gh.ForceUpdateRef(ctx, repo, "refs/heads/"+string(branchName), tempSHA); err != nil {
		return nil, err
	}
	steps.add(model.ResponseStep{
		Message: fmt.Sprintf("Forced %q to temporary commit", branchName),
	})

	// (3) merge the selected commit to obtain the cherry-picked tree
	merge, err := gh.Merge(ctx, repo, branchName, selected.SHA, fmt.Sprintf("merge %s into %s", selected.SHA.Short(), branchName))
	if err != nil {
		return nil, err
	}
	if merge == nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "nothing to merge, the commit is already on the release branch",
			goerr.V("sha", selected.SHA),
			goerr.V("branch", branchName),
		)
	}
	steps.add(model.ResponseStep{
		Message:          fmt.Sprintf("Merged %s into %q", selected.SHA.Short(), branchName),
		SecondaryMessage: fmt.Sprintf("merge commit %s", merge.SHA.Short()),
	})

	// (4) real commit from the merge tree with the provenance message
	patchSHA, err := gh.CreateCommit(ctx, repo, &interfaces.CommitInput{
		Message:   composePatchMessage(selected),
		TreeSHA:   merge.TreeSHA,
		ParentSHA: branch.HeadSHA,
	})
	if err != nil {
		return nil, err
	}
	steps.add(model.ResponseStep{
		Message:          "Created patch commit",
		SecondaryMessage: fmt.Sprintf("commit %s", patchSHA.Short()),
	})

	// (5) move the branch head onto the patch commit
	if err := gh.ForceUpdateRef(ctx, repo, "refs/heads/"+string(branchName), patchSHA); err != nil {
		return nil, err
	}
	steps.add(model.ResponseStep{
		Message: fmt.Sprintf("Forced %q to patch commit", branchName),
	})

	// (6) annotated tag with the bumped patch component
	tagObjSHA, err := gh.CreateTagObject(ctx, repo, &interfaces.AnnotatedTagInput{
		Tag:       nextTag,
		Message:   fmt.Sprintf("Patch %s", next.Version()),
		ObjectSHA: patchSHA,
	})
	if err != nil {
		return nil, err
	}
	steps.add(model.ResponseStep{
		Message:          fmt.Sprintf("Created tag object %q", nextTag),
		SecondaryMessage: fmt.Sprintf("object %s", tagObjSHA.Short()),
	})

	// (7) its reference
	if err := gh.CreateRef(ctx, repo, "refs/tags/"+string(nextTag), tagObjSHA); err != nil {
		return nil, refExistsError(err, "tag", string(nextTag))
	}
	steps.add(model.ResponseStep{
		Message: fmt.Sprintf("Created tag reference %q", nextTag),
		Link:    repo.TagURL(nextTag),
	})

	// (8) move the existing release onto the patch tag
	updated, err := gh.UpdateRelease(ctx, repo, release.ID, &interfaces.ReleaseInput{
		TagName: nextTag,
		Name:    string(nextTag),
		Body:    appendPatchNote(release.Body, next.Version(), selected),
	})
	if err != nil {
		return nil, err
	}
	steps.add(model.ResponseStep{
		Message: fmt.Sprintf("Updated release to %q", nextTag),
		Link:    updated.HTMLURL,
	})

	return &model.PatchResult{
		PreviousTag: release.TagName,
		TagName:     nextTag,
		CommitSHA:   selected.SHA,
		ReleaseURL:  updated.HTMLURL,
		Steps:       steps.steps,
	}, nil
}

// composePatchMessage keeps the original commit message and appends the
// provenance suffix identifying the cherry-picked commit.
func composePatchMessage(c *model.Commit) string {
	return fmt.Sprintf("%s\n\n(cherry picked from commit %s)", c.Message, c.SHA)
}

func appendPatchNote(body, version string, c *model.Commit) string {
	subject := c.Message
	for i := 0; i < len(subject); i++ {
		if subject[i] == '\n' {
			subject = subject[:i]
			break
		}
	}
	return fmt.Sprintf("%s\n\n#### Patch %s\n\n- %s %s\n", body, version, c.SHA.Short(), subject)
}
