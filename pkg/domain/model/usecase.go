package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

type StatusInput struct {
	Project Project
}

func (x *StatusInput) Validate() error {
	return x.Project.Validate()
}

type CreateRcInput struct {
	Project Project
}

func (x *CreateRcInput) Validate() error {
	return x.Project.Validate()
}

// CreateRcResult is passed to the caller after the whole sequence succeeded
type CreateRcResult struct {
	TagName    types.TagName
	BranchName types.BranchName
	ReleaseURL string
	Comparison *Comparison
	Steps      []ResponseStep
}

type PatchInput struct {
	Project   Project
	CommitSHA types.CommitSHA
}

var ptnValidCommitSHA = regexp.MustCompile(`^[0-9a-f]{7,40}$`)

func (x *PatchInput) Validate() error {
	if err := x.Project.Validate(); err != nil {
		return err
	}
	if !ptnValidCommitSHA.MatchString(string(x.CommitSHA)) {
		return goerr.Wrap(types.ErrValidationFailed, "invalid commit SHA", goerr.V("sha", x.CommitSHA))
	}
	return nil
}

type PatchResult struct {
	PreviousTag types.TagName
	TagName     types.TagName
	CommitSHA   types.CommitSHA
	ReleaseURL  string
	Steps       []ResponseStep
}

type PromoteInput struct {
	Project Project
}

func (x *PromoteInput) Validate() error {
	return x.Project.Validate()
}

// PromoteResult carries the before/after pairs of a promotion
type PromoteResult struct {
	ID             types.ReleaseID
	PreviousTag    types.TagName
	PreviousTagURL string
	TagName        types.TagName
	TagURL         string
	ReleaseURL     string
	Steps          []ResponseStep
}
