package model

import "time"

// ReleaseState is the derived state of a project. Exactly one state holds at
// a time and each state enables a fixed set of actions.
type ReleaseState string

const (
	// StateNoRelease means the repository has no release yet. Only cutting a
	// release candidate is possible.
	StateNoRelease ReleaseState = "no_release"

	// StateCandidate means the latest release is a prerelease. It can be
	// patched or promoted.
	StateCandidate ReleaseState = "candidate"

	// StateReleased means the latest release is generally available. A new
	// candidate can be cut, or the released line can still be patched.
	StateReleased ReleaseState = "released"

	// StateStrategyMismatch means the latest tag does not follow the
	// configured versioning strategy. All actions are blocked.
	StateStrategyMismatch ReleaseState = "strategy_mismatch"
)

// Action is a release operation enabled by the current state
type Action string

const (
	ActionCreateRc Action = "create-rc"
	ActionPatch    Action = "patch"
	ActionPromote  Action = "promote"
)

// ReleaseStatus is the state reconstructed from GitHub for one project.
// Nothing here is cached; callers refetch instead of mutating it.
type ReleaseStatus struct {
	Project       Project
	DefaultBranch string
	LatestRelease *Release
	ReleaseBranch *ReleaseBranch
	LatestTagDate time.Time
	NextRcTag     string

	State   ReleaseState
	Actions []Action
	Warning string
}
