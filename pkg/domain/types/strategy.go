package types

import "github.com/m-mizutani/goerr/v2"

// VersioningStrategy is the tag naming convention a repository follows.
type VersioningStrategy string

const (
	StrategySemver VersioningStrategy = "semver"
	StrategyCalver VersioningStrategy = "calver"
)

func (x VersioningStrategy) Validate() error {
	switch x {
	case StrategySemver, StrategyCalver:
		return nil
	default:
		return goerr.Wrap(ErrInvalidOption, "invalid versioning strategy, should be 'semver' or 'calver'", goerr.V("value", string(x)))
	}
}
