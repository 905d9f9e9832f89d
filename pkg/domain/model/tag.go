package model

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

// TagPrefix distinguishes release candidate tags from promoted release tags
type TagPrefix string

const (
	PrefixRC      TagPrefix = "rc"
	PrefixVersion TagPrefix = "version"
)

const calendarLayout = "2006.01.02"

var (
	ptnSemverTag = regexp.MustCompile(`^(rc|version)-(\d+\.\d+\.\d+)$`)
	ptnCalverTag = regexp.MustCompile(`^(rc|version)-(\d{4}\.\d{2}\.\d{2})_(\d+)$`)
)

// TagParts is the parsed representation of a release tag. The zero value is
// not meaningful; construct via ParseTag, InitialRc or the derivation methods.
type TagParts struct {
	Prefix   TagPrefix
	Strategy types.VersioningStrategy

	// semver fields
	Major uint64
	Minor uint64
	Patch uint64

	// calver fields
	Calendar string
	CalPatch uint64
}

// ParseTag parses tag according to the grammar of the given strategy. A tag
// that does not match returns an error wrapping types.ErrStrategyMismatch,
// which blocks every release action until the tag history is fixed.
func ParseTag(tag types.TagName, strategy types.VersioningStrategy) (*TagParts, error) {
	switch strategy {
	case types.StrategySemver:
		m := ptnSemverTag.FindStringSubmatch(string(tag))
		if m == nil {
			return nil, goerr.Wrap(types.ErrStrategyMismatch, "tag is not a semver release tag",
				goerr.V("tag", tag),
				goerr.V("expected", "rc-<major>.<minor>.<patch> or version-<major>.<minor>.<patch>"),
			)
		}

		v, err := semver.StrictNewVersion(m[2])
		if err != nil {
			return nil, goerr.Wrap(types.ErrStrategyMismatch, "tag has an invalid semver core",
				goerr.V("tag", tag),
			)
		}

		return &TagParts{
			Prefix:   TagPrefix(m[1]),
			Strategy: strategy,
			Major:    v.Major(),
			Minor:    v.Minor(),
			Patch:    v.Patch(),
		}, nil

	case types.StrategyCalver:
		m := ptnCalverTag.FindStringSubmatch(string(tag))
		if m == nil {
			return nil, goerr.Wrap(types.ErrStrategyMismatch, "tag is not a calver release tag",
				goerr.V("tag", tag),
				goerr.V("expected", "rc-<YYYY.MM.DD>_<patch> or version-<YYYY.MM.DD>_<patch>"),
			)
		}

		if _, err := time.Parse(calendarLayout, m[2]); err != nil {
			return nil, goerr.Wrap(types.ErrStrategyMismatch, "tag has an invalid calendar date",
				goerr.V("tag", tag),
			)
		}

		var calPatch uint64
		if _, err := fmt.Sscanf(m[3], "%d", &calPatch); err != nil {
			return nil, goerr.Wrap(types.ErrStrategyMismatch, "tag has an invalid patch number",
				goerr.V("tag", tag),
			)
		}

		return &TagParts{
			Prefix:   TagPrefix(m[1]),
			Strategy: strategy,
			Calendar: m[2],
			CalPatch: calPatch,
		}, nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown versioning strategy", goerr.V("strategy", strategy))
	}
}

// InitialRc is the first release candidate of a repository without any release
func InitialRc(strategy types.VersioningStrategy, now time.Time) *TagParts {
	switch strategy {
	case types.StrategyCalver:
		return &TagParts{
			Prefix:   PrefixRC,
			Strategy: strategy,
			Calendar: now.Format(calendarLayout),
		}
	default:
		return &TagParts{
			Prefix:   PrefixRC,
			Strategy: types.StrategySemver,
			Major:    1,
		}
	}
}

// Version is the tag name without its prefix, e.g. "1.2.3" or "2024.01.15_0"
func (x *TagParts) Version() string {
	if x.Strategy == types.StrategyCalver {
		return fmt.Sprintf("%s_%d", x.Calendar, x.CalPatch)
	}
	return fmt.Sprintf("%d.%d.%d", x.Major, x.Minor, x.Patch)
}

// Name reassembles the full tag name
func (x *TagParts) Name() types.TagName {
	return types.TagName(fmt.Sprintf("%s-%s", x.Prefix, x.Version()))
}

// BranchName is the release branch the tag's candidate lives on
func (x *TagParts) BranchName() types.BranchName {
	return types.BranchName("rc/" + x.Version())
}

// NextRc derives the next release candidate. Semver bumps the minor component
// and resets the patch. Calver uses the current date, bumping the patch suffix
// only when a candidate was already cut the same day. The result is always
// strictly greater than the receiver under the strategy ordering.
func (x *TagParts) NextRc(now time.Time) *TagParts {
	next := *x
	next.Prefix = PrefixRC

	if x.Strategy == types.StrategyCalver {
		today := now.Format(calendarLayout)
		if x.Calendar == today {
			next.CalPatch = x.CalPatch + 1
		} else {
			next.Calendar = today
			next.CalPatch = 0
		}
		return &next
	}

	next.Minor = x.Minor + 1
	next.Patch = 0
	return &next
}

// BumpPatch derives the tag of a patched candidate, keeping the prefix
func (x *TagParts) BumpPatch() *TagParts {
	next := *x
	if x.Strategy == types.StrategyCalver {
		next.CalPatch = x.CalPatch + 1
	} else {
		next.Patch = x.Patch + 1
	}
	return &next
}

// Promoted derives the generally-available tag of a release candidate
func (x *TagParts) Promoted() *TagParts {
	next := *x
	next.Prefix = PrefixVersion
	return &next
}
