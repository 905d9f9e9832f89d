package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

func TestParseTagSemver(t *testing.T) {
	testCases := map[string]struct {
		tag     string
		isErr   bool
		prefix  model.TagPrefix
		version string
	}{
		"rc tag": {
			tag:     "rc-1.2.3",
			prefix:  model.PrefixRC,
			version: "1.2.3",
		},
		"version tag": {
			tag:     "version-10.0.1",
			prefix:  model.PrefixVersion,
			version: "10.0.1",
		},
		"no prefix":             {tag: "1.2.3", isErr: true},
		"unknown prefix":        {tag: "release-1.2.3", isErr: true},
		"missing patch":         {tag: "rc-1.2", isErr: true},
		"leading zero":          {tag: "rc-01.2.3", isErr: true},
		"v prefix in core":      {tag: "rc-v1.2.3", isErr: true},
		"calver shaped":         {tag: "rc-2024.01.15_0", isErr: true},
		"trailing garbage":      {tag: "rc-1.2.3-beta", isErr: true},
		"empty":                 {tag: "", isErr: true},
		"prerelease identifier": {tag: "version-1.2.3-rc.1", isErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			parts, err := model.ParseTag(types.TagName(tc.tag), types.StrategySemver)
			if tc.isErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrStrategyMismatch))
				return
			}

			gt.NoError(t, err)
			gt.V(t, parts.Prefix).Equal(tc.prefix)
			gt.V(t, parts.Version()).Equal(tc.version)
			gt.V(t, parts.Name()).Equal(types.TagName(tc.tag))
		})
	}
}

func TestParseTagCalver(t *testing.T) {
	testCases := map[string]struct {
		tag     string
		isErr   bool
		prefix  model.TagPrefix
		version string
	}{
		"rc tag": {
			tag:     "rc-2024.01.15_0",
			prefix:  model.PrefixRC,
			version: "2024.01.15_0",
		},
		"version tag with bumped patch": {
			tag:     "version-2024.12.31_3",
			prefix:  model.PrefixVersion,
			version: "2024.12.31_3",
		},
		"semver shaped":    {tag: "rc-1.2.3", isErr: true},
		"missing patch":    {tag: "rc-2024.01.15", isErr: true},
		"short year":       {tag: "rc-24.01.15_0", isErr: true},
		"month overflow":   {tag: "rc-2024.13.01_0", isErr: true},
		"day overflow":     {tag: "rc-2024.02.30_0", isErr: true},
		"unpadded month":   {tag: "rc-2024.1.15_0", isErr: true},
		"negative patch":   {tag: "rc-2024.01.15_-1", isErr: true},
		"trailing garbage": {tag: "rc-2024.01.15_0x", isErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			parts, err := model.ParseTag(types.TagName(tc.tag), types.StrategyCalver)
			if tc.isErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrStrategyMismatch))
				return
			}

			gt.NoError(t, err)
			gt.V(t, parts.Prefix).Equal(tc.prefix)
			gt.V(t, parts.Version()).Equal(tc.version)
			gt.V(t, parts.Name()).Equal(types.TagName(tc.tag))
		})
	}
}

func TestParseTagUnknownStrategy(t *testing.T) {
	_, err := model.ParseTag("rc-1.2.3", types.VersioningStrategy("datever"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestNextRcSemver(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	parts := gt.R1(model.ParseTag("version-1.2.3", types.StrategySemver)).NoError(t)
	next := parts.NextRc(now)

	gt.V(t, next.Name()).Equal(types.TagName("rc-1.3.0"))
	gt.V(t, next.BranchName()).Equal(types.BranchName("rc/1.3.0"))

	// the receiver is never mutated
	gt.V(t, parts.Name()).Equal(types.TagName("version-1.2.3"))
}

func TestNextRcCalver(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	t.Run("new day resets the patch suffix", func(t *testing.T) {
		parts := gt.R1(model.ParseTag("version-2024.01.10_2", types.StrategyCalver)).NoError(t)
		next := parts.NextRc(now)
		gt.V(t, next.Name()).Equal(types.TagName("rc-2024.01.15_0"))
	})

	t.Run("same day bumps the patch suffix", func(t *testing.T) {
		parts := gt.R1(model.ParseTag("version-2024.01.15_0", types.StrategyCalver)).NoError(t)
		next := parts.NextRc(now)
		gt.V(t, next.Name()).Equal(types.TagName("rc-2024.01.15_1"))
	})
}

func TestBumpPatch(t *testing.T) {
	t.Run("semver keeps the prefix", func(t *testing.T) {
		parts := gt.R1(model.ParseTag("rc-1.3.0", types.StrategySemver)).NoError(t)
		gt.V(t, parts.BumpPatch().Name()).Equal(types.TagName("rc-1.3.1"))

		released := gt.R1(model.ParseTag("version-1.3.1", types.StrategySemver)).NoError(t)
		gt.V(t, released.BumpPatch().Name()).Equal(types.TagName("version-1.3.2"))
	})

	t.Run("calver bumps the suffix", func(t *testing.T) {
		parts := gt.R1(model.ParseTag("rc-2024.01.15_0", types.StrategyCalver)).NoError(t)
		gt.V(t, parts.BumpPatch().Name()).Equal(types.TagName("rc-2024.01.15_1"))
	})
}

func TestPromoted(t *testing.T) {
	parts := gt.R1(model.ParseTag("rc-1.3.0", types.StrategySemver)).NoError(t)
	promoted := parts.Promoted()

	gt.V(t, promoted.Name()).Equal(types.TagName("version-1.3.0"))
	// the release branch does not move on promotion
	gt.V(t, promoted.BranchName()).Equal(parts.BranchName())
}

func TestInitialRc(t *testing.T) {
	now := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	gt.V(t, model.InitialRc(types.StrategySemver, now).Name()).Equal(types.TagName("rc-1.0.0"))
	gt.V(t, model.InitialRc(types.StrategyCalver, now).Name()).Equal(types.TagName("rc-2024.03.05_0"))
}
