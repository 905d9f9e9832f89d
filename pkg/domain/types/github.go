package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	ReleaseID           int64
	BranchName          string
	TagName             string
	CommitSHA           string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

// Short returns the abbreviated commit SHA commonly shown in UIs.
func (x CommitSHA) Short() string {
	if len(x) <= 7 {
		return string(x)
	}
	return string(x[:7])
}
