package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/secmon-lab/shipwright/pkg/infra/ghclient"
	"github.com/urfave/cli/v3"
)

// GitHub holds the client credentials. A personal access token takes
// precedence; the GitHub App installation triple is the alternative.
type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("SHIPWRIGHT_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("SHIPWRIGHT_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App Installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("SHIPWRIGHT_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("SHIPWRIGHT_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x GitHub) New() (*ghclient.Client, error) {
	if x.token != "" {
		return ghclient.New(x.token)
	}
	if x.appID != 0 {
		return ghclient.NewApp(x.appID, x.installID, x.privateKey)
	}
	return nil, goerr.Wrap(types.ErrInvalidOption, "either github-token or github-app-id is required")
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
