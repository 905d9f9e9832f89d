package infra

import (
	"github.com/secmon-lab/shipwright/pkg/domain/interfaces"
)

// Clients bundles the external service clients the usecases depend on.
type Clients struct {
	github interfaces.GitHubClient
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.github
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.github = client
	}
}
