package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/shipwright/pkg/domain/mock"
	"github.com/secmon-lab/shipwright/pkg/infra"
)

func TestClients(t *testing.T) {
	t.Run("zero value has no github client", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Nil()
	})

	t.Run("with github client", func(t *testing.T) {
		mockGH := &mock.GitHubClientMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})
}
