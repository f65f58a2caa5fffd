package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	domainHealth "github.com/rleclezio/digital-twin/domains/health"
	domainKnowledge "github.com/rleclezio/digital-twin/domains/knowledge"
)

type healthService struct {
	knowledge domainKnowledge.IKnowledgeUsecase
	store     domainHealth.Pinger
	provider  string
	version   string
}

// NewHealthService builds the health usecase. store may be nil when sessions
// live in process memory; it is only pinged when an external store is active.
func NewHealthService(knowledge domainKnowledge.IKnowledgeUsecase, store domainHealth.Pinger, provider, version string) domainHealth.IHealthUsecase {
	return &healthService{knowledge: knowledge, store: store, provider: provider, version: version}
}

func (s *healthService) Check(ctx context.Context) domainHealth.Status {
	base, _ := s.knowledge.Load(ctx)

	status := domainHealth.Status{
		Status:    "ok",
		Version:   s.version,
		Provider:  s.provider,
		Documents: len(base),
	}

	if s.store != nil {
		status.SessionStore = "ok"
		if err := s.store.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("[HEALTH] Session store unreachable")
			status.Status = "degraded"
			status.SessionStore = "unreachable"
		}
	}

	return status
}
