package triage

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type Service struct {
	remote   Classifier
	fallback Classifier
	logger   zerolog.Logger
}

// NewService builds a triage service. remote may be nil, in which case
// only the keyword screen runs.
func NewService(remote Classifier, logger zerolog.Logger) *Service {
	return &Service{remote: remote, fallback: KeywordClassifier{}, logger: logger}
}

// Screen classifies a symptom description, preferring the remote
// classifier and degrading to the keyword screen when it is unavailable.
func (s *Service) Screen(ctx context.Context, symptoms string) (*Result, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return nil, fmt.Errorf("symptoms description is required")
	}

	if s.remote != nil {
		res, err := s.remote.Classify(ctx, symptoms)
		if err == nil {
			return res, nil
		}
		s.logger.Warn().Err(err).Msg("remote triage classifier unavailable, using keyword screen")
	}
	return s.fallback.Classify(ctx, symptoms)
}
