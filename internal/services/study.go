package services

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/renato0307/inboxsim/internal/config"
	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
	"github.com/renato0307/inboxsim/internal/ports"
)

// StudyService loads a study together with its corpus
type StudyService struct {
	corpusLoader ports.CorpusLoader
}

// NewStudyService creates a new StudyService
func NewStudyService(corpusLoader ports.CorpusLoader) *StudyService {
	return &StudyService{corpusLoader: corpusLoader}
}

// Load reads the study file, the corpus it points to, and checks one against the other.
// saveOverride, when set, replaces the study's saveLocation.
func (s *StudyService) Load(path, saveOverride string) (*domain.StudyConfig, *domain.Corpus, error) {
	study, err := config.LoadStudy(path)
	if err != nil {
		return nil, nil, err
	}
	if saveOverride != "" {
		study.SaveLocation = config.ExpandPath(saveOverride)
	}

	corpus, err := s.corpusLoader.Load(study.EmailListLocation)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	if err := study.Validate(corpus); err != nil {
		return nil, nil, err
	}

	logging.Logger.Info("Study loaded",
		"path", path,
		"sessions", len(study.Sessions),
		"emails", corpus.Len())
	return study, corpus, nil
}

// Preview builds the session called name (first session when empty) without logging anything.
// The same seed always yields the same inbox.
func (s *StudyService) Preview(study *domain.StudyConfig, corpus *domain.Corpus, name string, seed uint64, now time.Time) (*domain.SessionState, error) {
	index := 0
	if name != "" {
		var err error
		index, err = study.SessionIndex(name)
		if err != nil {
			return nil, err
		}
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	return BeginSession(study.Sessions[index], index, corpus, rng, now), nil
}
