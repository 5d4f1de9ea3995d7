package usecase

import (
	"time"

	"asha-assistant/internal/aggregator"
	"asha-assistant/internal/chat/repository"
	"asha-assistant/internal/intent"
	"asha-assistant/internal/moderation"
	"asha-assistant/pkg/llmprovider"
	pkgLog "asha-assistant/pkg/log"
	"asha-assistant/pkg/translate"
)

type implUseCase struct {
	l          pkgLog.Logger
	translator translate.ITranslator
	gate       *moderation.Gate
	classifier *intent.Classifier
	runner     *aggregator.Runner
	llm        *llmprovider.Manager
	repo       repository.SessionRepository

	pipelineTimeout time.Duration
	recordTimeout   time.Duration
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	translator translate.ITranslator,
	gate *moderation.Gate,
	classifier *intent.Classifier,
	runner *aggregator.Runner,
	llm *llmprovider.Manager,
	repo repository.SessionRepository,
) *implUseCase {
	return &implUseCase{
		l:               l,
		translator:      translator,
		gate:            gate,
		classifier:      classifier,
		runner:          runner,
		llm:             llm,
		repo:            repo,
		pipelineTimeout: PipelineTimeout,
		recordTimeout:   RecordTimeout,
	}
}
