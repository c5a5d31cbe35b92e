package usecase

import (
	"syncnotes/internal/transcript"
	"syncnotes/pkg/datemath"
	pkgLog "syncnotes/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	gateway    transcript.CompletionGateway
	normalizer *datemath.Normalizer
}

// New creates a new transcript UseCase instance.
func New(
	l pkgLog.Logger,
	gateway transcript.CompletionGateway,
	normalizer *datemath.Normalizer,
) *implUseCase {
	return &implUseCase{
		l:          l,
		gateway:    gateway,
		normalizer: normalizer,
	}
}

var _ transcript.UseCase = (*implUseCase)(nil)
