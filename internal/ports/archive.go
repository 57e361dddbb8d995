package ports

//go:generate mockgen -source=archive.go -destination=../mocks/archive_mock.go -package=mocks

import (
	"context"

	"lizzyHist/internal/domain"
)

// ICalculationArchive — контракт долговременного архива вычислений (PostgreSQL или
// MongoDB, выбирается конфигом). Архив — зеркало истории, правило вытеснения на него
// не распространяется.
type ICalculationArchive interface {
	SaveCalculation(ctx context.Context, c domain.Calculation) error
	GetHistory(ctx context.Context) ([]domain.Calculation, error)
	Ping(ctx context.Context) error
}
