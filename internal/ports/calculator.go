package ports

//go:generate mockgen -source=calculator.go -destination=../mocks/calculator_mock.go -package=mocks

import (
	"context"

	"lizzyHist/internal/domain"
)

// ICalculator — контракт фасада калькулятора для командного интерпретатора.
// Пустой path в Save/Load означает файл истории из конфига.
type ICalculator interface {
	Compute(ctx context.Context, kind string, a, b float64) (*domain.Calculation, error)
	Undo(ctx context.Context) ([]domain.Calculation, error)
	Redo(ctx context.Context) ([]domain.Calculation, error)
	Clear(ctx context.Context)
	Save(ctx context.Context, path string) error
	Load(ctx context.Context, path string) error
	List() []domain.Calculation
}
