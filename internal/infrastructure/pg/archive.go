package pg

import (
	"context"
	"log/slog"

	"lizzyHist/internal/domain"
	"lizzyHist/internal/ports"
)

var _ ports.ICalculationArchive = (*Archive)(nil)

// Archive реализует ports.ICalculationArchive для PostgreSQL: зеркало всех вычислений
// без ограничения размера (правило вытеснения действует только в памяти).
type Archive struct {
	db  *DB
	log *slog.Logger
}

// NewArchive возвращает архив вычислений.
func NewArchive(db *DB, log *slog.Logger) *Archive {
	return &Archive{db: db, log: log}
}

// SaveCalculation сохраняет вычисление в БД.
func (a *Archive) SaveCalculation(ctx context.Context, c domain.Calculation) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO calculations (number1, number2, operation, result, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.Number1, c.Number2, c.Operation, c.Result, c.Timestamp)
	if err != nil {
		a.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает вычисления из архива в хронологическом порядке (старые сначала,
// как в истории в памяти).
func (a *Archive) GetHistory(ctx context.Context) ([]domain.Calculation, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT number1, number2, operation, result, created_at
		 FROM calculations ORDER BY created_at ASC, id ASC`)
	if err != nil {
		a.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Calculation
	for rows.Next() {
		var c domain.Calculation
		if err := rows.Scan(&c.Number1, &c.Number2, &c.Operation, &c.Result, &c.Timestamp); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД.
func (a *Archive) Ping(ctx context.Context) error {
	return a.db.Ping(ctx)
}
