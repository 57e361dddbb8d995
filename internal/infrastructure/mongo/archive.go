package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"lizzyHist/internal/domain"
	"lizzyHist/internal/ports"
)

var _ ports.ICalculationArchive = (*Archive)(nil)

// calculationDoc — документ в коллекции calculations.
type calculationDoc struct {
	Number1   float64   `bson:"number1"`
	Number2   float64   `bson:"number2"`
	Operation string    `bson:"operation"`
	Result    float64   `bson:"result"`
	CreatedAt time.Time `bson:"created_at"`
}

// Archive реализует ports.ICalculationArchive для MongoDB — альтернатива PostgreSQL,
// выбирается конфигом (CALCULATOR_ARCHIVE_DRIVER=mongo).
type Archive struct {
	client *Client
	log    *slog.Logger
}

// NewArchive возвращает архив вычислений.
func NewArchive(client *Client, log *slog.Logger) *Archive {
	return &Archive{client: client, log: log}
}

// SaveCalculation сохраняет вычисление в коллекцию.
func (a *Archive) SaveCalculation(ctx context.Context, c domain.Calculation) error {
	doc := calculationDoc{
		Number1:   c.Number1,
		Number2:   c.Number2,
		Operation: c.Operation,
		Result:    c.Result,
		CreatedAt: c.Timestamp,
	}
	if _, err := a.client.Coll().InsertOne(ctx, doc); err != nil {
		a.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает вычисления в хронологическом порядке (старые сначала).
func (a *Archive) GetHistory(ctx context.Context) ([]domain.Calculation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := a.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		a.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []calculationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Calculation, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Calculation{
			Number1:   d.Number1,
			Number2:   d.Number2,
			Operation: d.Operation,
			Result:    d.Result,
			Timestamp: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (a *Archive) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}
