package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"lizzyHist/internal/domain"
	"lizzyHist/internal/ports"
)

// saver — то, что умеет сохранять историю в файл (реализует history.Store).
type saver interface {
	Save(path string) error
}

// AutoSave — подписчик автосохранения: после каждого изменения пишет историю в файл.
// Ошибка записи не откатывает изменение в памяти — хаб её только залогирует.
type AutoSave struct {
	store saver
	path  string
}

// NewAutoSave создаёт подписчика автосохранения в файл path.
func NewAutoSave(store saver, path string) *AutoSave {
	return &AutoSave{store: store, path: path}
}

// OnHistoryChanged реализует ports.ISubscriber. Сохраняет после каждого изменения,
// включая load: загрузка из другого файла тоже должна попасть в штатный файл истории.
func (a *AutoSave) OnHistoryChanged(_ context.Context, _ domain.HistoryEvent) error {
	if err := a.store.Save(a.path); err != nil {
		return fmt.Errorf("autosave: %w", err)
	}
	return nil
}

// Logging — подписчик, который пишет каждое изменение истории в лог.
type Logging struct {
	log *slog.Logger
}

// NewLogging создаёт логирующего подписчика.
func NewLogging(log *slog.Logger) *Logging {
	if log == nil {
		log = slog.Default()
	}
	return &Logging{log: log}
}

// OnHistoryChanged реализует ports.ISubscriber.
func (l *Logging) OnHistoryChanged(_ context.Context, e domain.HistoryEvent) error {
	attrs := []any{"event", e.Kind, "size", len(e.Records)}
	if e.Latest != nil {
		attrs = append(attrs,
			"number1", e.Latest.Number1,
			"operation", e.Latest.Operation,
			"number2", e.Latest.Number2,
			"result", e.Latest.Result)
	}
	l.log.Info("history changed", attrs...)
	return nil
}

// Publisher — подписчик, публикующий каждое новое вычисление в брокер (JSON).
type Publisher struct {
	producer ports.IProducer
}

// NewPublisher создаёт подписчика-публикатора.
func NewPublisher(producer ports.IProducer) *Publisher {
	return &Publisher{producer: producer}
}

// OnHistoryChanged реализует ports.ISubscriber: события кроме append пропускает.
func (p *Publisher) OnHistoryChanged(ctx context.Context, e domain.HistoryEvent) error {
	if e.Kind != domain.EventAppend || e.Latest == nil {
		return nil
	}
	value, err := json.Marshal(e.Latest)
	if err != nil {
		return fmt.Errorf("publish marshal: %w", err)
	}
	key := fmt.Sprintf("%g %s %g", e.Latest.Number1, e.Latest.Operation, e.Latest.Number2)
	if err := p.producer.Send(ctx, []byte(key), value); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// Archiver — подписчик, зеркалящий каждое новое вычисление в долговременный архив.
type Archiver struct {
	archive ports.ICalculationArchive
}

// NewArchiver создаёт подписчика-архиватора.
func NewArchiver(archive ports.ICalculationArchive) *Archiver {
	return &Archiver{archive: archive}
}

// OnHistoryChanged реализует ports.ISubscriber: события кроме append пропускает.
func (a *Archiver) OnHistoryChanged(ctx context.Context, e domain.HistoryEvent) error {
	if e.Kind != domain.EventAppend || e.Latest == nil {
		return nil
	}
	if err := a.archive.SaveCalculation(ctx, *e.Latest); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}

// Analytics — подписчик, пишущий каждое новое вычисление в аналитическое хранилище.
type Analytics struct {
	writer ports.ICalculationAnalytics
}

// NewAnalytics создаёт подписчика-аналитика.
func NewAnalytics(writer ports.ICalculationAnalytics) *Analytics {
	return &Analytics{writer: writer}
}

// OnHistoryChanged реализует ports.ISubscriber: события кроме append пропускает.
func (s *Analytics) OnHistoryChanged(ctx context.Context, e domain.HistoryEvent) error {
	if e.Kind != domain.EventAppend || e.Latest == nil {
		return nil
	}
	if err := s.writer.WriteCalculation(ctx, *e.Latest); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}
	return nil
}
