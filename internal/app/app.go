package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lizzyHist/internal/api/cli"
	"lizzyHist/internal/history"
	"lizzyHist/internal/infrastructure/click"
	"lizzyHist/internal/infrastructure/kafka"
	"lizzyHist/internal/infrastructure/mongo"
	"lizzyHist/internal/infrastructure/pg"
	"lizzyHist/internal/infrastructure/redis"
	"lizzyHist/internal/notify"
	"lizzyHist/internal/pkg/logger"
	"lizzyHist/internal/ports"
	calcUsecase "lizzyHist/internal/usecase/calculator"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run собирает зависимости по конфигу и крутит командный интерпретатор до выхода
// (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New(a.cfg.LogLevel)
	slog.SetDefault(log)

	codec, err := history.NewFileCodec(a.cfg.History.Delimiter, a.cfg.History.Encoding)
	if err != nil {
		return fmt.Errorf("history codec: %w", err)
	}
	store := history.NewStore(a.cfg.History.MaxSize, codec)
	undo := history.NewUndoRedo()
	notifier := notify.New(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Порядок регистрации важен: подписчики зовутся в этом же порядке.
	notifier.Subscribe(notify.NewLogging(log))
	if a.cfg.History.AutoSave {
		notifier.Subscribe(notify.NewAutoSave(store, a.cfg.History.File))
	}

	var cache ports.ICache
	if a.cfg.CacheEnabled {
		rdb, err := redis.New(&a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rdb.Close()
		cache = redis.NewCache(rdb, log)
	}

	archive, closeArchive, err := a.openArchive(ctx, log)
	if err != nil {
		return err
	}
	if closeArchive != nil {
		defer closeArchive()
	}
	if archive != nil {
		notifier.Subscribe(notify.NewArchiver(archive))
	}

	if a.cfg.KafkaEnabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		defer producer.Close()
		notifier.Subscribe(notify.NewPublisher(producer))
	}

	if a.cfg.ClickEnabled {
		ch, err := click.New(&a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		writer := click.NewCalculationWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse table: %w", err)
		}
		notifier.Subscribe(notify.NewAnalytics(writer))
	}

	uc := calcUsecase.New(store, undo, notifier, cache, a.cfg.History.File, log)

	// Существующую историю подтягиваем при старте; её отсутствие — не ошибка.
	if a.cfg.History.LoadOnStart {
		if err := uc.Load(ctx, ""); err != nil {
			log.Warn("could not load existing history", "file", a.cfg.History.File, "error", err)
		}
	}

	slog.Info("application started",
		"history_file", a.cfg.History.File,
		"max_size", a.cfg.History.MaxSize,
		"autosave", a.cfg.History.AutoSave,
		"archive", a.cfg.ArchiveDriver)

	repl := cli.New(uc, os.Stdin, os.Stdout, log)
	if err := repl.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// openArchive подключает архив вычислений по драйверу из конфига.
// Возвращает nil-архив для драйвера none.
func (a *App) openArchive(ctx context.Context, log *slog.Logger) (ports.ICalculationArchive, func(), error) {
	switch a.cfg.ArchiveDriver {
	case "", ArchiveNone:
		return nil, nil, nil
	case ArchivePg:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewArchive(db, log), func() { db.Close() }, nil
	case ArchiveMongo:
		mcli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		return mongo.NewArchive(mcli, log), func() { _ = mcli.Disconnect(context.Background()) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown archive driver: %s", a.cfg.ArchiveDriver)
	}
}
