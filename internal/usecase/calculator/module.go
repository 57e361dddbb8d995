package calculator

import (
	"log/slog"
	"strconv"

	"lizzyHist/internal/history"
	"lizzyHist/internal/notify"
	"lizzyHist/internal/ports"
)

// cacheKey формирует читаемый ключ операции для кэша, например "1 + 1".
func cacheKey(number1, number2 float64, operation string) string {
	return strconv.FormatFloat(number1, 'f', -1, 64) + " " + operation + " " + strconv.FormatFloat(number2, 'f', -1, 64)
}

// UseCase — фасад калькулятора: вычисление, история, undo/redo, сохранение/загрузка.
// Владеет историей и стеками undo/redo; наружу отдаёт только копии.
type UseCase struct {
	store       *history.Store
	undo        *history.UndoRedo
	notifier    *notify.Notifier
	cache       ports.ICache // nil — кэш выключен
	historyFile string
	log         *slog.Logger
}

// New создаёт фасад калькулятора. historyFile — файл истории по умолчанию для
// Save/Load с пустым path. cache может быть nil.
func New(store *history.Store, undo *history.UndoRedo, notifier *notify.Notifier, cache ports.ICache, historyFile string, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{
		store:       store,
		undo:        undo,
		notifier:    notifier,
		cache:       cache,
		historyFile: historyFile,
		log:         log,
	}
}
