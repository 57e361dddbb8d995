package calculator

import (
	"context"
	"time"

	"lizzyHist/internal/domain"
	"lizzyHist/internal/operations"
	"lizzyHist/internal/ports"
)

var _ ports.ICalculator = (*UseCase)(nil)

// Compute выполняет операцию kind над (a, b) и записывает результат в историю:
// снапшот текущего состояния на стек undo → append → уведомление подписчиков.
// При любой ошибке (неизвестная операция, деление на ноль, некорректный корень)
// состояние не меняется, ошибка уходит вызывающему как есть.
func (u *UseCase) Compute(ctx context.Context, kind string, a, b float64) (*domain.Calculation, error) {
	fn, err := operations.Lookup(kind)
	if err != nil {
		return nil, err
	}

	// Кэш — быстрый путь только для самого вычисления; запись в историю
	// происходит и при попадании.
	key := cacheKey(a, b, kind)
	result, found := u.cachedResult(ctx, key)
	if !found {
		result, err = fn(a, b)
		if err != nil {
			return nil, err
		}
		u.cacheResult(ctx, key, result)
	}

	calc := domain.Calculation{
		Number1:   a,
		Number2:   b,
		Operation: kind,
		Result:    result,
		Timestamp: time.Now(),
	}

	u.undo.SnapshotBeforeMutation(u.store.List())
	u.store.Append(calc)
	u.notifier.Notify(ctx, domain.HistoryEvent{
		Kind:    domain.EventAppend,
		Records: u.store.List(),
		Latest:  &calc,
	})
	return &calc, nil
}

// Undo откатывает последнее изменяющее действие и возвращает новое состояние истории.
// При пустом стеке — domain.ErrNothingToUndo, состояние не меняется.
func (u *UseCase) Undo(ctx context.Context) ([]domain.Calculation, error) {
	restored, err := u.undo.Undo(u.store.List())
	if err != nil {
		return nil, err
	}
	u.store.Replace(restored)
	u.notifier.Notify(ctx, domain.HistoryEvent{Kind: domain.EventRestore, Records: u.store.List()})
	return u.store.List(), nil
}

// Redo повторяет отменённое действие и возвращает новое состояние истории.
// При пустом стеке — domain.ErrNothingToRedo, состояние не меняется.
func (u *UseCase) Redo(ctx context.Context) ([]domain.Calculation, error) {
	restored, err := u.undo.Redo(u.store.List())
	if err != nil {
		return nil, err
	}
	u.store.Replace(restored)
	u.notifier.Notify(ctx, domain.HistoryEvent{Kind: domain.EventRestore, Records: u.store.List()})
	return u.store.List(), nil
}

// Clear очищает историю и оба стека undo/redo: отменить саму очистку нельзя.
func (u *UseCase) Clear(ctx context.Context) {
	u.store.Clear()
	u.undo.Reset()
	u.notifier.Notify(ctx, domain.HistoryEvent{Kind: domain.EventClear})
}

// Save сохраняет историю в файл (пустой path — файл из конфига).
func (u *UseCase) Save(_ context.Context, path string) error {
	if path == "" {
		path = u.historyFile
	}
	return u.store.Save(path)
}

// Load заменяет историю содержимым файла (пустой path — файл из конфига).
// Загрузка не попадает на стек undo: откат к состоянию до load не поддерживается.
// При ошибке история в памяти не меняется.
func (u *UseCase) Load(ctx context.Context, path string) error {
	if path == "" {
		path = u.historyFile
	}
	if err := u.store.Load(path); err != nil {
		return err
	}
	u.notifier.Notify(ctx, domain.HistoryEvent{Kind: domain.EventLoad, Records: u.store.List()})
	return nil
}

// List возвращает текущую историю, старые записи первыми.
func (u *UseCase) List() []domain.Calculation {
	return u.store.List()
}

// cachedResult возвращает результат из кэша, если кэш включён и ключ найден.
func (u *UseCase) cachedResult(ctx context.Context, key string) (float64, bool) {
	if u.cache == nil {
		return 0, false
	}
	value, found, err := u.cache.Get(ctx, key)
	if err != nil {
		u.log.Warn("cache get", "key", key, "error", err)
		return 0, false
	}
	return value, found
}

// cacheResult кладёт результат в кэш, если кэш включён. Ошибка кэша не фатальна.
func (u *UseCase) cacheResult(ctx context.Context, key string, value float64) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Set(ctx, key, value); err != nil {
		u.log.Warn("cache set", "key", key, "error", err)
	}
}
