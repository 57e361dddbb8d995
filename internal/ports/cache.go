package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import "context"

// ICache — контракт кэша результатов вычислений. Ключ — строка операции ("5 + 10"),
// значение — результат. Кэш ускоряет только вычисление: запись в историю происходит
// всегда, и при попадании тоже.
type ICache interface {
	Get(ctx context.Context, key string) (value float64, found bool, err error)
	Set(ctx context.Context, key string, value float64) error
}
