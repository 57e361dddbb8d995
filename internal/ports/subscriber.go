package ports

//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber_mock.go -package=mocks

import (
	"context"

	"lizzyHist/internal/domain"
)

// ISubscriber — подписчик на изменения истории (автосохранение, логирование, публикация
// в брокер). Вызывается синхронно, в порядке регистрации, уже после того, как история
// и стеки undo/redo согласованы. Ошибка подписчика изолируется и не откатывает изменение.
type ISubscriber interface {
	OnHistoryChanged(ctx context.Context, e domain.HistoryEvent) error
}
