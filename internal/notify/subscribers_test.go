package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lizzyHist/internal/domain"
	"lizzyHist/internal/mocks"
)

// fakeSaver считает вызовы Save и может возвращать ошибку.
type fakeSaver struct {
	calls []string
	err   error
}

func (f *fakeSaver) Save(path string) error {
	f.calls = append(f.calls, path)
	return f.err
}

func TestAutoSave_SavesOnMutation(t *testing.T) {
	saver := &fakeSaver{}
	sub := NewAutoSave(saver, "history.csv")

	for _, kind := range []domain.EventKind{domain.EventAppend, domain.EventClear, domain.EventRestore} {
		require.NoError(t, sub.OnHistoryChanged(context.Background(), domain.HistoryEvent{Kind: kind}))
	}

	assert.Equal(t, []string{"history.csv", "history.csv", "history.csv"}, saver.calls)
}

// Загрузка тоже сохраняется: load из другого файла должен обновить штатный файл истории.
func TestAutoSave_SavesAfterLoad(t *testing.T) {
	saver := &fakeSaver{}
	sub := NewAutoSave(saver, "history.csv")

	require.NoError(t, sub.OnHistoryChanged(context.Background(), domain.HistoryEvent{Kind: domain.EventLoad}))

	assert.Equal(t, []string{"history.csv"}, saver.calls)
}

// Ошибка записи отдаётся хабу (тот её логирует), изменение в памяти не трогается.
func TestAutoSave_SaveError(t *testing.T) {
	saver := &fakeSaver{err: errors.New("permission denied")}
	sub := NewAutoSave(saver, "history.csv")

	err := sub.OnHistoryChanged(context.Background(), domain.HistoryEvent{Kind: domain.EventAppend})

	assert.Error(t, err)
}

func TestPublisher_SendsAppendOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	latest := domain.Calculation{
		Number1:   5,
		Number2:   10,
		Operation: domain.OpAdd,
		Result:    15,
		Timestamp: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
	}
	wantValue, err := json.Marshal(&latest)
	require.NoError(t, err)

	producer := mocks.NewMockIProducer(ctrl)
	producer.EXPECT().Send(gomock.Any(), []byte("5 + 10"), wantValue).Return(nil)

	sub := NewPublisher(producer)

	// не-append события игнорируются (Send не ожидается)
	require.NoError(t, sub.OnHistoryChanged(context.Background(), domain.HistoryEvent{Kind: domain.EventClear}))
	require.NoError(t, sub.OnHistoryChanged(context.Background(), domain.HistoryEvent{
		Kind:   domain.EventAppend,
		Latest: &latest,
	}))
}

func TestArchiver_SavesAppendOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	latest := domain.Calculation{Number1: 3, Number2: 4, Operation: domain.OpMul, Result: 12}

	archive := mocks.NewMockICalculationArchive(ctrl)
	archive.EXPECT().SaveCalculation(gomock.Any(), latest).Return(nil)

	sub := NewArchiver(archive)

	require.NoError(t, sub.OnHistoryChanged(context.Background(), domain.HistoryEvent{Kind: domain.EventRestore}))
	require.NoError(t, sub.OnHistoryChanged(context.Background(), domain.HistoryEvent{
		Kind:   domain.EventAppend,
		Latest: &latest,
	}))
}

func TestAnalytics_WritesAppendOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	latest := domain.Calculation{Number1: 2, Number2: 8, Operation: domain.OpPow, Result: 256}

	writer := mocks.NewMockICalculationAnalytics(ctrl)
	writer.EXPECT().WriteCalculation(gomock.Any(), latest).Return(nil)

	sub := NewAnalytics(writer)

	require.NoError(t, sub.OnHistoryChanged(context.Background(), domain.HistoryEvent{Kind: domain.EventLoad}))
	require.NoError(t, sub.OnHistoryChanged(context.Background(), domain.HistoryEvent{
		Kind:   domain.EventAppend,
		Latest: &latest,
	}))
}
