package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyHist/internal/domain"
)

// Сохранение и загрузка восстанавливают эквивалентную последовательность записей.
func TestCodec_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	s := NewStore(10, nil)

	want := []domain.Calculation{
		{Number1: 5, Number2: 10, Operation: domain.OpAdd, Result: 15, Timestamp: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)},
		{Number1: 3, Number2: 4, Operation: domain.OpMul, Result: 12, Timestamp: time.Date(2026, 8, 1, 10, 31, 0, 123456789, time.UTC)},
		{Number1: 27, Number2: 3, Operation: domain.OpRoot, Result: 3, Timestamp: time.Date(2026, 8, 1, 10, 32, 0, 0, time.UTC)},
	}
	for _, r := range want {
		s.Append(r)
	}

	require.NoError(t, s.Save(path))

	loaded := NewStore(10, nil)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, want, loaded.List())
}

// Пустая история сохраняется как файл с одним заголовком и загружается обратно пустой.
func TestCodec_RoundTripEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	s := NewStore(10, nil)

	require.NoError(t, s.Save(path))

	loaded := NewStore(10, nil)
	loaded.Append(domain.Calculation{Number1: 1, Number2: 1, Operation: domain.OpAdd, Result: 2})
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, 0, loaded.Len())
}

// Загрузка из несуществующего файла — ошибка, история в памяти не меняется.
func TestCodec_LoadMissingFile(t *testing.T) {
	s := NewStore(10, nil)
	before := domain.Calculation{Number1: 5, Number2: 10, Operation: domain.OpAdd, Result: 15, Timestamp: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)}
	s.Append(before)

	err := s.Load(filepath.Join(t.TempDir(), "no-such-file.csv"))

	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, []domain.Calculation{before}, s.List())
}

// Битый файл (не хватает колонок, нечисловой операнд, кривой timestamp) валит всю
// загрузку; частичных результатов не остаётся.
func TestCodec_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "нет заголовка",
			content: "",
		},
		{
			name:    "не те колонки",
			content: "operation,operand_a,operand_b,total,timestamp\n",
		},
		{
			name:    "короткая строка",
			content: "operation,operand_a,operand_b,result,timestamp\n+,5,10,15\n",
		},
		{
			name:    "нечисловой операнд",
			content: "operation,operand_a,operand_b,result,timestamp\n+,five,10,15,2026-08-01T10:30:00Z\n",
		},
		{
			name:    "нечисловой результат",
			content: "operation,operand_a,operand_b,result,timestamp\n+,5,10,fifteen,2026-08-01T10:30:00Z\n",
		},
		{
			name:    "битый timestamp",
			content: "operation,operand_a,operand_b,result,timestamp\n+,5,10,15,вчера\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			s := NewStore(10, nil)
			before := domain.Calculation{Number1: 1, Number2: 2, Operation: domain.OpAdd, Result: 3, Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)}
			s.Append(before)

			err := s.Load(path)

			require.ErrorIs(t, err, domain.ErrPersistence)
			assert.Equal(t, []domain.Calculation{before}, s.List(), "история не должна меняться при ошибке загрузки")
		})
	}
}

// Сохранение в недоступный путь — ошибка персистентности.
func TestCodec_SaveUnwritable(t *testing.T) {
	s := NewStore(10, nil)
	err := s.Save(filepath.Join(t.TempDir(), "no-such-dir", "history.csv"))
	require.ErrorIs(t, err, domain.ErrPersistence)
}

// Разделитель из конфига применяется и на запись, и на чтение.
func TestCodec_CustomDelimiter(t *testing.T) {
	codec, err := NewFileCodec(";", "utf-8")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.csv")
	s := NewStore(10, codec)
	want := domain.Calculation{Number1: 5, Number2: 10, Operation: domain.OpAdd, Result: 15, Timestamp: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)}
	s.Append(want)
	require.NoError(t, s.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "operation;operand_a;operand_b;result;timestamp")

	loaded := NewStore(10, codec)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, []domain.Calculation{want}, loaded.List())
}

// Кодировка из конфига: файл в windows-1251 читается и пишется корректно.
func TestCodec_CustomEncoding(t *testing.T) {
	codec, err := NewFileCodec(",", "windows-1251")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.csv")
	s := NewStore(10, codec)
	want := domain.Calculation{Number1: 2, Number2: 8, Operation: domain.OpPow, Result: 256, Timestamp: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)}
	s.Append(want)
	require.NoError(t, s.Save(path))

	loaded := NewStore(10, codec)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, []domain.Calculation{want}, loaded.List())
}

// Кодировка с состоянием (ISO-2022-JP переключает наборы символов escape-последовательностями):
// запись с не-ASCII операцией переживает round-trip, хвост кодировки дописывается при закрытии.
func TestCodec_StatefulEncoding(t *testing.T) {
	codec, err := NewFileCodec(",", "ISO-2022-JP")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.csv")
	s := NewStore(10, codec)
	want := domain.Calculation{Number1: 27, Number2: 3, Operation: domain.OpRoot, Result: 3, Timestamp: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)}
	s.Append(want)
	require.NoError(t, s.Save(path))

	loaded := NewStore(10, codec)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, []domain.Calculation{want}, loaded.List())
}

func TestNewFileCodec_Invalid(t *testing.T) {
	_, err := NewFileCodec(",,", "utf-8")
	assert.ErrorIs(t, err, domain.ErrPersistence)

	_, err = NewFileCodec(",", "no-such-encoding")
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
