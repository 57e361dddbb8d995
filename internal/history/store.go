// Package history — ядро приложения: ограниченное по размеру хранилище вычислений,
// сохранение/загрузка в CSV и контроллер undo/redo на снапшотах.
package history

import "lizzyHist/internal/domain"

// DefaultMaxSize — размер истории по умолчанию.
const DefaultMaxSize = 100

// Store — упорядоченная история вычислений, не длиннее max записей.
// Порядок вставки = хронологический; при переполнении вытесняется самая старая запись.
// Доступ однопоточный (одна интерактивная сессия), мьютекс не нужен.
type Store struct {
	max     int
	records []domain.Calculation
	codec   *FileCodec
}

// NewStore создаёт историю с максимальным размером max (max <= 0 — DefaultMaxSize)
// и кодеком файла истории (nil — кодек по умолчанию: запятая, UTF-8).
func NewStore(max int, codec *FileCodec) *Store {
	if max <= 0 {
		max = DefaultMaxSize
	}
	if codec == nil {
		codec = &FileCodec{}
	}
	return &Store{max: max, codec: codec}
}

// Append добавляет запись в конец. Если история переполнена — удаляет самую старую.
// Всегда успешен.
func (s *Store) Append(c domain.Calculation) {
	s.records = append(s.records, c)
	if len(s.records) > s.max {
		s.records = s.records[1:]
	}
}

// List возвращает копию истории, старые записи первыми.
func (s *Store) List() []domain.Calculation {
	return cloneRecords(s.records)
}

// Len возвращает текущую длину истории.
func (s *Store) Len() int {
	return len(s.records)
}

// Clear очищает историю.
func (s *Store) Clear() {
	s.records = nil
}

// Replace атомарно заменяет историю снапшотом. Правило вытеснения задним числом
// не применяется: снапшот сделан, когда ограничение уже выполнялось.
func (s *Store) Replace(snapshot []domain.Calculation) {
	s.records = cloneRecords(snapshot)
}

// Save сохраняет историю в файл path. При ошибке — domain.ErrPersistence (через обёртку).
func (s *Store) Save(path string) error {
	return s.codec.Save(path, s.records)
}

// Load заменяет историю записями из файла path. Всё или ничего: при любой ошибке
// (файла нет, битая строка, не хватает колонок) история в памяти не меняется.
func (s *Store) Load(path string) error {
	records, err := s.codec.Load(path)
	if err != nil {
		return err
	}
	s.records = records
	return nil
}

// cloneRecords возвращает независимую копию среза записей.
func cloneRecords(records []domain.Calculation) []domain.Calculation {
	if len(records) == 0 {
		return nil
	}
	out := make([]domain.Calculation, len(records))
	copy(out, records)
	return out
}
