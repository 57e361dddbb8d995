package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"lizzyHist/internal/domain"
)

// Колонки файла истории, строго в этом порядке. Заголовок обязателен.
var csvHeader = []string{"operation", "operand_a", "operand_b", "result", "timestamp"}

// FileCodec — формат файла истории: разделитель полей и кодировка текста.
// Нулевое значение — запятая и UTF-8.
type FileCodec struct {
	Delimiter rune
	Encoding  encoding.Encoding // nil — UTF-8 без перекодирования
}

// NewFileCodec создаёт кодек по строковым настройкам из конфига: delimiter — один символ
// (пустая строка — запятая), encodingName — имя кодировки по IANA (пустая строка или
// utf-8 — без перекодирования).
func NewFileCodec(delimiter, encodingName string) (*FileCodec, error) {
	c := &FileCodec{}
	if delimiter != "" {
		r := []rune(delimiter)
		if len(r) != 1 {
			return nil, fmt.Errorf("%w: delimiter must be a single character: %q", domain.ErrPersistence, delimiter)
		}
		c.Delimiter = r[0]
	}
	name := strings.ToLower(strings.TrimSpace(encodingName))
	if name != "" && name != "utf-8" && name != "utf8" {
		enc, err := ianaindex.IANA.Encoding(encodingName)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("%w: unknown encoding %q", domain.ErrPersistence, encodingName)
		}
		c.Encoding = enc
	}
	return c, nil
}

// delimiter возвращает действующий разделитель.
func (c *FileCodec) delimiter() rune {
	if c.Delimiter == 0 {
		return ','
	}
	return c.Delimiter
}

// Save пишет записи в файл path: заголовок + одна строка на запись.
// Файл перезаписывается целиком. Ошибки заворачиваются в domain.ErrPersistence.
func (c *FileCodec) Save(path string, records []domain.Calculation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrPersistence, path, err)
	}

	var out io.Writer = f
	var tw *transform.Writer
	if c.Encoding != nil {
		tw = transform.NewWriter(f, c.Encoding.NewEncoder())
		out = tw
	}

	w := csv.NewWriter(out)
	w.Comma = c.delimiter()

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, csvHeader)
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Operation,
			strconv.FormatFloat(rec.Number1, 'g', -1, 64),
			strconv.FormatFloat(rec.Number2, 'g', -1, 64),
			strconv.FormatFloat(rec.Result, 'g', -1, 64),
			rec.Timestamp.Format(time.RFC3339Nano),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: save %s: %v", domain.ErrPersistence, path, err)
	}
	// Close у перекодировщика дописывает хвост кодировки (сброс shift-состояния).
	if tw != nil {
		if err := tw.Close(); err != nil {
			_ = f.Close()
			return fmt.Errorf("%w: save %s: %v", domain.ErrPersistence, path, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrPersistence, path, err)
	}
	return nil
}

// Load читает записи из файла path. Любая проблема (файла нет, неверный заголовок,
// короткая строка, нечисловой операнд, битый timestamp) — ошибка всей загрузки.
func (c *FileCodec) Load(path string) ([]domain.Calculation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", domain.ErrPersistence, path, err)
	}
	defer f.Close()

	var in io.Reader = f
	if c.Encoding != nil {
		in = transform.NewReader(f, c.Encoding.NewDecoder())
	}

	r := csv.NewReader(in)
	r.Comma = c.delimiter()
	r.FieldsPerRecord = len(csvHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", domain.ErrPersistence, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: load %s: missing header row", domain.ErrPersistence, path)
	}
	for i, name := range csvHeader {
		if rows[0][i] != name {
			return nil, fmt.Errorf("%w: load %s: missing column %q", domain.ErrPersistence, path, name)
		}
	}

	records := make([]domain.Calculation, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: load %s: row %d: %v", domain.ErrPersistence, path, n+2, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records, nil
}

// parseRow собирает запись из строки файла (порядок колонок как в csvHeader).
func parseRow(row []string) (domain.Calculation, error) {
	var rec domain.Calculation
	rec.Operation = row[0]

	var err error
	if rec.Number1, err = strconv.ParseFloat(row[1], 64); err != nil {
		return rec, fmt.Errorf("operand_a %q is not a number", row[1])
	}
	if rec.Number2, err = strconv.ParseFloat(row[2], 64); err != nil {
		return rec, fmt.Errorf("operand_b %q is not a number", row[2])
	}
	if rec.Result, err = strconv.ParseFloat(row[3], 64); err != nil {
		return rec, fmt.Errorf("result %q is not a number", row[3])
	}
	if rec.Timestamp, err = time.Parse(time.RFC3339Nano, row[4]); err != nil {
		return rec, fmt.Errorf("timestamp %q is not RFC 3339", row[4])
	}
	return rec, nil
}
