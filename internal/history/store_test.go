package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyHist/internal/domain"
)

// calc — короткий конструктор записи для тестов.
func calc(a, b float64, op string, result float64) domain.Calculation {
	return domain.Calculation{
		Number1:   a,
		Number2:   b,
		Operation: op,
		Result:    result,
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Длина истории никогда не превышает максимум: при переполнении вытесняется старейшая запись.
func TestStore_AppendEvictsOldest(t *testing.T) {
	s := NewStore(2, nil)

	r1 := calc(1, 1, domain.OpAdd, 2)
	r2 := calc(2, 2, domain.OpAdd, 4)
	r3 := calc(3, 3, domain.OpAdd, 6)

	s.Append(r1)
	s.Append(r2)
	s.Append(r3)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []domain.Calculation{r2, r3}, s.List())
}

func TestStore_AppendManyKeepsNewest(t *testing.T) {
	const max = 5
	s := NewStore(max, nil)

	var want []domain.Calculation
	for i := 0; i < 20; i++ {
		r := calc(float64(i), 1, domain.OpAdd, float64(i)+1)
		s.Append(r)
		want = append(want, r)
	}

	assert.Equal(t, want[len(want)-max:], s.List())
}

// List отдаёт копию: правка результата не трогает хранилище.
func TestStore_ListReturnsCopy(t *testing.T) {
	s := NewStore(10, nil)
	s.Append(calc(5, 10, domain.OpAdd, 15))

	list := s.List()
	list[0].Result = 999

	assert.Equal(t, 15.0, s.List()[0].Result)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(10, nil)
	s.Append(calc(5, 10, domain.OpAdd, 15))

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
}

// Replace ставит снапшот как есть и не применяет вытеснение задним числом.
func TestStore_Replace(t *testing.T) {
	s := NewStore(10, nil)
	s.Append(calc(1, 1, domain.OpAdd, 2))

	snapshot := []domain.Calculation{
		calc(2, 2, domain.OpMul, 4),
		calc(3, 3, domain.OpMul, 9),
	}
	s.Replace(snapshot)

	assert.Equal(t, snapshot, s.List())

	// снапшот независим: правка исходного среза не видна в хранилище
	snapshot[0].Result = 999
	assert.Equal(t, 4.0, s.List()[0].Result)
}

func TestStore_DefaultMaxSize(t *testing.T) {
	s := NewStore(0, nil)
	for i := 0; i < DefaultMaxSize+10; i++ {
		s.Append(calc(float64(i), 1, domain.OpAdd, float64(i)+1))
	}
	assert.Equal(t, DefaultMaxSize, s.Len())
}
