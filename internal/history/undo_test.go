package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyHist/internal/domain"
)

// Undo — левая обратная к последовательности изменений: сколько действий, столько
// откатов, и состояние возвращается к исходному.
func TestUndoRedo_UndoIsLeftInverse(t *testing.T) {
	u := NewUndoRedo()

	initial := []domain.Calculation{calc(1, 1, domain.OpAdd, 2)}
	state := cloneRecords(initial)

	// три изменения подряд, каждое со снапшотом до
	for i := 2; i <= 4; i++ {
		u.SnapshotBeforeMutation(state)
		state = append(state, calc(float64(i), float64(i), domain.OpMul, float64(i*i)))
	}

	// три отката возвращают исходное состояние
	var err error
	for i := 0; i < 3; i++ {
		state, err = u.Undo(state)
		require.NoError(t, err)
	}
	assert.Equal(t, initial, state)
	assert.False(t, u.CanUndo())
}

// Redo сразу после Undo точно восстанавливает состояние до отката.
func TestUndoRedo_RedoRestoresUndoneState(t *testing.T) {
	u := NewUndoRedo()

	before := []domain.Calculation{calc(5, 10, domain.OpAdd, 15)}
	after := append(cloneRecords(before), calc(3, 4, domain.OpMul, 12))

	u.SnapshotBeforeMutation(before)

	state, err := u.Undo(after)
	require.NoError(t, err)
	assert.Equal(t, before, state)

	state, err = u.Redo(state)
	require.NoError(t, err)
	assert.Equal(t, after, state)
}

// Новое изменяющее действие после Undo очищает стек redo.
func TestUndoRedo_MutationClearsRedo(t *testing.T) {
	u := NewUndoRedo()

	s0 := []domain.Calculation{}
	s1 := []domain.Calculation{calc(1, 1, domain.OpAdd, 2)}

	u.SnapshotBeforeMutation(s0)

	state, err := u.Undo(s1)
	require.NoError(t, err)
	require.True(t, u.CanRedo())

	// новое действие — ветка redo умирает
	u.SnapshotBeforeMutation(state)

	_, err = u.Redo(state)
	assert.ErrorIs(t, err, domain.ErrNothingToRedo)
}

func TestUndoRedo_EmptyStacks(t *testing.T) {
	u := NewUndoRedo()

	_, err := u.Undo(nil)
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)

	_, err = u.Redo(nil)
	assert.ErrorIs(t, err, domain.ErrNothingToRedo)
}

func TestUndoRedo_Reset(t *testing.T) {
	u := NewUndoRedo()
	u.SnapshotBeforeMutation([]domain.Calculation{calc(1, 1, domain.OpAdd, 2)})
	require.True(t, u.CanUndo())

	u.Reset()

	assert.False(t, u.CanUndo())
	assert.False(t, u.CanRedo())
}

// Снапшот — независимая копия: правка текущего состояния после снапшота не
// портит содержимое стека.
func TestUndoRedo_SnapshotIsDeepCopy(t *testing.T) {
	u := NewUndoRedo()

	state := []domain.Calculation{calc(1, 1, domain.OpAdd, 2)}
	u.SnapshotBeforeMutation(state)
	state[0].Result = 999

	restored, err := u.Undo(state)
	require.NoError(t, err)
	assert.Equal(t, 2.0, restored[0].Result)
}
