package history

import "lizzyHist/internal/domain"

// UndoRedo — контроллер отмены/повтора на двух стеках полных снапшотов истории.
// Снапшот — независимая копия всей последовательности на момент изменения; дельты
// не храним, при ограниченной истории (<= max записей) это дёшево.
type UndoRedo struct {
	undo [][]domain.Calculation
	redo [][]domain.Calculation
}

// NewUndoRedo создаёт контроллер с пустыми стеками.
func NewUndoRedo() *UndoRedo {
	return &UndoRedo{}
}

// SnapshotBeforeMutation кладёт копию current на стек undo и полностью очищает стек
// redo: после нового действия ветки redo не живут (линейная история отмены).
// Вызывается фасадом непосредственно перед каждым изменяющим действием.
func (u *UndoRedo) SnapshotBeforeMutation(current []domain.Calculation) {
	u.undo = append(u.undo, cloneRecords(current))
	u.redo = nil
}

// Undo откатывает последнее изменение: current уходит на стек redo, со стека undo
// снимается последний снапшот и возвращается как новое состояние.
// При пустом стеке — domain.ErrNothingToUndo, состояние не меняется.
func (u *UndoRedo) Undo(current []domain.Calculation) ([]domain.Calculation, error) {
	if len(u.undo) == 0 {
		return nil, domain.ErrNothingToUndo
	}
	u.redo = append(u.redo, cloneRecords(current))
	top := u.undo[len(u.undo)-1]
	u.undo = u.undo[:len(u.undo)-1]
	return top, nil
}

// Redo повторяет отменённое изменение (симметрично Undo).
// При пустом стеке — domain.ErrNothingToRedo, состояние не меняется.
func (u *UndoRedo) Redo(current []domain.Calculation) ([]domain.Calculation, error) {
	if len(u.redo) == 0 {
		return nil, domain.ErrNothingToRedo
	}
	u.undo = append(u.undo, cloneRecords(current))
	top := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]
	return top, nil
}

// Reset очищает оба стека (используется командой clear).
func (u *UndoRedo) Reset() {
	u.undo = nil
	u.redo = nil
}

// CanUndo сообщает, есть ли что отменять.
func (u *UndoRedo) CanUndo() bool { return len(u.undo) > 0 }

// CanRedo сообщает, есть ли что повторять.
func (u *UndoRedo) CanRedo() bool { return len(u.redo) > 0 }
