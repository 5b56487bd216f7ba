package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Thiccblique/Tusday.com/internal/model"
)

// memory holds the entities of one guest session. Ids come from per-kind
// counters starting at 1. Nothing is written anywhere else.
type memory struct {
	mu sync.Mutex

	boards  []model.Board
	columns []model.Column
	tasks   []model.Task
	cells   map[model.CellKey]model.Cell

	lastBoardID  int64
	lastColumnID int64
	lastTaskID   int64
	lastCellID   int64

	now func() time.Time
}

// NewMemoryStore returns an ephemeral Store for guest mode. Dropping the Store
// drops all its data.
func NewMemoryStore() Store {
	m := &memory{
		cells: make(map[model.CellKey]model.Cell),
		now:   time.Now,
	}
	return Store{
		Boards:  memoryBoards{m},
		Columns: memoryColumns{m},
		Tasks:   memoryTasks{m},
		Cells:   memoryCells{m},
	}
}

func (m *memory) boardIndex(id int64) int {
	return slices.IndexFunc(m.boards, func(b model.Board) bool { return b.ID == id })
}

func (m *memory) columnIndex(id int64) int {
	return slices.IndexFunc(m.columns, func(c model.Column) bool { return c.ID == id })
}

func (m *memory) taskIndex(id int64) int {
	return slices.IndexFunc(m.tasks, func(t model.Task) bool { return t.ID == id })
}

func (m *memory) requireBoard(id int64) error {
	if m.boardIndex(id) < 0 {
		return notFound("board", id)
	}
	return nil
}

func (m *memory) boardColumns(boardID int64) []model.Column {
	var out []model.Column
	for _, c := range m.columns {
		if c.BoardID == boardID {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Column) int { return a.Position - b.Position })
	return out
}

func (m *memory) boardTasks(boardID int64) []model.Task {
	var out []model.Task
	for _, t := range m.tasks {
		if t.BoardID == boardID {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Task) int { return a.Position - b.Position })
	return out
}

func (m *memory) deleteCells(match func(model.CellKey) bool) {
	for k := range m.cells {
		if match(k) {
			delete(m.cells, k)
		}
	}
}

type memoryBoards struct{ m *memory }

func (r memoryBoards) List(ctx context.Context) ([]model.Board, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return slices.Clone(r.m.boards), nil
}

func (r memoryBoards) Get(ctx context.Context, id int64) (*model.Board, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.boardIndex(id)
	if i < 0 {
		return nil, notFound("board", id)
	}
	b := r.m.boards[i]
	return &b, nil
}

func (r memoryBoards) Create(ctx context.Context, name string) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("board name is required")
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.lastBoardID++
	now := r.m.now()
	b := model.Board{ID: r.m.lastBoardID, Name: name, CreatedAt: now, UpdatedAt: now}
	r.m.boards = append(r.m.boards, b)
	return &b, nil
}

func (r memoryBoards) Rename(ctx context.Context, id int64, name string) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("board name is required")
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.boardIndex(id)
	if i < 0 {
		return nil, notFound("board", id)
	}
	r.m.boards[i].Name = name
	r.m.boards[i].UpdatedAt = r.m.now()
	b := r.m.boards[i]
	return &b, nil
}

func (r memoryBoards) Delete(ctx context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.boardIndex(id)
	if i < 0 {
		return notFound("board", id)
	}

	taskIDs := make(map[int64]bool)
	for _, t := range r.m.tasks {
		if t.BoardID == id {
			taskIDs[t.ID] = true
		}
	}
	r.m.deleteCells(func(k model.CellKey) bool { return taskIDs[k.TaskID] })
	r.m.tasks = slices.DeleteFunc(r.m.tasks, func(t model.Task) bool { return t.BoardID == id })
	r.m.columns = slices.DeleteFunc(r.m.columns, func(c model.Column) bool { return c.BoardID == id })
	r.m.boards = slices.Delete(r.m.boards, i, i+1)
	return nil
}

type memoryColumns struct{ m *memory }

func (r memoryColumns) List(ctx context.Context, boardID int64) ([]model.Column, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.requireBoard(boardID); err != nil {
		return nil, err
	}
	return r.m.boardColumns(boardID), nil
}

func (r memoryColumns) Get(ctx context.Context, id int64) (*model.Column, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.columnIndex(id)
	if i < 0 {
		return nil, notFound("column", id)
	}
	c := r.m.columns[i]
	return &c, nil
}

func (r memoryColumns) Create(ctx context.Context, boardID int64, name string, typ model.ColumnType) (*model.Column, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("column name is required")
	}
	if !typ.Valid() {
		return nil, validationError("unknown column type " + string(typ))
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.requireBoard(boardID); err != nil {
		return nil, err
	}
	c := r.m.addColumn(model.Column{
		BoardID:  boardID,
		Name:     name,
		Type:     typ,
		Position: len(r.m.boardColumns(boardID)),
	})
	return &c, nil
}

func (r memoryColumns) Delete(ctx context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.columnIndex(id)
	if i < 0 {
		return notFound("column", id)
	}
	r.m.deleteCells(func(k model.CellKey) bool { return k.ColumnID == id })
	r.m.columns = slices.Delete(r.m.columns, i, i+1)
	return nil
}

func (r memoryColumns) EnsureDefaults(ctx context.Context, boardID int64) ([]model.Column, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.requireBoard(boardID); err != nil {
		return nil, err
	}
	if len(r.m.boardColumns(boardID)) == 0 {
		for _, c := range model.DefaultColumns(boardID) {
			r.m.addColumn(c)
		}
	}
	return r.m.boardColumns(boardID), nil
}

func (m *memory) addColumn(c model.Column) model.Column {
	m.lastColumnID++
	c.ID = m.lastColumnID
	c.CreatedAt = m.now()
	m.columns = append(m.columns, c)
	return c
}

type memoryTasks struct{ m *memory }

func (r memoryTasks) List(ctx context.Context, boardID int64) ([]model.Task, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.requireBoard(boardID); err != nil {
		return nil, err
	}
	return r.m.boardTasks(boardID), nil
}

func (r memoryTasks) Get(ctx context.Context, id int64) (*model.Task, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.taskIndex(id)
	if i < 0 {
		return nil, notFound("task", id)
	}
	t := r.m.tasks[i]
	return &t, nil
}

func (r memoryTasks) Create(ctx context.Context, boardID int64) (*model.Task, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.requireBoard(boardID); err != nil {
		return nil, err
	}

	count := len(r.m.boardTasks(boardID))
	r.m.lastTaskID++
	now := r.m.now()
	t := model.Task{
		ID:        r.m.lastTaskID,
		BoardID:   boardID,
		Name:      model.NewTaskName(count),
		Position:  count,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.m.tasks = append(r.m.tasks, t)
	return &t, nil
}

func (r memoryTasks) Rename(ctx context.Context, id int64, name string) (*model.Task, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.taskIndex(id)
	if i < 0 {
		return nil, notFound("task", id)
	}
	if name = strings.TrimSpace(name); name != "" {
		r.m.tasks[i].Name = name
		r.m.tasks[i].UpdatedAt = r.m.now()
	}
	t := r.m.tasks[i]
	return &t, nil
}

func (r memoryTasks) Delete(ctx context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.taskIndex(id)
	if i < 0 {
		return notFound("task", id)
	}
	r.m.deleteCells(func(k model.CellKey) bool { return k.TaskID == id })
	r.m.tasks = slices.Delete(r.m.tasks, i, i+1)
	return nil
}

type memoryCells struct{ m *memory }

func (r memoryCells) Value(ctx context.Context, taskID, columnID int64) (string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkPair(taskID, columnID); err != nil {
		return "", err
	}
	return r.m.cells[model.CellKey{TaskID: taskID, ColumnID: columnID}].Text(), nil
}

func (r memoryCells) Set(ctx context.Context, taskID, columnID int64, value string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkPair(taskID, columnID); err != nil {
		return err
	}

	key := model.CellKey{TaskID: taskID, ColumnID: columnID}
	now := r.m.now()
	cell, ok := r.m.cells[key]
	if !ok {
		r.m.lastCellID++
		cell = model.Cell{ID: r.m.lastCellID, TaskID: taskID, ColumnID: columnID, CreatedAt: now}
	}
	cell.Value = &value
	cell.UpdatedAt = now
	r.m.cells[key] = cell
	return nil
}

func (r memoryCells) ListByBoard(ctx context.Context, boardID int64) (map[model.CellKey]string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.requireBoard(boardID); err != nil {
		return nil, err
	}

	onBoard := make(map[int64]bool)
	for _, t := range r.m.boardTasks(boardID) {
		onBoard[t.ID] = true
	}
	values := make(map[model.CellKey]string)
	for k, c := range r.m.cells {
		if onBoard[k.TaskID] {
			values[k] = c.Text()
		}
	}
	return values, nil
}

// checkPair mirrors GormCellRepository.pair.
func (m *memory) checkPair(taskID, columnID int64) error {
	ti := m.taskIndex(taskID)
	if ti < 0 {
		return notFound("task", taskID)
	}
	ci := m.columnIndex(columnID)
	if ci < 0 {
		return notFound("column", columnID)
	}
	if m.tasks[ti].BoardID != m.columns[ci].BoardID {
		return validationError("task and column belong to different boards")
	}
	return nil
}
