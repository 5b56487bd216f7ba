package controller

import (
	"context"
	"fmt"

	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/notify"
	"github.com/Thiccblique/Tusday.com/internal/repository"
)

// Dashboard manages the board list of one session.
type Dashboard struct {
	store  repository.Store
	sink   notify.Sink
	boards []model.Board
}

func NewDashboard(ctx context.Context, store repository.Store, sink notify.Sink) (*Dashboard, error) {
	d := &Dashboard{store: store, sink: sink}
	if err := d.Reload(ctx); err != nil {
		notify.Error(sink, err)
		return nil, err
	}
	return d, nil
}

func (d *Dashboard) Boards() []model.Board {
	return d.boards
}

func (d *Dashboard) Reload(ctx context.Context) error {
	boards, err := d.store.Boards.List(ctx)
	if err != nil {
		return err
	}
	d.boards = boards
	return nil
}

func (d *Dashboard) CreateBoard(ctx context.Context, name string) (*model.Board, error) {
	board, err := d.store.Boards.Create(ctx, name)
	if err != nil {
		notify.Error(d.sink, err)
		return nil, err
	}
	return board, d.done(ctx, fmt.Sprintf("Board '%s' created!", board.Name))
}

func (d *Dashboard) RenameBoard(ctx context.Context, id int64, name string) error {
	board, err := d.store.Boards.Rename(ctx, id, name)
	if err != nil {
		notify.Error(d.sink, err)
		return err
	}
	return d.done(ctx, fmt.Sprintf("Board renamed to '%s'", board.Name))
}

func (d *Dashboard) DeleteBoard(ctx context.Context, id int64) error {
	board, err := d.store.Boards.Get(ctx, id)
	if err == nil {
		err = d.store.Boards.Delete(ctx, id)
	}
	if err != nil {
		notify.Error(d.sink, err)
		_ = d.Reload(ctx)
		return err
	}
	return d.done(ctx, fmt.Sprintf("Board '%s' deleted", board.Name))
}

// Select opens the table of board id.
func (d *Dashboard) Select(ctx context.Context, id int64) (*Table, error) {
	board, err := d.store.Boards.Get(ctx, id)
	if err != nil {
		notify.Error(d.sink, err)
		_ = d.Reload(ctx)
		return nil, err
	}
	return NewTable(ctx, d.store, *board, d.sink)
}

func (d *Dashboard) done(ctx context.Context, msg string) error {
	if err := d.Reload(ctx); err != nil {
		notify.Error(d.sink, err)
		return err
	}
	notify.Info(d.sink, msg)
	return nil
}
