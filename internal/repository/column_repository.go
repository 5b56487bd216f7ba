package repository

import (
	"context"
	"strings"

	"github.com/Thiccblique/Tusday.com/internal/model"

	"gorm.io/gorm"
)

type GormColumnRepository struct {
	db      *gorm.DB
	ownerID int64
}

var _ ColumnRepository = (*GormColumnRepository)(nil)

func NewColumnRepository(db *gorm.DB, ownerID int64) *GormColumnRepository {
	return &GormColumnRepository{db: db, ownerID: ownerID}
}

func (r *GormColumnRepository) List(ctx context.Context, boardID int64) ([]model.Column, error) {
	db := r.db.WithContext(ctx)
	if _, err := ownedBoard(db, r.ownerID, boardID); err != nil {
		return nil, err
	}
	return listColumns(db, boardID)
}

func (r *GormColumnRepository) Get(ctx context.Context, id int64) (*model.Column, error) {
	return visibleColumn(r.db.WithContext(ctx), r.ownerID, id)
}

func (r *GormColumnRepository) Create(ctx context.Context, boardID int64, name string, typ model.ColumnType) (*model.Column, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("column name is required")
	}
	if !typ.Valid() {
		return nil, validationError("unknown column type " + string(typ))
	}

	column := &model.Column{BoardID: boardID, Name: name, Type: typ}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedBoard(tx, r.ownerID, boardID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Column{}).Where("board_id = ?", boardID).Count(&count).Error; err != nil {
			return err
		}
		column.Position = int(count)
		return tx.Create(column).Error
	})
	if err != nil {
		return nil, wrapDBError(err)
	}
	return column, nil
}

func (r *GormColumnRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := visibleColumn(tx, r.ownerID, id); err != nil {
			return err
		}
		if err := tx.Where("column_id = ?", id).Delete(&model.Cell{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Column{}, id).Error
	})
	return wrapDBError(err)
}

func (r *GormColumnRepository) EnsureDefaults(ctx context.Context, boardID int64) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedBoard(tx, r.ownerID, boardID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Column{}).Where("board_id = ?", boardID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			defaults := model.DefaultColumns(boardID)
			if err := tx.Create(&defaults).Error; err != nil {
				return err
			}
		}

		var err error
		columns, err = listColumns(tx, boardID)
		return err
	})
	if err != nil {
		return nil, wrapDBError(err)
	}
	return columns, nil
}
