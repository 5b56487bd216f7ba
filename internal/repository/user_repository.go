package repository

import (
	"context"
	"errors"

	"github.com/Thiccblique/Tusday.com/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return wrapDBError(r.db.WithContext(ctx).Create(user).Error)
}

// FindByUsername returns nil, nil when no user has that name.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDBError(err)
	}
	return &user, nil
}

// FindByUsernameOrEmail checks both unique fields in one lookup. It returns
// nil, nil when neither is taken.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, wrapDBError(err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	// Prefer the row whose username collides.
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return &users[0], nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDBError(err)
	}
	return &user, nil
}

// Delete removes the user together with every board they own.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("user", id)
			}
			return err
		}

		boards := tx.Session(&gorm.Session{NewDB: true}).Model(&model.Board{}).Select("id").Where("user_id = ?", id)
		tasks := tx.Session(&gorm.Session{NewDB: true}).Model(&model.Task{}).Select("id").Where("board_id IN (?)", boards)
		if err := tx.Where("task_id IN (?)", tasks).Delete(&model.Cell{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id IN (?)", boards).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id IN (?)", boards).Delete(&model.Column{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Board{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
	return wrapDBError(err)
}
