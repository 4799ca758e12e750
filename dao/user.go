package dao

import (
	"Verity/models"
	"Verity/pkg/snowflake"
	"context"
	"errors"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{Repo: NewRepo[models.Users](db)}
}

// GetOrCreateByName 按展示名 upsert，首次使用即建号
// 并发下撞唯一键时回查一次
func (u *Users) GetOrCreateByName(ctx context.Context, name string) (*models.Users, error) {
	user, err := u.FindByWhere(ctx, "name = ?", name)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.Users{ID: snowflake.GenUserID(), Name: name}
	err = u.Create(ctx, user)
	if err == nil {
		return user, nil
	}
	if IsDupKeyErr(err) {
		return u.FindByWhere(ctx, "name = ?", name)
	}
	return nil, err
}

// FindByIDs 批量查询，返回 id -> user
func (u *Users) FindByIDs(ctx context.Context, ids []int64) (map[int64]*models.Users, error) {
	result := make(map[int64]*models.Users, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var users []*models.Users
	if err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		result[user.ID] = user
	}
	return result, nil
}
