package service

import (
	"Verity/config"
	"Verity/dao"
	"Verity/pkg/jwt"
	"Verity/types"
	"context"
	"errors"
	"strings"
	"time"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	ClaimName(ctx context.Context, name string) (*types.ClaimNameResponse, error)
}

type UserService struct {
	UsersRepo *dao.Users
	Config    *config.Config
}

// ClaimName 无密码身份：按展示名 upsert，签发 token
func (s *UserService) ClaimName(ctx context.Context, name string) (*types.ClaimNameResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name 不能为空")
	}

	user, err := s.UsersRepo.GetOrCreateByName(ctx, name)
	if err != nil {
		return nil, err
	}

	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	if expire <= 0 {
		expire = 7 * 24 * time.Hour
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Name, expire)
	if err != nil {
		return nil, err
	}

	return &types.ClaimNameResponse{
		UserID: user.ID,
		Name:   user.Name,
		Token:  token,
	}, nil
}
