package service

import (
	"ImpulseGuard/internal/api/dto"
	"ImpulseGuard/internal/model"
	"ImpulseGuard/internal/pkg/security"
	"ImpulseGuard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) error
	Login(ctx context.Context, dto *dto.LoginDTO) (string, error)
	GetUserByToken(ctx context.Context, token string) (*model.User, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserExist
	}

	user := &model.User{}
	err = copier.Copy(user, regDTO)
	if err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = passwordHash

	token, err := security.NewApiToken()
	if err != nil {
		return err
	}
	user.ApiToken = token

	// 邮箱唯一性由存储层约束兜底 并发重复注册在这里失败而不是竞争
	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	err = security.CheckPasswordHash(loginDTO.Password, user.PasswordHash)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	return user.ApiToken, nil
}

func (s *UserServiceImpl) GetUserByToken(ctx context.Context, token string) (*model.User, error) {
	user, err := s.userRepo.GetUserByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrTokenInvalid
	}
	return user, nil
}
