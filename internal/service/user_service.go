package service

import (
	"context"
	"errors"
	"time"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sembarang8788-lab/cafe-backend/internal/infra/repository/db"
	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// postgres unique constraint violation
const pgUniqueViolationCode = "23505"

type IUserService interface {
	Register(ctx context.Context, username, email, password, role string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id, username, email, role string) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserService struct {
	store db.UnifiedDB
}

func NewUserService(store db.UnifiedDB) IUserService {
	return &UserService{store: store}
}

// Register 註冊用戶
//
// 錯誤:
//   - er.BadRequestCode 400: username或email已存在 (unique violation)
//   - er.InternalErrorCode 500: 其他錯誤
func (u *UserService) Register(ctx context.Context, username, email, password, role string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, er.New(er.BadRequestCode, "username, email and password are required")
	}
	if role == "" {
		role = model.DefaultUserRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	user := &model.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.store.CreateUser(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return nil, er.New(er.BadRequestCode, "username or email already exists")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return user, nil
}

// Login 無狀態憑證檢查, 不發token不建session
//
// 錯誤:
//   - er.UnauthenticatedCode 401: 用戶不存在或密碼錯誤 (不區分, 避免枚舉帳號)
func (u *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := u.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, er.New(er.UnauthenticatedCode, "invalid username or password")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, er.New(er.UnauthenticatedCode, "invalid username or password")
	}
	return user, nil
}

func (u *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := u.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "user not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return user, nil
}

func (u *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.store.GetAllUsers(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return users, nil
}

// UpdateUser 更新用戶資料欄位, 不含密碼
func (u *UserService) UpdateUser(ctx context.Context, id, username, email, role string) (*model.User, error) {
	user, err := u.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "user not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	if role != "" {
		user.Role = role
	}

	if err := u.store.UpdateUser(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return nil, er.New(er.BadRequestCode, "username or email already exists")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return user, nil
}

func (u *UserService) DeleteUser(ctx context.Context, id string) error {
	err := u.store.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return er.New(er.NotFoundCode, "user not found")
		}
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}
