package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UserRepoTestSuite struct {
	suite.Suite
	db       *gorm.DB
	userRepo *UserRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *UserRepoTestSuite) SetupSuite() {
	db := getTestDbConn(suite.T())

	suite.db = db
	suite.userRepo = NewUserRepo(NewDbDao(db))
}

// SetupTest 在每個測試前執行
func (suite *UserRepoTestSuite) SetupTest() {
	// 清空資料表
	cleanTables(suite.db)
}

func (suite *UserRepoTestSuite) TearDownSuite() {
	db, err := suite.db.DB()
	require.NoError(suite.T(), err)
	db.Close()
}

func newTestUser(username string) *model.User {
	return &model.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed-password",
		Role:     model.DefaultUserRole,
	}
}

func (suite *UserRepoTestSuite) TestCreateAndGetUser() {
	ctx := context.Background()

	newUser := newTestUser("cashier01")
	err := suite.userRepo.CreateUser(ctx, newUser)
	require.NoError(suite.T(), err, "Failed to create user")

	retrieved, err := suite.userRepo.GetUserByID(ctx, newUser.ID)
	require.NoError(suite.T(), err, "Failed to get user by ID")
	require.Equal(suite.T(), newUser.Username, retrieved.Username)
	require.Equal(suite.T(), "cashier", retrieved.Role)
}

func (suite *UserRepoTestSuite) TestGetUserByUsername() {
	ctx := context.Background()

	newUser := newTestUser("cashier02")
	err := suite.userRepo.CreateUser(ctx, newUser)
	require.NoError(suite.T(), err)

	retrieved, err := suite.userRepo.GetUserByUsername(ctx, "cashier02")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), newUser.ID, retrieved.ID)

	_, err = suite.userRepo.GetUserByUsername(ctx, "no-such-user")
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *UserRepoTestSuite) TestCreateUserDuplicateUsername() {
	ctx := context.Background()

	err := suite.userRepo.CreateUser(ctx, newTestUser("cashier03"))
	require.NoError(suite.T(), err)

	// username 唯一約束
	dup := newTestUser("cashier03")
	dup.Email = "other@example.com"
	err = suite.userRepo.CreateUser(ctx, dup)
	require.Error(suite.T(), err, "Duplicate username should be rejected")
}

func (suite *UserRepoTestSuite) TestGetAllUsersOrder() {
	ctx := context.Background()

	first := newTestUser("cashier04")
	require.NoError(suite.T(), suite.userRepo.CreateUser(ctx, first))

	second := newTestUser("cashier05")
	require.NoError(suite.T(), suite.userRepo.CreateUser(ctx, second))

	users, err := suite.userRepo.GetAllUsers(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), users, 2)
	require.Equal(suite.T(), second.ID, users[0].ID, "Newest user should come first")
}

func (suite *UserRepoTestSuite) TestUpdateUser() {
	ctx := context.Background()

	newUser := newTestUser("cashier06")
	err := suite.userRepo.CreateUser(ctx, newUser)
	require.NoError(suite.T(), err)

	newUser.Role = "admin"
	newUser.Email = "admin06@example.com"
	err = suite.userRepo.UpdateUser(ctx, newUser)
	require.NoError(suite.T(), err)

	retrieved, err := suite.userRepo.GetUserByID(ctx, newUser.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "admin", retrieved.Role)
	require.Equal(suite.T(), "admin06@example.com", retrieved.Email)
}

func (suite *UserRepoTestSuite) TestDeleteUser() {
	ctx := context.Background()

	newUser := newTestUser("cashier07")
	err := suite.userRepo.CreateUser(ctx, newUser)
	require.NoError(suite.T(), err)

	err = suite.userRepo.DeleteUser(ctx, newUser.ID)
	require.NoError(suite.T(), err)

	_, err = suite.userRepo.GetUserByID(ctx, newUser.ID)
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)

	// 刪除不存在的使用者
	err = suite.userRepo.DeleteUser(ctx, newUser.ID)
	require.ErrorIs(suite.T(), err, ErrUserNotFound)
}

func TestUserRepoSuite(t *testing.T) {
	suite.Run(t, new(UserRepoTestSuite))
}
