package handler

import (
	"encoding/json"
	"net/http"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/sembarang8788-lab/cafe-backend/internal/api/dto"
	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"github.com/sembarang8788-lab/cafe-backend/internal/service"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{
		userService: userService,
	}
}

// @Summary list users
// @Tags users
// @Produce json
// @Success 200 {object} handler.Response{data=[]dto.UserDTO} "success"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/users [get]
func (u *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := u.userService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	userDTOs := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		userDTOs = append(userDTOs, convertUserModelToDTO(&users[i]))
	}
	SuccessJSON(w, http.StatusOK, userDTOs)
}

// @Summary get user by id
// @Tags users
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} handler.Response{data=dto.UserDTO} "success"
// @Failure 404 {object} handler.Response "user not found"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/users/{id} [get]
func (u *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := u.userService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, convertUserModelToDTO(user))
}

// @Summary register user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.RegisterDTO true "registration fields"
// @Success 201 {object} handler.Response{data=dto.UserDTO} "created"
// @Failure 400 {object} handler.Response "username or email already exists"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/users/register [post]
func (u *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		ErrorJSON(w, int(er.BadRequestCode), "invalid request body")
		return
	}

	user, err := u.userService.Register(r.Context(), registerDTO.Username, registerDTO.Email, registerDTO.Password, registerDTO.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusCreated, convertUserModelToDTO(user))
}

// @Summary login
// @Description 無狀態憑證檢查, 不發token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "username and password"
// @Success 200 {object} handler.Response{data=dto.UserDTO} "success"
// @Failure 401 {object} handler.Response "invalid username or password"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/users/login [post]
func (u *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		ErrorJSON(w, int(er.BadRequestCode), "invalid request body")
		return
	}

	user, err := u.userService.Login(r.Context(), loginDTO.Username, loginDTO.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, convertUserModelToDTO(user))
}

// @Summary update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "user id"
// @Param user body dto.UpdateUserDTO true "profile fields"
// @Success 200 {object} handler.Response{data=dto.UserDTO} "success"
// @Failure 404 {object} handler.Response "user not found"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/users/{id} [put]
func (u *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateDTO dto.UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		ErrorJSON(w, int(er.BadRequestCode), "invalid request body")
		return
	}

	user, err := u.userService.UpdateUser(r.Context(), id, updateDTO.Username, updateDTO.Email, updateDTO.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, convertUserModelToDTO(user))
}

// @Summary delete user
// @Tags users
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} handler.Response "deleted"
// @Failure 404 {object} handler.Response "user not found"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/users/{id} [delete]
func (u *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := u.userService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	MessageJSON(w, http.StatusOK, "User deleted successfully")
}

// convertUserModelToDTO 將 User model 轉換為對外DTO, 不帶密碼雜湊
func convertUserModelToDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
