// File: internal/handler/users/user.go
package users

import (
	"net/http"
	"strconv"
	"strings"

	"library-api/internal/api"
	"library-api/internal/database"
	"library-api/internal/model"
	"library-api/internal/store"

	"github.com/labstack/echo/v4"
)

const pageSize = 20

var (
	listUsers         = store.ListUsers
	findUser          = store.FindUser
	getUserByID       = store.GetUserByID
	getUserByUsername = store.GetUserByUsername
	getUserByEmail    = store.GetUserByEmail
	updateUser        = store.UpdateUser
	deleteUser        = store.DeleteUser

	getBookByID          = store.GetBookByID
	getBookshelfEntry    = store.GetBookshelfEntry
	listBookshelf        = store.ListBookshelf
	addBookshelfEntry    = store.AddBookshelfEntry
	updateBookshelfState = store.UpdateBookshelfStatus

	countReadingLists         = store.CountReadingLists
	getReadingListByName      = store.GetReadingListByName
	listReadingLists          = store.ListReadingLists
	createReadingList         = store.CreateReadingList
	deleteReadingList         = store.DeleteReadingList
	listReadingListBooks      = store.ListReadingListBooks
	addBookToReadingList      = store.AddBookToReadingList
	removeBookFromReadingList = store.RemoveBookFromReadingList
)

func toUserResponse(u model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ListUsersHandler 分頁列出使用者
// @Summary     列出使用者
// @Tags        users
// @Produce     json
// @Param       page query int true "頁碼 (從 1 起算)"
// @Success     200 {array}  api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "page must be a positive integer"})
		}

		users, err := listUsers(c.Request().Context(), db, (page-1)*pageSize, pageSize)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, toUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// SearchUserHandler 以使用者名稱或 Email 查詢單一使用者
// @Summary     查詢使用者
// @Description 使用者名稱與 Email 至少需提供一項；兩者皆給時需同時符合
// @Tags        users
// @Produce     json
// @Param       username query string false "使用者名稱"
// @Param       email    query string false "Email"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/search [get]
func SearchUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.QueryParam("username")
		email := c.QueryParam("email")
		if strings.TrimSpace(username) == "" && strings.TrimSpace(email) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: "You must provide a non-empty username or email.",
			})
		}

		user, err := findUser(c.Request().Context(), db, username, email)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}
		return c.JSON(http.StatusOK, toUserResponse(*user))
	}
}

// UpdateUserHandler 更新使用者名稱與 Email
// @Summary     更新使用者
// @Description 更新時檢查新名稱與 Email 是否已被其他帳號使用
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int                   true "使用者 ID"
// @Param       body    body api.UpdateUserRequest true "更新內容"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/{user_id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "user_id must be an integer"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		req.Email = strings.ToLower(req.Email)

		ctx := c.Request().Context()
		user, err := getUserByID(ctx, db, userID)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}

		if req.Username != user.Username {
			if _, err := getUserByUsername(ctx, db, req.Username); err == nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username already exists."})
			}
		}
		if req.Email != user.Email {
			if _, err := getUserByEmail(ctx, db, req.Email); err == nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email already exists."})
			}
		}

		user.Username = req.Username
		user.Email = req.Email
		if err := updateUser(ctx, db, user); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		updated, err := getUserByID(ctx, db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toUserResponse(*updated))
	}
}

// DeleteUserHandler 以使用者名稱或 Email 刪除使用者並回傳被刪除的內容
// @Summary     刪除使用者
// @Tags        users
// @Produce     json
// @Param       username query string false "使用者名稱"
// @Param       email    query string false "Email"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /users [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.QueryParam("username")
		email := c.QueryParam("email")
		if strings.TrimSpace(username) == "" && strings.TrimSpace(email) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: "You must provide a non-empty username or email.",
			})
		}

		ctx := c.Request().Context()
		user, err := findUser(ctx, db, username, email)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found."})
		}
		if err := deleteUser(ctx, db, user.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toUserResponse(*user))
	}
}
