// File: internal/handler/auth/register.go
package auth

import (
	"net/http"
	"strings"

	"library-api/internal/api"
	"library-api/internal/database"
	"library-api/internal/model"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立新使用者帳號
// @Summary     註冊使用者
// @Description 接收使用者資料並建立新帳號 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "使用者資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if strings.TrimSpace(req.Username) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username cannot be empty."})
		}
		if strings.TrimSpace(req.Email) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email cannot be empty."})
		}
		if strings.TrimSpace(req.Password) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Password cannot be empty."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		ctx := c.Request().Context()
		if _, err := getUserByUsername(ctx, db, req.Username); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username already exists."})
		}
		if _, err := getUserByEmail(ctx, db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email already exists."})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(ctx, db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})
	}
}
