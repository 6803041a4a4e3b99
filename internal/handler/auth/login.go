// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"
	"time"

	"library-api/internal/api"
	"library-api/internal/database"
	"library-api/internal/service"
	"library-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByUsername = store.GetUserByUsername
	getUserByEmail    = store.GetUserByEmail
	createUser        = store.CreateUser
	hashPassword      = service.HashPassword
	authenticateUser  = service.AuthenticateUser
	issueAccessToken  = service.IssueAccessToken
)

// LoginHandler 使用 Username/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Username 與 Password 進行驗證，回傳存取令牌
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if strings.TrimSpace(req.Username) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username cannot be empty or whitespace."})
		}
		if strings.TrimSpace(req.Password) == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Password cannot be empty or whitespace."})
		}

		user, err := getUserByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Incorrect username or password"})
		}

		authUser, err := authenticateUser(c.Request().Context(), *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Incorrect username or password"})
		}

		token, err := issueAccessToken(*authUser, 24*time.Hour)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token, TokenType: "bearer"})
	}
}
