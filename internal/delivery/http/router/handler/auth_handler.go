package handler

import (
	"log/slog"

	"garden/internal/delivery/http/response"
	"garden/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// credentialsRequest is the body of register and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler serves account registration and login.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register provisions a new account and returns its session token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, "User registered successfully", output.Token)
}

// Login exchanges a username and password for a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, "User logged in successfully", output.Token)
}
