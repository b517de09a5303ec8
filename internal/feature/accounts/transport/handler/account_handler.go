// Package handler はaccountsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/transport/http/dto"
	"account_backend/internal/feature/accounts/usecase"
)

// AccountUsecase はアカウント操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AccountUsecase interface {
	// Signup は指定された情報で新規ユーザーを登録します。
	Signup(ctx context.Context, username, email, password, confirmPassword string) error
	// Signin はユーザーを認証し、成功時にユーザーを返します。
	Signin(ctx context.Context, username, password string) (*entity.User, error)
	// ResetEmail は指定されたユーザーのemailを更新します。
	ResetEmail(ctx context.Context, username, newEmail string) error
	// ResetPassword は指定されたユーザーのパスワードを更新します。
	ResetPassword(ctx context.Context, username, newPassword, confirmPassword string) error
	// DeleteAccount は指定されたIDのユーザーを削除します。
	DeleteAccount(ctx context.Context, id uint) error
	// DeleteAllAccounts は全ユーザーを削除します。
	DeleteAllAccounts(ctx context.Context) error
	// ListAccounts は全ユーザーを取得します。
	ListAccounts(ctx context.Context) ([]entity.User, error)
}

// AccountHandler はアカウント操作のHTTPリクエストを処理します。
// AccountUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler はAccountHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAccountUsecaseを注入します。
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - バリデーションエラー時は400を返却
// - パスワード不一致時は400を返却
// - username/email重複時は400を返却
// - その他のストレージ/ハッシュ失敗時は500を返却
// - 成功時は201を返却
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "All fields are required."})
		return
	}
	// パスワードはログに出力しない
	if err := h.accounts.Signup(c.Request.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch):
			slog.Warn("signup password mismatch", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Passwords do not match."})
		case errors.Is(err, usecase.ErrDuplicateAccount):
			slog.Warn("signup duplicate account", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Username or Email already exists."})
		default:
			slog.Error("signup failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error."})
		}
		return
	}
	slog.Info("user signup successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User created successfully."})
}

// Signin はユーザー認証APIエンドポイントを処理します。
// usernameの存在有無を漏らさないため、未検出とパスワード不一致で同一メッセージを返します。
// - バリデーションエラー時は400を返却
// - ユーザー未検出時は404を返却
// - パスワード不一致時は401を返却
// - 認証成功時はユーザー情報付きで200を返却
func (h *AccountHandler) Signin(c *gin.Context) {
	var req dto.SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "All fields are required."})
		return
	}
	user, err := h.accounts.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAccountNotFound):
			slog.Warn("signin unknown user", "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Invalid credentials."})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("signin invalid credentials", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid credentials."})
		default:
			slog.Error("signin failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error."})
		}
		return
	}
	slog.Info("user signin successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SigninResponse{
		Message: "Sign in successful.",
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// ResetEmail はemail更新APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー未検出時は404を返却
// - email重複時は400を返却
// - 成功時は200を返却
func (h *AccountHandler) ResetEmail(c *gin.Context) {
	var req dto.ResetEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("reset email validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "All fields are required."})
		return
	}
	if err := h.accounts.ResetEmail(c.Request.Context(), req.Username, req.NewEmail); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAccountNotFound):
			slog.Warn("reset email unknown user", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found."})
		case errors.Is(err, usecase.ErrDuplicateAccount):
			slog.Warn("reset email duplicate", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email already exists."})
		default:
			slog.Error("reset email failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error."})
		}
		return
	}
	slog.Info("email updated", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Email updated successfully."})
}

// ResetPassword はパスワード更新APIエンドポイントを処理します。
// - バリデーションエラー・パスワード不一致時は400を返却
// - ユーザー未検出時は404を返却
// - 成功時は200を返却
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("reset password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "All fields are required."})
		return
	}
	if err := h.accounts.ResetPassword(c.Request.Context(), req.Username, req.NewPassword, req.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch):
			slog.Warn("reset password mismatch", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Passwords do not match."})
		case errors.Is(err, usecase.ErrAccountNotFound):
			slog.Warn("reset password unknown user", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found."})
		default:
			slog.Error("reset password failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error."})
		}
		return
	}
	slog.Info("password updated", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully."})
}

// Delete はユーザー削除APIエンドポイントを処理します。
// パスパラメータ:idのユーザーを削除し、ID採番カウンタをリセットします。
// - :idが正の整数でない場合は400を返却
// - ユーザー未検出時は404を返却
// - 成功時は200を返却
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		slog.Warn("delete invalid id", "id", c.Param("id"), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid user id."})
		return
	}
	if err := h.accounts.DeleteAccount(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			slog.Warn("delete unknown user", "id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found."})
			return
		}
		slog.Error("delete failed", "error", err, "id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error."})
		return
	}
	slog.Info("user deleted", "id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted and ID sequence reset successfully."})
}

// DeleteAll は全ユーザー削除APIエンドポイントを処理します。
// - 削除対象が存在しない場合は404を返却
// - 成功時は200を返却
func (h *AccountHandler) DeleteAll(c *gin.Context) {
	if err := h.accounts.DeleteAllAccounts(c.Request.Context()); err != nil {
		if errors.Is(err, usecase.ErrNoAccounts) {
			slog.Warn("delete all: no users", "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No users to delete."})
			return
		}
		slog.Error("delete all failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error."})
		return
	}
	slog.Info("all users deleted", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "All users deleted, and ID sequence reset successfully."})
}

// List はユーザー一覧APIエンドポイントを処理します。
// パスワードハッシュはDTO変換で除外されます。
func (h *AccountHandler) List(c *gin.Context) {
	users, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error."})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}
