package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// 管理者トークンのヘッダ名
const AdminTokenHeader = "X-Admin-Token"

// X-Admin-Tokenが設定済みシークレットと一致するか確認します。
// 比較はタイミング攻撃対策で定数時間。
func AdminTokenGuard(adminToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// サーバー側が未設定なら全部拒否（デフォルトのトークンは持たない）
			if adminToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("invalid or missing admin token"))
			}

			got := c.Request().Header.Get(AdminTokenHeader)
			if got == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("invalid or missing admin token"))
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(adminToken)) != 1 {
				return c.JSON(http.StatusUnauthorized, errorJSON("invalid or missing admin token"))
			}

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
