package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderXRequestID = "X-Request-Id"

// リクエストIDを採番してcontextと応答ヘッダへ載せる。
// クライアントが持ち込んだ値はそのまま使う。
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set("request_id", rid)
			c.Response().Header().Set(HeaderXRequestID, rid)
			return next(c)
		}
	}
}

// RequestIDFromContext はmiddlewareが載せたIDを取り出す。
func RequestIDFromContext(c echo.Context) string {
	v := c.Get("request_id")
	rid, ok := v.(string)
	if !ok {
		return ""
	}
	return rid
}
