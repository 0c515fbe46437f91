package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-logistics/internal/api"
	"github.com/sanosuguru/go-event-logistics/internal/application"
	"github.com/sanosuguru/go-event-logistics/internal/pkg/logger"
)

// errorJSON はサービスのエラーをステータスコードに変換して返す
// NotFound は404、入力値の検証エラーは400、それ以外は500
func errorJSON(c echo.Context, err error) error {
	switch {
	case application.IsNotFound(err):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error(), Code: http.StatusNotFound})
	case application.IsValidation(err):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Code: http.StatusBadRequest})
	default:
		logger.Error("リクエスト処理に失敗",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Error: "内部サーバーエラー",
			Code:  http.StatusInternalServerError,
		})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: message, Code: http.StatusBadRequest})
}

// bindAndValidate はリクエストボディをバインドして検証する
// 問題があればクライアントに返すメッセージを返す
func bindAndValidate(c echo.Context, req interface{}) string {
	if err := c.Bind(req); err != nil {
		return "リクエストの形式が不正です"
	}
	if err := c.Validate(req); err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			if msg, ok := he.Message.(string); ok {
				return msg
			}
		}
		return err.Error()
	}
	return ""
}

// paramID はパスパラメータを正の整数IDとして取り出す
func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pathParam はデコード済みのパスパラメータを返す
// echo は RawPath がある（%2F などを含む）ときだけエスケープされたままの値を渡す
func pathParam(c echo.Context, name string) (string, bool) {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value, true
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", false
	}
	return decoded, true
}
