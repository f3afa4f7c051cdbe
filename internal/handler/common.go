package handler

import (
	"net/http"
	"strings"

	apperrors "nft-ticket-ledger/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

// DefaultCallerHeader 未設定 CALLER_HEADER 時使用
const DefaultCallerHeader = "X-Caller-Address"

// idURI 路徑參數中的活動或票券 id；只檢查能否解析為整數，不存在的 id 交由 service 回報
type idURI struct {
	ID int64 `uri:"id"`
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// Caller 從指定 header 取出呼叫者地址，空白視為未提供
func Caller(c *gin.Context, header string) (string, error) {
	caller := strings.TrimSpace(c.GetHeader(header))
	if caller == "" {
		return "", apperrors.ErrMissingCaller
	}
	return caller, nil
}

func callerHeaderOrDefault(header string) string {
	if header == "" {
		return DefaultCallerHeader
	}
	return header
}
