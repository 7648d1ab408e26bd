// Package response is the JSON envelope every pokerhost endpoint replies
// with: {code, data, msg}. Code mirrors the HTTP status so web and app
// clients can branch without inspecting transport headers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the envelope. Data is never null on the wire; empty results are
// sent as {} so clients can unmarshal without nil checks.
type Body struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
	Msg  string      `json:"msg"`
}

func Success(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data, "")
}

func SuccessWithMsg(c *gin.Context, data interface{}, msg string) {
	JSON(c, http.StatusOK, data, msg)
}

func Error(c *gin.Context, status int, msg string) {
	JSON(c, status, gin.H{}, msg)
}

func JSON(c *gin.Context, status int, data interface{}, msg string) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, Body{
		Code: status,
		Data: data,
		Msg:  msg,
	})
}
