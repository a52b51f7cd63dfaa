//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"

	"github.com/gin-gonic/gin"
)

func performRaw(r *gin.Engine, req *http.Request) *nethttptest.ResponseRecorder {
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
