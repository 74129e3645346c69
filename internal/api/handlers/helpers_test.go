package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"

	"condo-ops-backend/internal/auth"
	"condo-ops-backend/internal/scheduling"

	"github.com/gin-gonic/gin"
)

const testTenant = "tenant-aurora"

var (
	sindico = scheduling.Actor{ID: "u-sindico", Name: "Helena", Role: scheduling.RoleSindico}
	zelador = scheduling.Actor{ID: "u-zelador", Name: "Jorge", Role: scheduling.RoleZelador}
	morador = scheduling.Actor{ID: "u-morador", Name: "Marina", Role: scheduling.RoleMorador}
)

// actingAs stands in for auth.RequireAuth by placing claims on the context
func actingAs(actor scheduling.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ClaimsKey, &auth.AuthClaims{
			ActorID:  actor.ID,
			Name:     actor.Name,
			Role:     actor.Role,
			TenantID: testTenant,
		})
		c.Set(auth.TenantIDKey, testTenant)
		c.Next()
	}
}

func newRouter(actor *scheduling.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if actor != nil {
		router.Use(actingAs(*actor))
	}
	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doChunked sends body with chunked transfer encoding, so the request
// carries no Content-Length
func doChunked(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](w *httptest.ResponseRecorder) T {
	var out T
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}

