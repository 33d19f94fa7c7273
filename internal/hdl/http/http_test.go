package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/hdl/http/utils"
	"github.com/JMURv/go-attractions/internal/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() config.Config {
	conf := config.Config{}
	conf.RateLimit.AuthRPS = 1000
	conf.RateLimit.AuthBurst = 1000
	return conf
}

func newTestHandler(t *testing.T) (*Handler, *mocks.MockAppCtrl, *mocks.MockCore) {
	t.Helper()
	mock := gomock.NewController(t)
	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockCore(mock)
	return New(mauth, mctrl, testConfig()), mctrl, mauth
}

func jsonBody(t *testing.T, payload any) *bytes.Buffer {
	t.Helper()
	var body bytes.Buffer
	if s, ok := payload.(string); ok {
		body.WriteString(s)
		return &body
	}
	require.NoError(t, json.NewEncoder(&body).Encode(payload))
	return &body
}

func withURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	res := &utils.ErrorResponse{}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
	return res.Message
}

func TestHandler_Health(t *testing.T) {
	h, _, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UnknownRoute(t *testing.T) {
	h, _, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "route not found", decodeMessage(t, w))
}

func TestHandler_CORS(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/attractions", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	h.Router.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_CloseWithoutStart(t *testing.T) {
	h, _, _ := newTestHandler(t)
	assert.NoError(t, h.Close(context.Background()))
}
