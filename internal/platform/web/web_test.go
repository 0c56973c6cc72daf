package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewJSONHandler(io.Discard, nil))

func Test_RespondJSON(t *testing.T) {
	t.Run("payload", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RespondResult(rr, discard, "Item 'Widgets' - Current Quantity: 10")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"result":"Item 'Widgets' - Current Quantity: 10"}`, rr.Body.String())
	})

	t.Run("nil payload", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RespondJSON(rr, discard, http.StatusNoContent, nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RespondError(rr, discard, http.StatusBadRequest, "bad")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"bad"}`, rr.Body.String())
	})
}

func Test_RespondValidation(t *testing.T) {
	type body struct {
		Name     string `validate:"required"`
		Quantity int    `validate:"min=0"`
	}

	t.Run("validation errors", func(t *testing.T) {
		err := validator.New().Struct(body{Quantity: -1})
		rr := httptest.NewRecorder()

		RespondValidation(rr, discard, err)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"validation_errors":{"Name":"failed on rule: required","Quantity":"failed on rule: min"}}`, rr.Body.String())
	})

	t.Run("other error", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondValidation(rr, discard, errors.New("boom"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rr.Body.String())
	})
}

func Test_ParseValidate(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		lowerBound   int64
		expectedOK   bool
		expectedVal  int
		expectedBody string
	}{
		{name: "Success - gte zero", query: "?id=0", expectedOK: true, expectedVal: 0},
		{name: "Success - above bound", query: "?id=1001", lowerBound: 1000, expectedOK: true, expectedVal: 1001},
		{name: "Error - missing", query: "", expectedBody: `{"error":"id url parameter is required"}`},
		{name: "Error - not a number", query: "?id=abc", expectedBody: `{"error":"Invalid id number: abc"}`},
		{name: "Error - below bound", query: "?id=0", lowerBound: 1, expectedBody: `{"error":"Invalid id number: 0"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			req := httptest.NewRequest(http.MethodGet, "/api/v1/items/search"+tc.query, nil)
			rr := httptest.NewRecorder()

			// when
			val, ok := ParseValidateGte(req, rr, discard, "id", tc.lowerBound)

			// then
			assert.Equal(t, tc.expectedOK, ok)
			if ok {
				assert.Equal(t, tc.expectedVal, val)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_RequestIDInjector(t *testing.T) {
	t.Run("reuses chi request id", func(t *testing.T) {
		var got string
		h := middleware.RequestID(RequestIDInjector(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got, _ = GetRequestID(r.Context())
		})))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")

		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "abc-123", got)
	})

	t.Run("generates id when absent", func(t *testing.T) {
		var got string
		var found bool
		h := RequestIDInjector(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got, found = GetRequestID(r.Context())
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.True(t, found)
		assert.Len(t, got, 36)
	})
}

func Test_Recoverer(t *testing.T) {
	h := Recoverer(discard)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
}
