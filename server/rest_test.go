package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tgsurvey/pkg/dashboard"
	"github.com/umputun/tgsurvey/pkg/domain"
	"github.com/umputun/tgsurvey/server/mocks"
)

func TestServer_statusHandler(t *testing.T) {
	t.Run("healthy store", func(t *testing.T) {
		db := testDatabase(nil)
		srv := New(testConfig(":8080"), db, "1.2.3", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp["status"])
		assert.Equal(t, "ok", resp["database"])
		assert.Equal(t, "1.2.3", resp["version"])
		assert.NotEmpty(t, resp["time"])
		assert.Len(t, db.PingCalls(), 1)
	})

	t.Run("store unavailable", func(t *testing.T) {
		db := &mocks.DatabaseMock{PingFunc: func(ctx context.Context) error {
			return errors.New("ping database: connection refused")
		}}
		srv := New(testConfig(":8080"), db, "1.2.3", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp["status"])
		assert.Equal(t, "unavailable", resp["database"])
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestServer_optionsHandler(t *testing.T) {
	srv := New(testConfig(":8080"), &mocks.DatabaseMock{}, "test", false)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/options", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	var opts domain.Options
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts))
	assert.Equal(t, domain.AgeGroups, opts.AgeGroups)
	assert.Len(t, opts.UsageDurations, 4)
	assert.Equal(t, []string{"Yes", "No", "Maybe"}, opts.Recommendations)
	assert.Contains(t, opts.UsageReasons, domain.OtherReason)
	assert.Len(t, opts.ContentPreferences, 12)
}

func TestServer_resultsAPIHandler(t *testing.T) {
	t.Run("second page", func(t *testing.T) {
		db := testDatabase(sampleResponses(15))
		srv := New(testConfig(":8080"), db, "test", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/results?page=2", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		var resp resultsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 15, resp.Total)
		assert.Equal(t, 2, resp.TotalPages)
		require.Len(t, resp.Records, 5)
		assert.Equal(t, "id-10", resp.Records[0].ID)
		require.NotNil(t, resp.Charts)
		assert.Equal(t, []domain.LabelCount{{Label: "Movies & Web Series", Count: 5}, {Label: "Gaming", Count: 5}},
			resp.Charts.TopContent)
	})

	t.Run("absent fields are null", func(t *testing.T) {
		srv := New(testConfig(":8080"), testDatabase(sampleResponses(1)), "test", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/results", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		var raw struct {
			Records []map[string]interface{} `json:"records"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		require.Len(t, raw.Records, 1)
		assert.Contains(t, raw.Records[0], "name")
		assert.Nil(t, raw.Records[0]["name"])
		assert.Nil(t, raw.Records[0]["improvement_suggestions"])
	})

	t.Run("empty store", func(t *testing.T) {
		srv := New(testConfig(":8080"), testDatabase(nil), "test", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/results", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"page":1,"total":0,"total_pages":0,"records":[]}`, w.Body.String())
	})

	t.Run("bad page", func(t *testing.T) {
		srv := New(testConfig(":8080"), testDatabase(sampleResponses(15)), "test", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/results?page=abc", http.NoBody))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid page \"abc\""}`, w.Body.String())

		w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/results?page=9", http.NoBody))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"page 9 out of range"}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		db := testDatabase(sampleResponses(15))
		db.SelectRangeFunc = func(ctx context.Context, from, to int) ([]domain.SurveyResponse, error) {
			return nil, errors.New("select responses 0-9: disk I/O error")
		}
		srv := New(testConfig(":8080"), db, "test", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/results", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dashboard.NoticeLoadFailed, resp["error"])
	})
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	renderError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}
