package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/qpr-api/internal/middleware"
	"github.com/campusworks/qpr-api/internal/models"
)

type fakeWorkbookSrv struct {
	body        []byte
	filename    string
	summary     *models.ImportSummary
	err         error
	lastKind    string
	lastYear    int
	lastQuarter models.Quarter
	lastUpload  []byte
}

func (f *fakeWorkbookSrv) Export(_ context.Context, _ *models.Actor, kindID string, _ models.RecordFilter) ([]byte, string, error) {
	f.lastKind = kindID
	return f.body, f.filename, f.err
}

func (f *fakeWorkbookSrv) Template(kindID string) ([]byte, string, error) {
	f.lastKind = kindID
	return f.body, f.filename, f.err
}

func (f *fakeWorkbookSrv) Import(_ context.Context, _ *models.Actor, kindID string, year int, quarter models.Quarter, r io.Reader) (*models.ImportSummary, error) {
	f.lastKind = kindID
	f.lastYear = year
	f.lastQuarter = quarter
	f.lastUpload, _ = io.ReadAll(r)
	return f.summary, f.err
}

func multipartUpload(t *testing.T, year, quarter string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if year != "" {
		require.NoError(t, w.WriteField("year", year))
	}
	if quarter != "" {
		require.NoError(t, w.WriteField("quarter", quarter))
	}
	if file != nil {
		part, err := w.CreateFormFile("file", "upload.xlsx")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestWorkbookHandlerTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeWorkbookSrv{body: []byte("workbook-bytes"), filename: "T6_3_template.xlsx"}
	handler := NewWorkbookHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/T6.3/workbook/template", nil)
	c.Params = gin.Params{{Key: "kind", Value: "T6.3"}}

	handler.Template(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "T6.3", srv.lastKind)
	assert.Equal(t, workbookContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "T6_3_template.xlsx")
	assert.Equal(t, "workbook-bytes", rec.Body.String())
}

func TestWorkbookHandlerImport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeWorkbookSrv{summary: &models.ImportSummary{KindID: "S5.2", Created: 2, Failed: 1}}
	handler := NewWorkbookHandler(srv)

	body, contentType := multipartUpload(t, "2025", "Q3", []byte("sheet"))
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/reports/S5.2/workbook/import", body)
	c.Request.Header.Set("Content-Type", contentType)
	c.Params = gin.Params{{Key: "kind", Value: "S5.2"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.Import(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "S5.2", srv.lastKind)
	assert.Equal(t, 2025, srv.lastYear)
	assert.Equal(t, models.QuarterQ3, srv.lastQuarter)
	assert.Equal(t, []byte("sheet"), srv.lastUpload)

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(2), envelope.Data["created"])
	assert.Equal(t, float64(1), envelope.Data["failed"])
}

func TestWorkbookHandlerImportMissingPeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewWorkbookHandler(&fakeWorkbookSrv{})

	body, contentType := multipartUpload(t, "", "Q1", []byte("sheet"))
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/reports/S5.2/workbook/import", body)
	c.Request.Header.Set("Content-Type", contentType)
	c.Params = gin.Params{{Key: "kind", Value: "S5.2"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.Import(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkbookHandlerImportMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewWorkbookHandler(&fakeWorkbookSrv{})

	body, contentType := multipartUpload(t, "2025", "Q1", nil)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/reports/S5.2/workbook/import", body)
	c.Request.Header.Set("Content-Type", contentType)
	c.Params = gin.Params{{Key: "kind", Value: "S5.2"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.Import(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkbookHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeWorkbookSrv{body: []byte("export-bytes"), filename: "S5_2_export.xlsx"}
	handler := NewWorkbookHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/S5.2/workbook/export?year=2025", nil)
	c.Params = gin.Params{{Key: "kind", Value: "S5.2"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.Export(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "S5_2_export.xlsx")
	assert.Equal(t, "export-bytes", rec.Body.String())
}
