package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/qpr-api/internal/middleware"
	"github.com/campusworks/qpr-api/internal/models"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
)

type fakeRecordSrv struct {
	records    []models.ReportRecord
	record     *models.ReportRecord
	err        error
	lastKind   string
	lastFilter models.RecordFilter
	lastActor  *models.Actor
}

func (f *fakeRecordSrv) List(_ context.Context, actor *models.Actor, kindID string, filter models.RecordFilter) ([]models.ReportRecord, *models.Pagination, error) {
	f.lastActor = actor
	f.lastKind = kindID
	f.lastFilter = filter
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.records, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: len(f.records)}, nil
}

func (f *fakeRecordSrv) Get(_ context.Context, actor *models.Actor, kindID, id string) (*models.ReportRecord, error) {
	f.lastActor = actor
	f.lastKind = kindID
	return f.record, f.err
}

func (f *fakeRecordSrv) Create(_ context.Context, actor *models.Actor, kindID string, payload models.RecordPayload) (*models.ReportRecord, error) {
	f.lastActor = actor
	f.lastKind = kindID
	return f.record, f.err
}

func (f *fakeRecordSrv) Update(_ context.Context, actor *models.Actor, kindID, id string, payload models.RecordPayload) (*models.ReportRecord, error) {
	f.lastActor = actor
	f.lastKind = kindID
	return f.record, f.err
}

func (f *fakeRecordSrv) Delete(_ context.Context, actor *models.Actor, kindID, id string) error {
	f.lastActor = actor
	f.lastKind = kindID
	return f.err
}

func testClaims() *models.JWTClaims {
	dept := "d1"
	return &models.JWTClaims{
		UserID:       "u1",
		Role:         models.RoleFaculty,
		DepartmentID: &dept,
		FullName:     "Dr. Meena Iyer",
	}
}

func TestRecordHandlerListParsesFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeRecordSrv{}
	handler := NewRecordHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/T6.3/records?year=2025&quarter=Q2&award_name=best&page=2&page_size=10", nil)
	c.Params = gin.Params{{Key: "kind", Value: "T6.3"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "T6.3", srv.lastKind)
	require.NotNil(t, srv.lastFilter.Year)
	assert.Equal(t, 2025, *srv.lastFilter.Year)
	require.NotNil(t, srv.lastFilter.Quarter)
	assert.Equal(t, models.QuarterQ2, *srv.lastFilter.Quarter)
	assert.Equal(t, map[string]string{"award_name": "best"}, srv.lastFilter.Search)
	assert.Equal(t, 2, srv.lastFilter.Page)
	assert.Equal(t, 10, srv.lastFilter.PageSize)
	require.NotNil(t, srv.lastActor)
	assert.Equal(t, "u1", srv.lastActor.ID)
}

func TestRecordHandlerListRejectsBadQuarter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/T6.3/records?quarter=Q9", nil)
	c.Params = gin.Params{{Key: "kind", Value: "T6.3"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeRecordSrv{record: &models.ReportRecord{ID: "r1", KindID: "S5.2"}}
	handler := NewRecordHandler(srv)

	body := `{"year":2025,"quarter":"Q1","fields":{"student_name":"Asha"}}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/reports/S5.2/records", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "kind", Value: "S5.2"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "S5.2", srv.lastKind)

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "r1", envelope.Data["id"])
}

func TestRecordHandlerCreateBadJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/reports/S5.2/records", strings.NewReader("{"))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "kind", Value: "S5.2"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordHandlerGetPropagatesNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRecordHandler(&fakeRecordSrv{err: appErrors.ErrNotFound})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/T6.3/records/missing", nil)
	c.Params = gin.Params{{Key: "kind", Value: "T6.3"}, {Key: "id", Value: "missing"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeRecordSrv{}
	handler := NewRecordHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/reports/T6.3/records/r1", nil)
	c.Params = gin.Params{{Key: "kind", Value: "T6.3"}, {Key: "id", Value: "r1"}}
	c.Set(middleware.ContextUserKey, testClaims())

	handler.Delete(c)

	// c.Status defers the header write when the handler is invoked
	// directly, so read the status off the writer, not the recorder.
	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Equal(t, "T6.3", srv.lastKind)
}
