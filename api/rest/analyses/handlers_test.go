package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/adpulse/server/adpulse/analyses"
	"codeberg.org/adpulse/server/internal/analyzer"
	"codeberg.org/adpulse/server/internal/quota"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	record *analyses.Analysis
	err    error
	calls  int
	caller analyzer.Identity
	req    analyses.Request
}

func (f *fakePipeline) Submit(
	_ context.Context,
	caller analyzer.Identity,
	req analyses.Request,
	_ time.Time,
) (*analyses.Analysis, error) {
	f.calls++
	f.caller = caller
	f.req = req

	if f.err != nil {
		return nil, f.err
	}

	return f.record, nil
}

type fakeStore struct {
	records map[string]*analyses.Analysis // keyed by id + "/" + userID
	list    []analyses.Analysis
	listErr error
	getErr  error
}

func (f *fakeStore) List(_ context.Context, _ string) ([]analyses.Analysis, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.list, nil
}

func (f *fakeStore) Get(_ context.Context, id, userID string) (*analyses.Analysis, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	record, ok := f.records[id+"/"+userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	return record, nil
}

// injects an authenticated identity the way AuthMiddleware does
func identityMiddleware(userID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_email", email)
		c.Next()
	}
}

func newTestRouter(pipeline Pipeline, store Store, middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	group := router.Group("/analyses", middleware...)
	group.POST("", SubmitAnalysisHandler(pipeline))
	group.GET("", ListAnalysesHandler(store))
	group.GET("/:id", GetAnalysisHandler(store))

	return router
}

func doJSON(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestSubmitAnalysisHandler_RequiresAuth(t *testing.T) {
	pipeline := &fakePipeline{}
	router := newTestRouter(pipeline, &fakeStore{})

	w := doJSON(router, http.MethodPost, "/analyses", []byte(`{"primaryText":"hello"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, pipeline.calls)
}

func TestSubmitAnalysisHandler_InvalidBody(t *testing.T) {
	pipeline := &fakePipeline{}
	router := newTestRouter(pipeline, &fakeStore{}, identityMiddleware("user-1", "a@b.com"))

	w := doJSON(router, http.MethodPost, "/analyses", []byte(`{"primaryText": 42`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, pipeline.calls)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body["error"])
}

func TestSubmitAnalysisHandler_Success(t *testing.T) {
	record := &analyses.Analysis{
		ID:          "9f1c0de2-6d4a-4f3a-9c1b-0a2b3c4d5e6f",
		UserID:      "user-1",
		Platform:    "meta",
		PrimaryText: "hello",
		HookScore:   82,
	}
	pipeline := &fakePipeline{record: record}
	router := newTestRouter(pipeline, &fakeStore{}, identityMiddleware("user-1", "a@b.com"))

	w := doJSON(router, http.MethodPost, "/analyses", []byte(`{"platform":"meta","primaryText":"hello"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, pipeline.calls)
	assert.Equal(t, "user-1", pipeline.caller.ID)
	assert.Equal(t, "a@b.com", pipeline.caller.Email)
	assert.Equal(t, "meta", pipeline.req.Platform)

	var got analyses.Analysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, 82, got.HookScore)
}

func TestSubmitAnalysisHandler_QuotaExceeded(t *testing.T) {
	pipeline := &fakePipeline{err: &quota.ExceededError{Used: 3, Limit: 3}}
	router := newTestRouter(pipeline, &fakeStore{}, identityMiddleware("user-1", "a@b.com"))

	w := doJSON(router, http.MethodPost, "/analyses", []byte(`{"primaryText":"hello"}`))

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body QuotaExceededResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Monthly limit reached", body.Error)
	assert.Equal(t, "You've used all 3 analyses for this month. Upgrade to Pro for unlimited analyses.", body.Message)
	assert.Equal(t, 3, body.Limit)
	assert.Equal(t, 3, body.Used)
}

func TestSubmitAnalysisHandler_WrappedQuotaErrorStillMapsTo429(t *testing.T) {
	wrapped := fmt.Errorf("pipeline: %w", &quota.ExceededError{Used: 3, Limit: 3})
	pipeline := &fakePipeline{err: wrapped}
	router := newTestRouter(pipeline, &fakeStore{}, identityMiddleware("user-1", "a@b.com"))

	w := doJSON(router, http.MethodPost, "/analyses", []byte(`{"primaryText":"hello"}`))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSubmitAnalysisHandler_UnparseableResponse(t *testing.T) {
	pipeline := &fakePipeline{err: fmt.Errorf("%w: invalid character", analyzer.ErrUnparseableResponse)}
	router := newTestRouter(pipeline, &fakeStore{}, identityMiddleware("user-1", "a@b.com"))

	w := doJSON(router, http.MethodPost, "/analyses", []byte(`{"primaryText":"hello"}`))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "server_error", body["error"])
	assert.Equal(t, "failed to parse AI response, please try again", body["message"])
}

func TestSubmitAnalysisHandler_InfrastructureError(t *testing.T) {
	pipeline := &fakePipeline{err: fmt.Errorf("failed to save analysis: connection refused")}
	router := newTestRouter(pipeline, &fakeStore{}, identityMiddleware("user-1", "a@b.com"))

	w := doJSON(router, http.MethodPost, "/analyses", []byte(`{"primaryText":"hello"}`))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "server_error", body["error"])
	// raw storage errors never reach the client
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestListAnalysesHandler_ReturnsOwnedRecords(t *testing.T) {
	store := &fakeStore{list: []analyses.Analysis{
		{ID: "9f1c0de2-6d4a-4f3a-9c1b-0a2b3c4d5e6f", UserID: "user-1"},
	}}
	router := newTestRouter(&fakePipeline{}, store, identityMiddleware("user-1", "a@b.com"))

	w := doJSON(router, http.MethodGet, "/analyses", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var got []analyses.Analysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "user-1", got[0].UserID)
}

func TestGetAnalysisHandler_OwnershipIsolation(t *testing.T) {
	id := "9f1c0de2-6d4a-4f3a-9c1b-0a2b3c4d5e6f"
	store := &fakeStore{records: map[string]*analyses.Analysis{
		id + "/owner": {ID: id, UserID: "owner"},
	}}

	// the owner sees the record
	owner := newTestRouter(&fakePipeline{}, store, identityMiddleware("owner", "o@b.com"))
	w := doJSON(owner, http.MethodGet, "/analyses/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// anyone else gets the same 404 a missing record would give
	other := newTestRouter(&fakePipeline{}, store, identityMiddleware("intruder", "i@b.com"))
	w = doJSON(other, http.MethodGet, "/analyses/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["error"])
}

func TestGetAnalysisHandler_StoreOutageIsNot404(t *testing.T) {
	store := &fakeStore{getErr: fmt.Errorf("connection refused")}
	router := newTestRouter(&fakePipeline{}, store, identityMiddleware("user-1", "a@b.com"))

	w := doJSON(router, http.MethodGet, "/analyses/9f1c0de2-6d4a-4f3a-9c1b-0a2b3c4d5e6f", nil)

	// only missing rows answer 404; storage trouble is a server error
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "server_error", body["error"])
}

func TestGetAnalysisHandler_MalformedID(t *testing.T) {
	router := newTestRouter(&fakePipeline{}, &fakeStore{}, identityMiddleware("user-1", "a@b.com"))

	w := doJSON(router, http.MethodGet, "/analyses/not-a-uuid", nil)

	// malformed ids are indistinguishable from missing records
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAnalysisHandler_RequiresAuth(t *testing.T) {
	router := newTestRouter(&fakePipeline{}, &fakeStore{})

	w := doJSON(router, http.MethodGet, "/analyses/9f1c0de2-6d4a-4f3a-9c1b-0a2b3c4d5e6f", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
