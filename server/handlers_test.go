package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbertgate/colbertgate/embedding"
	"github.com/colbertgate/colbertgate/logger"
	"github.com/colbertgate/colbertgate/metrics"
	"github.com/colbertgate/colbertgate/qdrant"
	"github.com/colbertgate/colbertgate/tracer"
)

const (
	testAPIKey = "internal-secret"
	testBearer = "openai-secret"
	testDim    = 128
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeEncoder is a deterministic Encoder: text i of a call pools to a
// testDim-dimensional vector filled with float32(i).
type fakeEncoder struct {
	calls []encodeCall
	err   error
}

type encodeCall struct {
	texts []string
	mode  embedding.Mode
}

func (f *fakeEncoder) EncodePooled(_ context.Context, texts []string, mode embedding.Mode) ([][]float32, error) {
	f.calls = append(f.calls, encodeCall{texts: texts, mode: mode})
	if f.err != nil {
		return nil, f.err
	}

	out := make([][]float32, len(texts))
	for i := range texts {
		vec := make([]float32, testDim)
		for j := range vec {
			vec[j] = float32(i)
		}
		out[i] = vec
	}
	return out, nil
}

// fakeStore records upserts and serves canned hits and collection info.
type fakeStore struct {
	points    map[string]qdrant.Point
	upserts   [][]qdrant.Point
	hits      []qdrant.SearchHit
	topKSeen  []int
	searchErr error
	upsertErr error
	infoErr   error
	info      *qdrant.Collection
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		points: make(map[string]qdrant.Point),
		info:   &qdrant.Collection{Name: "colbert_docs", Status: "Green", Points: 0},
	}
}

func (f *fakeStore) Upsert(_ context.Context, points []qdrant.Point) (int, error) {
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}
	f.upserts = append(f.upserts, points)
	for _, p := range points {
		f.points[p.ID] = p
	}
	f.info.Points = uint64(len(f.points))
	return len(points), nil
}

func (f *fakeStore) Search(_ context.Context, _ []float32, topK int) ([]qdrant.SearchHit, error) {
	f.topKSeen = append(f.topKSeen, topK)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if len(f.hits) > topK {
		return f.hits[:topK], nil
	}
	return f.hits, nil
}

func (f *fakeStore) CollectionInfo(_ context.Context) (*qdrant.Collection, error) {
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return f.info, nil
}

func newTestServer(t *testing.T, enc Encoder, store Store) *Server {
	t.Helper()

	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "test"})
	trc := tracer.NewClient(tracer.Config{ServiceName: "test"}, log)
	m := metrics.NewMetrics(metrics.Config{Address: "127.0.0.1:0", ServiceName: "test"})

	return NewServer(&Config{
		Addr:        "127.0.0.1:0",
		APIKey:      testAPIKey,
		BearerToken: testBearer,
	}, log, trc, m, enc, store)
}

func doJSON(t *testing.T, s *Server, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func internalHeaders() map[string]string {
	return map[string]string{"X-API-Key": testAPIKey}
}

func bearerHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testBearer}
}

func TestInternalRoutesRejectBadAPIKey(t *testing.T) {
	s := newTestServer(t, &fakeEncoder{}, newFakeStore())

	routes := []struct {
		path string
		body any
	}{
		{"/index/", IndexRequest{DocID: "d1", Text: "t"}},
		{"/search/", map[string]any{"query_texts": []string{"q"}}},
		{"/batch_index/", map[string]any{"docs": []IndexRequest{{DocID: "d1", Text: "t"}}}},
		{"/batch_search/", map[string]any{"queries": []string{"q"}}},
	}

	for _, route := range routes {
		t.Run(route.path, func(t *testing.T) {
			rec := doJSON(t, s, http.MethodPost, route.path, route.body, nil)
			assert.Equal(t, http.StatusForbidden, rec.Code, "missing key")

			rec = doJSON(t, s, http.MethodPost, route.path, route.body, map[string]string{"X-API-Key": "wrong"})
			assert.Equal(t, http.StatusForbidden, rec.Code, "wrong key")
			assert.Contains(t, rec.Body.String(), "Invalid or missing API key")
		})
	}
}

func TestEmbeddingsRouteRejectsBadBearer(t *testing.T) {
	s := newTestServer(t, &fakeEncoder{}, newFakeStore())
	body := map[string]any{"model": "x", "input": "hello"}

	for name, headers := range map[string]map[string]string{
		"missing header": nil,
		"wrong scheme":   {"Authorization": "Basic " + testBearer},
		"wrong token":    {"Authorization": "Bearer nope"},
	} {
		t.Run(name, func(t *testing.T) {
			rec := doJSON(t, s, http.MethodPost, "/v1/embeddings", body, headers)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestEmbeddingsRejectsMissingInput(t *testing.T) {
	s := newTestServer(t, &fakeEncoder{}, newFakeStore())

	rec := doJSON(t, s, http.MethodPost, "/v1/embeddings", map[string]any{"model": "x"}, bearerHeaders())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No input text provided")
}

func TestEmbeddingsSingleInput(t *testing.T) {
	enc := &fakeEncoder{}
	s := newTestServer(t, enc, newFakeStore())

	rec := doJSON(t, s, http.MethodPost, "/v1/embeddings",
		map[string]any{"model": "x", "input": "hello"}, bearerHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Object string            `json:"object"`
		Data   []EmbeddingObject `json:"data"`
		Model  string            `json:"model"`
		Usage  map[string]any    `json:"usage"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "list", resp.Object)
	assert.Equal(t, "x", resp.Model)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "embedding", resp.Data[0].Object)
	assert.Equal(t, 0, resp.Data[0].Index)
	assert.Len(t, resp.Data[0].Embedding, testDim)
	assert.Empty(t, resp.Usage, "usage must be an empty object")

	require.Len(t, enc.calls, 1)
	assert.Equal(t, []string{"hello"}, enc.calls[0].texts)
	assert.Equal(t, embedding.ModeQuery, enc.calls[0].mode)
}

func TestEmbeddingsInputsListPreservesOrder(t *testing.T) {
	s := newTestServer(t, &fakeEncoder{}, newFakeStore())

	rec := doJSON(t, s, http.MethodPost, "/v1/embeddings",
		map[string]any{"model": "m", "inputs": []string{"a", "b", "c"}}, bearerHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EmbeddingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	for i, d := range resp.Data {
		assert.Equal(t, i, d.Index)
		// fakeEncoder fills vector i with float32(i)
		assert.Equal(t, float32(i), d.Embedding[0])
	}
}

func TestIndexStoresPooledDocument(t *testing.T) {
	enc := &fakeEncoder{}
	store := newFakeStore()
	s := newTestServer(t, enc, store)

	rec := doJSON(t, s, http.MethodPost, "/index/",
		IndexRequest{DocID: "d1", Text: "cats are great"}, internalHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp IndexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Indexed", resp.Message)
	assert.Equal(t, "d1", resp.ID)

	require.Len(t, enc.calls, 1)
	assert.Equal(t, embedding.ModeDocument, enc.calls[0].mode)

	require.Len(t, store.upserts, 1)
	require.Len(t, store.upserts[0], 1)
	point := store.upserts[0][0]
	assert.Equal(t, "d1", point.ID)
	assert.Len(t, point.Vector, testDim)
	assert.Equal(t, map[string]any{"text": "cats are great"}, point.Payload)
}

func TestIndexThenSearchScenario(t *testing.T) {
	enc := &fakeEncoder{}
	store := newFakeStore()
	s := newTestServer(t, enc, store)

	rec := doJSON(t, s, http.MethodPost, "/index/",
		IndexRequest{DocID: "d1", Text: "cats are great"}, internalHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	store.hits = []qdrant.SearchHit{
		{ID: "d1", Score: 0.91, Payload: map[string]any{"text": "cats are great"}},
	}

	rec = doJSON(t, s, http.MethodPost, "/search/",
		map[string]any{"query_texts": []string{"cats"}, "top_k": 1}, internalHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	var results []QueryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "cats", results[0].Query)
	require.Len(t, results[0].Results, 1)
	assert.Equal(t, "d1", results[0].Results[0].ID)
	assert.Equal(t, "cats are great", results[0].Results[0].Payload["text"])

	// Query encode uses query mode, and the explicit top_k reached the store.
	lastCall := enc.calls[len(enc.calls)-1]
	assert.Equal(t, embedding.ModeQuery, lastCall.mode)
	assert.Equal(t, []int{1}, store.topKSeen)
}

func TestSearchDefaultsTopK(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, &fakeEncoder{}, store)

	rec := doJSON(t, s, http.MethodPost, "/search/",
		map[string]any{"query_texts": []string{"q"}}, internalHeaders())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{3}, store.topKSeen)
}

func TestBatchIndexSingleEncodeSingleUpsert(t *testing.T) {
	enc := &fakeEncoder{}
	store := newFakeStore()
	s := newTestServer(t, enc, store)

	docs := []IndexRequest{
		{DocID: "a", Text: "alpha"},
		{DocID: "b", Text: "beta"},
		{DocID: "c", Text: "gamma"},
	}
	rec := doJSON(t, s, http.MethodPost, "/batch_index/",
		map[string]any{"docs": docs}, internalHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BatchIndexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Count)

	// The whole batch goes through one engine call and one store call.
	require.Len(t, enc.calls, 1)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, enc.calls[0].texts)
	require.Len(t, store.upserts, 1)
	require.Len(t, store.upserts[0], 3)
	for i, d := range docs {
		assert.Equal(t, d.DocID, store.upserts[0][i].ID)
	}
}

func TestBatchSearchPreservesQueryOrder(t *testing.T) {
	enc := &fakeEncoder{}
	store := newFakeStore()
	s := newTestServer(t, enc, store)

	queries := []string{"first", "second", "third"}
	rec := doJSON(t, s, http.MethodPost, "/batch_search/",
		map[string]any{"queries": queries, "top_k": 2}, internalHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	var results []QueryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, len(queries))
	for i, r := range results {
		assert.Equal(t, queries[i], r.Query)
	}

	// All queries encoded in one engine call.
	require.Len(t, enc.calls, 1)
	assert.Equal(t, queries, enc.calls[0].texts)
	assert.Equal(t, []int{2, 2, 2}, store.topKSeen)
}

func TestEngineFailureSurfacesAs500(t *testing.T) {
	enc := &fakeEncoder{err: errors.New("model unavailable")}
	s := newTestServer(t, enc, newFakeStore())

	rec := doJSON(t, s, http.MethodPost, "/index/",
		IndexRequest{DocID: "d1", Text: "t"}, internalHeaders())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "model unavailable")
}

func TestStoreFailureSurfacesAs500(t *testing.T) {
	store := newFakeStore()
	store.upsertErr = errors.New("upsert failed: connection refused")
	s := newTestServer(t, &fakeEncoder{}, store)

	rec := doJSON(t, s, http.MethodPost, "/index/",
		IndexRequest{DocID: "d1", Text: "t"}, internalHeaders())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestHealthReachable(t *testing.T) {
	store := newFakeStore()
	store.info.Points = 7
	s := newTestServer(t, &fakeEncoder{}, store)

	rec := doJSON(t, s, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "reachable", resp.Details["qdrant_status"])
	assert.Equal(t, float64(7), resp.Details["collection_points_count"])
}

func TestHealthUnreachableStaysHTTP200(t *testing.T) {
	store := newFakeStore()
	store.infoErr = fmt.Errorf("[Qdrant] failed to get collection 'colbert_docs': connection refused")
	s := newTestServer(t, &fakeEncoder{}, store)

	rec := doJSON(t, s, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "unreachable", resp.Details["qdrant_status"])
	assert.Contains(t, resp.Details["error"], "connection refused")
}
