package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colbertgate/colbertgate/embedding"
	"github.com/colbertgate/colbertgate/qdrant"
)

// handleHealth probes the store's collection metadata and reports
// reachability. Store errors are converted into a structured "error" status
// rather than an HTTP failure, so monitoring always gets a 200 with
// embedded health data. The embedding engine is never touched.
func (s *Server) handleHealth(c *gin.Context) {
	info, err := s.store.CollectionInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, HealthResponse{
			Status: "error",
			Details: map[string]any{
				"qdrant_status": "unreachable",
				"error":         err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Details: map[string]any{
			"qdrant_status":           "reachable",
			"collection_points_count": info.Points,
		},
	})
}

// handleIndex encodes one document, pools it and upserts it under the
// caller-assigned id. Re-indexing an existing id replaces the stored point
// entirely.
func (s *Server) handleIndex(c *gin.Context) {
	var req IndexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx := c.Request.Context()

	vectors, err := s.encoder.EncodePooled(ctx, []string{req.Text}, embedding.ModeDocument)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	_, err = s.store.Upsert(ctx, []qdrant.Point{{
		ID:      req.DocID,
		Vector:  vectors[0],
		Payload: map[string]any{"text": req.Text},
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, IndexResponse{Message: "Indexed", ID: req.DocID})
}

// handleSearch runs one encode and one similarity search per query text and
// returns the per-query results in input order.
func (s *Server) handleSearch(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx := c.Request.Context()
	topK := topKOrDefault(req.TopK)

	results := make([]QueryResult, 0, len(req.QueryTexts))
	for _, query := range req.QueryTexts {
		vectors, err := s.encoder.EncodePooled(ctx, []string{query}, embedding.ModeQuery)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		hits, err := s.store.Search(ctx, vectors[0], topK)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		results = append(results, QueryResult{Query: query, Results: hits})
	}

	c.JSON(http.StatusOK, results)
}

// handleBatchIndex encodes the whole document list in one engine call and
// writes all points in one upsert. No chunking: the caller-supplied batch
// size directly bounds memory and latency.
func (s *Server) handleBatchIndex(c *gin.Context) {
	var req BatchIndexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx := c.Request.Context()

	texts := make([]string, len(req.Docs))
	for i, d := range req.Docs {
		texts[i] = d.Text
	}

	vectors, err := s.encoder.EncodePooled(ctx, texts, embedding.ModeDocument)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	points := make([]qdrant.Point, len(req.Docs))
	for i, d := range req.Docs {
		points[i] = qdrant.Point{
			ID:      d.DocID,
			Vector:  vectors[i],
			Payload: map[string]any{"text": d.Text},
		}
	}

	count, err := s.store.Upsert(ctx, points)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, BatchIndexResponse{Success: true, Count: count})
}

// handleBatchSearch encodes all queries in one engine call, then searches
// per query. results[i] always corresponds to queries[i].
func (s *Server) handleBatchSearch(c *gin.Context) {
	var req BatchQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx := c.Request.Context()
	topK := topKOrDefault(req.TopK)

	vectors, err := s.encoder.EncodePooled(ctx, req.Queries, embedding.ModeQuery)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	results := make([]QueryResult, 0, len(req.Queries))
	for i, query := range req.Queries {
		hits, err := s.store.Search(ctx, vectors[i], topK)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		results = append(results, QueryResult{Query: query, Results: hits})
	}

	c.JSON(http.StatusOK, results)
}

// handleEmbeddings is the OpenAI-compatible embeddings endpoint. It accepts
// either a single `input` string or an `inputs` list; `input` wins when
// both are present, and neither is a 400. Texts are encoded in query mode
// and each data entry's index matches the input position.
func (s *Server) handleEmbeddings(c *gin.Context) {
	var req EmbeddingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var texts []string
	switch {
	case req.Input != nil:
		texts = []string{*req.Input}
	case len(req.Inputs) > 0:
		texts = req.Inputs
	default:
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No input text provided"})
		return
	}

	vectors, err := s.encoder.EncodePooled(c.Request.Context(), texts, embedding.ModeQuery)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	data := make([]EmbeddingObject, len(vectors))
	for i, v := range vectors {
		data[i] = EmbeddingObject{
			Object:    "embedding",
			Embedding: v,
			Index:     i,
		}
	}

	c.JSON(http.StatusOK, EmbeddingsResponse{
		Object: "list",
		Data:   data,
		Model:  req.Model,
	})
}
