package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/colbertgate/colbertgate/logger"
	"github.com/colbertgate/colbertgate/metrics"
	"github.com/colbertgate/colbertgate/tracer"
)

// Store provides the high-level operations of the vector store: startup
// collection reconciliation, point upserts, similarity search and the
// collection probe backing the health endpoint.
type Store struct {
	client  *Client
	cfg     *Config
	log     *logger.Logger
	trc     *tracer.Tracer
	metrics *metrics.Metrics
}

// NewStore returns a Store bound to the configured collection.
func NewStore(client *Client, log *logger.Logger, trc *tracer.Tracer, m *metrics.Metrics) *Store {
	return &Store{
		client:  client,
		cfg:     client.cfg,
		log:     log,
		trc:     trc,
		metrics: m,
	}
}

// Reconcile brings the configured collection into a usable state. It runs
// once at process startup, before any request is accepted:
//
//   - collection absent: create it with the configured vector size and
//     cosine distance
//   - collection present but red: delete and recreate it
//   - collection present and healthy: leave untouched
//
// The probe-then-act sequence is not transactional; concurrent process
// startups racing on creation are an accepted deployment hazard. A create
// that fails because the collection already exists is treated as success.
func (s *Store) Reconcile(ctx context.Context) error {
	info, err := s.client.api.GetCollectionInfo(ctx, s.cfg.Collection)
	if err != nil {
		s.log.Info("collection not found, creating it", nil, map[string]interface{}{
			"collection": s.cfg.Collection,
		})
		return s.createCollection(ctx)
	}

	if info.Status == qdrant.CollectionStatus_Red {
		s.log.Warn("collection unhealthy, recreating it", nil, map[string]interface{}{
			"collection": s.cfg.Collection,
			"status":     info.Status.String(),
		})
		if err := s.client.api.DeleteCollection(ctx, s.cfg.Collection); err != nil {
			return fmt.Errorf("[Qdrant] failed to delete collection '%s': %w", s.cfg.Collection, err)
		}
		return s.createCollection(ctx)
	}

	s.log.Info("collection ready", nil, map[string]interface{}{
		"collection": s.cfg.Collection,
		"status":     info.Status.String(),
	})
	return nil
}

func (s *Store) createCollection(ctx context.Context) error {
	err := s.client.api.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.cfg.Collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.cfg.VectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		if isAlreadyExists(err) {
			s.log.Info("collection created concurrently, continuing", nil, map[string]interface{}{
				"collection": s.cfg.Collection,
			})
			return nil
		}
		return fmt.Errorf("[Qdrant] failed to create collection '%s': %w", s.cfg.Collection, err)
	}

	s.log.Info("created collection", nil, map[string]interface{}{
		"collection":  s.cfg.Collection,
		"vector_size": s.cfg.VectorSize,
		"distance":    qdrant.Distance_Cosine.String(),
	})
	return nil
}

// Upsert writes the given points into the collection, replacing any points
// sharing an id. The write is blocking (Wait=true) so data is persisted
// before the call returns. Returns the number of points written.
func (s *Store) Upsert(ctx context.Context, points []Point) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}

	ctx, span := s.trc.StartSpan(ctx, "qdrant.upsert")
	defer span.End()
	s.trc.SetAttributes(span, map[string]interface{}{"points.count": len(points)})
	defer s.metrics.ObserveBackendCall(time.Now(), "qdrant", "upsert")

	qdrantPoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		qdrantPoints = append(qdrantPoints, &qdrant.PointStruct{
			Id:      qdrant.NewID(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(p.Payload),
		})
	}

	wait := true
	_, err := s.client.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.cfg.Collection,
		Points:         qdrantPoints,
		Wait:           &wait,
	})
	if err != nil {
		s.trc.RecordErrorOnSpan(span, err)
		return 0, fmt.Errorf("[Qdrant] upsert failed: %w", err)
	}

	s.log.Debug("upserted points", nil, map[string]interface{}{
		"collection": s.cfg.Collection,
		"count":      len(points),
	})
	return len(points), nil
}

// Search performs a similarity search in the collection and returns at most
// topK hits ordered by descending score (best match first).
func (s *Store) Search(ctx context.Context, vector []float32, topK int) ([]SearchHit, error) {
	if err := validateSearchInput(vector, topK); err != nil {
		return nil, err
	}

	ctx, span := s.trc.StartSpan(ctx, "qdrant.search")
	defer span.End()
	s.trc.SetAttributes(span, map[string]interface{}{"top_k": topK})
	defer s.metrics.ObserveBackendCall(time.Now(), "qdrant", "search")

	limit := uint64(topK)
	resp, err := s.client.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.cfg.Collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		s.trc.RecordErrorOnSpan(span, err)
		return nil, fmt.Errorf("[Qdrant] search failed: %w", err)
	}

	return parseSearchHits(resp)
}

// CollectionInfo probes the collection's metadata. It backs the health
// endpoint and never touches the embedding engine.
func (s *Store) CollectionInfo(ctx context.Context) (*Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	info, err := s.client.api.GetCollectionInfo(ctx, s.cfg.Collection)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to get collection '%s': %w", s.cfg.Collection, err)
	}

	size, distance := extractVectorDetails(info)

	return &Collection{
		Name:       s.cfg.Collection,
		Status:     info.Status.String(),
		Points:     derefUint64(info.PointsCount),
		VectorSize: size,
		Distance:   distance,
	}, nil
}

// parseSearchHits converts Qdrant scored points into SearchHits.
func parseSearchHits(resp []*qdrant.ScoredPoint) ([]SearchHit, error) {
	hits := make([]SearchHit, 0, len(resp))
	for _, r := range resp {
		var id string
		switch v := r.Id.PointIdOptions.(type) {
		case *qdrant.PointId_Num:
			id = fmt.Sprintf("%d", v.Num)
		case *qdrant.PointId_Uuid:
			id = v.Uuid
		default:
			return nil, fmt.Errorf("[Qdrant] unexpected PointId type: %T", v)
		}

		hits = append(hits, SearchHit{
			ID:      id,
			Score:   r.Score,
			Payload: payloadToMap(r.Payload),
		})
	}
	return hits, nil
}
