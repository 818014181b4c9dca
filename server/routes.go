package server

// setupRoutes registers the complete HTTP surface.
//
// The health endpoint is unauthenticated. The internal routes share the
// X-API-Key gate; the OpenAI-compatible route uses its own bearer token.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	internal := s.router.Group("/", APIKeyAuth(s.cfg.APIKey))
	{
		internal.POST("/index/", s.handleIndex)
		internal.POST("/search/", s.handleSearch)
		internal.POST("/batch_index/", s.handleBatchIndex)
		internal.POST("/batch_search/", s.handleBatchSearch)
	}

	openai := s.router.Group("/v1", BearerAuth(s.cfg.BearerToken))
	{
		openai.POST("/embeddings", s.handleEmbeddings)
	}
}
