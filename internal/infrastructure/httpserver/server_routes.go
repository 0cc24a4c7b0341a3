package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	s.echo.GET("/cache/stats", s.getCacheStats)
	s.echo.POST("/cache/clear", s.clearCaches)

	s.echo.POST("/search_nl", s.searchNaturalLanguage)
	s.echo.POST("/suggest_conversation", s.suggestConversation)
	s.echo.GET("/people", s.getPerson)
}
