package api

import "github.com/gin-gonic/gin"

// Server serves HTTP requests for the option pricing service.
type Server struct {
	router *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer() *Server {
	server := &Server{}
	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	v1 := router.Group("/v1")
	v1.POST("/price/asian", server.asian)
	v1.POST("/price/lookback", server.lookback)
	v1.POST("/price/european", server.european)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
