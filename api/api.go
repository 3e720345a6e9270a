package api

import (
	"net/http"
	"strconv"
	"time"

	"cosmossdk.io/log"
	"github.com/gin-gonic/gin"

	"github.com/strangelove-ventures/omnichain-graph/graph"
	"github.com/strangelove-ventures/omnichain-graph/types"
	"github.com/strangelove-ventures/omnichain-graph/wiring"
)

// Server exposes a validated graph to read-only clients. The graph and plan are
// never modified, so handlers share them without locking.
type Server struct {
	graph    *graph.Graph
	plan     *wiring.Plan
	registry types.ChainRegistry
	metrics  *wiring.PromMetrics
	logger   log.Logger
}

func NewServer(
	g *graph.Graph,
	plan *wiring.Plan,
	registry types.ChainRegistry,
	metrics *wiring.PromMetrics,
	logger log.Logger,
) *Server {
	return &Server{
		graph:    g,
		plan:     plan,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Router builds the gin engine serving the graph.
func (s *Server) Router(trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}

	router.GET("/nodes", s.getNodes)
	router.GET("/edges", s.getEdges)
	router.GET("/nodes/:eid/:contract/edges", s.getEdgesFrom)
	router.GET("/floor", s.getFloor)
	router.GET("/plan", s.getPlan)
	return router, nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		code := c.Writer.Status()
		s.logger.Debug("api request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", code,
			"duration", time.Since(start),
		)
		if s.metrics != nil {
			s.metrics.ApiRequests.WithLabelValues(c.FullPath(), strconv.Itoa(code)).Inc()
		}
	}
}

type node struct {
	types.EndpointPoint
	Chain string `json:"chain"`
}

func (s *Server) getNodes(c *gin.Context) {
	points := s.graph.Nodes()
	out := make([]node, 0, len(points))
	for _, p := range points {
		out = append(out, node{EndpointPoint: p, Chain: s.registry.Name(p.EID)})
	}
	c.IndentedJSON(http.StatusOK, out)
}

func (s *Server) getEdges(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.graph.Edges())
}

func (s *Server) getEdgesFrom(c *gin.Context) {
	from, ok := s.point(c, c.Param("eid"), c.Param("contract"))
	if !ok {
		return
	}
	c.IndentedJSON(http.StatusOK, s.graph.EdgesFrom(from))
}

func (s *Server) getFloor(c *gin.Context) {
	from, ok := s.point(c, c.Query("from-eid"), c.Query("from-contract"))
	if !ok {
		return
	}
	to, ok := s.point(c, c.Query("to-eid"), c.Query("to-contract"))
	if !ok {
		return
	}
	msgType, err := strconv.ParseUint(c.Query("msg-type"), 10, 16)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "invalid msg-type"})
		return
	}

	floor, found := s.graph.EnforcedFloor(from, to, uint16(msgType))
	if !found {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "no enforced option configured"})
		return
	}
	c.IndentedJSON(http.StatusOK, floor)
}

func (s *Server) getPlan(c *gin.Context) {
	if s.plan == nil {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "no wiring plan available"})
		return
	}
	c.IndentedJSON(http.StatusOK, s.plan)
}

// point parses and resolves a point, writing the error response when it fails.
func (s *Server) point(c *gin.Context, rawEID, contract string) (types.EndpointPoint, bool) {
	eid, err := strconv.ParseUint(rawEID, 10, 32)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "invalid eid " + strconv.Quote(rawEID)})
		return types.EndpointPoint{}, false
	}
	p, ok := s.graph.Resolve(types.EndpointID(eid), contract)
	if !ok {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contract not found"})
		return types.EndpointPoint{}, false
	}
	return p, true
}
