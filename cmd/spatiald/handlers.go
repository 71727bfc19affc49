package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-spatial/pkg/common/http/handler"
	"github.com/huynhanx03/go-spatial/pkg/logger"
	"github.com/huynhanx03/go-spatial/pkg/quadtree"
)

// Server holds the shared index and logger behind the HTTP handlers.
type Server struct {
	tree *quadtree.LockedQuadTree[float64, Place, quadtree.DynCap]
	log  *logger.Logger
}

func NewServer(tree *quadtree.LockedQuadTree[float64, Place, quadtree.DynCap], log *logger.Logger) *Server {
	return &Server{tree: tree, log: log}
}

// RegisterRoutes wires the API onto the engine.
func (s *Server) RegisterRoutes(e *gin.Engine) {
	e.GET("/healthz", s.health)
	e.GET("/v1/query", handler.Wrap(s.queryPlaces))
	e.POST("/v1/places", handler.Wrap(s.insertPlace))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok", "places": s.tree.Len()})
}

type queryRequest struct {
	MinX float64 `form:"min_x"`
	MinY float64 `form:"min_y"`
	MaxX float64 `form:"max_x"`
	MaxY float64 `form:"max_y"`
}

type queryResponse struct {
	Count  int     `json:"count"`
	Places []Place `json:"places"`
}

func (s *Server) queryPlaces(_ context.Context, req *queryRequest) (queryResponse, error) {
	// Between normalizes swapped corners, so any two opposite corners work.
	area := quadtree.Between(
		quadtree.Pt(req.MinX, req.MinY),
		quadtree.Pt(req.MaxX, req.MaxY),
	)
	places := s.tree.Query(area)

	s.log.Debug("query",
		zap.String("area", area.String()),
		zap.Int("hits", len(places)),
	)
	return queryResponse{Count: len(places), Places: places}, nil
}

type insertRequest struct {
	Name string  `json:"name" binding:"required"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (s *Server) insertPlace(_ context.Context, req *insertRequest) (Place, error) {
	p := Place{Name: req.Name, X: req.X, Y: req.Y}
	if err := s.tree.InsertAt(p.AsPoint(), p); err != nil {
		return Place{}, err
	}
	s.log.Debug("insert", zap.String("name", p.Name), zap.Float64("x", p.X), zap.Float64("y", p.Y))
	return p, nil
}
