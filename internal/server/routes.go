package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/protocol"
	"github.com/danmuck/bitsctl/internal/protocol/packet"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "0.1.0"

type decodeRequest struct {
	Hex    string `json:"hex" binding:"required"`
	Metric string `json:"metric"`
	Tree   bool   `json:"tree"`
}

type decodeResponse struct {
	ID      string       `json:"id"`
	Metric  string       `json:"metric"`
	Value   int64        `json:"value"`
	Packets int          `json:"packets"`
	Depth   int          `json:"depth"`
	Bits    int          `json:"bits"`
	Tree    *packet.Node `json:"tree,omitempty"`
}

type errorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.Name,
			"version": version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.POST("/decode", s.handleDecode)
}

func (s *Server) handleDecode(c *gin.Context) {
	id := c.GetString(observability.RequestIDKey)

	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{ID: id, Error: err.Error(), Code: "bad_request"})
		return
	}
	metric := protocol.MetricVersions
	if req.Metric != "" {
		m, err := protocol.ParseMetric(req.Metric)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{ID: id, Error: err.Error(), Code: protocol.ErrorCode(err)})
			return
		}
		metric = m
	}

	res, err := protocol.Compute(req.Hex, metric, s.Limits)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, protocol.ErrTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, errorResponse{ID: id, Error: err.Error(), Code: protocol.ErrorCode(err)})
		return
	}

	resp := decodeResponse{
		ID:      id,
		Metric:  string(res.Metric),
		Value:   res.Value,
		Packets: res.Packets,
		Depth:   res.Depth,
		Bits:    res.Bits,
	}
	if req.Tree {
		node := packet.ToNode(res.Tree)
		resp.Tree = &node
	}
	c.JSON(http.StatusOK, resp)
}
