package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/teris-io/shortid"

	"github.com/crewlens/crewlens/lib/model"
	"github.com/crewlens/crewlens/lib/utils"
)

// NewHTTPHandler builds the REST transport. Every route is a thin adapter
// over the same operations the MCP tools call.
func (s *Server) NewHTTPHandler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	type utilizationParams struct {
		Team string `form:"team"`
		Days int    `form:"days"`
	}
	r.GET("/api/utilization", getP(func(c *gin.Context, p *utilizationParams) (any, error) {
		return s.TeamUtilization(c.Request.Context(), p.Team, p.Days)
	}))

	type overviewParams struct {
		Status string `form:"status"`
	}
	r.GET("/api/projects", getP(func(c *gin.Context, p *overviewParams) (any, error) {
		return s.ProjectOverview(c.Request.Context(), p.Status)
	}))

	type forecastParams struct {
		Weeks int `form:"weeks"`
	}
	r.GET("/api/forecast", getP(func(c *gin.Context, p *forecastParams) (any, error) {
		return s.CapacityForecast(c.Request.Context(), p.Weeks)
	}))

	r.GET("/api/people/:id", func(c *gin.Context) {
		id, err := model.StringToID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid person id: %v", c.Param("id"))})
			return
		}

		result, err := s.PersonDetails(c.Request.Context(), id)
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	})

	type searchParams struct {
		Query string `form:"q"`
		Type  string `form:"type"`
	}
	r.GET("/api/search", getP(func(c *gin.Context, p *searchParams) (any, error) {
		return s.Search(c.Request.Context(), p.Query, p.Type)
	}))

	return r
}

// RunHTTP serves the REST transport until the listener fails.
func (s *Server) RunHTTP(addr string) error {
	return http.ListenAndServe(addr, s.NewHTTPHandler())
}

func getP[P any](f func(c *gin.Context, params *P) (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindQuery(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := f(c, &params)
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func sendError(c *gin.Context, err error) {
	status := utils.IIf(errors.Is(err, ErrBadParam), http.StatusBadRequest, http.StatusInternalServerError)
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := shortid.MustGenerate()

		c.Next()

		s.log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).Round(time.Millisecond),
		}).Info("request handled")
	}
}
