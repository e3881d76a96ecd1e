package handlers

import (
	"net/http"
	"time"

	"investreports/internal/models"
	"investreports/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.ReportService
	log *logrus.Logger
}

func NewHandler(svc *service.ReportService, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the health check, the report listing and one GET route per report.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.GET("/reports", h.ListReports)

	r.GET("/stocks/above_avg", h.GetStocksAboveAverage)
	r.GET("/investors/bond_heavy", h.GetBondHeavyInvestors)
	r.GET("/investors/portfolio", h.GetPortfolio)
	r.GET("/market/top_volume", h.GetTopVolume)
	r.GET("/investors/low_yield_bonds", h.GetLowYieldBonds)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Reports())
}

func (h *Handler) GetStocksAboveAverage(c *gin.Context) { h.serve(c, "stocks_above_avg") }

func (h *Handler) GetBondHeavyInvestors(c *gin.Context) { h.serve(c, "bond_heavy") }

func (h *Handler) GetPortfolio(c *gin.Context) { h.serve(c, "portfolio") }

func (h *Handler) GetTopVolume(c *gin.Context) { h.serve(c, "top_volume") }

func (h *Handler) GetLowYieldBonds(c *gin.Context) { h.serve(c, "low_yield_bonds") }

func (h *Handler) serve(c *gin.Context, report string) {
	rows, err := h.svc.Run(c.Request.Context(), report)
	if err != nil {
		h.log.WithField("report", report).Errorf("run report failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []models.Row{}
	}
	c.JSON(http.StatusOK, rows)
}

// RequestLogger logs one line per request once the handler chain has finished.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request completed")
	}
}
