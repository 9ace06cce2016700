// Package server exposes the extraction and billing operations over HTTP.
// Text arrives already extracted; no document parsing happens here.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/katiyar-electronics/bill-engine/internal/export"
	"github.com/katiyar-electronics/bill-engine/internal/pipeline"
	"github.com/katiyar-electronics/bill-engine/internal/repository"
)

// Service wires the HTTP handlers to the pipeline and stores.
type Service struct {
	processor *pipeline.Processor
	bills     repository.BillRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewService(processor *pipeline.Processor, bills repository.BillRepository, exporter *export.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{processor: processor, bills: bills, exporter: exporter, logger: logger}
}

// Router builds the gin engine with all API routes registered.
func (s *Service) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	api := r.Group("/api")
	{
		api.GET("/health", s.Health)
		bills := api.Group("/bills")
		{
			bills.POST("/extract", s.ExtractBill)
			bills.POST("", s.CreateBill)
			bills.GET("", s.ListBills)
			bills.GET("/export", s.ExportBills)
			bills.GET("/:id", s.GetBill)
		}
	}
	return r
}
