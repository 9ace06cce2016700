package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katiyar-electronics/bill-engine/internal/billing"
	"github.com/katiyar-electronics/bill-engine/internal/common"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
	"github.com/katiyar-electronics/bill-engine/internal/repository"
	"github.com/katiyar-electronics/bill-engine/internal/schema"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health reports liveness.
func (s *Service) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "bill engine is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type extractRequest struct {
	Text string `json:"text" binding:"required"`
}

// ExtractBill runs the extraction pipeline on raw document text and
// returns the canonical record without persisting anything.
func (s *Service) ExtractBill(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text is required"})
		return
	}

	record, err := s.processor.ProcessText(c.Request.Context(), req.Text)
	if err != nil {
		s.logger.Error("server.extract.failed", "error", err)
		c.JSON(common.HTTPStatus(err), ErrorResponse{Error: "extraction failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": record})
}

type createBillRequest struct {
	Record        entity.BillRecord `json:"record" binding:"required"`
	InvoiceNumber string            `json:"invoice_number" binding:"required"`
	SerialNumber  string            `json:"serial_number"` // optional manual override
}

// CreateBill validates a reviewed record, assembles the invoice payload,
// and persists the bill.
func (s *Service) CreateBill(c *gin.Context) {
	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "record and invoice_number are required"})
		return
	}
	if req.Record.AssetCost < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "asset_cost must be >= 0"})
		return
	}
	if err := schema.ValidateRecord(req.Record); err != nil {
		s.logger.Warn("server.create.invalid_record", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "record does not match schema"})
		return
	}

	invoice := billing.BuildInvoice(req.Record, req.InvoiceNumber, req.SerialNumber)

	bill := repository.NewBill(invoice.Record, req.InvoiceNumber)
	if err := s.bills.Save(c.Request.Context(), bill); err != nil {
		s.logger.Error("server.create.save_failed", "error", err)
		c.JSON(common.HTTPStatus(err), ErrorResponse{Error: "failed to save bill"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill_id": bill.ID, "invoice": invoice})
}

// ListBills returns every stored bill, newest first.
func (s *Service) ListBills(c *gin.Context) {
	bills, err := s.bills.List(c.Request.Context())
	if err != nil {
		s.logger.Error("server.list.failed", "error", err)
		c.JSON(common.HTTPStatus(err), ErrorResponse{Error: "failed to list bills"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

// GetBill returns one bill by id, with its invoice payload rebuilt.
func (s *Service) GetBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid bill id"})
		return
	}

	bill, err := s.bills.GetByID(c.Request.Context(), id)
	if err != nil {
		status := common.HTTPStatus(err)
		if status == http.StatusNotFound {
			c.JSON(status, ErrorResponse{Error: "bill not found"})
			return
		}
		s.logger.Error("server.get.failed", "bill_id", id, "error", err)
		c.JSON(status, ErrorResponse{Error: "failed to load bill"})
		return
	}

	invoice := billing.BuildInvoiceAt(bill.Record, bill.InvoiceNumber, "", bill.CreatedAt)
	c.JSON(http.StatusOK, gin.H{"bill": bill, "invoice": invoice})
}

// ExportBills streams the bills register as an XLSX attachment.
func (s *Service) ExportBills(c *gin.Context) {
	data, err := s.exporter.ExportBillsXLSX(c.Request.Context())
	if err != nil {
		s.logger.Error("server.export.failed", "error", err)
		c.JSON(common.HTTPStatus(err), ErrorResponse{Error: "failed to export bills"})
		return
	}
	filename := "bills-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
