package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"aidat_app/internal/services"
)

type ReceiptHandler struct {
	receipts *services.ReceiptService
}

func NewReceiptHandler(receipts *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

// GetReceiptInfo returns the receipt header fields for one membership.
func (h *ReceiptHandler) GetReceiptInfo(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	info, err := h.receipts.ReceiptInfo(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// GetDueReceipt renders the collection receipt PDF for one due.
func (h *ReceiptHandler) GetDueReceipt(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	pdf, err := h.receipts.BuildReceiptPDF(id)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="makbuz-%d.pdf"`, id))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
