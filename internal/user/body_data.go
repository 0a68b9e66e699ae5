package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"healthcube/internal/database"
	"healthcube/internal/models"
	"healthcube/internal/utility"
)

/* =================================================================================
								BODY DATA HANDLERS
=================================================================================*/

// CreateBodyRecordHandler handles POST /api/user/body-data.
func (h *Handler) CreateBodyRecordHandler(c echo.Context) error {
	var req models.BodyRecordInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	record, err := h.store.Append(c.Request().Context(), req)
	if err != nil {
		utility.GetLogger(c).Error().Err(err).Msg("CreateBodyRecordHandler: failed to save record")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save record"})
	}

	return c.JSON(http.StatusCreated, record)
}

// GetBodyRecordsHandler handles GET /api/user/body-data/history.
func (h *Handler) GetBodyRecordsHandler(c echo.Context) error {
	records, err := h.store.List(c.Request().Context())
	if err != nil {
		utility.GetLogger(c).Error().Err(err).Msg("GetBodyRecordsHandler: failed to read records")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve records"})
	}
	if records == nil {
		records = []models.BodyRecord{} // Return empty array, not null
	}

	return c.JSON(http.StatusOK, models.HistoryResponse{Records: records})
}

// DeleteBodyRecordHandler handles DELETE /api/user/body-data/:id.
func (h *Handler) DeleteBodyRecordHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "Invalid record ID format"})
	}

	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Record not found"})
		}
		utility.GetLogger(c).Error().Err(err).Int("id", id).Msg("DeleteBodyRecordHandler: failed to delete record")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete record"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
