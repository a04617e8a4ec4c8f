package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/config"
	"github.com/aryawidjaya/gasstation-app/importer"
	"github.com/aryawidjaya/gasstation-app/models"
	"github.com/aryawidjaya/gasstation-app/utils"
)

type ImportController struct {
	DB          *gorm.DB
	Coordinator *importer.Coordinator
}

func NewImportController(db *gorm.DB) *ImportController {
	co := importer.NewCoordinator(db)
	co.Reader.Codepage = config.ImportCodepage()
	return &ImportController{DB: db, Coordinator: co}
}

type importRequest struct {
	Path string `json:"path"`
}

// ImportAll -> POST /imports
func (ic *ImportController) ImportAll(c *gin.Context) {
	var req importRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}
	path := req.Path
	if path == "" {
		path = config.ExcelPath()
	}

	sum, err := ic.Coordinator.ImportAll(path)
	if err != nil {
		utils.RespondError(c, statusForImportError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Import completed", sum)
}

// ImportBatch -> POST /imports/batches/:batch_number
func (ic *ImportController) ImportBatch(c *gin.Context) {
	batchNumber, err := strconv.Atoi(c.Param("batch_number"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("batch number must be an integer"))
		return
	}

	var req importRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}
	path := req.Path
	if path == "" {
		path = config.ExcelPath()
	}

	result, err := ic.Coordinator.ImportBatch(path, batchNumber)
	if err != nil {
		utils.RespondError(c, statusForImportError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Batch import completed", result)
}

// ListLogs -> GET /imports/logs
func (ic *ImportController) ListLogs(c *gin.Context) {
	var logs []models.ImportLog
	if err := ic.DB.Order("id DESC").Limit(50).Find(&logs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Import run history", logs)
}

func statusForImportError(err error) int {
	switch {
	case errors.Is(err, importer.ErrSourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, importer.ErrMalformedSource), errors.Is(err, importer.ErrInvalidField):
		return http.StatusUnprocessableEntity
	case errors.Is(err, importer.ErrBatchOutOfRange), errors.Is(err, importer.ErrInvalidBatchNumber):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
