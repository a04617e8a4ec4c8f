package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/importer"
	"github.com/aryawidjaya/gasstation-app/utils"
)

type CustomerController struct {
	DB     *gorm.DB
	Viewer *importer.CustomerViewer
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db, Viewer: importer.NewCustomerViewer(db)}
}

// GetBatchCount -> GET /customers/batches
func (cc *CustomerController) GetBatchCount(c *gin.Context) {
	count, err := cc.Viewer.BatchCount()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer batch count", gin.H{
		"total_batches": count,
		"batch_size":    importer.PageSize,
	})
}

// GetCustomerBatch -> GET /customers/batches/:batch_number
func (cc *CustomerController) GetCustomerBatch(c *gin.Context) {
	batchNumber, err := strconv.Atoi(c.Param("batch_number"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("batch number must be an integer"))
		return
	}

	customers, err := cc.Viewer.ListBatch(batchNumber)
	if err != nil {
		if errors.Is(err, importer.ErrInvalidBatchNumber) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer batch", customers)
}
