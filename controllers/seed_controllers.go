package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/services"
	"github.com/aryawidjaya/gasstation-app/utils"
)

type SeedController struct {
	Service *services.SeedService
}

func NewSeedController(db *gorm.DB) *SeedController {
	return &SeedController{Service: services.NewSeedService(db)}
}

// InsertSampleRecords -> POST /admin/seed (legacy sample-record path)
func (sc *SeedController) InsertSampleRecords(c *gin.Context) {
	sum, err := sc.Service.InsertSampleRecords()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All records inserted", sum)
}
