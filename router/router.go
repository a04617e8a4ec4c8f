package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/controllers"
	"github.com/aryawidjaya/gasstation-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	employeeCtrl := controllers.NewEmployeeController(db)
	importCtrl := controllers.NewImportController(db)
	customerCtrl := controllers.NewCustomerController(db)
	seedCtrl := controllers.NewSeedController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/register", employeeCtrl.Register)
	r.POST("/login", employeeCtrl.Login)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/imports", importCtrl.ImportAll)
		auth.POST("/imports/batches/:batch_number", importCtrl.ImportBatch)
		auth.GET("/imports/logs", importCtrl.ListLogs)

		auth.GET("/customers/batches", customerCtrl.GetBatchCount)
		auth.GET("/customers/batches/:batch_number", customerCtrl.GetCustomerBatch)

		auth.POST("/admin/seed", seedCtrl.InsertSampleRecords)
	}

	return r
}
