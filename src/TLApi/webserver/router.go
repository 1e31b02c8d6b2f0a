package webserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/truthlens/truthlens/src/TLApi/config"
	"github.com/truthlens/truthlens/src/TLApi/data"
	"github.com/truthlens/truthlens/src/factcheck"
)

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client, pipeline *factcheck.Service) {
	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	authH := NewAuth(cfg.AdminPassword, []byte(cfg.JWTSecret))
	verifyH := NewVerify(db, rdb, pipeline)
	historyH := NewHistory(db, rdb)

	v1 := r.Group("/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "OK"})
		})

		v1.POST("/verify", verifyH.Verify)
		v1.GET("/history", historyH.List)
		v1.GET("/history/:id", historyH.Detail)
		v1.GET("/trending", historyH.Trending)
	}

	admin := v1.Group("/admin")
	admin.POST("/login", authH.Login)

	secured := admin.Use(JWTMiddleware([]byte(cfg.JWTSecret)))
	{
		secured.DELETE("/history/:id", historyH.Delete)
		secured.POST("/settings/refresh", func(c *gin.Context) {
			if err := data.RefreshSettings(db); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}
}
