package webserver

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/truthlens/truthlens/src/TLApi/config"
	"github.com/truthlens/truthlens/src/factcheck"
)

func New(cfg config.Config, db *gorm.DB, rdb *redis.Client, pipeline *factcheck.Service) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, cfg, db, rdb, pipeline)
	return g
}
