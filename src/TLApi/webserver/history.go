package webserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/truthlens/truthlens/src/TLApi/data"
	"github.com/truthlens/truthlens/src/TLApi/types"
)

const historyLimit = 20

type History struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHistory(db *gorm.DB, rdb *redis.Client) History {
	return History{db: db, rdb: rdb}
}

// List returns the most recent checks as compact summaries.
func (h History) List(c *gin.Context) {
	var records []types.FactCheck
	err := h.db.
		Select("id", "input_type", "extracted_claim", "verdict", "confidence_score", "created_at").
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, gin.H{
			"id":              r.ID,
			"inputType":       r.InputType,
			"extractedClaim":  r.ExtractedClaim,
			"verdict":         r.Verdict,
			"confidenceScore": r.ConfidenceScore,
			"createdAt":       r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Detail returns the full record including cited sources.
func (h History) Detail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid record id"})
		return
	}

	var record types.FactCheck
	err := h.db.Preload("Sources", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"err": "record not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	sources := make([]gin.H, 0, len(record.Sources))
	for _, s := range record.Sources {
		sources = append(sources, gin.H{
			"title":   s.Title,
			"url":     s.URL,
			"snippet": s.Snippet,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              record.ID,
		"inputType":       record.InputType,
		"originalInput":   record.OriginalInput,
		"extractedClaim":  record.ExtractedClaim,
		"verdict":         record.Verdict,
		"confidenceScore": record.ConfidenceScore,
		"explanation":     record.Explanation,
		"sources":         sources,
		"createdAt":       record.CreatedAt,
	})
}

// Trending serves the Redis-backed recent-checks feed, falling back to the
// database when the feed is empty or Redis is unavailable.
func (h History) Trending(c *gin.Context) {
	entries, err := data.RecentTrending(c.Request.Context(), h.rdb)
	if err == nil && len(entries) > 0 {
		c.JSON(http.StatusOK, entries)
		return
	}
	if err != nil {
		log.Printf("Trending feed unavailable, falling back to database: %v", err)
	}
	h.List(c)
}

// Delete removes one record and its sources. Admin only.
func (h History) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid record id"})
		return
	}

	if err := h.db.Where("fact_check_id = ?", id).Delete(&types.FactCheckSource{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	if err := h.db.Delete(&types.FactCheck{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
