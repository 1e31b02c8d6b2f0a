package webserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/truthlens/truthlens/src/TLApi/data"
	"github.com/truthlens/truthlens/src/TLApi/types"
	"github.com/truthlens/truthlens/src/factcheck"
)

const maxImageBytes = 10 << 20 // 10 MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Verify struct {
	db        *gorm.DB
	rdb       *redis.Client
	pipeline  *factcheck.Service
	sanitizer *bluemonday.Policy
}

func NewVerify(db *gorm.DB, rdb *redis.Client, pipeline *factcheck.Service) Verify {
	// Claims are stored and rendered as plain text; strip all markup.
	return Verify{db: db, rdb: rdb, pipeline: pipeline, sanitizer: bluemonday.StrictPolicy()}
}

type verifyResponse struct {
	ID              string                   `json:"id"`
	InputType       string                   `json:"inputType"`
	ExtractedClaim  string                   `json:"extractedClaim"`
	Verdict         string                   `json:"verdict"`
	ConfidenceScore int                      `json:"confidenceScore"`
	Explanation     string                   `json:"explanation"`
	Sources         []factcheck.EvidenceItem `json:"sources"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// Verify accepts either a JSON body {text, searchMode} or a multipart form
// with an "image" file, runs the verification pipeline and persists the
// result. Exactly one of text/image must be present.
func (v Verify) Verify(c *gin.Context) {
	req, originalInput, err := v.buildRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	// Identical text submissions within the cache window reuse the stored
	// response instead of re-running the pipeline.
	var cacheKey string
	if req.Kind == factcheck.InputText {
		cacheKey = data.VerdictCacheKey(req.Text, string(req.Mode))
		if cached := data.GetCachedVerdict(c.Request.Context(), v.rdb, cacheKey); cached != "" {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	result, err := v.pipeline.Run(c.Request.Context(), *req)
	if err != nil {
		var extractErr *factcheck.ExtractionError
		var synthErr *factcheck.SynthesisError
		if errors.As(err, &extractErr) || errors.As(err, &synthErr) {
			c.JSON(http.StatusBadGateway, gin.H{"err": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	record := types.FactCheck{
		ID:              uuid.NewString(),
		InputType:       string(result.Kind),
		OriginalInput:   originalInput,
		ExtractedClaim:  result.Claim,
		Verdict:         string(result.Verdict.Label),
		ConfidenceScore: uint8(result.Verdict.ConfidenceScore),
		Explanation:     result.Verdict.Explanation,
	}
	for i, src := range result.Verdict.Sources {
		record.Sources = append(record.Sources, types.FactCheckSource{
			Position: i,
			Title:    src.Title,
			URL:      src.URL,
			Snippet:  src.Snippet,
		})
	}

	if err := v.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	if err := data.PushTrending(c.Request.Context(), v.rdb, data.TrendingEntry{
		ID:              record.ID,
		InputType:       record.InputType,
		ExtractedClaim:  record.ExtractedClaim,
		Verdict:         record.Verdict,
		ConfidenceScore: record.ConfidenceScore,
		CreatedAt:       record.CreatedAt,
	}); err != nil {
		log.Printf("Failed to push trending entry: %v", err)
	}

	resp := verifyResponse{
		ID:              record.ID,
		InputType:       record.InputType,
		ExtractedClaim:  record.ExtractedClaim,
		Verdict:         record.Verdict,
		ConfidenceScore: result.Verdict.ConfidenceScore,
		Explanation:     record.Explanation,
		Sources:         result.Verdict.Sources,
		CreatedAt:       record.CreatedAt,
	}

	if cacheKey != "" {
		if body, err := json.Marshal(resp); err == nil {
			if err := data.CacheVerdict(c.Request.Context(), v.rdb, cacheKey, string(body)); err != nil {
				log.Printf("Failed to cache verdict: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (v Verify) buildRequest(c *gin.Context) (*factcheck.Request, string, error) {
	mode := factcheck.ModeOfficial

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if m := c.PostForm("searchMode"); m != "" {
			parsed, err := parseSearchMode(m)
			if err != nil {
				return nil, "", err
			}
			mode = parsed
		}

		file, err := c.FormFile("image")
		if err != nil {
			// No image part: fall back to a text field in the same form.
			if text := strings.TrimSpace(c.PostForm("text")); text != "" {
				text = v.sanitizer.Sanitize(text)
				return &factcheck.Request{Kind: factcheck.InputText, Text: text, Mode: mode}, text, nil
			}
			return nil, "", fmt.Errorf("please provide text or an image")
		}

		if file.Size > maxImageBytes {
			return nil, "", fmt.Errorf("image exceeds the 10 MB limit")
		}
		mimeType := file.Header.Get("Content-Type")
		if !allowedImageTypes[mimeType] {
			return nil, "", fmt.Errorf("only image files (JPEG, PNG, GIF, WEBP) are allowed")
		}

		f, err := file.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		imageData, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
		if err != nil {
			return nil, "", err
		}
		if len(imageData) > maxImageBytes {
			return nil, "", fmt.Errorf("image exceeds the 10 MB limit")
		}

		original := fmt.Sprintf("[Image uploaded - %s]", file.Filename)
		return &factcheck.Request{
			Kind:      factcheck.InputImage,
			ImageData: imageData,
			ImageMime: mimeType,
			Mode:      mode,
		}, original, nil
	}

	var body struct {
		Text       string `json:"text" binding:"required,min=1,max=10000"`
		SearchMode string `json:"searchMode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, "", fmt.Errorf("please provide text or an image")
	}
	if body.SearchMode != "" {
		parsed, err := parseSearchMode(body.SearchMode)
		if err != nil {
			return nil, "", err
		}
		mode = parsed
	}

	text := v.sanitizer.Sanitize(strings.TrimSpace(body.Text))
	if text == "" {
		return nil, "", fmt.Errorf("text is empty after sanitization")
	}
	return &factcheck.Request{Kind: factcheck.InputText, Text: text, Mode: mode}, text, nil
}

func parseSearchMode(raw string) (factcheck.SearchMode, error) {
	switch strings.ToLower(raw) {
	case "official":
		return factcheck.ModeOfficial, nil
	case "global":
		return factcheck.ModeGlobal, nil
	}
	return "", fmt.Errorf("invalid search mode %q", raw)
}
