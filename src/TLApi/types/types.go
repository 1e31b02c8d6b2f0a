package types

import "time"

// Settings
type Setting struct {
	ID    uint8  `gorm:"primaryKey"`
	Name  string `gorm:"size:32;not null"`
	Value string `gorm:"size:256;not null"`
}

// Fact-check records
type FactCheck struct {
	ID              string `gorm:"primaryKey;size:36"`
	InputType       string `gorm:"size:8;not null"` // text | image
	OriginalInput   string `gorm:"type:text;not null"`
	ExtractedClaim  string `gorm:"type:text;not null"`
	Verdict         string `gorm:"size:16;index;not null"` // REAL | FAKE | MISLEADING | UNVERIFIED
	ConfidenceScore uint8  `gorm:"not null"`
	Explanation     string `gorm:"type:text;not null"`
	Sources         []FactCheckSource
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// Cited evidence for one fact check; Position preserves relevance order.
type FactCheckSource struct {
	ID          uint64 `gorm:"primaryKey"`
	FactCheckID string `gorm:"size:36;index;not null"`
	Position    int    `gorm:"not null"`
	Title       string `gorm:"size:512"`
	URL         string `gorm:"size:1024"`
	Snippet     string `gorm:"type:text"`
}
