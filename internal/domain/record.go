package domain

import (
	"time"

	"resume-builder/internal/model"
)

// AnonymousUserID owns every record until accounts exist.
const AnonymousUserID int64 = 1

// ResumeRecord is one entry of the analytics log.
type ResumeRecord struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"userId"`
	Title       string         `json:"title"`
	Template    string         `json:"template"`
	ColorScheme string         `json:"colorScheme"`
	Data        model.Document `json:"data"`
	CreatedAt   time.Time      `json:"createdAt"`
}
