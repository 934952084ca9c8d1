package models

import "time"

// ForumPost is a discussion thread started by a member.
type ForumPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	AuthorID     string    `json:"author_id"`
	SchoolID     *string   `json:"school_id,omitempty"`
	Category     string    `json:"category" example:"general"`
	RepliesCount int       `json:"replies_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Bulletin is a notice published on the notice board.
type Bulletin struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	SchoolID  *string   `json:"school_id,omitempty"`
	Category  string    `json:"category" example:"announcement"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// News is a school news item.
type News struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	SchoolID  *string   `json:"school_id,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Gallery is a titled set of image URLs for one school.
type Gallery struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	SchoolID  string    `json:"school_id"`
	Images    []string  `json:"images"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentFilter narrows forum, bulletin, news and gallery listings.
type ContentFilter struct {
	SchoolID string
	Category string
}
