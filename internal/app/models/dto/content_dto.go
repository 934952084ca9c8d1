package dto

// ForumPostRequest starts a forum thread.
type ForumPostRequest struct {
	Title    string  `json:"title" binding:"required,min=3"`
	Content  string  `json:"content" binding:"required"`
	SchoolID *string `json:"school_id,omitempty"`
	Category string  `json:"category,omitempty"`
}

// BulletinRequest publishes a notice.
type BulletinRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	SchoolID *string `json:"school_id,omitempty"`
	Category string  `json:"category,omitempty"`
}

// NewsRequest publishes a news item.
type NewsRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	SchoolID *string `json:"school_id,omitempty"`
	ImageURL *string `json:"image_url,omitempty" binding:"omitempty,url"`
}

// GalleryRequest publishes a gallery.
type GalleryRequest struct {
	Title    string   `json:"title" binding:"required"`
	SchoolID string   `json:"school_id" binding:"required"`
	Images   []string `json:"images" binding:"dive,url"`
}
