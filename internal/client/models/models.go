// Package models defines the plain records mirroring backend resources of
// the climbing service. Shapes follow the JSON the REST API returns; no
// client-side validation is performed.
package models

import "time"

// User is the authenticated account with its public profile.
type User struct {
	ID       string        `json:"id"`
	Email    string        `json:"email,omitempty"`
	Nickname string        `json:"nickname"`
	Avatar   string        `json:"avatar,omitempty"`
	Bio      string        `json:"bio,omitempty"`
	Level    string        `json:"level,omitempty"`
	Records  []ClimbRecord `json:"records,omitempty"`
}

// ClimbRecord is a single logged ascent on a user profile.
type ClimbRecord struct {
	RouteID    string    `json:"routeId"`
	Difficulty string    `json:"difficulty"`
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes,omitempty"`
}

// Credentials is the login/register response: an access token plus the
// authenticated user record.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Location is a climbing area or crag.
type Location struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Images        []string `json:"images,omitempty"`
	Features      []string `json:"features,omitempty"`
	MinDifficulty string   `json:"minDifficulty,omitempty"`
	MaxDifficulty string   `json:"maxDifficulty,omitempty"`
	RouteCount    int      `json:"routeCount,omitempty"`
}

// Route is a single climb at a location.
type Route struct {
	ID         string   `json:"id"`
	LocationID string   `json:"locationId"`
	Name       string   `json:"name"`
	Difficulty string   `json:"difficulty"`
	Type       string   `json:"type,omitempty"`
	Length     float64  `json:"length,omitempty"`
	Ratings    []Rating `json:"ratings,omitempty"`
}

// Rating is a user's score on a route.
type Rating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Activity statuses as the backend reports them.
const (
	ActivityStatusOpen      = "open"
	ActivityStatusFull      = "full"
	ActivityStatusCancelled = "cancelled"
	ActivityStatusFinished  = "finished"
)

// Activity is an organized climbing event.
type Activity struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	OrganizerID     string    `json:"organizerId"`
	LocationID      string    `json:"locationId"`
	Date            time.Time `json:"date"`
	Participants    []string  `json:"participants,omitempty"`
	MaxParticipants int       `json:"maxParticipants,omitempty"`
	Status          string    `json:"status"`
}

// Post is a forum post.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	Likes     []string  `json:"likes,omitempty"`
	Comments  []Comment `json:"comments,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Comment is a reply on a forum post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId,omitempty"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Page is the paginated collection block every list endpoint nests inside
// the response envelope.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// UploadResult describes one uploaded file.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
	Size     int64  `json:"size,omitempty"`
}
