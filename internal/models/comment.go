package models

import "time"

// Comment is a user review attached to a product by name.
type Comment struct {
	Product   string    `json:"product"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"` // 1..5
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
