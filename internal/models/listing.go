package models

import "time"

// Listing is one catalog item. Image and Video are data URLs.
type Listing struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Video       string    `json:"video,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RatedListing pairs a listing with its star rating (0 when unrated).
type RatedListing struct {
	Listing
	Rating int `json:"rating"`
}

const MaxRating = 5

// Stars renders r as filled and empty stars, e.g. "★★★☆☆".
func Stars(r int) string {
	if r < 0 {
		r = 0
	}
	if r > MaxRating {
		r = MaxRating
	}
	s := make([]rune, 0, MaxRating)
	for i := 0; i < MaxRating; i++ {
		if i < r {
			s = append(s, '★')
		} else {
			s = append(s, '☆')
		}
	}
	return string(s)
}
