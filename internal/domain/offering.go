// Package domain contains the core data types for the StarTrek site.
// This package has no dependencies beyond uuid and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Offering is a travel package ("trip") shown on the landing page.
// ImageURL is empty when no image has been attached yet.
type Offering struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Itinerary   string    `json:"itinerary"`
	Price       int       `json:"price"` // whole dollars
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Listing is what the trips section renders.
// Fallback is true when Offerings holds the built-in planned trips instead
// of rows from the store.
type Listing struct {
	Offerings []Offering
	Fallback  bool
}

// placeholderImage is used when an offering has no image of its own.
const placeholderImage = "/static/placeholder.svg"

// DisplayImage returns the image URL to render for the offering.
func (o Offering) DisplayImage() string {
	if o.ImageURL == "" {
		return placeholderImage
	}
	return o.ImageURL
}

// PlannedOfferings returns the four trips shown whenever the store is
// unavailable or empty. A fresh slice is returned on every call so callers
// may modify it.
func PlannedOfferings() []Offering {
	return []Offering{
		{
			ID:          uuid.MustParse("8f1c2a4e-0001-4c1e-9a51-5d7e2b6c0001"),
			Title:       "Mediterranean Discovery Cruise",
			Description: "Our flagship launch experience - explore the stunning coastlines of Italy, France, and Spain aboard a luxury cruise ship with full accessibility features.",
			Itinerary:   "Day 1-2: Rome, Italy • Day 3-4: French Riviera • Day 5-6: Barcelona, Spain • Day 7: Return to Rome",
			Price:       2499,
			ImageURL:    "/static/placeholder.svg?text=Mediterranean+Cruise",
		},
		{
			ID:          uuid.MustParse("8f1c2a4e-0002-4c1e-9a51-5d7e2b6c0002"),
			Title:       "English Gardens & Countryside",
			Description: "A gentle journey through England's most beautiful gardens and historic villages, designed for comfortable exploration at your own pace.",
			Itinerary:   "Day 1-2: London & Kew Gardens • Day 3-4: Cotswolds Villages • Day 5-6: Bath & Stonehenge • Day 7: Windsor Castle",
			Price:       1899,
			ImageURL:    "/static/placeholder.svg?text=English+Countryside",
		},
		{
			ID:          uuid.MustParse("8f1c2a4e-0003-4c1e-9a51-5d7e2b6c0003"),
			Title:       "Canadian Rockies Rail Journey",
			Description: "Experience breathtaking mountain scenery from luxury panoramic train cars, with accessible viewing areas and comfortable seating.",
			Itinerary:   "Day 1-2: Vancouver • Day 3-5: Rocky Mountaineer to Banff • Day 6-7: Lake Louise & Jasper • Day 8: Calgary",
			Price:       3299,
			ImageURL:    "/static/placeholder.svg?text=Canadian+Rockies",
		},
		{
			ID:          uuid.MustParse("8f1c2a4e-0004-4c1e-9a51-5d7e2b6c0004"),
			Title:       "New Zealand South Island Explorer",
			Description: "Discover stunning landscapes from fjords to mountains, with carefully selected accessible accommodations and transportation.",
			Itinerary:   "Day 1-2: Christchurch • Day 3-4: Queenstown & Milford Sound • Day 5-6: Franz Josef Glacier • Day 7-8: Mount Cook",
			Price:       4199,
			ImageURL:    "/static/placeholder.svg?text=New+Zealand",
		},
	}
}
