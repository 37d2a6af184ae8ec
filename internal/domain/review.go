package domain

import "time"

type Review struct {
	ID       int64     `json:"id"`
	HotelID  string    `json:"hotelId"`
	Author   string    `json:"author"`
	Initials string    `json:"initials"`
	Rating   int       `json:"rating"` // stars 1..5
	Date     time.Time `json:"date"`
	Text     string    `json:"text"`
}
