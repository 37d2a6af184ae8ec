// Package catalog holds the static sample records the site ships with.
package catalog

import (
	"time"

	"staybook/internal/domain"
)

// FeaturedID is the hotel every detail page falls back to.
const FeaturedID = "1"

func pint(i int) *int { return &i }

func amenities(pairs ...string) []domain.Amenity {
	out := make([]domain.Amenity, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Amenity{Icon: pairs[i], Label: pairs[i+1]})
	}
	return out
}

// SampleHotels returns a fresh copy of the six grid samples.
func SampleHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:        "1",
			Name:      "Luxury Ocean Resort",
			Image:     "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&q=80",
			Location:  "Miami, Florida",
			Category:  domain.LocationBeachfront,
			Price:     299,
			Rating:    4.8,
			Amenities: amenities("wifi", "Free WiFi", "coffee", "Breakfast", "utensils", "Restaurant"),
			Discount:  pint(15),
		},
		{
			ID:        "2",
			Name:      "Mountain View Lodge",
			Image:     "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800&q=80",
			Location:  "Aspen, Colorado",
			Category:  domain.LocationMountain,
			Price:     349,
			Rating:    4.9,
			Amenities: amenities("wifi", "Free WiFi", "spa", "Spa", "flame", "Fireplace"),
		},
		{
			ID:        "3",
			Name:      "Urban Boutique Hotel",
			Image:     "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800&q=80",
			Location:  "New York, New York",
			Category:  domain.LocationDowntown,
			Price:     279,
			Rating:    4.6,
			Amenities: amenities("wifi", "Free WiFi", "dumbbell", "Gym", "wine", "Bar"),
			Discount:  pint(10),
		},
		{
			ID:        "4",
			Name:      "Desert Oasis Resort",
			Image:     "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800&q=80",
			Location:  "Phoenix, Arizona",
			Category:  domain.LocationSuburban,
			Price:     199,
			Rating:    4.5,
			Amenities: amenities("waves", "Pool", "wifi", "Free WiFi", "spa", "Spa"),
		},
		{
			ID:        "5",
			Name:      "Lakeside Retreat",
			Image:     "https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800&q=80",
			Location:  "Lake Tahoe, Nevada",
			Category:  domain.LocationMountain,
			Price:     329,
			Rating:    4.7,
			Amenities: amenities("waves", "Waterfront", "wifi", "Free WiFi", "coffee", "Breakfast"),
			Discount:  pint(5),
		},
		{
			ID:        "6",
			Name:      "Historic Downtown Inn",
			Image:     "https://images.unsplash.com/photo-1519449556851-5720b33024e7?w=800&q=80",
			Location:  "Charleston, South Carolina",
			Category:  domain.LocationDowntown,
			Price:     249,
			Rating:    4.6,
			Amenities: amenities("wifi", "Free WiFi", "coffee", "Breakfast", "landmark", "Historic Tours"),
		},
	}
}

// Featured is the fully populated detail record (gallery, rooms, reviews).
func Featured() domain.HotelDetail {
	h := SampleHotels()[0]
	h.Amenities = amenities(
		"wifi", "Free WiFi",
		"coffee", "Breakfast Included",
		"utensils", "Restaurant",
		"waves", "Swimming Pool",
		"dumbbell", "Fitness Center",
		"car", "Free Parking",
		"paw", "Pet Friendly",
		"snowflake", "Air Conditioning",
	)
	return domain.HotelDetail{
		Hotel:       h,
		ReviewCount: 246,
		Description: "Experience luxury living at its finest with our oceanfront resort. " +
			"Featuring stunning views, world-class amenities, and exceptional service, " +
			"our resort offers the perfect getaway for those seeking relaxation and indulgence.",
		Images: []string{
			"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&q=80",
			"https://images.unsplash.com/photo-1582719508461-905c673771fd?w=800&q=80",
			"https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=800&q=80",
			"https://images.unsplash.com/photo-1560200353-ce0a76b1d438?w=800&q=80",
		},
		Rooms: []domain.Room{
			{
				ID: "room1", Name: "Deluxe Ocean View", Price: 299, Discount: 15,
				Image:    "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800&q=80",
				Capacity: 2, Beds: "1 King Bed", Size: "45 m²",
				Features: []string{"Ocean View", "Balcony", "Mini Bar", "Free WiFi", "Room Service"},
			},
			{
				ID: "room2", Name: "Premium Suite", Price: 499, Discount: 0,
				Image:    "https://images.unsplash.com/photo-1591088398332-8a7791972843?w=800&q=80",
				Capacity: 4, Beds: "1 King Bed + 1 Sofa Bed", Size: "75 m²",
				Features: []string{"Ocean View", "Private Terrace", "Living Room", "Jacuzzi", "Free WiFi", "Room Service"},
			},
			{
				ID: "room3", Name: "Standard Room", Price: 199, Discount: 10,
				Image:    "https://images.unsplash.com/photo-1595576508898-0ad5c879a061?w=800&q=80",
				Capacity: 2, Beds: "2 Queen Beds", Size: "35 m²",
				Features: []string{"City View", "Free WiFi", "Room Service"},
			},
		},
		Reviews: []domain.Review{
			{
				ID: 1, HotelID: FeaturedID, Author: "John Doe", Initials: "JD", Rating: 5,
				Date: time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC),
				Text: "Amazing hotel with stunning ocean views. The staff was incredibly helpful " +
					"and the amenities were top-notch. Would definitely stay here again!",
			},
			{
				ID: 2, HotelID: FeaturedID, Author: "Jane Smith", Initials: "JS", Rating: 4,
				Date: time.Date(2023, time.April, 28, 0, 0, 0, 0, time.UTC),
				Text: "Great location and beautiful property. The room was clean and comfortable. " +
					"The only downside was that the restaurant was a bit pricey, but there are plenty of options nearby.",
			},
		},
	}
}

// All returns detail records for every sample; only the featured one carries
// rooms and reviews.
func All() []domain.HotelDetail {
	samples := SampleHotels()
	out := make([]domain.HotelDetail, 0, len(samples))
	out = append(out, Featured())
	for _, h := range samples[1:] {
		out = append(out, domain.HotelDetail{Hotel: h, Images: []string{h.Image}})
	}
	return out
}

// AmenityGroups is the static "Amenities" tab of the detail page.
var AmenityGroups = []struct {
	Title string
	Items []string
}{
	{Title: "Popular Amenities", Items: []string{"Free WiFi", "Free Parking", "Breakfast Included", "Pet Friendly"}},
	{Title: "Activities & Wellness", Items: []string{"Swimming Pool", "Fitness Center"}},
}
