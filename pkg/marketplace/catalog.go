package marketplace

import (
	"fmt"

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// carBrand is a shop entry quoting a random price inside the range with a
// fixed top speed.
type carBrand struct {
	MinPrice int64
	MaxPrice int64
	Speed    int64
}

var carBrands = map[string]carBrand{
	"Lada":     {MinPrice: 100000, MaxPrice: 500000, Speed: 150},
	"Kia":      {MinPrice: 500000, MaxPrice: 1500000, Speed: 200},
	"Hyundai":  {MinPrice: 600000, MaxPrice: 2000000, Speed: 220},
	"Toyota":   {MinPrice: 1000000, MaxPrice: 3000000, Speed: 250},
	"BMW":      {MinPrice: 3500000, MaxPrice: 9000000, Speed: 330},
	"Mercedes": {MinPrice: 4000000, MaxPrice: 10000000, Speed: 340},
	"Ferrari":  {MinPrice: 10000000, MaxPrice: 30000000, Speed: 370},
}

type phoneBrand struct {
	MinPrice int64
	MaxPrice int64
	Camera   int64
}

var phoneBrands = map[string]phoneBrand{
	"Xiaomi":       {MinPrice: 15000, MaxPrice: 50000, Camera: 48},
	"Samsung":      {MinPrice: 20000, MaxPrice: 100000, Camera: 108},
	"Apple iPhone": {MinPrice: 50000, MaxPrice: 150000, Camera: 48},
	"Google Pixel": {MinPrice: 40000, MaxPrice: 90000, Camera: 50},
	"OnePlus":      {MinPrice: 35000, MaxPrice: 80000, Camera: 50},
	"Sony":         {MinPrice: 45000, MaxPrice: 120000, Camera: 52},
}

// houseListing is a fixed-price shop entry.
type houseListing struct {
	Model   string
	Price   int64
	Rooms   int64
	Area    int64
	Comfort int64
}

var houseListings = []houseListing{
	{Model: "Forest Hut", Price: 50000, Rooms: 1, Area: 30, Comfort: 20},
	{Model: "Country Cottage", Price: 150000, Rooms: 2, Area: 50, Comfort: 35},
	{Model: "Studio Apartment", Price: 300000, Rooms: 1, Area: 40, Comfort: 50},
	{Model: "One-Bedroom Apartment", Price: 500000, Rooms: 1, Area: 45, Comfort: 60},
	{Model: "Two-Bedroom Apartment", Price: 800000, Rooms: 2, Area: 65, Comfort: 70},
	{Model: "Three-Bedroom Apartment", Price: 1200000, Rooms: 3, Area: 90, Comfort: 80},
	{Model: "Penthouse", Price: 2000000, Rooms: 4, Area: 120, Comfort: 90},
	{Model: "Townhouse", Price: 3500000, Rooms: 4, Area: 150, Comfort: 85},
	{Model: "Mansion", Price: 5000000, Rooms: 6, Area: 250, Comfort: 95},
	{Model: "Castle", Price: 10000000, Rooms: 15, Area: 800, Comfort: 100},
	{Model: "Island Villa", Price: 20000000, Rooms: 10, Area: 500, Comfort: 98},
}

type accessoryListing struct {
	Model string
	Price int64
	Style int64
}

var accessoryListings = []accessoryListing{
	{Model: "Gucci Sunglasses", Price: 50000, Style: 50},
	{Model: "Rolex Submariner", Price: 500000, Style: 90},
	{Model: "Gucci Shoes", Price: 150000, Style: 70},
	{Model: "Leather Jacket", Price: 200000, Style: 80},
	{Model: "Gold Chain", Price: 300000, Style: 85},
	{Model: "Supreme Cap", Price: 30000, Style: 60},
	{Model: "Louis Vuitton Bag", Price: 450000, Style: 95},
	{Model: "Diamond Earrings", Price: 800000, Style: 98},
}

// Quote is a priced shop offer for one item. Cars and phones draw a random
// price inside the brand's range; houses and accessories are fixed listings.
type Quote struct {
	Category models.AssetCategory `json:"category"`
	Brand    string               `json:"brand,omitempty"`
	Model    string               `json:"model"`
	Price    int64                `json:"price"`
	Speed    int64                `json:"speed,omitempty"`
	Camera   int64                `json:"camera,omitempty"`
	Rooms    int64                `json:"rooms,omitempty"`
	Area     int64                `json:"area,omitempty"`
	Comfort  int64                `json:"comfort,omitempty"`
	Style    int64                `json:"style,omitempty"`
}

// quote produces the offer for one catalog item. name selects the brand for
// cars and phones and the listing model for houses and accessories.
func (s *Service) quote(category models.AssetCategory, name string) (*Quote, error) {
	switch category {
	case models.AssetCar:
		brand, ok := carBrands[name]
		if !ok {
			return nil, fmt.Errorf("unknown car brand %q: %w", name, storage.ErrNotFound)
		}
		return &Quote{
			Category: models.AssetCar,
			Brand:    name,
			Model:    name,
			Price:    brand.MinPrice + s.RandInt(brand.MaxPrice-brand.MinPrice+1),
			Speed:    brand.Speed,
		}, nil
	case models.AssetPhone:
		brand, ok := phoneBrands[name]
		if !ok {
			return nil, fmt.Errorf("unknown phone brand %q: %w", name, storage.ErrNotFound)
		}
		return &Quote{
			Category: models.AssetPhone,
			Brand:    name,
			Model:    name,
			Price:    brand.MinPrice + s.RandInt(brand.MaxPrice-brand.MinPrice+1),
			Camera:   brand.Camera,
		}, nil
	case models.AssetHouse:
		for _, listing := range houseListings {
			if listing.Model == name {
				return &Quote{
					Category: models.AssetHouse,
					Model:    listing.Model,
					Price:    listing.Price,
					Rooms:    listing.Rooms,
					Area:     listing.Area,
					Comfort:  listing.Comfort,
				}, nil
			}
		}
		return nil, fmt.Errorf("unknown house listing %q: %w", name, storage.ErrNotFound)
	case models.AssetAccessory:
		for _, listing := range accessoryListings {
			if listing.Model == name {
				return &Quote{
					Category: models.AssetAccessory,
					Model:    listing.Model,
					Price:    listing.Price,
					Style:    listing.Style,
				}, nil
			}
		}
		return nil, fmt.Errorf("unknown accessory %q: %w", name, storage.ErrNotFound)
	default:
		return nil, fmt.Errorf("unknown asset category %q: %w", category, storage.ErrNotFound)
	}
}

// Catalog lists the purchasable items of one category as zero-priced quotes
// for cars and phones (the price is drawn at proposal time) and fixed-price
// quotes for houses and accessories.
func Catalog(category models.AssetCategory) ([]Quote, error) {
	switch category {
	case models.AssetCar:
		quotes := make([]Quote, 0, len(carBrands))
		for name, brand := range carBrands {
			quotes = append(quotes, Quote{Category: models.AssetCar, Brand: name, Model: name, Speed: brand.Speed})
		}
		return quotes, nil
	case models.AssetPhone:
		quotes := make([]Quote, 0, len(phoneBrands))
		for name, brand := range phoneBrands {
			quotes = append(quotes, Quote{Category: models.AssetPhone, Brand: name, Model: name, Camera: brand.Camera})
		}
		return quotes, nil
	case models.AssetHouse:
		quotes := make([]Quote, 0, len(houseListings))
		for _, listing := range houseListings {
			quotes = append(quotes, Quote{Category: models.AssetHouse, Model: listing.Model, Price: listing.Price, Rooms: listing.Rooms, Area: listing.Area, Comfort: listing.Comfort})
		}
		return quotes, nil
	case models.AssetAccessory:
		quotes := make([]Quote, 0, len(accessoryListings))
		for _, listing := range accessoryListings {
			quotes = append(quotes, Quote{Category: models.AssetAccessory, Model: listing.Model, Price: listing.Price, Style: listing.Style})
		}
		return quotes, nil
	default:
		return nil, fmt.Errorf("unknown asset category %q: %w", category, storage.ErrNotFound)
	}
}
