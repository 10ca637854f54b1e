package dto

import "github.com/olobando-hub/BicPop-Web/internal/domain"

type BikeDTO struct {
	ID        string `json:"id" example:"2"`
	Name      string `json:"name" example:"EcoBolt Pro"`
	Type      string `json:"type" example:"electric"`
	Price     int64  `json:"price" example:"4500"`
	Image     string `json:"image"`
	Battery   *int   `json:"battery,omitempty" example:"85"`
	Available bool   `json:"available" example:"true"`
	Location  string `json:"location" example:"Universidad del Cauca"`
}

type CatalogStatsDTO struct {
	TotalAvailable      int `json:"total_available" example:"5"`
	MechanicalAvailable int `json:"mechanical_available" example:"3"`
	ElectricAvailable   int `json:"electric_available" example:"2"`
	FilteredAvailable   int `json:"filtered_available" example:"2"`
}

type ListBikesResponseDTO struct {
	Bikes []BikeDTO       `json:"bikes"`
	Stats CatalogStatsDTO `json:"stats"`
}

func NewBikeDTO(b domain.Bike) BikeDTO {
	return BikeDTO{
		ID:        b.ID,
		Name:      b.Name,
		Type:      string(b.Category),
		Price:     b.Price,
		Image:     b.Image,
		Battery:   b.Battery,
		Available: b.Available,
		Location:  b.Location,
	}
}
