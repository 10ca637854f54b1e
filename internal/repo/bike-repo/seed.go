package bikerepo

import "github.com/olobando-hub/BicPop-Web/internal/domain"

func battery(lvl int) *int { return &lvl }

func Seed() []domain.Bike {
	return []domain.Bike{
		{
			ID:        "1",
			Name:      "Urban Classic",
			Category:  domain.CategoryMechanical,
			Price:     2500,
			Image:     "https://www.simplebikestore.eu/cdn/shop/files/urban-bike-gates-carbon-drive-petrol-mikamaro.jpg",
			Available: true,
			Location:  "Centro Histórico",
		},
		{
			ID:        "2",
			Name:      "EcoBolt Pro",
			Category:  domain.CategoryElectric,
			Price:     4500,
			Image:     "https://thumb.pccomponentes.com/w-530-530/articles/42/426215/1886-eovolt-city-4speed-bicicleta-electrica-plegable-verde.jpg",
			Battery:   battery(85),
			Available: true,
			Location:  "Universidad del Cauca",
		},
		{
			ID:        "3",
			Name:      "City Cruiser",
			Category:  domain.CategoryMechanical,
			Price:     2000,
			Image:     "https://www.solebicycles.com/cdn/shop/products/CTB3001-1-Web_961a790d-6644-4f80-87c5-73c65269a521_1445x.jpg?v=1682101319",
			Available: true,
			Location:  "Parque Caldas",
		},
		{
			ID:        "4",
			Name:      "Thunder E-Bike",
			Category:  domain.CategoryElectric,
			Price:     5000,
			Image:     "https://richmondebike.com/cdn/shop/products/20201219_151538_360x.jpg",
			Battery:   battery(92),
			Available: false,
			Location:  "Terminal de Transporte",
		},
		{
			ID:        "5",
			Name:      "Mountain Explorer",
			Category:  domain.CategoryMechanical,
			Price:     3000,
			Image:     "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQ3ScOVsZg65QBk5_ZF6vD7T21rkDsyRtf4AcOxpxvGgzyM_q18-J6-qEwOoGc8jvmCpmM&usqp=CAU",
			Available: true,
			Location:  "Rincon Payanes",
		},
		{
			ID:        "6",
			Name:      "Eco Lightning",
			Category:  domain.CategoryElectric,
			Price:     4800,
			Image:     "https://www.ecotric.com/cdn/shop/products/NS-FAT20850C-RD_9e4d7a2f-4e29-4cf3-b945-9e944274ea51.jpg?v=1666771190&width=1946",
			Battery:   battery(78),
			Available: true,
			Location:  "Centro Comercial Campanario",
		},
	}
}
