package bikes

//go:generate mockgen -source=bikes.go -destination=mock_service.go -package=bikes

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/olobando-hub/BicPop-Web/internal/dto"
	"github.com/olobando-hub/BicPop-Web/internal/service/catalogservice"
	"github.com/olobando-hub/BicPop-Web/pkg/utils"
)

type Service interface {
	FilterBikes(ctx context.Context, filter domain.CategoryFilter, query string) ([]domain.Bike, catalogservice.Stats, error)
	GetBike(ctx context.Context, id string) (*domain.Bike, error)
}

type BikesHandler struct {
	catalogService Service
}

func New(catalogService Service) *BikesHandler {
	return &BikesHandler{
		catalogService: catalogService,
	}
}

// ListBikes godoc
//
//	@Summary		List bikes
//	@Description	Filter the catalog by type and a free text query over name and location
//	@Tags			Catalog
//	@Produce		json
//	@Param			type	query		string	false	"all, mechanical or electric"
//	@Param			q		query		string	false	"Search text"
//	@Success		200		{object}	dto.ListBikesResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown bike type"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bikes [get]
func (h *BikesHandler) ListBikes(w http.ResponseWriter, r *http.Request) {
	filter, err := catalogservice.ParseFilter(r.URL.Query().Get("type"))
	if err != nil {
		utils.RespondWithReason(w, http.StatusBadRequest, "invalid_filter", err.Error())
		return
	}

	bikes, stats, err := h.catalogService.FilterBikes(r.Context(), filter, r.URL.Query().Get("q"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.ListBikesResponseDTO{
		Bikes: make([]dto.BikeDTO, len(bikes)),
		Stats: dto.CatalogStatsDTO{
			TotalAvailable:      stats.TotalAvailable,
			MechanicalAvailable: stats.MechanicalAvailable,
			ElectricAvailable:   stats.ElectricAvailable,
			FilteredAvailable:   stats.FilteredAvailable,
		},
	}
	for i, b := range bikes {
		response.Bikes[i] = dto.NewBikeDTO(b)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBike godoc
//
//	@Summary	Get a bike
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		string	true	"Bike id"
//	@Success	200	{object}	dto.BikeDTO
//	@Failure	404	{object}	utils.Response	"Bike not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bikes/{id} [get]
func (h *BikesHandler) GetBike(w http.ResponseWriter, r *http.Request) {
	bike, err := h.catalogService.GetBike(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, catalogservice.ErrBikeNotFound) {
			utils.RespondWithReason(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBikeDTO(*bike))
}
