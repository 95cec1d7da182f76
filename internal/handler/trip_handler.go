package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/dto"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/pdf"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/service"
	"github.com/labstack/echo/v4"
)

type TripHandler struct {
	tripSvc      service.TripService
	recommendSvc service.RecommendService
}

func NewTripHandler(tripSvc service.TripService, recommendSvc service.RecommendService) *TripHandler {
	return &TripHandler{tripSvc: tripSvc, recommendSvc: recommendSvc}
}

func (h *TripHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/trips", h.CreateTrip)
	e.GET("/trips", h.ListTrips)
	e.GET("/trips/:id", h.GetTrip)
	e.GET("/trips/:id/pdf", h.DownloadTripPDF)
	e.GET("/recommend/:nights", h.Recommend)
}

func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req dto.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Nights < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "nights must not be negative")
	}

	trip, err := h.tripSvc.CreateTrip(c.Request().Context(), req)
	if err != nil {
		var dayCountErr *service.DayCountError
		var refErr *service.UnresolvedRefError
		switch {
		case errors.As(err, &dayCountErr):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.As(err, &refErr):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	trip, err := h.tripSvc.GetTrip(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.tripSvc.ListTrips(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TripResponse, len(trips))
	for i, t := range trips {
		resp[i] = dto.ToTripResponse(&t)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *TripHandler) Recommend(c echo.Context) error {
	nights, err := strconv.Atoi(c.Param("nights"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid nights value")
	}

	itinerary, err := h.recommendSvc.Recommend(c.Request().Context(), nights)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNightsOutOfRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrItineraryNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToItineraryResponse(itinerary))
}

func (h *TripHandler) DownloadTripPDF(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	trip, err := h.tripSvc.GetTrip(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	doc, err := pdf.Render(dto.ToTripResponse(trip))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="itinerary-%d.pdf"`, trip.ID))
	return c.Blob(http.StatusOK, "application/pdf", doc)
}
