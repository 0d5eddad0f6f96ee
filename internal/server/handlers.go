package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vanshika/airroute/internal/domain"
	"github.com/vanshika/airroute/internal/service"
)

// APIHandlers exposes HTTP handlers for the lookup API.
type APIHandlers struct {
	logger  *slog.Logger
	service *service.FlightService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc *service.FlightService) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
	}
}

// RegisterRoutes mounts the API on router.
func (h *APIHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/lookup", h.handleLookup).Methods(http.MethodGet)
	router.HandleFunc("/airports/{code}", h.handleAirport).Methods(http.MethodGet)
	router.HandleFunc("/network", h.handleNetwork).Methods(http.MethodGet)
}

type lookupResponse struct {
	OK         bool     `json:"ok"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	DistanceKm float64  `json:"distanceKm,omitempty"`
	Hops       int      `json:"hops,omitempty"`
	Stops      []string `json:"stops,omitempty"`
	Message    string   `json:"message"`
	Reason     string   `json:"reason,omitempty"`
}

type airportResponse struct {
	ID         int     `json:"id"`
	Code       string  `json:"code"`
	IATA       string  `json:"iata,omitempty"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Neighbours int     `json:"neighbours"`
}

type networkResponse struct {
	Airports int    `json:"airports"`
	Routes   int    `json:"routes"`
	Mode     string `json:"mode"`
}

func (h *APIHandlers) handleLookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to query parameters are required")
		return
	}

	res, err := h.service.Lookup(r.Context(), from, to)
	if err != nil {
		h.logger.Error("lookup failed", "error", err, "from", from, "to", to, "request_id", RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to look up route")
		return
	}

	resp := lookupResponse{
		OK:      res.OK,
		From:    res.SourceCode,
		To:      res.DestinationCode,
		Message: res.Message(),
		Reason:  string(res.Reason),
	}
	if res.OK {
		resp.DistanceKm = res.Rounded()
		resp.Hops = res.Path.Hops()
		resp.Stops = h.stopCodes(res)
	}

	respondJSON(w, lookupStatus(res.Reason), resp)
}

func (h *APIHandlers) handleAirport(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(mux.Vars(r)["code"])
	net := h.service.Network()

	id, ok := net.Resolve(code)
	if !ok {
		writeError(w, http.StatusNotFound, "airport not found")
		return
	}
	airport, _ := net.Airport(id)
	respondJSON(w, http.StatusOK, toAirportResponse(airport))
}

func (h *APIHandlers) handleNetwork(w http.ResponseWriter, r *http.Request) {
	net := h.service.Network()
	respondJSON(w, http.StatusOK, networkResponse{
		Airports: net.Len(),
		Routes:   net.RouteCount(),
		Mode:     net.Mode().String(),
	})
}

func (h *APIHandlers) stopCodes(res service.Result) []string {
	net := h.service.Network()
	ids := res.Path.Stops()
	codes := make([]string, 0, len(ids))
	for _, id := range ids {
		if a, ok := net.Airport(id); ok {
			codes = append(codes, a.Code)
		}
	}
	return codes
}

func lookupStatus(reason service.Reason) int {
	switch reason {
	case service.ReasonUnknownSource, service.ReasonUnknownDestination, service.ReasonNoRoute:
		return http.StatusNotFound
	case service.ReasonSameAirport:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

func toAirportResponse(a *domain.Airport) airportResponse {
	return airportResponse{
		ID:         a.ID,
		Code:       a.Code,
		IATA:       a.IATA,
		Name:       a.Name,
		City:       a.City,
		Country:    a.Country,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
		Neighbours: len(a.Neighbors),
	}
}
