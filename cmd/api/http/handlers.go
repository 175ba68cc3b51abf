package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/flowers-service/cmd/api/flower"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type FlowerHandler struct {
	flowerService flower.ServiceAPI
}

func NewFlowerHandler(flowerService flower.ServiceAPI) *FlowerHandler {
	return &FlowerHandler{flowerService: flowerService}
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type FlowerEntry struct {
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

type UpdateFlowerEntry struct {
	Name        *string  `json:"name"`
	Color       *string  `json:"color"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

type StockEntry struct {
	StockDelta *int `json:"stock_delta"`
}

/* Validates the entry, then stores the entry as a new flower. */
func (h *FlowerHandler) createFlower(w http.ResponseWriter, r *http.Request) {
	var entry FlowerEntry
	err := json.NewDecoder(r.Body).Decode(&entry)
	if err != nil {
		slog.Error("decoding create flower entry", "error", err)
		errR := flower.ErrResponse{
			Code:    flower.ErrResponseEntryInvalidJSON.Code,
			Message: flower.ErrResponseEntryInvalidJSON.Message + " " + err.Error(),
		}
		responseError(w, errR)
		return
	}

	storedFlower, err := h.flowerService.CreateFlower(r.Context(), flower.CreateFlowerRequest{
		Name:        entry.Name,
		Color:       entry.Color,
		Description: entry.Description,
		Price:       entry.Price,
		Stock:       entry.Stock,
	})
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusCreated, SuccessResponse{
		Success: true,
		Data:    flowerToResponse(storedFlower),
		Message: "Flower created successfully",
	})
}

/* Returns the flower with that specific ID. */
func (h *FlowerHandler) getFlowerById(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r)
	if err != nil {
		return
	}

	returnedFlower, err := h.flowerService.GetFlower(r.Context(), id)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    flowerToResponse(returnedFlower),
	})
}

/* Validates the entry, then updates the asked flower. Absent fields keep their stored values. */
func (h *FlowerHandler) updateFlower(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r)
	if err != nil {
		return
	}

	var entry UpdateFlowerEntry
	err = json.NewDecoder(r.Body).Decode(&entry)
	if err != nil {
		slog.Error("decoding update flower entry", "error", err)
		errR := flower.ErrResponse{
			Code:    flower.ErrResponseEntryInvalidJSON.Code,
			Message: flower.ErrResponseEntryInvalidJSON.Message + " " + err.Error(),
		}
		responseError(w, errR)
		return
	}

	updatedFlower, err := h.flowerService.UpdateFlower(r.Context(), flower.UpdateFlowerRequest{
		ID:          id,
		Name:        entry.Name,
		Color:       entry.Color,
		Description: entry.Description,
		Price:       entry.Price,
		Stock:       entry.Stock,
	})
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    flowerToResponse(updatedFlower),
		Message: "Flower updated successfully",
	})
}

/* Removes the flower with that specific ID from the store. */
func (h *FlowerHandler) deleteFlower(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r)
	if err != nil {
		return
	}

	err = h.flowerService.DeleteFlower(r.Context(), id)
	if err != nil {
		responseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/* Adds or removes stock units of the flower with that specific ID. */
func (h *FlowerHandler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r)
	if err != nil {
		return
	}

	var entry StockEntry
	err = json.NewDecoder(r.Body).Decode(&entry)
	if err != nil {
		slog.Error("decoding stock entry", "error", err)
		errR := flower.ErrResponse{
			Code:    flower.ErrResponseEntryInvalidJSON.Code,
			Message: flower.ErrResponseEntryInvalidJSON.Message + " " + err.Error(),
		}
		responseError(w, errR)
		return
	}

	if entry.StockDelta == nil || *entry.StockDelta == 0 {
		responseError(w, flower.ErrResponseStockEntryBlankFields)
		return
	}

	updatedFlower, err := h.flowerService.AdjustStock(r.Context(), id, *entry.StockDelta)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    flowerToResponse(updatedFlower),
		Message: "Stock updated successfully",
	})
}

/* Returns a page of the stored flowers. */
func (h *FlowerHandler) listFlowers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, perPage, valid := extractPageParams(query)
	if !valid {
		responseError(w, flower.ErrResponseQueryPageInvalid)
		return
	}

	params := flower.ListFlowersRequest{
		Search:  query.Get("search"),
		Color:   query.Get("color"),
		Page:    page,
		PerPage: perPage,
	}

	pagedFlowers, err := h.flowerService.ListFlowers(r.Context(), params)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    pagedFlowersToResponse(pagedFlowers),
	})
}

/* Isolates the ID from the URL. */
func isolateId(w http.ResponseWriter, r *http.Request) (id uuid.UUID, err error) {
	id, err = uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("parsing flower id", "error", err)
		responseError(w, flower.ErrResponseIdInvalidFormat)
		return id, err
	}
	return id, nil
}

type FlowerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

/*Copy the fields of a flower object to an http layer struct with json tags*/
func flowerToResponse(f flower.Flower) FlowerResponse {
	return FlowerResponse{
		ID:          f.ID,
		Name:        f.Name,
		Color:       f.Color,
		Description: f.Description,
		Price:       f.Price,
		Stock:       f.Stock,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

type PageOfFlowersResponse struct {
	Data       []FlowerResponse `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
}

/*Copy the fields of a PagedFlowers object to an http layer struct with json tags*/
func pagedFlowersToResponse(page flower.PagedFlowers) PageOfFlowersResponse {
	results := []FlowerResponse{}
	for _, f := range page.Results {
		results = append(results, flowerToResponse(f))
	}

	return PageOfFlowersResponse{
		Data:       results,
		Total:      page.ItemsTotal,
		Page:       page.PageCurrent,
		PerPage:    page.PageSize,
		TotalPages: page.PageTotal,
	}
}

/*Writes a JSON response into a http.ResponseWriter. */
func responseJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("encoding response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

/* Maps a service error to a status code and writes the error envelope. */
func responseError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var errR flower.ErrResponse
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		status = http.StatusGatewayTimeout
		message = flower.ErrResponseRequestTimeout.Message
	case errors.As(err, &errR):
		message = errR.Message
		switch errR.Code {
		case flower.ErrResponseFlowerNotFound.Code:
			status = http.StatusNotFound
		case flower.ErrResponseFlowerAlreadyExists.Code:
			status = http.StatusConflict
		case flower.ErrResponseFromRepository.Code:
			status = http.StatusInternalServerError
		default:
			status = http.StatusBadRequest
		}
	}

	slog.Error("request failed", "status", status, "error", err)
	responseJSON(w, status, ErrorResponse{Success: false, Error: message})
}

/*Validates and prepares the pagination parameters of the query.*/
func extractPageParams(query url.Values) (page, perPage int, valid bool) {
	var err error
	pageStr := query.Get("page") //Convert page value to int and set default to 1.
	if pageStr == "" {
		page = 1
	} else {
		page, err = strconv.Atoi(pageStr)
		if err != nil {
			return 0, 0, false
		}
		if page <= 0 {
			return 0, 0, false
		}
	}

	perPageStr := query.Get("per_page") //Convert per_page value to int and set default to 10.
	if perPageStr == "" {
		perPage = 10
	} else {
		perPage, err = strconv.Atoi(perPageStr)
		if err != nil {
			return 0, 0, false
		}
		if !(0 < perPage && perPage <= 100) {
			return 0, 0, false
		}
	}

	return page, perPage, true
}
