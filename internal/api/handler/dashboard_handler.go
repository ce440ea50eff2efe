package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go-freight-dashboard/internal/engine"
	"go-freight-dashboard/internal/loader"
	"go-freight-dashboard/internal/model"
	"go-freight-dashboard/internal/sheets"
	"go-freight-dashboard/internal/store"
	"go-freight-dashboard/pkg/utils"
)

// Handler serves the dashboard API. Loc is a function so a config reload can
// repoint the sheet without restarting the server.
type Handler struct {
	Loader *loader.CachedLoader
	Loc    func() sheets.Locator
	Audit  bool
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FiltersResponse lists the selectable filter values and methods.
type FiltersResponse struct {
	Zones    []string `json:"zones"`
	Vehicles []string `json:"vehicles"`
	Methods  []string `json:"methods"`
}

// ChartsResponse groups the three dashboard views.
type ChartsResponse struct {
	Freight engine.ChartConfig `json:"freight"`
	TAT     engine.ChartConfig `json:"tat"`
	Trends  engine.ChartConfig `json:"trends"`
}

// DashboardResponse is one full evaluation: filter, aggregate, chart.
type DashboardResponse struct {
	Selection  model.Selection `json:"selection"`
	Method     model.AggMethod `json:"method"`
	RowCount   int             `json:"rowCount"`
	Aggregated *model.Table    `json:"aggregated"`
	Charts     ChartsResponse  `json:"charts"`
	Raw        *model.Table    `json:"raw,omitempty"`
}

// RefreshResponse reports a completed manual reload.
type RefreshResponse struct {
	Status     string `json:"status"`
	Rows       int    `json:"rows"`
	Generation uint64 `json:"generation"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps load failures onto HTTP statuses: upstream auth/shape
// problems are a bad gateway, quota and network hiccups are retryable.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var dfe *loader.DataFormatError
	switch {
	case errors.Is(err, sheets.ErrAuth), errors.Is(err, sheets.ErrNotFound):
		status = http.StatusBadGateway
	case errors.Is(err, sheets.ErrTransient):
		status = http.StatusServiceUnavailable
	case errors.As(err, &dfe):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func parseSelection(r *http.Request) model.Selection {
	q := r.URL.Query()
	return model.Selection{
		Zones:    utils.SplitCSV(q.Get("zones")),
		Vehicles: utils.SplitCSV(q.Get("vehicles")),
	}
}

// Dashboard godoc
// @Summary Evaluate the dashboard
// @Description Filters the sheet by zone and vehicle type, aggregates by Month, and returns render-ready charts.
// @Tags dashboard
// @Produce json
// @Param zones query string false "Comma-separated zone inclusion set"
// @Param vehicles query string false "Comma-separated vehicle type inclusion set"
// @Param agg query string false "Aggregation method: average, sum, or max" default(average)
// @Param raw query bool false "Include the filtered raw table"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	method, err := model.ParseAggMethod(r.URL.Query().Get("agg"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	sel := parseSelection(r)
	includeRaw := false
	if rawParam := r.URL.Query().Get("raw"); rawParam != "" {
		includeRaw, err = strconv.ParseBool(rawParam)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "raw: want a boolean"})
			return
		}
	}

	table, err := h.Loader.Load(r.Context(), h.Loc())
	if err != nil {
		writeError(w, err)
		return
	}

	filtered := engine.ApplyFilter(table, sel)
	agg := engine.Aggregate(filtered, method)

	resp := DashboardResponse{
		Selection:  sel,
		Method:     method,
		RowCount:   filtered.Len(),
		Aggregated: agg,
		Charts: ChartsResponse{
			Freight: engine.BuildFreightChart(agg, method),
			TAT:     engine.BuildTATChart(agg, method),
			Trends:  engine.BuildTrendsChart(agg, method),
		},
	}
	if includeRaw {
		resp.Raw = filtered
	}

	if h.Audit {
		if err := store.SaveQuery(strings.Join(sel.Zones, ","), strings.Join(sel.Vehicles, ","),
			string(method), includeRaw, filtered.Len()); err != nil {
			slog.Warn("audit query", "error", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Filters godoc
// @Summary List selectable filter values
// @Description Returns the distinct zones and vehicle types of the current table, in first-seen order, plus the aggregation methods.
// @Tags dashboard
// @Produce json
// @Success 200 {object} FiltersResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/filters [get]
func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	table, err := h.Loader.Load(r.Context(), h.Loc())
	if err != nil {
		writeError(w, err)
		return
	}
	methods := make([]string, len(model.Methods))
	for i, m := range model.Methods {
		methods[i] = string(m)
	}
	writeJSON(w, http.StatusOK, FiltersResponse{
		Zones:    table.UniqueValues(model.ColZone),
		Vehicles: table.UniqueValues(model.ColVehicle),
		Methods:  methods,
	})
}

// Table godoc
// @Summary Fetch the raw table
// @Description Returns the loaded table, optionally filtered by zone and vehicle type.
// @Tags dashboard
// @Produce json
// @Param zones query string false "Comma-separated zone inclusion set"
// @Param vehicles query string false "Comma-separated vehicle type inclusion set"
// @Success 200 {object} model.Table
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/table [get]
func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	table, err := h.Loader.Load(r.Context(), h.Loc())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, engine.ApplyFilter(table, parseSelection(r)))
}

// Refresh godoc
// @Summary Force a reload
// @Description Drops the cached table and refetches the range immediately.
// @Tags admin
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	table, err := h.Loader.Refresh(r.Context(), h.Loc())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RefreshResponse{
		Status:     "ok",
		Rows:       table.Len(),
		Generation: h.Loader.Generation(),
	})
}

// Refreshes godoc
// @Summary List recent reloads
// @Description Returns the most recent reload attempts, newest first.
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum entries" default(20)
// @Success 200 {array} store.Refresh
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/refreshes [get]
func (h *Handler) Refreshes(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit: want a positive integer"})
			return
		}
		limit = n
	}
	list, err := store.ListRefreshes(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if list == nil {
		list = []store.Refresh{}
	}
	writeJSON(w, http.StatusOK, list)
}
