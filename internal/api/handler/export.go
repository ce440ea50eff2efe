package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"

	"go-freight-dashboard/internal/engine"
	"go-freight-dashboard/internal/model"
)

// ExportXLSX godoc
// @Summary Export the dashboard as a workbook
// @Description Streams an XLSX file with the filtered rows on one sheet and the Month aggregation on another.
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param zones query string false "Comma-separated zone inclusion set"
// @Param vehicles query string false "Comma-separated vehicle type inclusion set"
// @Param agg query string false "Aggregation method: average, sum, or max" default(average)
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/export.xlsx [get]
func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	method, err := model.ParseAggMethod(r.URL.Query().Get("agg"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	table, err := h.Loader.Load(r.Context(), h.Loc())
	if err != nil {
		writeError(w, err)
		return
	}
	filtered := engine.ApplyFilter(table, parseSelection(r))
	agg := engine.Aggregate(filtered, method)

	f := excelize.NewFile()
	defer f.Close()

	const rawSheet = "Raw Data"
	f.SetSheetName(f.GetSheetName(0), rawSheet)
	if err := writeSheet(f, rawSheet, filtered); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	aggSheet := method.Label() + " by Month"
	if _, err := f.NewSheet(aggSheet); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if err := writeSheet(f, aggSheet, agg); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="freight-dashboard.xlsx"`)
	if err := f.Write(w); err != nil {
		slog.Error("stream workbook", "error", err)
	}
}

// writeSheet lays a table out on a worksheet, header row first. Numeric
// columns are written as numbers so the workbook stays computable.
func writeSheet(f *excelize.File, sheet string, t *model.Table) error {
	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}
	for r, row := range t.Rows {
		for i, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return fmt.Errorf("sheet %q: %w", sheet, err)
			}
			if v, ok := row.Measure(col); ok {
				err = f.SetCellValue(sheet, cell, v)
			} else {
				err = f.SetCellValue(sheet, cell, row.Cells[col])
			}
			if err != nil {
				return fmt.Errorf("sheet %q: %w", sheet, err)
			}
		}
	}
	return nil
}
