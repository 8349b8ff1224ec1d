package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
)

const resultsSheet = "Results"

// sheetWriter keeps the first error of a run of cell writes.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (s *sheetWriter) set(col, row int, value any) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetCellValue(s.sheet, cell, value); err != nil {
		s.err = fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
}

// writeResultsWorkbook renders a ranked poll as a single-sheet workbook.
func writeResultsWorkbook(w io.Writer, view *domain.PollView) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(resultsSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	sw := &sheetWriter{f: f, sheet: resultsSheet}
	sw.set(1, 1, view.Title)
	sw.set(1, 2, fmt.Sprintf("Status: %s (%s)", view.Status, view.ClosedReason.String()))
	sw.set(1, 3, fmt.Sprintf("Total votes: %d", view.TotalVotes))

	headers := []string{"Rank", "Nomination", "Manager", "Votes", "Total score", "Average"}
	for i, header := range headers {
		sw.set(i+1, 5, header)
	}

	for i, n := range view.Nominations {
		row := i + 6
		sw.set(1, row, i+1)
		sw.set(2, row, n.Name)
		sw.set(3, row, n.Manager)
		if n.Stats != nil {
			sw.set(4, row, n.Stats.VoteCount)
			sw.set(5, row, n.Stats.TotalScore)
			sw.set(6, row, n.Stats.Average)
		}
	}
	if sw.err != nil {
		return sw.err
	}

	return f.Write(w)
}

// ExportResults godoc
// @Summary      Exports poll results
// @Description  Ranked results of a closed poll as an xlsx workbook.
// @Tags         polls
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  int  true  "Poll ID"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse  "Poll still open"
// @Router       /polls/{id}/results/export [get]
func (h *PollHandler) ExportResults(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", domain.ErrInvalidPollID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view, err := h.service.Results(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := writeResultsWorkbook(&buf, view); err != nil {
		writeServiceError(w, r, fmt.Errorf("failed to write workbook: %w", err))
		return
	}

	fileName := fmt.Sprintf("poll_%d_results_%s.xlsx", view.ID, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	w.Write(buf.Bytes())
}
