package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type nominationRequest struct {
	Name    string `json:"name"`
	Manager string `json:"manager"`
}

type createPollRequest struct {
	Title       string              `json:"title"`
	Nominations []nominationRequest `json:"nominations"`
	MaxVotes    *int64              `json:"max_votes"`
	ExpiresAt   string              `json:"expires_at"`
}

// Layouts accepted for expires_at. The second one is what an HTML
// datetime-local input submits; it is read as UTC.
var expiryLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseExpiry(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, domain.ErrInvalidExpiry
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Description  Creates a poll with its nominations. Nominations without a name or a manager are skipped.
// @Tags         polls
// @Accept       json
// @Produce      json
// @Param        poll  body      createPollRequest  true  "Poll to create"
// @Success      201   {object}  domain.PollView
// @Failure      400   {object}  errorResponse
// @Router       /polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expiresAt, err := parseExpiry(req.ExpiresAt)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	input := ports.CreatePollInput{
		Title:     req.Title,
		MaxVotes:  req.MaxVotes,
		ExpiresAt: expiresAt,
	}
	for _, n := range req.Nominations {
		input.Nominations = append(input.Nominations, ports.NominationInput{Name: n.Name, Manager: n.Manager})
	}

	view, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// ListPolls godoc
// @Summary      Lists polls
// @Description  Lists every poll, newest first.
// @Tags         polls
// @Produce      json
// @Success      200  {array}  domain.Poll
// @Router       /polls [get]
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.ListPolls(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, polls)
}

// GetPoll godoc
// @Summary      Gets a poll
// @Description  Returns the poll with its resolved status and total votes. Nominations are ranked by score once the poll is closed and by vote count while it is open.
// @Tags         polls
// @Produce      json
// @Param        id   path      int  true  "Poll ID"
// @Success      200  {object}  domain.PollView
// @Failure      404  {object}  errorResponse
// @Router       /polls/{id} [get]
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", domain.ErrInvalidPollID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view, err := h.service.GetPoll(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// GetResults godoc
// @Summary      Gets poll results
// @Description  Ranked results: average score, then total score, then name.
// @Tags         polls
// @Produce      json
// @Param        id   path      int  true  "Poll ID"
// @Success      200  {object}  domain.PollView
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse  "Poll still open"
// @Router       /polls/{id}/results [get]
func (h *PollHandler) GetResults(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, view)
}

// ClosePoll godoc
// @Summary      Closes a poll
// @Description  Closes the poll manually. Closing is permanent; closing twice is a no-op.
// @Tags         polls
// @Produce      json
// @Param        id   path      int  true  "Poll ID"
// @Success      200  {object}  domain.PollView
// @Failure      404  {object}  errorResponse
// @Router       /polls/{id}/close [post]
func (h *PollHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", domain.ErrInvalidPollID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	view, err := h.service.Close(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// DeletePoll godoc
// @Summary      Deletes a poll
// @Description  Deletes the poll together with its nominations and votes.
// @Tags         polls
// @Param        id   path      int  true  "Poll ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /polls/{id} [delete]
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", domain.ErrInvalidPollID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetNomination godoc
// @Summary      Gets a nomination
// @Description  Returns a nomination with its current vote count.
// @Tags         nominations
// @Produce      json
// @Param        id   path      int  true  "Nomination ID"
// @Success      200  {object}  domain.Nomination
// @Failure      404  {object}  errorResponse
// @Router       /nominations/{id} [get]
func (h *PollHandler) GetNomination(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id", domain.ErrInvalidNominationID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	nomination, err := h.service.GetNomination(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nomination)
}
