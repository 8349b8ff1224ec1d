package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/vncsmyrnk/nominate/internal/core/domain"
	"github.com/vncsmyrnk/nominate/internal/core/ports"
)

// VoterIDHeader carries the opaque voter token a browser keeps in local
// storage. It is never trusted for anything beyond withdrawing one's own
// votes.
const VoterIDHeader = "X-Voter-ID"

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	NominationID int64 `json:"nomination_id"`
	Score        *int  `json:"score"`
}

// VoteOnPoll godoc
// @Summary      Votes on a nomination
// @Description  Stores a 1-10 score for a nomination of an open poll. A voter token is minted and returned in X-Voter-ID when the request carries none.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id          path      int          true   "Poll ID"
// @Param        vote        body      voteRequest  true   "Vote"
// @Param        X-Voter-ID  header    string       false  "Voter token"
// @Success      201  {object}  domain.Vote
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse  "Poll closed"
// @Router       /polls/{id}/votes [post]
func (h *VoteHandler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := idParam(r, "id", domain.ErrInvalidPollID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Score == nil {
		writeServiceError(w, r, domain.ErrInvalidScore)
		return
	}

	voterID := strings.TrimSpace(r.Header.Get(VoterIDHeader))
	if voterID == "" {
		voterID = uuid.NewString()
	}

	vote, err := h.service.Vote(r.Context(), ports.VoteInput{
		PollID:       pollID,
		NominationID: req.NominationID,
		Score:        *req.Score,
		VoterID:      voterID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set(VoterIDHeader, voterID)
	writeJSON(w, http.StatusCreated, vote)
}

// Unvote godoc
// @Summary      Withdraws votes
// @Description  Removes the caller's votes on a nomination while the poll is open.
// @Tags         votes
// @Param        id            path    int     true  "Poll ID"
// @Param        nominationID  path    int     true  "Nomination ID"
// @Param        X-Voter-ID    header  string  true  "Voter token"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse  "Poll closed"
// @Router       /polls/{id}/votes/{nominationID} [delete]
func (h *VoteHandler) Unvote(w http.ResponseWriter, r *http.Request) {
	pollID, err := idParam(r, "id", domain.ErrInvalidPollID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	nominationID, err := idParam(r, "nominationID", domain.ErrInvalidNominationID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	voterID := strings.TrimSpace(r.Header.Get(VoterIDHeader))
	if err := h.service.Unvote(r.Context(), pollID, nominationID, voterID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
