package httpapi

import "net/http"

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDetailDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchDetailDTO{
			MatchID:     m.ID,
			MatchType:   string(m.Type),
			MatchDate:   formatDate(m.Date),
			HomeTeam:    m.HomeTeam,
			AwayTeam:    m.AwayTeam,
			HomeScore:   m.HomeScore,
			AwayScore:   m.AwayScore,
			StadiumName: m.StadiumName,
		})
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListStadiums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStadiums")
	defer span.End()

	stadiums, err := h.matchService.ListStadiums(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list stadiums failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]stadiumDTO, 0, len(stadiums))
	for _, s := range stadiums {
		items = append(items, stadiumToDTO(s))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, matchToDTO(item))
}

type matchCreatedBody struct {
	Message string `json:"message"`
	MatchID int64  `json:"match_id"`
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.matchService.Create(ctx, req.toDomain(0))
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "home_club_id", req.HomeClubID, "away_club_id", req.AwayClubID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, matchCreatedBody{Message: "Match scheduled successfully", MatchID: id})
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req matchRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Update(ctx, req.toDomain(id)); err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeMessage(ctx, w, http.StatusOK, "Match updated successfully")
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeMessage(ctx, w, http.StatusOK, "Match deleted successfully")
}
