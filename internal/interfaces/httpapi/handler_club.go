package httpapi

import (
	"net/http"
)

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	clubs, err := h.clubService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, clubToDTO(c))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	id, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get club failed", "club_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, clubToDTO(item))
}

type clubCreatedBody struct {
	Message string `json:"message"`
	ClubID  int64  `json:"club_id"`
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	var req clubRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.clubService.Create(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "create club failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, clubCreatedBody{Message: "Club created successfully", ClubID: id})
}

func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClub")
	defer span.End()

	id, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req clubRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.clubService.Update(ctx, req.toEdit(id)); err != nil {
		h.logger.WarnContext(ctx, "update club failed", "club_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeMessage(ctx, w, http.StatusOK, "Club updated successfully")
}

func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClub")
	defer span.End()

	id, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.clubService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete club failed", "club_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeMessage(ctx, w, http.StatusOK, "Club deleted successfully")
}
