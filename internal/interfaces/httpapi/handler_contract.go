package httpapi

import "net/http"

func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContracts")
	defer span.End()

	contracts, err := h.contractService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list contracts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]contractDTO, 0, len(contracts))
	for _, c := range contracts {
		items = append(items, contractToDTO(c))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContract")
	defer span.End()

	id, err := pathID(r, "contractID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.contractService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get contract failed", "contract_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, contractToDTO(item))
}

type contractCreatedBody struct {
	Message    string `json:"message"`
	ContractID int64  `json:"contract_id"`
}

func (h *Handler) CreateContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateContract")
	defer span.End()

	var req contractRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.contractService.Create(ctx, req.toDomain(0))
	if err != nil {
		h.logger.WarnContext(ctx, "create contract failed", "player_id", req.PlayerID, "club_id", req.ClubID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, contractCreatedBody{Message: "Contract created successfully", ContractID: id})
}

func (h *Handler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateContract")
	defer span.End()

	id, err := pathID(r, "contractID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req contractRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.contractService.Update(ctx, req.toDomain(id)); err != nil {
		h.logger.WarnContext(ctx, "update contract failed", "contract_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeMessage(ctx, w, http.StatusOK, "Contract updated successfully")
}

func (h *Handler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteContract")
	defer span.End()

	id, err := pathID(r, "contractID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.contractService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete contract failed", "contract_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeMessage(ctx, w, http.StatusOK, "Contract deleted successfully")
}
