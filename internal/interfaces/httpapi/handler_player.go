package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	roster, err := h.playerService.ListRoster(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list roster failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterEntryDTO, 0, len(roster))
	for _, e := range roster {
		items = append(items, rosterEntryDTO{
			PlayerID:      e.ID,
			FullName:      e.FullName,
			AgeCalculated: e.Age,
			Position:      string(e.Position),
			ClubID:        e.ClubID,
			ClubName:      e.ClubName,
		})
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	filter, err := parseSearchFilter(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.playerService.Search(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]searchResultDTO, 0, len(results))
	for _, p := range results {
		items = append(items, searchResultDTO{
			PlayerID:     p.ID,
			FullName:     p.FullName,
			Age:          p.Age,
			Position:     string(p.Position),
			ClubName:     p.ClubName,
			ClubTrophies: p.ClubTrophies,
			Salary:       p.Salary,
		})
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

// parseSearchFilter treats empty parameters as absent and rejects malformed numbers.
func parseSearchFilter(q url.Values) (player.SearchFilter, error) {
	filter := player.SearchFilter{
		Name:          q.Get("name"),
		NameMatchType: player.NameMatchType(q.Get("nameMatchType")),
		Position:      player.Position(q.Get("position")),
	}

	var err error
	if filter.ClubID, err = optionalInt64(q, "club_id"); err != nil {
		return player.SearchFilter{}, err
	}
	if filter.MinAge, err = optionalInt(q, "minAge"); err != nil {
		return player.SearchFilter{}, err
	}
	if filter.MaxAge, err = optionalInt(q, "maxAge"); err != nil {
		return player.SearchFilter{}, err
	}
	if filter.MinSalary, err = optionalFloat(q, "minSalary"); err != nil {
		return player.SearchFilter{}, err
	}
	if filter.MinTrophies, err = optionalInt(q, "minTrophies"); err != nil {
		return player.SearchFilter{}, err
	}
	return filter, nil
}

func optionalInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}

func optionalInt64(q url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}

func optionalFloat(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := parseFiniteFloat(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a finite number", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, playerToDTO(item))
}

type playerCreatedBody struct {
	Message  string `json:"message"`
	PlayerID int64  `json:"player_id"`
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.playerService.Create(ctx, req.toDomain(0))
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, playerCreatedBody{Message: "Player created successfully", PlayerID: id})
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req playerRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Update(ctx, req.toDomain(id)); err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeMessage(ctx, w, http.StatusOK, "Player updated successfully")
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeMessage(ctx, w, http.StatusOK, "Player deleted successfully")
}
