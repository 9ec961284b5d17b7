package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/news"
	"github.com/riskibarqy/matchday/internal/usecase"
)

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	query := r.URL.Query()
	limit := 0
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be positive integer", usecase.ErrInvalidInput))
			return
		}
		limit = v
	}
	leagueID := strings.TrimSpace(query.Get("league"))

	articles, err := h.newsService.ListPublished(ctx, limit, leagueID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list news failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]newsDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, newsToDTO(a, false))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetNewsBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNewsBySlug")
	defer span.End()

	slug := strings.TrimSpace(r.PathValue("slug"))
	item, err := h.newsService.GetBySlug(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "get news failed", "slug", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(item, true))
}

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNews")
	defer span.End()

	var req newsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := newsFromRequest(strings.TrimSpace(req.ID), req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.newsService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, newsToDTO(item, true))
}

func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateNews")
	defer span.End()

	var req newsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	articleID := strings.TrimSpace(r.PathValue("articleID"))
	input, err := newsFromRequest(articleID, req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.newsService.Update(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update news failed", "article_id", articleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(item, true))
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNews")
	defer span.End()

	articleID := strings.TrimSpace(r.PathValue("articleID"))
	if err := h.newsService.Delete(ctx, articleID); err != nil {
		h.logger.WarnContext(ctx, "delete news failed", "article_id", articleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": articleID})
}

func newsFromRequest(articleID string, req newsRequest) (news.Article, error) {
	publishedAt, err := parseOptionalTime("publishedAt", req.PublishedAt)
	if err != nil {
		return news.Article{}, err
	}

	return news.Article{
		ID:          articleID,
		Slug:        strings.TrimSpace(req.Slug),
		Title:       strings.TrimSpace(req.Title),
		Summary:     strings.TrimSpace(req.Summary),
		Body:        req.Body,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		LeagueID:    strings.TrimSpace(req.LeagueID),
		IsPublished: req.IsPublished,
		PublishedAt: publishedAt,
	}, nil
}
