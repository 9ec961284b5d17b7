package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/ad"
)

// ListAds serves the creatives of one page slot.
func (h *Handler) ListAds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAds")
	defer span.End()

	query := r.URL.Query()
	page := query.Get("page")
	sizeType := query.Get("sizeType")

	creatives, err := h.adService.Serve(ctx, page, sizeType)
	if err != nil {
		h.logger.WarnContext(ctx, "serve ads failed", "page", page, "size_type", sizeType, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, creativesToDTO(ctx, creatives))
}

func (h *Handler) ListAdCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAdCampaigns")
	defer span.End()

	campaigns, err := h.adService.ListCampaigns(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list ad campaigns failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]adCampaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, adCampaignToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAdCampaign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdCampaign")
	defer span.End()

	campaignID := strings.TrimSpace(r.PathValue("campaignID"))
	item, err := h.adService.GetCampaign(ctx, campaignID)
	if err != nil {
		h.logger.WarnContext(ctx, "get ad campaign failed", "campaign_id", campaignID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, adCampaignToDTO(item))
}

func (h *Handler) CreateAdCampaign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAdCampaign")
	defer span.End()

	var req adCampaignRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := campaignFromRequest(strings.TrimSpace(req.ID), req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.adService.CreateCampaign(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create ad campaign failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, adCampaignToDTO(item))
}

func (h *Handler) UpdateAdCampaign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAdCampaign")
	defer span.End()

	var req adCampaignRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	campaignID := strings.TrimSpace(r.PathValue("campaignID"))
	input, err := campaignFromRequest(campaignID, req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.adService.UpdateCampaign(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update ad campaign failed", "campaign_id", campaignID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, adCampaignToDTO(item))
}

func (h *Handler) DeleteAdCampaign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAdCampaign")
	defer span.End()

	campaignID := strings.TrimSpace(r.PathValue("campaignID"))
	if err := h.adService.DeleteCampaign(ctx, campaignID); err != nil {
		h.logger.WarnContext(ctx, "delete ad campaign failed", "campaign_id", campaignID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": campaignID})
}

func (h *Handler) ListAdImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAdImages")
	defer span.End()

	campaignID := strings.TrimSpace(r.PathValue("campaignID"))
	images, err := h.adService.ListImages(ctx, campaignID)
	if err != nil {
		h.logger.WarnContext(ctx, "list ad images failed", "campaign_id", campaignID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]adImageDTO, 0, len(images))
	for _, img := range images {
		items = append(items, adImageToDTO(img))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateAdImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAdImage")
	defer span.End()

	var req adImageRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	campaignID := strings.TrimSpace(r.PathValue("campaignID"))
	input := imageFromRequest(strings.TrimSpace(req.ID), req)
	input.CampaignID = campaignID

	item, err := h.adService.CreateImage(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create ad image failed", "campaign_id", campaignID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, adImageToDTO(item))
}

// UpdateAdImage keeps the current campaign unless the body moves the image.
func (h *Handler) UpdateAdImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAdImage")
	defer span.End()

	var req adImageRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	imageID := strings.TrimSpace(r.PathValue("imageID"))
	input := imageFromRequest(imageID, req)
	if input.CampaignID == "" {
		current, err := h.adService.GetImage(ctx, imageID)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.CampaignID = current.CampaignID
	}

	item, err := h.adService.UpdateImage(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update ad image failed", "image_id", imageID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, adImageToDTO(item))
}

func (h *Handler) DeleteAdImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAdImage")
	defer span.End()

	imageID := strings.TrimSpace(r.PathValue("imageID"))
	if err := h.adService.DeleteImage(ctx, imageID); err != nil {
		h.logger.WarnContext(ctx, "delete ad image failed", "image_id", imageID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": imageID})
}

func campaignFromRequest(campaignID string, req adCampaignRequest) (ad.Campaign, error) {
	start, err := parseOptionalTime("startDate", req.StartDate)
	if err != nil {
		return ad.Campaign{}, err
	}
	end, err := parseOptionalTime("endDate", req.EndDate)
	if err != nil {
		return ad.Campaign{}, err
	}

	return ad.Campaign{
		ID:        campaignID,
		Name:      strings.TrimSpace(req.Name),
		IsActive:  boolOrDefault(req.IsActive, true),
		Priority:  req.Priority,
		StartDate: start,
		EndDate:   end,
		ClickURL:  strings.TrimSpace(req.ClickURL),
	}, nil
}

func imageFromRequest(imageID string, req adImageRequest) ad.Image {
	return ad.Image{
		ID:            imageID,
		CampaignID:    strings.TrimSpace(req.CampaignID),
		IsActive:      boolOrDefault(req.IsActive, true),
		DisplayOrder:  req.DisplayOrder,
		SizeType:      ad.SizeType(strings.ToLower(strings.TrimSpace(req.SizeType))),
		TargetPages:   req.TargetPages,
		ImageURL:      strings.TrimSpace(req.ImageURL),
		ImageURLLarge: strings.TrimSpace(req.ImageURLLarge),
		ImageURLSmall: strings.TrimSpace(req.ImageURLSmall),
		AltTextEN:     strings.TrimSpace(req.AltTextEN),
		AltTextAM:     strings.TrimSpace(req.AltTextAM),
		LinkURL:       strings.TrimSpace(req.LinkURL),
	}
}
