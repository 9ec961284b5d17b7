package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/matchday/internal/domain/ad"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type AdRepository struct {
	db *sqlx.DB
}

var adServableColumns = []string{
	"i.public_id",
	"i.campaign_public_id",
	"i.is_active",
	"i.display_order",
	"i.size_type",
	"i.target_pages",
	"i.image_url",
	"i.image_url_large",
	"i.image_url_small",
	"i.alt_text_en",
	"i.alt_text_am",
	"i.link_url",
	"c.name AS campaign_name",
	"c.is_active AS campaign_is_active",
	"c.priority AS campaign_priority",
	"c.start_date AS campaign_start_date",
	"c.end_date AS campaign_end_date",
	"c.click_url AS campaign_click_url",
}

func NewAdRepository(db *sqlx.DB) *AdRepository {
	return &AdRepository{db: db}
}

func (r *AdRepository) ListCampaigns(ctx context.Context) ([]ad.Campaign, error) {
	query, args, err := qb.Select("*").From("ad_campaigns").
		Where(qb.IsNull("deleted_at")).
		OrderBy("priority DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select ad campaigns query: %w", err)
	}

	var rows []adCampaignTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select ad campaigns: %w", err)
	}

	out := make([]ad.Campaign, 0, len(rows))
	for _, row := range rows {
		out = append(out, campaignFromRow(row))
	}

	return out, nil
}

func (r *AdRepository) GetCampaign(ctx context.Context, campaignID string) (ad.Campaign, bool, error) {
	query, args, err := qb.Select("*").From("ad_campaigns").
		Where(
			qb.Eq("public_id", campaignID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return ad.Campaign{}, false, fmt.Errorf("build get ad campaign query: %w", err)
	}

	var row adCampaignTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return ad.Campaign{}, false, nil
		}
		return ad.Campaign{}, false, fmt.Errorf("get ad campaign: %w", err)
	}

	return campaignFromRow(row), true, nil
}

func (r *AdRepository) CreateCampaign(ctx context.Context, item ad.Campaign) error {
	query, args, err := qb.InsertModel("ad_campaigns", campaignWriteFromDomain(item), "")
	if err != nil {
		return fmt.Errorf("build create ad campaign query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create ad campaign: %w", err)
	}

	return nil
}

func (r *AdRepository) UpdateCampaign(ctx context.Context, item ad.Campaign) error {
	query, args, err := qb.UpdateModel("ad_campaigns", campaignWriteFromDomain(item), "public_id")
	if err != nil {
		return fmt.Errorf("build update ad campaign query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update ad campaign: %w", err)
	}
	return expectAffected(result, "update ad campaign")
}

func (r *AdRepository) DeleteCampaign(ctx context.Context, campaignID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx soft delete ad campaign: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteCampaignQuery, deleteCampaignArgs, err := qb.Update("ad_campaigns").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", campaignID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete ad campaign query: %w", err)
	}
	result, err := tx.ExecContext(ctx, deleteCampaignQuery, deleteCampaignArgs...)
	if err != nil {
		return fmt.Errorf("soft delete ad campaign: %w", err)
	}
	if err := expectAffected(result, "soft delete ad campaign"); err != nil {
		return err
	}

	deleteImagesQuery, deleteImagesArgs, err := qb.Update("ad_images").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("campaign_public_id", campaignID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete ad images query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteImagesQuery, deleteImagesArgs...); err != nil {
		return fmt.Errorf("soft delete ad images: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit soft delete ad campaign: %w", err)
	}
	return nil
}

func (r *AdRepository) ListImagesByCampaign(ctx context.Context, campaignID string) ([]ad.Image, error) {
	query, args, err := qb.Select("*").From("ad_images").
		Where(
			qb.Eq("campaign_public_id", campaignID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("display_order", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select ad images by campaign query: %w", err)
	}

	var rows []adImageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select ad images by campaign: %w", err)
	}

	out := make([]ad.Image, 0, len(rows))
	for _, row := range rows {
		out = append(out, imageFromRow(row))
	}

	return out, nil
}

func (r *AdRepository) GetImage(ctx context.Context, imageID string) (ad.Image, bool, error) {
	query, args, err := qb.Select("*").From("ad_images").
		Where(
			qb.Eq("public_id", imageID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return ad.Image{}, false, fmt.Errorf("build get ad image query: %w", err)
	}

	var row adImageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return ad.Image{}, false, nil
		}
		return ad.Image{}, false, fmt.Errorf("get ad image: %w", err)
	}

	return imageFromRow(row), true, nil
}

func (r *AdRepository) CreateImage(ctx context.Context, item ad.Image) error {
	query, args, err := qb.InsertModel("ad_images", imageWriteFromDomain(item), "")
	if err != nil {
		return fmt.Errorf("build create ad image query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create ad image: %w", err)
	}

	return nil
}

func (r *AdRepository) UpdateImage(ctx context.Context, item ad.Image) error {
	query, args, err := qb.UpdateModel("ad_images", imageWriteFromDomain(item), "public_id")
	if err != nil {
		return fmt.Errorf("build update ad image query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update ad image: %w", err)
	}
	return expectAffected(result, "update ad image")
}

func (r *AdRepository) DeleteImage(ctx context.Context, imageID string) error {
	query, args, err := qb.Update("ad_images").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", imageID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete ad image query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete ad image: %w", err)
	}
	return expectAffected(result, "soft delete ad image")
}

// ListServable loads active images joined with their live campaign in one
// round trip. Schedule and page filtering stay in ad.Select.
func (r *AdRepository) ListServable(ctx context.Context) ([]ad.Image, error) {
	query, args, err := adServableSelectBuilder().ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select servable ads query: %w", err)
	}

	var rows []adServableRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select servable ads: %w", err)
	}

	out := make([]ad.Image, 0, len(rows))
	for _, row := range rows {
		out = append(out, servableFromRow(row))
	}

	return out, nil
}

func adServableSelectBuilder() *qb.SelectBuilder {
	return qb.Select(adServableColumns...).
		From("ad_images i").
		Join("ad_campaigns c", "c.public_id = i.campaign_public_id AND c.deleted_at IS NULL").
		Where(
			qb.Eq("i.is_active", true),
			qb.IsNull("i.deleted_at"),
		).
		OrderBy("c.priority DESC", "i.display_order", "i.id")
}

func campaignFromRow(row adCampaignTableModel) ad.Campaign {
	return ad.Campaign{
		ID:        row.PublicID,
		Name:      row.Name,
		IsActive:  row.IsActive,
		Priority:  row.Priority,
		StartDate: utcPtr(row.StartDate),
		EndDate:   utcPtr(row.EndDate),
		ClickURL:  row.ClickURL,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func campaignWriteFromDomain(item ad.Campaign) adCampaignWriteModel {
	updatedAt := item.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return adCampaignWriteModel{
		PublicID:  item.ID,
		Name:      item.Name,
		IsActive:  item.IsActive,
		Priority:  item.Priority,
		StartDate: utcPtr(item.StartDate),
		EndDate:   utcPtr(item.EndDate),
		ClickURL:  item.ClickURL,
		UpdatedAt: updatedAt.UTC(),
	}
}

func imageFromRow(row adImageTableModel) ad.Image {
	return ad.Image{
		ID:            row.PublicID,
		CampaignID:    row.CampaignID,
		IsActive:      row.IsActive,
		DisplayOrder:  row.DisplayOrder,
		SizeType:      ad.SizeType(row.SizeType),
		TargetPages:   []string(row.TargetPages),
		ImageURL:      row.ImageURL,
		ImageURLLarge: row.ImageURLLarge,
		ImageURLSmall: row.ImageURLSmall,
		AltTextEN:     row.AltTextEN,
		AltTextAM:     row.AltTextAM,
		LinkURL:       row.LinkURL,
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}
}

func imageWriteFromDomain(item ad.Image) adImageWriteModel {
	updatedAt := item.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	pages := item.TargetPages
	if pages == nil {
		pages = []string{}
	}
	return adImageWriteModel{
		PublicID:      item.ID,
		CampaignID:    item.CampaignID,
		IsActive:      item.IsActive,
		DisplayOrder:  item.DisplayOrder,
		SizeType:      string(item.SizeType),
		TargetPages:   pq.StringArray(pages),
		ImageURL:      item.ImageURL,
		ImageURLLarge: item.ImageURLLarge,
		ImageURLSmall: item.ImageURLSmall,
		AltTextEN:     item.AltTextEN,
		AltTextAM:     item.AltTextAM,
		LinkURL:       item.LinkURL,
		UpdatedAt:     updatedAt.UTC(),
	}
}

func servableFromRow(row adServableRow) ad.Image {
	return ad.Image{
		ID:            row.PublicID,
		CampaignID:    row.CampaignID,
		IsActive:      row.IsActive,
		DisplayOrder:  row.DisplayOrder,
		SizeType:      ad.SizeType(row.SizeType),
		TargetPages:   []string(row.TargetPages),
		ImageURL:      row.ImageURL,
		ImageURLLarge: row.ImageURLLarge,
		ImageURLSmall: row.ImageURLSmall,
		AltTextEN:     row.AltTextEN,
		AltTextAM:     row.AltTextAM,
		LinkURL:       row.LinkURL,
		Campaign: &ad.Campaign{
			ID:        row.CampaignID,
			Name:      row.CampaignName,
			IsActive:  row.CampaignIsActive,
			Priority:  row.CampaignPriority,
			StartDate: utcPtr(row.CampaignStartDate),
			EndDate:   utcPtr(row.CampaignEndDate),
			ClickURL:  row.CampaignClickURL,
		},
	}
}
