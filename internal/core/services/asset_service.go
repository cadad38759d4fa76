package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_tracker/internal/core/ports/services"
	"github.com/SscSPs/asset_tracker/internal/dto"
)

type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

func NewAssetService(repo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: repo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.Asset, error) {
	asset, err := domain.NewAsset(userID, req.ToInput(), userID)
	if err != nil {
		return nil, err
	}

	if err := s.assetRepo.Add(ctx, asset); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to save asset", slog.String("asset_id", asset.AssetID))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.LogInfo(ctx, "Asset created",
		slog.String("asset_id", asset.AssetID),
		slog.String("kind", string(asset.Kind)),
		slog.Bool("has_target", asset.Target != nil))
	return &asset, nil
}

func (s *assetService) GetAsset(ctx context.Context, assetID string, userID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		s.logIfUnexpected(ctx, err, "Failed to find asset", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("asset %s: %w", assetID, err)
	}
	if err := s.AuthorizeOwner(ctx, asset.UserID, userID, "asset", assetID); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, userID string, query url.Values) (portsrepo.Page[domain.Asset], error) {
	params, err := assetListSchema.Parse(query)
	if err != nil {
		return portsrepo.Page[domain.Asset]{}, err
	}
	spec := assetListSchema.Builder(params).Equal("user_id", userID).Build()

	page, err := s.assetRepo.PaginatedList(ctx, spec)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets", slog.String("user_id", userID))
		return portsrepo.Page[domain.Asset]{}, fmt.Errorf("failed to list assets: %w", err)
	}
	return page, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.Asset, error) {
	existing, err := s.GetAsset(ctx, assetID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := domain.UpdateAsset(*existing, req.ToPatch(), userID)
	if err != nil {
		return nil, err
	}
	if err := s.assetRepo.Update(ctx, assetID, updated); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to update asset", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	s.LogInfo(ctx, "Asset updated",
		slog.String("asset_id", assetID),
		slog.String("status", string(updated.Status())))
	return &updated, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID string, userID string) error {
	existing, err := s.GetAsset(ctx, assetID, userID)
	if err != nil {
		return err
	}

	deleted := domain.MarkAssetDeleted(*existing, userID)
	if err := s.assetRepo.Remove(ctx, assetID, userID, *deleted.DeletedAt); err != nil {
		s.logIfUnexpected(ctx, err, "Failed to delete asset", slog.String("asset_id", assetID))
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", assetID))
	return nil
}
