package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/dto"
)

// AssetReaderSvc defines read operations for savings assets.
type AssetReaderSvc interface {
	GetAsset(ctx context.Context, assetID string, userID string) (*domain.Asset, error)
	ListAssets(ctx context.Context, userID string, query url.Values) (portsrepo.Page[domain.Asset], error)
}

// AssetWriterSvc defines write operations for savings assets.
type AssetWriterSvc interface {
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, assetID string, userID string) error
}

// AssetSvcFacade combines all asset-related service interfaces.
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
