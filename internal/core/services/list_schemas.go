package services

import (
	"strings"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/SscSPs/asset_tracker/internal/utils/queryfilter"
)

// Listing schemas. Aliases must match the ones the pgsql repositories select with.
var (
	portfolioListSchema = queryfilter.Schema{
		Alias:            "p",
		SortColumns:      []string{"name", "created_at"},
		DefaultSort:      "created_at",
		DefaultDirection: queryfilter.Desc,
		Filters: map[string]queryfilter.Filter{
			"q": {Column: "name", Kind: queryfilter.FilterContains},
		},
	}

	transactionListSchema = queryfilter.Schema{
		Alias:            "t",
		SortColumns:      []string{"timestamp", "amount", "token_symbol", "created_at"},
		DefaultSort:      "timestamp",
		DefaultDirection: queryfilter.Desc,
		Filters: map[string]queryfilter.Filter{
			"token": {Column: "token_symbol", Kind: queryfilter.FilterExact, Normalize: strings.ToUpper},
			"type": {
				Column:    "type",
				Kind:      queryfilter.FilterList,
				Normalize: strings.ToUpper,
				Allowed: []string{
					string(domain.Buy), string(domain.Sell), string(domain.Deposit),
					string(domain.Withdrawal), string(domain.Swap),
				},
			},
			"external_id": {Column: "external_id", Kind: queryfilter.FilterExact},
			"from":        {Column: "timestamp", Kind: queryfilter.FilterFrom},
			"to":          {Column: "timestamp", Kind: queryfilter.FilterTo},
		},
		MaxPageSize: 200,
	}

	holdingListSchema = queryfilter.Schema{
		Alias:            "h",
		SortColumns:      []string{"token_symbol", "token_name", "created_at"},
		DefaultSort:      "token_symbol",
		DefaultDirection: queryfilter.Asc,
		Filters: map[string]queryfilter.Filter{
			"q":      {Column: "token_name", Kind: queryfilter.FilterContains},
			"symbol": {Column: "token_symbol", Kind: queryfilter.FilterList, Normalize: strings.ToUpper},
		},
	}

	assetListSchema = queryfilter.Schema{
		Alias:            "a",
		SortColumns:      []string{"name", "kind", "current_value", "created_at"},
		DefaultSort:      "created_at",
		DefaultDirection: queryfilter.Desc,
		Filters: map[string]queryfilter.Filter{
			"q": {Column: "name", Kind: queryfilter.FilterContains},
			"kind": {
				Column:    "kind",
				Kind:      queryfilter.FilterList,
				Normalize: strings.ToUpper,
				Allowed: []string{
					string(domain.AssetBankAccount), string(domain.AssetCash), string(domain.AssetCrypto),
					string(domain.AssetStocks), string(domain.AssetRealEstate), string(domain.AssetOther),
				},
			},
		},
	}

	goalListSchema = queryfilter.Schema{
		Alias:            "g",
		SortColumns:      []string{"name", "target_value", "created_at"},
		DefaultSort:      "created_at",
		DefaultDirection: queryfilter.Desc,
		Filters: map[string]queryfilter.Filter{
			"q": {Column: "name", Kind: queryfilter.FilterContains},
		},
	}
)
