package domain

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxTokenDecimals   = 18
	maxTokenNameLength = 100
)

var tokenSymbolPattern = regexp.MustCompile(`^[A-Z0-9]{1,20}$`)

// ValidateTokenSymbol reports whether symbol, once uppercased, is 1-20 letters or digits.
func ValidateTokenSymbol(symbol string) bool {
	return tokenSymbolPattern.MatchString(strings.ToUpper(symbol))
}

// PortfolioHolding registers a token as trackable within a portfolio.
// It carries metadata only, never a balance.
type PortfolioHolding struct {
	HoldingID     string  `json:"holdingID"`
	PortfolioID   string  `json:"portfolioID"`
	TokenSymbol   string  `json:"tokenSymbol"`
	TokenName     string  `json:"tokenName"`
	Decimals      int     `json:"decimals"`
	LogoURL       *string `json:"logoURL,omitempty"`
	IsStablecoin  bool    `json:"isStablecoin"`
	StablecoinPeg *string `json:"stablecoinPeg,omitempty"` // e.g. "USD"
	AuditFields
}

// HoldingInput is the raw token data used to register a holding.
type HoldingInput struct {
	PortfolioID   string
	TokenSymbol   string
	TokenName     string
	Decimals      int
	LogoURL       *string
	IsStablecoin  bool
	StablecoinPeg *string
}

// HoldingPatch lists the fields an update may change; nil means unchanged.
type HoldingPatch struct {
	TokenSymbol   *string
	TokenName     *string
	Decimals      *int
	LogoURL       *string
	IsStablecoin  *bool
	StablecoinPeg *string
}

func (p HoldingPatch) IsEmpty() bool {
	return p.TokenSymbol == nil && p.TokenName == nil && p.Decimals == nil &&
		p.LogoURL == nil && p.IsStablecoin == nil && p.StablecoinPeg == nil
}

// NewPortfolioHolding validates in and registers the token with a fresh identity.
func NewPortfolioHolding(in HoldingInput, createdBy string) (PortfolioHolding, error) {
	var errs fieldErrors
	if in.PortfolioID == "" {
		errs.add("portfolioID", "portfolio is required")
	}
	validateSymbol(in.TokenSymbol, &errs)
	validateTokenName(in.TokenName, &errs)
	validateDecimals(in.Decimals, &errs)
	if in.LogoURL != nil {
		validateLogoURL(*in.LogoURL, &errs)
	}
	if err := errs.err("failed to create portfolio holding"); err != nil {
		return PortfolioHolding{}, err
	}

	return PortfolioHolding{
		HoldingID:     uuid.NewString(),
		PortfolioID:   in.PortfolioID,
		TokenSymbol:   strings.ToUpper(in.TokenSymbol),
		TokenName:     strings.TrimSpace(in.TokenName),
		Decimals:      in.Decimals,
		LogoURL:       in.LogoURL,
		IsStablecoin:  in.IsStablecoin,
		StablecoinPeg: normalizePeg(in.StablecoinPeg),
		AuditFields:   newAuditFields(createdBy, time.Now()),
	}, nil
}

// UpdatePortfolioHolding merges patch onto existing. Only the fields present in
// the patch are validated again.
func UpdatePortfolioHolding(existing PortfolioHolding, patch HoldingPatch, updatedBy string) (PortfolioHolding, error) {
	var errs fieldErrors
	if patch.IsEmpty() {
		errs.add("patch", "at least one field must be provided")
		return PortfolioHolding{}, errs.err("failed to update portfolio holding")
	}

	next := existing
	if patch.TokenSymbol != nil {
		validateSymbol(*patch.TokenSymbol, &errs)
		next.TokenSymbol = strings.ToUpper(*patch.TokenSymbol)
	}
	if patch.TokenName != nil {
		validateTokenName(*patch.TokenName, &errs)
		next.TokenName = strings.TrimSpace(*patch.TokenName)
	}
	if patch.Decimals != nil {
		validateDecimals(*patch.Decimals, &errs)
		next.Decimals = *patch.Decimals
	}
	if patch.LogoURL != nil {
		validateLogoURL(*patch.LogoURL, &errs)
		next.LogoURL = patch.LogoURL
	}
	if patch.IsStablecoin != nil {
		next.IsStablecoin = *patch.IsStablecoin
	}
	if patch.StablecoinPeg != nil {
		next.StablecoinPeg = normalizePeg(patch.StablecoinPeg)
	}
	if err := errs.err("failed to update portfolio holding"); err != nil {
		return PortfolioHolding{}, err
	}

	next.AuditFields = existing.AuditFields.touched(updatedBy, time.Now())
	return next, nil
}

// MarkHoldingDeleted soft-deletes the holding. Transactions that reference its
// symbol stay valid and queryable.
func MarkHoldingDeleted(existing PortfolioHolding, deletedBy string) PortfolioHolding {
	next := existing
	next.AuditFields = existing.AuditFields.deleted(deletedBy, time.Now())
	return next
}

func (h PortfolioHolding) IsStablecoinHolding() bool {
	return h.IsStablecoin
}

// Peg returns the peg currency, only for holdings flagged as stablecoins.
func (h PortfolioHolding) Peg() (string, bool) {
	if !h.IsStablecoin || h.StablecoinPeg == nil {
		return "", false
	}
	return *h.StablecoinPeg, true
}

// TokenIdentifier is the key used to look the token up with the pricing provider.
// It assumes symbols are globally unique across chains and providers.
func (h PortfolioHolding) TokenIdentifier() string {
	return strings.ToLower(h.TokenSymbol)
}

func validateSymbol(symbol string, errs *fieldErrors) {
	if !ValidateTokenSymbol(symbol) {
		errs.add("tokenSymbol", "must be 1-20 uppercase letters or digits")
	}
}

func validateTokenName(name string, errs *fieldErrors) {
	name = strings.TrimSpace(name)
	if name == "" {
		errs.add("tokenName", "is required")
	} else if len(name) > maxTokenNameLength {
		errs.add("tokenName", "must be at most 100 characters")
	}
}

func validateDecimals(decimals int, errs *fieldErrors) {
	if decimals < 0 || decimals > maxTokenDecimals {
		errs.add("decimals", "must be between 0 and 18")
	}
}

func validateLogoURL(raw string, errs *fieldErrors) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs.add("logoURL", "must be a valid http(s) URL")
	}
}

func normalizePeg(peg *string) *string {
	if peg == nil {
		return nil
	}
	p := strings.ToUpper(strings.TrimSpace(*peg))
	if p == "" {
		return nil
	}
	return &p
}
