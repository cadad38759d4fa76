package handlers

import (
	"sync"

	"github.com/SscSPs/asset_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding rules used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("tokensymbol", func(fl validator.FieldLevel) bool {
			return domain.ValidateTokenSymbol(fl.Field().String())
		})
	})
}
