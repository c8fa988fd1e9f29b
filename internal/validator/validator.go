// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"brokerfolio/internal/report"
)

// tickerRegex accepts exchange symbols such as PETR4, HGLG11 or BRK.B.
var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9.\-]{0,19}$`)

// CivilDateLayout is the wire format of calendar dates.
const CivilDateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("operation", validateOperation)
		_ = v.RegisterValidation("period", validatePeriod)
		_ = v.RegisterValidation("ticker", validateTicker)
		_ = v.RegisterValidation("civil_date", validateCivilDate)
	}
}

func validateOperation(fl validator.FieldLevel) bool {
	return report.Operation(fl.Field().String()).Valid()
}

func validatePeriod(fl validator.FieldLevel) bool {
	return report.Period(fl.Field().String()).Valid()
}

func validateTicker(fl validator.FieldLevel) bool {
	return tickerRegex.MatchString(fl.Field().String())
}

func validateCivilDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(CivilDateLayout, fl.Field().String())
	return err == nil
}
