package impl

import (
	"math"
	"strconv"
	"strings"

	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/errors"
	"jalsetu/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// placeholderAddresses are the texts a location field shows while it has no
// real address. They are never a valid assessment location.
var placeholderAddresses = []string{
	"location unavailable",
	"unable to fetch address",
	"fetching location...",
	"location permission denied",
	"address not found",
}

// assessmentFields is the parsed form.
type assessmentFields struct {
	Name        string  `validate:"required"`
	NumDwellers int     `validate:"gt=0"`
	RoofAreaSqm float64 `validate:"gte=0"`
	OpenSpace   float64 `validate:"gte=0"`
	RoofType    string
}

// parseForm parses and validates the typed fields. It does no I/O.
func parseForm(validate *validator.Validate, input *usecase.FormInput) (*assessmentFields, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("form is required"))
	}

	dwellers, err := strconv.Atoi(strings.TrimSpace(input.Dwellers))
	if err != nil {
		return nil, invalidField("number of dwellers", input.Dwellers)
	}
	roofArea, err := parseArea(input.RoofArea)
	if err != nil {
		return nil, invalidField("roof area", input.RoofArea)
	}
	openSpace, err := parseArea(input.OpenSpace)
	if err != nil {
		return nil, invalidField("open space", input.OpenSpace)
	}

	fields := &assessmentFields{
		Name:        strings.TrimSpace(input.Name),
		NumDwellers: dwellers,
		RoofAreaSqm: roofArea,
		OpenSpace:   openSpace,
		RoofType:    strings.TrimSpace(input.RoofType),
	}
	if err := validate.Struct(fields); err != nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError(err.Error()))
	}

	return fields, nil
}

// parseArea accepts finite decimal numbers.
func parseArea(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("%q is not finite", raw)
	}

	return v, nil
}

func invalidField(field, raw string) error {
	return errors.WithStack(domainerrors.NewInvalidInputError(field + ": " + strconv.Quote(raw) + " is not a valid number"))
}

// validateLocation requires both coordinates to be set and a real (or empty) address.
func validateLocation(loc *entity.Location) error {
	if loc.Latitude == 0 || loc.Longitude == 0 {
		return errors.WithStack(domainerrors.NewInvalidInputError("location coordinates are missing"))
	}
	if isPlaceholderAddress(loc.Address) {
		return errors.WithStack(domainerrors.NewInvalidInputError("location address is not resolved"))
	}

	return nil
}

func isPlaceholderAddress(address string) bool {
	normalized := strings.ToLower(strings.TrimSpace(address))
	for _, placeholder := range placeholderAddresses {
		if normalized == placeholder {
			return true
		}
	}

	return false
}
