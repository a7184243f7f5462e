package service

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"workbrew/internal/models"

	"github.com/go-playground/validator/v10"
)

// CafeSubmission is the raw new-listing form. Checkbox fields carry the submitted value, empty when unticked.
type CafeSubmission struct {
	Name         string `form:"name" validate:"required,max=250"`
	MapURL       string `form:"map_url" validate:"required,max=500,absurl"`
	ImageURL     string `form:"img_url" validate:"required,max=500,absurl"`
	Location     string `form:"location" validate:"required,max=250"`
	Seats        string `form:"seats" validate:"max=250"`
	CoffeePrice  string `form:"coffee_price" validate:"max=250"`
	HasSockets   string `form:"has_sockets"`
	HasToilet    string `form:"has_toilet"`
	HasWifi      string `form:"has_wifi"`
	CanTakeCalls string `form:"can_take_calls"`
}

// ValidationErrors maps a form field name to a human readable message.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "service: invalid submission: " + strings.Join(fields, ", ")
}

const duplicateNameMessage = "A cafe with this name already exists."

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("absurl", isAbsoluteURL); err != nil {
		panic(err)
	}

	return v
}

func isAbsoluteURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (s CafeSubmission) Trimmed() CafeSubmission {
	return CafeSubmission{
		Name:         strings.TrimSpace(s.Name),
		MapURL:       strings.TrimSpace(s.MapURL),
		ImageURL:     strings.TrimSpace(s.ImageURL),
		Location:     strings.TrimSpace(s.Location),
		Seats:        strings.TrimSpace(s.Seats),
		CoffeePrice:  strings.TrimSpace(s.CoffeePrice),
		HasSockets:   strings.TrimSpace(s.HasSockets),
		HasToilet:    strings.TrimSpace(s.HasToilet),
		HasWifi:      strings.TrimSpace(s.HasWifi),
		CanTakeCalls: strings.TrimSpace(s.CanTakeCalls),
	}
}

// Validate checks an already trimmed submission. It returns nil when the submission is acceptable.
func (s CafeSubmission) Validate() ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{"": err.Error()}
	}

	errs := ValidationErrors{}
	for _, fe := range fieldErrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = messageFor(fe)
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "absurl":
		return "Must be a full URL, including http:// or https://."
	default:
		return "Invalid value."
	}
}

// Cafe converts a valid submission into the entity to persist.
func (s CafeSubmission) Cafe() *models.Cafe {
	return &models.Cafe{
		Name:         s.Name,
		MapURL:       s.MapURL,
		ImageURL:     s.ImageURL,
		Location:     s.Location,
		HasSockets:   Checked(s.HasSockets),
		HasToilet:    Checked(s.HasToilet),
		HasWifi:      Checked(s.HasWifi),
		CanTakeCalls: Checked(s.CanTakeCalls),
		Seats:        optional(s.Seats),
		CoffeePrice:  optional(s.CoffeePrice),
	}
}

// Checked interprets a checkbox value. Absent, false, 0 and off are unticked.
func Checked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "0", "off":
		return false
	default:
		return true
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
