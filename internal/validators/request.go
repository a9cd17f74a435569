package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/MKhiriev/roya-gateway/models"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// RequestValidator validates the request models of the HTTP API.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [Validator] for the request models.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	// Emails are normalised after validation, so surrounding whitespace is
	// accepted here. Blank optional values are dropped later and pass.
	_ = v.RegisterValidation("trimmed_email", func(fl validator.FieldLevel) bool {
		email := strings.TrimSpace(fl.Field().String())
		return email == "" || v.Var(email, "email") == nil
	})
	_ = v.RegisterValidation("optional_date", func(fl validator.FieldLevel) bool {
		date := fl.Field().String()
		if date == "" {
			return true
		}
		_, err := time.Parse(dateLayout, date)
		return err == nil
	})

	return &RequestValidator{validate: v}
}

// Validate implements [Validator]. Supported values are the request models
// (value or pointer). When fields are given, only those struct fields are
// checked by tag rules.
func (r *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return r.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return r.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return r.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return r.validateLogin(ctx, *value, fields...)

	case models.UpdateUserRequest:
		return r.validateUpdate(ctx, value, fields...)
	case *models.UpdateUserRequest:
		return r.validateUpdate(ctx, *value, fields...)

	case models.DeleteUserRequest:
		return r.structCtx(ctx, value, fields...)
	case *models.DeleteUserRequest:
		return r.structCtx(ctx, *value, fields...)

	case models.PhotoUpload:
		return r.validateUpload(ctx, value, fields...)
	case *models.PhotoUpload:
		return r.validateUpload(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (r *RequestValidator) validateRegister(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	if err := r.structCtx(ctx, req, fields...); err != nil {
		return err
	}

	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	return nil
}

func (r *RequestValidator) validateLogin(ctx context.Context, req models.LoginRequest, fields ...string) error {
	errs := FieldErrors{}

	if err := r.structCtx(ctx, req, fields...); err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		errs = verr.Fields
	}

	if strings.TrimSpace(req.ResolvedIdentifier()) == "" {
		errs["identifier"] = "is required"
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	return nil
}

func (r *RequestValidator) validateUpdate(ctx context.Context, req models.UpdateUserRequest, fields ...string) error {
	if err := r.structCtx(ctx, req, fields...); err != nil {
		return err
	}

	if req.PasswordChangeRequested() && *req.NewPassword != *req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	return nil
}

func (r *RequestValidator) validateUpload(ctx context.Context, req models.PhotoUpload, fields ...string) error {
	errs := FieldErrors{}

	if err := r.structCtx(ctx, req, fields...); err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		errs = verr.Fields
	}

	if strings.TrimSpace(req.Object.Key) == "" {
		errs["file"] = "is required"
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	return nil
}

func (r *RequestValidator) structCtx(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = r.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = formatFieldError(fe)
	}

	return &ValidationError{Fields: out}
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email", "trimmed_email":
		return "must be a valid email"
	case "optional_date":
		return "must be a date (YYYY-MM-DD)"
	case "datetime":
		if fe.Param() == dateLayout {
			return "must be a date (YYYY-MM-DD)"
		}
		return "must match format " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
