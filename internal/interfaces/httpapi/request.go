package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/club-manager/internal/domain/validation"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

const (
	dateLayout     = "2006-01-02"
	longDateLayout = "January 02, 2006"
	maxBodyBytes   = 1 << 20
)

// decodeJSON ignores unknown fields so clients may echo a fetched row back on PUT.
func (h *Handler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := sonic.ConfigDefault.NewDecoder(body).Decode(dst); err != nil {
		h.logger.WarnContext(ctx, "decode request body failed", "path", r.URL.Path, "error", err)
		var fieldErr *fieldValueError
		if errors.As(err, &fieldErr) {
			return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, fieldErr.Error())
		}
		return fmt.Errorf("%w: invalid JSON payload", usecase.ErrInvalidInput)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, fieldFailure(fieldErrs[0]))
	}
	return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
}

// fieldFailure turns the first tag violation into a short reason keyed by the JSON field name.
func fieldFailure(fe validator.FieldError) *validation.Failure {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return validation.Newf(field, "%s is required", field)
	case "gt":
		return validation.Newf(field, "%s must be greater than %s", field, fe.Param())
	case "gte", "min":
		return validation.Newf(field, "%s must be at least %s", field, fe.Param())
	case "max":
		return validation.Newf(field, "%s must be at most %s characters", field, fe.Param())
	case "email":
		return validation.Newf(field, "%s must be a valid email address", field)
	default:
		return validation.Newf(field, "%s is invalid", field)
	}
}

// jsonFieldName reports struct fields by their JSON key in validation errors.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// jsonDate accepts "YYYY-MM-DD" or a full RFC 3339 timestamp and keeps only the calendar date.
type jsonDate struct {
	time.Time
}

func (d *jsonDate) UnmarshalJSON(data []byte) error {
	raw := scalarText(data)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return &fieldValueError{value: raw, kind: "YYYY-MM-DD date"}
	}
	y, m, day := t.Date()
	d.Time = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return nil
}

// fieldValueError reports a scalar that could not be read as the expected kind.
type fieldValueError struct {
	value string
	kind  string
}

func (e *fieldValueError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.value, e.kind)
}

// scalarText strips the quotes around a string token so numbers may arrive either way.
func scalarText(data []byte) string {
	return strings.TrimSpace(strings.Trim(string(bytes.TrimSpace(data)), `"`))
}

// optionalID accepts a number, a numeric string, an empty string or null. Empty means no reference.
type optionalID struct {
	Value *int64
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	raw := scalarText(data)
	if raw == "" || raw == "null" {
		o.Value = nil
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return &fieldValueError{value: raw, kind: "id"}
	}
	o.Value = &id
	return nil
}

// flexInt accepts a JSON integer or a numeric string. Null and "" leave it unset.
type flexInt struct {
	Value int64
	Set   bool
}

func (n *flexInt) UnmarshalJSON(data []byte) error {
	raw := scalarText(data)
	if raw == "" || raw == "null" {
		*n = flexInt{}
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &fieldValueError{value: raw, kind: "integer"}
	}
	*n = flexInt{Value: v, Set: true}
	return nil
}

func (n flexInt) intPtr() *int {
	if !n.Set {
		return nil
	}
	v := int(n.Value)
	return &v
}

// flexFloat accepts a finite JSON number or a numeric string. Null and "" leave it unset.
type flexFloat struct {
	Value float64
	Set   bool
}

func (n *flexFloat) UnmarshalJSON(data []byte) error {
	raw := scalarText(data)
	if raw == "" || raw == "null" {
		*n = flexFloat{}
		return nil
	}
	v, err := parseFiniteFloat(raw)
	if err != nil {
		return &fieldValueError{value: raw, kind: "number"}
	}
	*n = flexFloat{Value: v, Set: true}
	return nil
}

func parseFiniteFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", raw)
	}
	return v, nil
}

// flexValue exposes the flex types to struct tags. Unset values validate as absent, so
// "required" fails and "omitempty" skips.
func flexValue(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case flexInt:
		if v.Set {
			return v.Value
		}
	case flexFloat:
		if v.Set {
			return v.Value
		}
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
