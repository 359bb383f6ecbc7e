package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"dogsapi/internal/apierror"
)

// Dog record as it travels over the wire. id and supplierName are output-only;
// every other field is optional input except supplierId, whose absence is
// reported by the supplier reference check rather than field validation.
type DogDTO struct {
	ID                       *int64         `json:"id,omitempty"`
	Name                     *string        `json:"name,omitempty" validate:"omitempty,max=200"`
	Breed                    *string        `json:"breed,omitempty" validate:"omitempty,max=200"`
	SupplierID               *int64         `json:"supplierId,omitempty"`
	SupplierName             *string        `json:"supplierName,omitempty"`
	BadgeID                  *string        `json:"badgeId,omitempty" validate:"omitempty,max=200"`
	BirthDate                *Date          `json:"birthDate,omitempty" validate:"omitempty,notfuture"`
	DateAcquired             *Date          `json:"dateAcquired,omitempty"`
	Gender                   *Gender        `json:"gender,omitempty"`
	CurrentStatus            *DogStatus     `json:"currentStatus,omitempty"`
	LeavingReason            *LeavingReason `json:"leavingReason,omitempty"`
	LeavingDate              *Date          `json:"leavingDate,omitempty"`
	KennellingCharacteristic *string        `json:"kennellingCharacteristic,omitempty" validate:"omitempty,max=500"`
}

// Search filters and pagination for the dog list endpoint. Blank filters are
// omitted from the query entirely.
type SearchParam struct {
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Supplier string `json:"supplier"`
	PageNum  int    `json:"pageNum" validate:"min=0"`
	PageSize int    `json:"pageSize" validate:"min=1,max=100"`
}

// UnmarshalJSON decodes a dog payload keeping enough context to attribute bad
// enum tokens and bad date strings to the field they arrived on. Enum and date
// fields are captured raw first, then converted one by one; any other decode
// failure bubbles up for the generic malformed-body classification.
func (d *DogDTO) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                       *int64          `json:"id"`
		Name                     *string         `json:"name"`
		Breed                    *string         `json:"breed"`
		SupplierID               *int64          `json:"supplierId"`
		SupplierName             *string         `json:"supplierName"`
		BadgeID                  *string         `json:"badgeId"`
		BirthDate                json.RawMessage `json:"birthDate"`
		DateAcquired             json.RawMessage `json:"dateAcquired"`
		Gender                   json.RawMessage `json:"gender"`
		CurrentStatus            json.RawMessage `json:"currentStatus"`
		LeavingReason            json.RawMessage `json:"leavingReason"`
		LeavingDate              json.RawMessage `json:"leavingDate"`
		KennellingCharacteristic *string         `json:"kennellingCharacteristic"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.ID = raw.ID
	d.Name = raw.Name
	d.Breed = raw.Breed
	d.SupplierID = raw.SupplierID
	d.SupplierName = raw.SupplierName
	d.BadgeID = raw.BadgeID
	d.KennellingCharacteristic = raw.KennellingCharacteristic

	var err error
	if d.Gender, err = parseEnum(raw.Gender, "gender", GenderValues()); err != nil {
		return err
	}
	if d.CurrentStatus, err = parseEnum(raw.CurrentStatus, "currentStatus", DogStatusValues()); err != nil {
		return err
	}
	if d.LeavingReason, err = parseEnum(raw.LeavingReason, "leavingReason", LeavingReasonValues()); err != nil {
		return err
	}
	if d.BirthDate, err = parseDate(raw.BirthDate, "birthDate"); err != nil {
		return err
	}
	if d.DateAcquired, err = parseDate(raw.DateAcquired, "dateAcquired"); err != nil {
		return err
	}
	if d.LeavingDate, err = parseDate(raw.LeavingDate, "leavingDate"); err != nil {
		return err
	}
	return nil
}

// parseEnum accepts only an exact, case-sensitive token match. No trimming and
// no case folding, unlike the search filters.
func parseEnum[E ~string](raw json.RawMessage, field string, allowed []E) (*E, error) {
	if isJSONNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &apierror.InvalidEnumError{Field: field, Value: rawToken(raw), Allowed: enumStrings(allowed)}
	}
	for _, a := range allowed {
		if string(a) == s {
			v := E(s)
			return &v, nil
		}
	}
	return nil, &apierror.InvalidEnumError{Field: field, Value: s, Allowed: enumStrings(allowed)}
}

func parseDate(raw json.RawMessage, field string) (*Date, error) {
	if isJSONNull(raw) {
		return nil, nil
	}
	var d Date
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, &apierror.InvalidDateError{Field: field}
	}
	return &d, nil
}

func enumStrings[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func rawToken(raw json.RawMessage) string {
	return strings.Trim(string(raw), `"`)
}
