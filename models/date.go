package models

import (
	"encoding/json"
	"errors"
	"time"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// Date is a calendar date serialized as yyyy-MM-dd.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON reports a plain error; field attribution happens in
// DogDTO.UnmarshalJSON, which knows which field the value arrived on.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("date must be a string in yyyy-MM-dd format")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return errors.New("date must match yyyy-MM-dd")
	}
	d.Time = t
	return nil
}
