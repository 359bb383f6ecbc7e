package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dogsapi/internal/apierror"
	"dogsapi/models"
)

func TestDogDTOUnmarshalValid(t *testing.T) {
	data := `{
		"name": "Rex",
		"breed": "German Shepherd",
		"supplierId": 1,
		"gender": "MALE",
		"currentStatus": "IN_SERVICE",
		"leavingReason": "TRANSFERRED",
		"birthDate": "2021-05-20"
	}`
	var dto models.DogDTO
	require.NoError(t, json.Unmarshal([]byte(data), &dto))

	require.Equal(t, "Rex", *dto.Name)
	require.EqualValues(t, 1, *dto.SupplierID)
	require.Equal(t, models.GenderMale, *dto.Gender)
	require.Equal(t, models.StatusInService, *dto.CurrentStatus)
	require.Equal(t, models.LeavingTransferred, *dto.LeavingReason)
	require.Equal(t, "2021-05-20", dto.BirthDate.Format(models.DateLayout))
	require.Nil(t, dto.DateAcquired)
	require.Nil(t, dto.LeavingDate)
}

func TestDogDTOUnmarshalInvalidEnumToken(t *testing.T) {
	var dto models.DogDTO
	err := json.Unmarshal([]byte(`{"currentStatus":"IN_SERV"}`), &dto)

	var enumErr *apierror.InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	require.Equal(t, "currentStatus", enumErr.Field)
	require.Equal(t, "IN_SERV", enumErr.Value)
	require.Equal(t, "IN_TRAINING, IN_SERVICE, RETIRED, LEFT", enumErr.AllowedList())
}

// Enum matching is exact and case-sensitive: a lower-cased token of a valid
// constant is still rejected.
func TestDogDTOUnmarshalEnumCaseSensitive(t *testing.T) {
	var dto models.DogDTO
	err := json.Unmarshal([]byte(`{"gender":"male"}`), &dto)

	var enumErr *apierror.InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	require.Equal(t, "gender", enumErr.Field)
	require.Equal(t, "male", enumErr.Value)
}

func TestDogDTOUnmarshalNonStringEnumValue(t *testing.T) {
	var dto models.DogDTO
	err := json.Unmarshal([]byte(`{"leavingReason":3}`), &dto)

	var enumErr *apierror.InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	require.Equal(t, "leavingReason", enumErr.Field)
	require.Equal(t, "3", enumErr.Value)
}

func TestDogDTOUnmarshalNullEnum(t *testing.T) {
	var dto models.DogDTO
	require.NoError(t, json.Unmarshal([]byte(`{"gender":null,"currentStatus":null}`), &dto))
	require.Nil(t, dto.Gender)
	require.Nil(t, dto.CurrentStatus)
}

func TestDogDTOUnmarshalBadDateAttributedToField(t *testing.T) {
	cases := []struct {
		payload string
		field   string
	}{
		{`{"birthDate":"05-20-2021"}`, "birthDate"},
		{`{"dateAcquired":"2021/05/20"}`, "dateAcquired"},
		{`{"leavingDate":20210520}`, "leavingDate"},
	}
	for _, tc := range cases {
		var dto models.DogDTO
		err := json.Unmarshal([]byte(tc.payload), &dto)

		var dateErr *apierror.InvalidDateError
		require.ErrorAs(t, err, &dateErr, "payload %s", tc.payload)
		require.Equal(t, tc.field, dateErr.Field)
	}
}

func TestDogDTOMarshalDates(t *testing.T) {
	d := models.NewDate(2021, 5, 20)
	name := "Rex"
	dto := models.DogDTO{Name: &name, BirthDate: &d}

	out, err := json.Marshal(dto)
	require.NoError(t, err)
	require.Contains(t, string(out), `"birthDate":"2021-05-20"`)
	// Unset optional fields are omitted, not emitted as null.
	require.NotContains(t, string(out), "gender")
	require.NotContains(t, string(out), "leavingDate")
}
