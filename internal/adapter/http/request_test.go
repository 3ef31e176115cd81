package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CityRequest
		wantErr map[string]string
	}{
		{name: "valid", req: CityRequest{Name: "Paris", Country: "France"}},
		{name: "missing country", req: CityRequest{Name: "Paris"}, wantErr: map[string]string{"country": "is required"}},
		{name: "whitespace name", req: CityRequest{Name: " \t", Country: "France"}, wantErr: map[string]string{"name": "is required"}},
		{
			name:    "both missing",
			req:     CityRequest{},
			wantErr: map[string]string{"name": "is required", "country": "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.wantErr, verrs.ToMap())
		})
	}
}

func TestAirportRequest_Validate(t *testing.T) {
	valid := AirportRequest{Code: "LHR", Name: "Heathrow", NumberOfTerminals: 4, Address: "Hounslow TW6"}

	tests := []struct {
		name    string
		mutate  func(r *AirportRequest)
		wantErr map[string]string
	}{
		{name: "valid", mutate: func(*AirportRequest) {}},
		{name: "missing code", mutate: func(r *AirportRequest) { r.Code = "" }, wantErr: map[string]string{"code": "is required"}},
		{name: "missing name", mutate: func(r *AirportRequest) { r.Name = "" }, wantErr: map[string]string{"name": "is required"}},
		{name: "missing address", mutate: func(r *AirportRequest) { r.Address = "" }, wantErr: map[string]string{"address": "is required"}},
		{name: "zero terminals", mutate: func(r *AirportRequest) { r.NumberOfTerminals = 0 }, wantErr: map[string]string{"numberOfTerminals": "must be greater than 0"}},
		{name: "negative terminals", mutate: func(r *AirportRequest) { r.NumberOfTerminals = -2 }, wantErr: map[string]string{"numberOfTerminals": "must be greater than 0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.wantErr, verrs.ToMap())
		})
	}
}

func TestFlightRequest_Validate(t *testing.T) {
	valid := FlightRequest{
		Number:              "BA303",
		FromAirport:         "LHR",
		ToAirport:           "CDG",
		Price:               120.5,
		FlightTimeInMinutes: 75,
		Operator:            "British Airways",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("all missing", func(t *testing.T) {
		err := (&FlightRequest{}).Validate()
		var verrs *ValidationErrors
		require.ErrorAs(t, err, &verrs)

		m := verrs.ToMap()
		assert.Len(t, m, 6)
		assert.Equal(t, "is required", m["number"])
		assert.Equal(t, "is required", m["fromAirport"])
		assert.Equal(t, "is required", m["toAirport"])
		assert.Equal(t, "is required", m["operator"])
		assert.Equal(t, "must be greater than 0", m["price"])
		assert.Equal(t, "must be greater than 0", m["flightTimeInMinutes"])
	})

	t.Run("fractional price is accepted", func(t *testing.T) {
		req := valid
		req.Price = 0.01
		assert.NoError(t, req.Validate())
	})
}

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "validation failed", errs.Error())
	assert.Empty(t, errs.ToMap())

	errs.Add("name", "is required")
	errs.Add("country", "is required")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "name is required", errs.Error())
	assert.Equal(t, map[string]string{"name": "is required", "country": "is required"}, errs.ToMap())
}

func TestConverters(t *testing.T) {
	city := ToDomainCity(&CityRequest{Name: "Rome", Country: "Italy"})
	assert.Equal(t, "Rome", city.Name)
	assert.Equal(t, "Italy", city.Country)

	airport := ToDomainAirport(&AirportRequest{Code: "FCO", Name: "Fiumicino", NumberOfTerminals: 4, Address: "Rome"})
	assert.Equal(t, "FCO", airport.Code)
	assert.Empty(t, airport.City, "city comes from the path, not the body")

	assert.Equal(t, []CityDTO{}, ToCityDTOs(nil))
	assert.Equal(t, []AirportDTO{}, ToAirportDTOs(nil))
	assert.Equal(t, []ItineraryDTO{}, ToItineraryDTOs(nil))
}
