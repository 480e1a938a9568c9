package evapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorType_UnmarshalShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ColorType
	}{
		{name: "name", raw: `{"colorType":"Metalico"}`, want: "Metalico"},
		{name: "numeric enum", raw: `{"colorType":2}`, want: "2"},
		{name: "absent", raw: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var color VehicleColor
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &color))
			assert.Equal(t, tt.want, color.ColorType)
		})
	}
}

func TestGetColors_BuildsFilterQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/VehicleColor/GetColors", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("BrandId"))
		assert.Equal(t, "RG-01", r.URL.Query().Get("ColorCode"))
		assert.False(t, r.URL.Query().Has("MinYear"), "zero filters stay out of the query")
		_, _ = w.Write([]byte(`[{"id":5,"colorCode":"RG-01","colorName":"Racing Green","brandId":3,"colorType":1}]`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL})
	colors, err := c.GetColors(context.Background(), ColorFilters{BrandID: 3, ColorCode: "RG-01"})
	require.NoError(t, err)
	require.Len(t, colors, 1)
	assert.Equal(t, "Racing Green", colors[0].ColorName)
	assert.Equal(t, ColorType("1"), colors[0].ColorType)
}

func TestAssociateColorToVehicle_SendsBothIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/VehicleColor/AssociateColorToVehicle", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"colorId":5,"vehicleVersionId":12}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, c.AssociateColorToVehicle(context.Background(), 5, 12))
}

func TestUpdateColor_IDTravelsInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/VehicleColor/UpdateColor", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 5, body["id"])
		assert.Equal(t, "Racing Green", body["colorName"])

		_, _ = w.Write([]byte(`{"id":5,"colorCode":"RG-01","colorName":"Racing Green","brandId":3}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL})
	updated, err := c.UpdateColor(context.Background(), 5, VehicleColorRequest{
		ColorCode: "RG-01",
		ColorName: "Racing Green",
		BrandID:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.ID)
}

func TestGetVehicleComments_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/VehicleComment/GetVehicleComments", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("VehicleId"))
		_, _ = w.Write([]byte(`{"data":[{"id":1,"baseVehicleId":7,"title":"Charging","description":"Slow on AC"}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL})
	comments, err := c.GetVehicleComments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Charging", comments[0].Title)
}

func TestGetVehicleComments_MissingDataIsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL})
	comments, err := c.GetVehicleComments(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}
