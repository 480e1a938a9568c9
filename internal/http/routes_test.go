package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
	domainauth "github.com/electromove/ev-admin-api/internal/domain/auth"
)

func newTestRouter(t *testing.T, mgr *fakeManager, upstream http.HandlerFunc) http.Handler {
	t.Helper()

	var catalog *evapi.Client
	if upstream != nil {
		srv := httptest.NewServer(upstream)
		t.Cleanup(srv.Close)
		catalog = evapi.NewClient(evapi.Config{BaseURL: srv.URL})
	}

	return NewRouter(RouterServices{Auth: mgr, Catalog: catalog})
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, &fakeManager{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AuthRoutesAreUngated(t *testing.T) {
	router := newTestRouter(t, &fakeManager{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"ana@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Rejected credentials, not a session gate.
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_credentials", decodeErrorBody(t, rec)["error"])
}

func TestRouter_CatalogRequiresSession(t *testing.T) {
	router := newTestRouter(t, &fakeManager{}, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be reached without a session")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brands", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "session_expired", decodeErrorBody(t, rec)["error"])
}

func TestRouter_CatalogProxiesWithSession(t *testing.T) {
	mgr := &fakeManager{user: &domainauth.SessionUser{ID: "42", Name: "Ana Torres"}}
	router := newTestRouter(t, mgr, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Brands/GetBrands", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":1,"brandName":"Voltan"}],"totalRecords":1}`))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brands", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Voltan")
}

func TestRouter_CatalogNotFoundPassthrough(t *testing.T) {
	mgr := &fakeManager{user: &domainauth.SessionUser{ID: "42"}}
	router := newTestRouter(t, mgr, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brands/99", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeErrorBody(t, rec)["error"])
}

func TestRouter_InventoryVINLookup(t *testing.T) {
	mgr := &fakeManager{user: &domainauth.SessionUser{ID: "42"}}
	router := newTestRouter(t, mgr, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Inventory/GetByVIN", r.URL.Path)
		assert.Equal(t, "5YJ3E1EA7KF000316", r.URL.Query().Get("vin"))
		_, _ = w.Write([]byte(`{"data":{"id":7,"vin":"5YJ3E1EA7KF000316"}}`))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/by-vin?vin=5YJ3E1EA7KF000316", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "5YJ3E1EA7KF000316")
}

func TestRouter_InventoryVINLookupRequiresVIN(t *testing.T) {
	mgr := &fakeManager{user: &domainauth.SessionUser{ID: "42"}}
	router := newTestRouter(t, mgr, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be reached without a vin")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/by-vin", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decodeErrorBody(t, rec)["error"])
}

func TestRouter_EquipmentProxiesByVersion(t *testing.T) {
	mgr := &fakeManager{user: &domainauth.SessionUser{ID: "42"}}
	router := newTestRouter(t, mgr, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/AdditionalEquipments/ByVersion/12", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":4,"equipmentType":"Towbar","equipmentDescription":"Detachable","equipmentPrice":950,"equipmentPriceCurrency":"EUR"}]`))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/equipment?versionId=12", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Towbar")
}

func TestRouter_CommentsRequireVehicleID(t *testing.T) {
	mgr := &fakeManager{user: &domainauth.SessionUser{ID: "42"}}
	router := newTestRouter(t, mgr, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be reached without a vehicleId")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/comments", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decodeErrorBody(t, rec)["error"])
}

func TestRouter_InvalidPathID(t *testing.T) {
	mgr := &fakeManager{user: &domainauth.SessionUser{ID: "42"}}
	router := newTestRouter(t, mgr, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be reached for an invalid id")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brands/abc", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decodeErrorBody(t, rec)["error"])
}
