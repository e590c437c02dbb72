// internal/provider/httpapi/client_test.go
package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/pkg/apierrors"
	"github.com/your-org/storefront/internal/provider/httpapi"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *httpapi.Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, httpapi.NewClient(server.URL, server.Client(), nil)
}

func TestGetByIDSuccess(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products/hm-01", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"hm-01","name":"Oak Stool","price":12900,"category":"handmades","in_stock":true}`))
	})

	product, err := httpapi.NewProductProvider(client).GetByID(context.Background(), "hm-01")
	require.NoError(t, err)
	assert.Equal(t, "Oak Stool", product.Name)
	assert.Equal(t, int64(12900), product.Price)
	assert.True(t, product.InStock)
}

func TestNotFoundErrorKeepsMessage(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not found","resource":"Product"}`))
	})

	_, err := httpapi.NewProductProvider(client).GetByID(context.Background(), "missing")
	var notFound *apierrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Not found", notFound.Message)
	assert.Equal(t, "Product", notFound.Resource)
}

func TestValidationErrorCarriesFieldMap(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid order","fields":{"email":"must be a valid email"}}`))
	})

	_, err := httpapi.NewOrderProvider(client).Create(context.Background(), &order.Order{})
	var validation *apierrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Invalid order", validation.Message)
	assert.Equal(t, "must be a valid email", validation.Fields["email"])
}

func TestAuthenticationError(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Session expired"}`))
	})

	_, err := httpapi.NewHomepageProvider(client).Get(context.Background())
	var auth *apierrors.AuthenticationError
	require.ErrorAs(t, err, &auth)
	assert.Equal(t, "Session expired", auth.Message)
}

func TestGenericAPIErrorWithCode(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"Catalog unavailable","code":"CATALOG_DOWN"}`))
	})

	_, err := httpapi.NewProductProvider(client).GetByCategory(context.Background(), catalog.CategoryPaintings)
	var api *apierrors.APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, http.StatusServiceUnavailable, api.Status)
	assert.Equal(t, "CATALOG_DOWN", api.Code)
}

func TestNonJSONErrorBody(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	})

	_, err := httpapi.NewProductProvider(client).GetByID(context.Background(), "hm-01")
	var api *apierrors.APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, "HTTP Error 502", api.Message)
	assert.Equal(t, http.StatusBadGateway, api.Status)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := httpapi.NewClient(server.URL, server.Client(), nil)
	// Closing the server before the call simulates an offline backend
	server.Close()

	_, err := httpapi.NewProductProvider(client).GetByID(context.Background(), "hm-01")
	var network *apierrors.NetworkError
	require.ErrorAs(t, err, &network)
	assert.NotEmpty(t, network.Message)
}

func TestMalformedSuccessBody(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := httpapi.NewProductProvider(client).GetByID(context.Background(), "hm-01")
	var api *apierrors.APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, http.StatusInternalServerError, api.Status)
}

func TestGetRelatedQuery(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/related", r.URL.Path)
		assert.Equal(t, "handmades", r.URL.Query().Get("category"))
		assert.Equal(t, "hm-02", r.URL.Query().Get("excludeId"))
		w.Write([]byte(`[{"id":"hm-01","name":"Oak Stool","price":12900,"category":"handmades"}]`))
	})

	items, err := httpapi.NewProductProvider(client).GetRelated(context.Background(), catalog.CategoryHandmades, "hm-02")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hm-01", items[0].ID)
}

func TestCreateOrderPostsJSON(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"order_id":"ORD-20260831-AB12CD34"}`))
	})

	result, err := httpapi.NewOrderProvider(client).Create(context.Background(), &order.Order{
		Customer:      order.Customer{FirstName: "June", LastName: "Okafor", Email: "june@example.com"},
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260831-AB12CD34", result.OrderID)
}

func TestGetStatusQuery(t *testing.T) {
	_, client := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/status", r.URL.Path)
		assert.Equal(t, "ORD-1", r.URL.Query().Get("orderId"))
		assert.Equal(t, "june@example.com", r.URL.Query().Get("email"))
		w.Write([]byte(`{"order_id":"ORD-1","email":"june@example.com","status":"shipped","timeline":[{"status":"processing","description":"received"},{"status":"shipped","description":"on its way"}]}`))
	})

	detail, err := httpapi.NewOrderProvider(client).GetStatus(context.Background(), "ORD-1", "june@example.com")
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, detail.Status)
	assert.Len(t, detail.Timeline, 2)
}
