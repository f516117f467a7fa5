package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pharmacy_store/internal/app/service"
	"pharmacy_store/internal/domain/repository/repotest"
	"pharmacy_store/internal/platform/logging"
)

type testServer struct {
	handler  http.Handler
	users    *repotest.UserRepository
	products *repotest.ProductRepository
	orders   *repotest.OrderRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := logging.Discard()
	s := &testServer{
		users:    repotest.NewUserRepository(),
		products: repotest.NewProductRepository(),
		orders:   repotest.NewOrderRepository(),
	}
	s.handler = NewRouter(
		logger,
		[]string{"*"},
		service.NewAuthService(s.users, bcrypt.MinCost, logger),
		service.NewProductService(s.products, logger),
		service.NewOrderService(s.orders, s.products, nil, logger),
	)
	return s
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const annSignup = `{"fullName":"Ann Lee","username":"ann","email":"ann@example.com","password":"pw123"}`

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSignup(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/signup", annSignup)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())
	assert.Equal(t, 1, s.users.Count())
}

func TestSignup_DuplicateIs500AndStoresNothing(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/signup", annSignup).Code)

	dupUsername := `{"fullName":"Ann Two","username":"ann","email":"other@example.com","password":"x"}`
	rec := s.do(t, http.MethodPost, "/signup", dupUsername)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, decode[map[string]string](t, rec)["error"])

	dupEmail := `{"fullName":"Bob","username":"bob","email":"ann@example.com","password":"x"}`
	rec = s.do(t, http.MethodPost, "/signup", dupEmail)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Equal(t, 1, s.users.Count())
}

func TestSignup_MissingFieldsIs500(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/signup", `{"username":"ann"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "User validation failed")

	rec = s.do(t, http.MethodPost, "/signup", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, s.users.Count())
}

func TestSignup_MalformedJSON(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/signup", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_RoleInBodyIgnored(t *testing.T) {
	s := newTestServer(t)

	body := `{"fullName":"Eve","username":"eve","email":"eve@example.com","password":"pw","role":"admin"}`
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/signup", body).Code)

	rec := s.do(t, http.MethodPost, "/login", `{"username":"eve","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "customer", decode[map[string]string](t, rec)["role"])
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/signup", annSignup).Code)
	stored, err := s.users.FindByUsername(context.Background(), "ann")
	require.NoError(t, err)

	rec := s.do(t, http.MethodPost, "/login", `{"username":"ann","password":"pw123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, stored.ID, body["userId"])
	assert.Equal(t, "customer", body["role"])
	_, hasToken := body["token"]
	assert.False(t, hasToken)
}

func TestLogin_MismatchIs404(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/signup", annSignup).Code)

	for _, body := range []string{
		`{"username":"ann","password":"PW123"}`,
		`{"username":"Ann","password":"pw123"}`,
		`{"username":"ann"}`,
		`{"password":"pw123"}`,
		`{}`,
	} {
		rec := s.do(t, http.MethodPost, "/login", body)
		assert.Equal(t, http.StatusNotFound, rec.Code, body)
		assert.JSONEq(t, `{"error":"Invalid username or password"}`, rec.Body.String(), body)
	}
}

func TestLogin_StoreFailureIs500(t *testing.T) {
	s := newTestServer(t)
	s.users.Err = errors.New("no reachable servers")

	rec := s.do(t, http.MethodPost, "/login", `{"username":"ann","password":"pw123"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "no reachable servers")
}

type productJSON struct {
	ID          string  `json:"_id"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageURL"`
	CreatedAt   string  `json:"createdAt"`
}

func (s *testServer) createProduct(t *testing.T, body string) productJSON {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/products", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Product added successfully"}`, rec.Body.String())

	list := decode[[]productJSON](t, s.do(t, http.MethodGet, "/products", ""))
	require.NotEmpty(t, list)
	return list[len(list)-1]
}

func TestProducts_CreateThenList(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	p := s.createProduct(t, `{"productName":"Ibuprofen 200mg","price":6.25,"quantity":40,"description":"Pain relief","imageURL":"https://img.example.com/ibu.png","color":"red"}`)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Ibuprofen 200mg", p.ProductName)
	assert.Equal(t, 6.25, p.Price)
	assert.Equal(t, 40.0, p.Quantity)
	assert.Equal(t, "Pain relief", p.Description)
	assert.Equal(t, "https://img.example.com/ibu.png", p.ImageURL)
	assert.NotEmpty(t, p.CreatedAt)

	raw := s.do(t, http.MethodGet, "/products", "").Body.String()
	assert.NotContains(t, raw, "color")
}

func TestProducts_CreateMissingRequiredIs500(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/products", `{"productName":"No price"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "price is required")

	assert.JSONEq(t, `[]`, s.do(t, http.MethodGet, "/products", "").Body.String())
}

func TestProducts_ListFailureIs500(t *testing.T) {
	s := newTestServer(t)
	s.products.Err = errors.New("server selection error")

	rec := s.do(t, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"server selection error"}`, rec.Body.String())
}

func TestProducts_Update(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, `{"productName":"Gauze","price":3,"quantity":5,"description":"Sterile"}`)

	rec := s.do(t, http.MethodPut, "/products/"+p.ID, `{"quantity":12,"price":999,"productName":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message        string      `json:"message"`
		UpdatedProduct productJSON `json:"updatedProduct"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product updated successfully", body.Message)
	assert.Equal(t, 12.0, body.UpdatedProduct.Quantity)
	assert.Equal(t, 3.0, body.UpdatedProduct.Price)
	assert.Equal(t, "Gauze", body.UpdatedProduct.ProductName)
	assert.Equal(t, "Sterile", body.UpdatedProduct.Description)

	stored := s.products.Get(p.ID)
	assert.Equal(t, 12.0, stored.Quantity)
	assert.Equal(t, 3.0, stored.Price)
}

func TestProducts_UpdateToZeroQuantity(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, `{"productName":"Gauze","price":3,"quantity":5}`)

	rec := s.do(t, http.MethodPut, "/products/"+p.ID, `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, s.products.Get(p.ID).Quantity)
}

func TestProducts_UpdateMissingQuantityIs400(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, `{"productName":"Gauze","price":3,"quantity":5}`)

	for _, body := range []string{`{"price":1}`, `{}`, ""} {
		rec := s.do(t, http.MethodPut, "/products/"+p.ID, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"message":"Quantity is required to update product"}`, rec.Body.String())
	}
	assert.Equal(t, 5.0, s.products.Get(p.ID).Quantity)
	assert.Equal(t, 3.0, s.products.Get(p.ID).Price)
}

func TestProducts_UpdateUnknownIs404(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, `{"productName":"Gauze","price":3,"quantity":5}`)

	rec := s.do(t, http.MethodPut, "/products/does-not-exist", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
	assert.Equal(t, 5.0, s.products.Get(p.ID).Quantity)
}

func TestProducts_Delete(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, `{"productName":"Gauze","price":3,"quantity":5}`)

	rec := s.do(t, http.MethodDelete, "/products/"+p.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Message        string      `json:"message"`
		DeletedProduct productJSON `json:"deletedProduct"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product deleted successfully", body.Message)
	assert.Equal(t, p, body.DeletedProduct)

	assert.JSONEq(t, `[]`, s.do(t, http.MethodGet, "/products", "").Body.String())
}

func TestProducts_DeleteUnknownIs404(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, `{"productName":"Gauze","price":3,"quantity":5}`)

	rec := s.do(t, http.MethodDelete, "/products/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
	assert.NotNil(t, s.products.Get(p.ID))
}

func TestOrders_PlaceAndListExpanded(t *testing.T) {
	s := newTestServer(t)
	aspirin := s.createProduct(t, `{"productName":"Aspirin","price":4.5,"quantity":10}`)
	gauze := s.createProduct(t, `{"productName":"Gauze","price":1,"quantity":3}`)

	order := `{
		"userId": "u1",
		"items": [
			{"productId": "` + aspirin.ID + `", "quantity": 2, "price": 4.5, "productName": "Aspirin"},
			{"productId": "` + gauze.ID + `", "quantity": 1, "price": 1}
		],
		"totalAmount": 10,
		"deliveryAddress": {"street": "12 Elm Street", "city": "Springfield"}
	}`
	rec := s.do(t, http.MethodPost, "/orders", order)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Order placed successfully"}`, rec.Body.String())

	require.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/products/"+gauze.ID, "").Code)

	rec = s.do(t, http.MethodGet, "/orders/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	type itemJSON struct {
		ProductID *productJSON `json:"productId"`
		Quantity  float64      `json:"quantity"`
		Price     float64      `json:"price"`
	}
	type orderJSON struct {
		ID              string         `json:"_id"`
		UserID          string         `json:"userId"`
		Items           []itemJSON     `json:"items"`
		TotalAmount     float64        `json:"totalAmount"`
		DeliveryAddress map[string]any `json:"deliveryAddress"`
	}
	orders := decode[[]orderJSON](t, rec)
	require.Len(t, orders, 1)
	got := orders[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 10.0, got.TotalAmount)
	assert.Equal(t, "Springfield", got.DeliveryAddress["city"])
	require.Len(t, got.Items, 2)
	require.NotNil(t, got.Items[0].ProductID)
	assert.Equal(t, aspirin, *got.Items[0].ProductID)
	assert.Equal(t, 2.0, got.Items[0].Quantity)
	assert.Nil(t, got.Items[1].ProductID)
	assert.Equal(t, 1.0, got.Items[1].Price)
}

func TestOrders_MissingFieldsIs400(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"userId":"u1","items":[],"totalAmount":5,"deliveryAddress":"x"}`,
		`{"userId":"u1","totalAmount":5,"deliveryAddress":"x"}`,
		`{"items":[{"productId":"p1","quantity":1,"price":5}],"totalAmount":5,"deliveryAddress":"x"}`,
		`{"userId":"u1","items":[{"productId":"p1","quantity":1,"price":5}],"deliveryAddress":"x"}`,
		`{"userId":"u1","items":[{"productId":"p1","quantity":1,"price":5}],"totalAmount":5}`,
		`{"userId":"u1","items":[{"productId":"p1","quantity":1,"price":5}],"totalAmount":5,"deliveryAddress":""}`,
		``,
	} {
		rec := s.do(t, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":"Missing required fields in order data."}`, rec.Body.String(), body)
	}
	assert.Equal(t, 0, s.orders.Count())
}

func TestOrders_StoreFailureIsGeneric500(t *testing.T) {
	s := newTestServer(t)
	s.orders.Err = errors.New("E11000 something internal")

	rec := s.do(t, http.MethodPost, "/orders", `{"userId":"u1","items":[{"productId":"p1","quantity":1,"price":5}],"totalAmount":5,"deliveryAddress":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to place the order. Please check the server logs."}`, rec.Body.String())
}

func TestOrders_ListFailureIs500(t *testing.T) {
	s := newTestServer(t)
	s.orders.Err = errors.New("cursor not found")

	rec := s.do(t, http.MethodGet, "/orders/u1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"cursor not found"}`, rec.Body.String())
}

func TestReadsAreIdempotent(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, `{"productName":"Aspirin","price":4.5,"quantity":10}`)
	s.createProduct(t, `{"productName":"Gauze","price":1,"quantity":3}`)
	order := `{"userId":"u9","items":[{"productId":"` + p.ID + `","quantity":1,"price":4.5}],"totalAmount":4.5,"deliveryAddress":"x"}`
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/orders", order).Code)

	for _, path := range []string{"/products", "/orders/u9", "/orders/nobody"} {
		first := s.do(t, http.MethodGet, path, "")
		second := s.do(t, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, first.Code)
		assert.True(t, bytes.Equal(first.Body.Bytes(), second.Body.Bytes()), path)
	}
	assert.JSONEq(t, `[]`, s.do(t, http.MethodGet, "/orders/nobody", "").Body.String())
}

func TestProducts_LooselyTypedFieldsAreCast(t *testing.T) {
	s := newTestServer(t)

	p := s.createProduct(t, `{"productName":"Saline","price":"9.99","quantity":"40","description":12}`)
	assert.Equal(t, 9.99, p.Price)
	assert.Equal(t, 40.0, p.Quantity)
	assert.Equal(t, "12", p.Description)

	rec := s.do(t, http.MethodPut, "/products/"+p.ID, `{"quantity":"7"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 7.0, s.products.Get(p.ID).Quantity)
}

func TestProducts_UncastableValuesAre500(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/products", `{"productName":"Saline","price":"cheap","quantity":1}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], `Cast to Number failed for value "cheap" at path "price"`)
	assert.JSONEq(t, `[]`, s.do(t, http.MethodGet, "/products", "").Body.String())

	p := s.createProduct(t, `{"productName":"Gauze","price":3,"quantity":5}`)
	for _, body := range []string{`{"quantity":"seven"}`, `{"quantity":{"$inc":1}}`} {
		rec = s.do(t, http.MethodPut, "/products/"+p.ID, body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, body)
		assert.Contains(t, decode[map[string]string](t, rec)["error"], "Cast to Number failed", body)
	}
	assert.Equal(t, 5.0, s.products.Get(p.ID).Quantity)
}

func TestSignup_LooselyTypedFields(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/signup", `{"fullName":"Ann Lee","username":42,"email":"ann@example.com","password":"pw123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/login", `{"username":"42","password":"pw123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/signup", `{"fullName":{"first":"Bob"},"username":"bob","email":"bob@example.com","password":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "Cast to string failed")
	assert.Equal(t, 1, s.users.Count())
}

func TestLogin_ObjectUsernameIs500(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/signup", annSignup).Code)

	rec := s.do(t, http.MethodPost, "/login", `{"username":{"$ne":null},"password":"pw123"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOrders_LooselyTypedFields(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, `{"productName":"Aspirin","price":4.5,"quantity":10}`)

	body := `{"userId":"u1","items":[{"productId":"` + p.ID + `","quantity":"1","price":"4.5"}],"totalAmount":"4.5","deliveryAddress":"x"}`
	rec := s.do(t, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/orders/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]map[string]any](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, 4.5, orders[0]["totalAmount"])
	items := orders[0]["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].(map[string]any)["quantity"])
}

func TestOrders_UncastableValuesUseOrderMessages(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"userId":"u1","items":[{"productId":"p1","quantity":"lots","price":1}],"totalAmount":1,"deliveryAddress":"x"}`,
		`{"userId":"u1","items":"p1","totalAmount":1,"deliveryAddress":"x"}`,
		`{"userId":"u1","items":[5],"totalAmount":1,"deliveryAddress":"x"}`,
		`{"userId":{"id":1},"items":[{"productId":"p1","quantity":1,"price":1}],"totalAmount":1,"deliveryAddress":"x"}`,
	} {
		rec := s.do(t, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, body)
		assert.JSONEq(t, `{"error":"Failed to place the order. Please check the server logs."}`, rec.Body.String(), body)
	}

	rec := s.do(t, http.MethodPost, "/orders", `{"userId":"u1","items":[{"productId":"p1","quantity":"lots","price":1}],"totalAmount":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields in order data."}`, rec.Body.String())

	assert.Equal(t, 0, s.orders.Count())
}

func TestNonObjectBodies(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/signup", `[]`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "User validation failed")

	rec = s.do(t, http.MethodPost, "/orders", `[{"userId":"u1"}]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields in order data."}`, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/products", `"aspirin"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "Invalid request payload")
}
