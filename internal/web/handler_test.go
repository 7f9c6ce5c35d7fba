package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/renderers/text"
	"github.com/goliatone/go-orderform/pkg/submission"
	"github.com/goliatone/go-orderform/pkg/validation"
)

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, payload order.Payload) submission.Result {
	args := m.Called(payload)
	return args.Get(0).(submission.Result)
}

func setupTest(t *testing.T, sub *MockSubmitter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h, err := NewHandler(sub)
	require.NoError(t, err)
	return h.Router()
}

func postForm(router *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestShowForm(t *testing.T) {
	router := setupTest(t, new(MockSubmitter))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h2>Order Your Pizza</h2>")
	assert.Contains(t, w.Body.String(), `<input type="submit">`)
	assert.NotContains(t, w.Body.String(), `<input type="submit" disabled>`)
}

var formTag = regexp.MustCompile(`<form action="([^"]*)" method="([^"]*)"`)

func TestShowForm_PageCanBePosted(t *testing.T) {
	sub := new(MockSubmitter)
	want := order.Payload{FullName: "Alice", Size: "M", Toppings: []string{"2"}}
	sub.On("Submit", want).Return(submission.Ok("Order placed")).Once()
	router := setupTest(t, sub)

	page := httptest.NewRecorder()
	router.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, page.Code)
	body := page.Body.String()

	assert.NotContains(t, body, " disabled")
	for _, control := range []string{`name="fullName"`, `name="size"`, `name="toppings"`} {
		assert.Contains(t, body, control)
	}
	match := formTag.FindStringSubmatch(body)
	require.Len(t, match, 3, "form tag not found")
	require.Equal(t, http.MethodPost, match[2])

	w := postForm(router, match[1], url.Values{
		"fullName": {"Alice"},
		"size":     {"M"},
		"toppings": {"2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<div class="success" role="status">Order placed</div>`)
	sub.AssertExpectations(t)
}

func TestSubmitForm_InvalidInput(t *testing.T) {
	sub := new(MockSubmitter)
	router := setupTest(t, sub)

	w := postForm(router, "/", url.Values{"fullName": {"Al"}, "size": {"M"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), validation.MessageFullNameTooShort)
	assert.Contains(t, w.Body.String(), `value="Al"`)
	assert.Contains(t, w.Body.String(), `<input type="submit">`)
	sub.AssertNotCalled(t, "Submit", mock.Anything)
}

func TestSubmitForm_Success(t *testing.T) {
	sub := new(MockSubmitter)
	want := order.Payload{FullName: "Alice", Size: "L", Toppings: []string{"1", "3"}}
	sub.On("Submit", want).Return(submission.Ok("Order placed")).Once()
	router := setupTest(t, sub)

	w := postForm(router, "/", url.Values{
		"fullName": {"Alice"},
		"size":     {"L"},
		"toppings": {"3", "1"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<div class="success" role="status">Order placed</div>`)
	assert.Contains(t, body, `value=""`)
	assert.NotContains(t, body, " checked>")
	sub.AssertExpectations(t)
}

func TestSubmitForm_Failure(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.AnythingOfType("order.Payload")).Return(submission.Err("Out of stock")).Once()
	router := setupTest(t, sub)

	w := postForm(router, "/", url.Values{
		"fullName": {"Alice"},
		"size":     {"L"},
		"toppings": {"4"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<div class="failure" role="alert">Out of stock</div>`)
	assert.Contains(t, body, `value="Alice"`)
	assert.Contains(t, body, `value="4" checked>`)
	sub.AssertExpectations(t)
}

func TestValidateForm(t *testing.T) {
	sub := new(MockSubmitter)
	router := setupTest(t, sub)

	w := postForm(router, "/validate", url.Values{"fullName": {"Alice Smith"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var state text.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.False(t, state.CanSubmit)
	assert.Equal(t, validation.MessageSizeIncorrect, state.Errors["size"])
	assert.Equal(t, "", state.Errors["fullName"])
	sub.AssertNotCalled(t, "Submit", mock.Anything)
}

func TestHealth(t *testing.T) {
	router := setupTest(t, new(MockSubmitter))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAssets(t *testing.T) {
	router := setupTest(t, new(MockSubmitter))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/orderform.css", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".orderform")
}

func TestNewHandler_RequiresSubmitter(t *testing.T) {
	_, err := NewHandler(nil)
	assert.Error(t, err)
}
