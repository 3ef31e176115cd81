// Package integration provides helpers and integration tests for the city
// flight graph. Integration tests run the full HTTP stack (middleware,
// handlers, use cases and the guarded store) over the in-memory graph store.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	_ "github.com/flight-search/city-flight-graph/docs"
	"github.com/flight-search/city-flight-graph/internal/adapter/graph"
	"github.com/flight-search/city-flight-graph/internal/adapter/graph/memory"
	graphhttp "github.com/flight-search/city-flight-graph/internal/adapter/http"
	"github.com/flight-search/city-flight-graph/internal/adapter/http/middleware"
	"github.com/flight-search/city-flight-graph/internal/adapter/http/response"
	"github.com/flight-search/city-flight-graph/internal/usecase"
	"github.com/flight-search/city-flight-graph/test/mock"
)

// Options tunes the stack built by NewTestServer.
type Options struct {
	// Breaker configures the store circuit breaker; the zero value disables it
	Breaker graph.BreakerConfig

	// OperationTimeout bounds each use case call; zero uses the default
	OperationTimeout time.Duration
}

// TestServer wraps an Echo instance and the stores behind it.
type TestServer struct {
	Echo *echo.Echo

	// Faults injects errors and delays between the use cases and Backend
	Faults *mock.Store

	// Backend holds the graph data
	Backend *memory.Store

	// Registry collects the HTTP and store metrics
	Registry *prometheus.Registry
}

// NewTestServer builds the application stack the way cmd/server does.
// If opts is nil, the breaker is disabled and default timeouts apply.
func NewTestServer(t *testing.T, opts *Options) *TestServer {
	t.Helper()
	if opts == nil {
		opts = &Options{}
	}

	backend := memory.New()
	faults := mock.NewStore(backend)
	reg := prometheus.NewRegistry()
	store := graph.Guard(faults, opts.Breaker, graph.NewMetrics(reg), zerolog.Nop())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, zerolog.Nop(), middleware.NewHTTPMetrics(reg))

	ucConfig := &usecase.Config{OperationTimeout: opts.OperationTimeout}
	handler := graphhttp.NewHandler(
		usecase.NewRegistrar(store, ucConfig),
		usecase.NewRouteFinder(store, ucConfig),
		store,
	)
	graphhttp.RegisterRoutes(e, handler, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "/metrics")

	return &TestServer{
		Echo:     e,
		Faults:   faults,
		Backend:  backend,
		Registry: reg,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	RawBody string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch {
	case req.RawBody != "":
		bodyReader = bytes.NewReader([]byte(req.RawBody))
	case req.Body != nil:
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	default:
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil || req.RawBody != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get makes a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Put makes a PUT request with a JSON body.
func (ts *TestServer) Put(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPut, Path: path, Body: body})
}

// Post makes a POST request without a body.
func (ts *TestServer) Post(path string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path})
}

// ParseError parses the response body as an error response.
func (r *Response) ParseError() (response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	err := json.Unmarshal(r.Body, &errResp)
	return errResp, err
}

// CityBody is the JSON body of PUT /cities.
type CityBody struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// AirportBody is the JSON body of PUT /cities/{name}/airports.
type AirportBody struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	NumberOfTerminals int    `json:"numberOfTerminals"`
	Address           string `json:"address"`
}

// FlightBody is the JSON body of PUT /flights.
type FlightBody struct {
	Number              string  `json:"number"`
	FromAirport         string  `json:"fromAirport"`
	ToAirport           string  `json:"toAirport"`
	Price               float64 `json:"price"`
	FlightTimeInMinutes int     `json:"flightTimeInMinutes"`
	Operator            string  `json:"operator"`
}

// SeedOverHTTP registers Paris, London, CDG, LHR and AF100 through the API
// and fails the test if any call is rejected.
func (ts *TestServer) SeedOverHTTP(t *testing.T) {
	t.Helper()

	steps := []struct {
		path string
		body interface{}
	}{
		{"/cities", CityBody{Name: "Paris", Country: "France"}},
		{"/cities", CityBody{Name: "London", Country: "UK"}},
		{"/cities/Paris/airports", AirportBody{
			Code: "CDG", Name: "Charles de Gaulle", NumberOfTerminals: 3, Address: "95700 Roissy-en-France",
		}},
		{"/cities/London/airports", AirportBody{
			Code: "LHR", Name: "Heathrow", NumberOfTerminals: 4, Address: "Hounslow TW6",
		}},
		{"/flights", FlightBody{
			Number: "AF100", FromAirport: "CDG", ToAirport: "LHR",
			Price: 100, FlightTimeInMinutes: 80, Operator: "Air France",
		}},
	}

	for _, s := range steps {
		resp := ts.Put(s.path, s.body)
		if resp.Code != http.StatusNoContent {
			t.Fatalf("PUT %s: got %d: %s", s.path, resp.Code, resp.Body)
		}
	}
}

// FastBreaker opens after two failed calls and stays open for the test.
func FastBreaker() graph.BreakerConfig {
	return graph.BreakerConfig{
		Enabled:      true,
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		FailureRatio: 0.5,
		MinRequests:  2,
	}
}
