package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/docwiser/internal/auth"
	"github.com/mmynk/docwiser/internal/metrics"
	"github.com/mmynk/docwiser/internal/models"
	"github.com/mmynk/docwiser/internal/render"
	"github.com/mmynk/docwiser/internal/storage/memory"
	pb "github.com/mmynk/docwiser/pkg/proto"
	"github.com/mmynk/docwiser/pkg/proto/protoconnect"
)

var testNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

// newTestService creates a service for docTypeKey over an in-memory store
// with a fixed clock.
func newTestService(t *testing.T, docTypeKey string) (*DocumentService, *memory.Store) {
	t.Helper()

	docType, err := models.BuiltinDocTypes().Get(docTypeKey)
	require.NoError(t, err)

	formatter, err := render.NewFormatter("ko")
	require.NoError(t, err)
	pdf, err := render.NewPDFRenderer("")
	require.NoError(t, err)

	store := memory.New()
	svc := NewDocumentService(Options{
		Store:     store,
		DocType:   docType,
		Exporter:  render.NewExporter(docType, formatter, render.KoreanLabels(), pdf),
		Tokens:    auth.NewJWTManager("test-secret", docType.Scope, time.Hour),
		Metrics:   metrics.New(prometheus.NewRegistry()),
		Assembler: []AssemblerOption{WithClock(func() time.Time { return testNow })},
	})
	return svc, store
}

// setupTestServer serves svc over httptest and returns a client for it.
func setupTestServer(t *testing.T, svc *DocumentService) protoconnect.DocumentServiceClient {
	t.Helper()

	path, handler := svc.Handler()
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return protoconnect.NewDocumentServiceClient(http.DefaultClient, server.URL)
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func requireCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, connect.CodeOf(err), "error: %v", err)
}

func item(name, qty, price string, exempt bool) *pb.ItemInput {
	return &pb.ItemInput{Name: name, Quantity: qty, UnitPrice: price, TaxExempt: exempt}
}

func requireTotals(t *testing.T, totals *pb.Totals, supply, tax, amount string) {
	t.Helper()
	require.NotNil(t, totals)
	require.Equal(t, supply, totals.GetSupply(), "supply")
	require.Equal(t, tax, totals.GetTax(), "tax")
	require.Equal(t, amount, totals.GetAmount(), "amount")
}
