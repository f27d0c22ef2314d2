package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/docwiser/internal/models"
	pb "github.com/mmynk/docwiser/pkg/proto"
)

const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00"

func login(t *testing.T, client interface {
	Login(context.Context, *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error)
}, id string) string {
	t.Helper()
	resp, err := client.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{Id: id, Secret: "anything"}))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Msg.Token)
	return resp.Msg.Token
}

func TestDocumentService_EndToEnd(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	client := setupTestServer(t, svc)
	ctx := context.Background()

	typ, err := client.GetDocumentType(ctx, connect.NewRequest(&pb.GetDocumentTypeRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "statement", typ.Msg.DocumentType.Key)
	assert.True(t, typ.Msg.DocumentType.Stamp)
	assert.Len(t, typ.Msg.DocumentType.Supplier, 8)

	token := login(t, client, "a@x.com")

	set, err := client.SetProfileField(ctx, withToken(&pb.SetProfileFieldRequest{Field: "supplier_name", Value: "Acme"}, token))
	require.NoError(t, err)
	assert.True(t, set.Msg.Applied)

	set, err = client.SetProfileField(ctx, withToken(&pb.SetProfileFieldRequest{Field: "nonsense", Value: "x"}, token))
	require.NoError(t, err)
	assert.False(t, set.Msg.Applied)

	stamp, err := client.UploadStamp(ctx, withToken(&pb.UploadStampRequest{Image: []byte(pngHeader)}, token))
	require.NoError(t, err)
	assert.True(t, stamp.Msg.Applied)

	preview, err := client.PreviewItems(ctx, connect.NewRequest(&pb.PreviewItemsRequest{Items: []*pb.ItemInput{
		item("widget", "2", "1000", false),
		item("typing", "abc", "", false),
	}}))
	require.NoError(t, err)
	require.Len(t, preview.Msg.Rows, 2)
	assert.Equal(t, "2000", preview.Msg.Rows[0].GetSupplyPrice())
	assert.Equal(t, "200", preview.Msg.Rows[0].GetTax())
	assert.Equal(t, "0", preview.Msg.Rows[1].GetSupplyPrice())
	assert.Equal(t, "0", preview.Msg.Rows[1].GetTax())
	requireTotals(t, preview.Msg.Totals, "2000", "200", "2200")

	gen, err := client.GenerateDocument(ctx, withToken(&pb.GenerateDocumentRequest{
		Header: map[string]string{"transaction_date": "2024-05-01"},
		Items: []*pb.ItemInput{
			item("exempt", "1", "500", true),
			item("normal", "1", "1,000", false),
		},
	}, token))
	require.NoError(t, err)
	assert.True(t, gen.Msg.Persisted)
	assert.Equal(t, int32(0), gen.Msg.Index)
	requireTotals(t, gen.Msg.Document.Totals, "1500", "100", "1600")
	assert.Equal(t, "2024-05-01T09:30:00Z", gen.Msg.Document.CreatedAt)
	assert.Equal(t, "Acme", gen.Msg.Document.Supplier["supplier_name"])
	assert.True(t, strings.HasPrefix(gen.Msg.Document.Stamp, "data:image/png;base64,"))

	list, err := client.ListDocuments(ctx, withToken(&pb.ListDocumentsRequest{}, token))
	require.NoError(t, err)
	require.Len(t, list.Msg.Documents, 1)
	assert.Equal(t, gen.Msg.Document.Id, list.Msg.Documents[0].Id)

	html, err := client.ExportDocument(ctx, withToken(&pb.ExportDocumentRequest{Index: 0, Format: "html"}, token))
	require.NoError(t, err)
	assert.Equal(t, "거래명세서.html", html.Msg.Filename)
	assert.Contains(t, string(html.Msg.Body), "1,600")
	assert.Contains(t, string(html.Msg.Body), "비과세")

	_, err = client.ExportDocument(ctx, withToken(&pb.ExportDocumentRequest{Index: 3, Format: "html"}, token))
	requireCode(t, err, connect.CodeNotFound)

	_, err = client.ExportDocument(ctx, withToken(&pb.ExportDocumentRequest{Index: 0, Format: "docx"}, token))
	requireCode(t, err, connect.CodeInvalidArgument)
}

func TestDocumentService_GenerateValidation(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	client := setupTestServer(t, svc)
	ctx := context.Background()
	token := login(t, client, "a@x.com")

	_, err := client.GenerateDocument(ctx, withToken(&pb.GenerateDocumentRequest{
		Items: []*pb.ItemInput{item("widget", "", "1000", false)},
	}, token))
	requireCode(t, err, connect.CodeInvalidArgument)
	assert.Contains(t, err.Error(), "quantity")

	list, err := client.ListDocuments(ctx, withToken(&pb.ListDocumentsRequest{}, token))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Documents)
}

func TestDocumentService_ExponentAmounts(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	client := setupTestServer(t, svc)
	ctx := context.Background()

	preview, err := client.PreviewItems(ctx, connect.NewRequest(&pb.PreviewItemsRequest{Items: []*pb.ItemInput{
		item("huge", "1e100000000", "3", false),
		item("tiny", "1", "1e-10000000", false),
	}}))
	require.NoError(t, err)
	requireTotals(t, preview.Msg.Totals, "0", "0", "0")

	_, err = client.GenerateDocument(ctx, connect.NewRequest(&pb.GenerateDocumentRequest{
		Items: []*pb.ItemInput{item("huge", "1e100000000", "3", false)},
	}))
	requireCode(t, err, connect.CodeInvalidArgument)
	assert.Contains(t, err.Error(), "quantity")
}

func TestDocumentService_Sessions(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	client := setupTestServer(t, svc)
	ctx := context.Background()

	_, err := client.GetProfile(ctx, connect.NewRequest(&pb.GetProfileRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated)

	_, err = client.GetProfile(ctx, withToken(&pb.GetProfileRequest{}, "garbage"))
	requireCode(t, err, connect.CodeUnauthenticated)

	_, err = client.Login(ctx, connect.NewRequest(&pb.LoginRequest{Id: "  ", Secret: "pw"}))
	requireCode(t, err, connect.CodeInvalidArgument)

	token := login(t, client, "a@x.com")

	cur, err := client.CurrentUser(ctx, connect.NewRequest(&pb.CurrentUserRequest{}))
	require.NoError(t, err)
	assert.True(t, cur.Msg.LoggedIn)
	assert.Equal(t, "a@x.com", cur.Msg.UserId)

	_, err = client.Logout(ctx, withToken(&pb.LogoutRequest{}, token))
	require.NoError(t, err)

	_, err = client.GetProfile(ctx, withToken(&pb.GetProfileRequest{}, token))
	requireCode(t, err, connect.CodeUnauthenticated)

	cur, err = client.CurrentUser(ctx, connect.NewRequest(&pb.CurrentUserRequest{}))
	require.NoError(t, err)
	assert.False(t, cur.Msg.LoggedIn)

	// A stale token on generation degrades to anonymous.
	gen, err := client.GenerateDocument(ctx, withToken(&pb.GenerateDocumentRequest{
		Items: []*pb.ItemInput{item("widget", "1", "1", false)},
	}, token))
	require.NoError(t, err)
	assert.False(t, gen.Msg.Persisted)
}

func TestDocumentService_LoginSwitchInvalidatesToken(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	client := setupTestServer(t, svc)
	ctx := context.Background()

	first := login(t, client, "a@x.com")
	second := login(t, client, "b@x.com")

	_, err := client.GetProfile(ctx, withToken(&pb.GetProfileRequest{}, first))
	requireCode(t, err, connect.CodeUnauthenticated)

	resp, err := client.GetProfile(ctx, withToken(&pb.GetProfileRequest{}, second))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.Profile.Supplier)
}

func TestDocumentService_ScenarioD(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	client := setupTestServer(t, svc)
	ctx := context.Background()

	token := login(t, client, "a@x.com")
	for field, value := range map[string]string{
		"supplier_name":  "Acme",
		"recipient_name": "Globex",
	} {
		_, err := client.SetProfileField(ctx, withToken(&pb.SetProfileFieldRequest{Field: field, Value: value}, token))
		require.NoError(t, err)
	}
	_, err := client.UploadStamp(ctx, withToken(&pb.UploadStampRequest{Image: []byte(pngHeader)}, token))
	require.NoError(t, err)

	before, err := client.GetProfile(ctx, withToken(&pb.GetProfileRequest{}, token))
	require.NoError(t, err)

	_, err = client.Logout(ctx, withToken(&pb.LogoutRequest{}, token))
	require.NoError(t, err)

	resp, err := client.Login(ctx, connect.NewRequest(&pb.LoginRequest{Id: "a@x.com", Secret: "different"}))
	require.NoError(t, err)
	assert.True(t, proto.Equal(before.Msg.Profile, resp.Msg.Profile))
	assert.NotEmpty(t, resp.Msg.Profile.Stamp)
}

func TestDocumentService_Stamps(t *testing.T) {
	t.Run("rejected image", func(t *testing.T) {
		svc, _ := newTestService(t, models.DocTypeStatement)
		client := setupTestServer(t, svc)
		token := login(t, client, "a@x.com")

		_, err := client.UploadStamp(context.Background(), withToken(&pb.UploadStampRequest{Image: []byte("plain text")}, token))
		requireCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("clear", func(t *testing.T) {
		svc, _ := newTestService(t, models.DocTypeStatement)
		client := setupTestServer(t, svc)
		ctx := context.Background()
		token := login(t, client, "a@x.com")

		_, err := client.UploadStamp(ctx, withToken(&pb.UploadStampRequest{Image: []byte(pngHeader)}, token))
		require.NoError(t, err)
		_, err = client.ClearStamp(ctx, withToken(&pb.ClearStampRequest{}, token))
		require.NoError(t, err)

		resp, err := client.GetProfile(ctx, withToken(&pb.GetProfileRequest{}, token))
		require.NoError(t, err)
		assert.Empty(t, resp.Msg.Profile.Stamp)
	})

	t.Run("estimate has no stamp", func(t *testing.T) {
		svc, _ := newTestService(t, models.DocTypeEstimate)
		client := setupTestServer(t, svc)
		ctx := context.Background()
		token := login(t, client, "a@x.com")

		_, err := client.UploadStamp(ctx, withToken(&pb.UploadStampRequest{Image: []byte(pngHeader)}, token))
		requireCode(t, err, connect.CodeInvalidArgument)
		_, err = client.ClearStamp(ctx, withToken(&pb.ClearStampRequest{}, token))
		requireCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestDocumentService_NewerSchema(t *testing.T) {
	svc, store := newTestService(t, models.DocTypeStatement)
	client := setupTestServer(t, svc)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "soa.users", []byte(`{"a@x.com":{"schema_version":2,"profile":{}}}`)))

	_, err := client.Login(ctx, connect.NewRequest(&pb.LoginRequest{Id: "a@x.com", Secret: "pw"}))
	requireCode(t, err, connect.CodeFailedPrecondition)
}
