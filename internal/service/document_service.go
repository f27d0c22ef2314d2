// Package service exposes the document engine over Connect.
package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/docwiser/internal/account"
	"github.com/mmynk/docwiser/internal/auth"
	"github.com/mmynk/docwiser/internal/calculator"
	"github.com/mmynk/docwiser/internal/metrics"
	"github.com/mmynk/docwiser/internal/middleware"
	"github.com/mmynk/docwiser/internal/models"
	"github.com/mmynk/docwiser/internal/render"
	"github.com/mmynk/docwiser/internal/storage"
	pb "github.com/mmynk/docwiser/pkg/proto"
	"github.com/mmynk/docwiser/pkg/proto/protoconnect"
)

// OptionalSessionProcedures can be called without a session.
var OptionalSessionProcedures = []string{
	protoconnect.DocumentServiceLoginProcedure,
	protoconnect.DocumentServiceCurrentUserProcedure,
	protoconnect.DocumentServiceGetDocumentTypeProcedure,
	protoconnect.DocumentServicePreviewItemsProcedure,
	protoconnect.DocumentServiceGenerateDocumentProcedure,
}

// Options configures a DocumentService.
type Options struct {
	Store    storage.Store
	DocType  *models.DocType
	Exporter *render.Exporter
	Tokens   *auth.JWTManager
	Metrics  *metrics.Metrics
	Logger   *slog.Logger

	MaxStampBytes int64
	Assembler     []AssemblerOption
}

// DocumentService implements the Connect DocumentService for one document type.
type DocumentService struct {
	docType   *models.DocType
	registry  *account.Registry
	identity  *account.Identity
	profiles  *account.Profiles
	history   *account.History
	stamps    *account.StampLoader
	assembler *Assembler
	exporter  *render.Exporter
	authn     *auth.Authenticator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

var _ protoconnect.DocumentServiceHandler = (*DocumentService)(nil)

// NewDocumentService wires the account stores, the assembler and the exporter over opts.Store.
func NewDocumentService(opts Options) *DocumentService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("doc_type", opts.DocType.Key)

	reg := account.NewRegistry(opts.Store, opts.DocType, logger)
	profiles := account.NewProfiles(reg)
	history := account.NewHistory(reg)
	identity := account.NewIdentity(reg, profiles)

	return &DocumentService{
		docType:   opts.DocType,
		registry:  reg,
		identity:  identity,
		profiles:  profiles,
		history:   history,
		stamps:    account.NewStampLoader(profiles, opts.MaxStampBytes),
		assembler: NewAssembler(opts.DocType, profiles, history, opts.Metrics, logger, opts.Assembler...),
		exporter:  opts.Exporter,
		authn:     auth.NewAuthenticator(identity, opts.Tokens),
		metrics:   opts.Metrics,
		logger:    logger,
	}
}

// Handler returns the Connect handler of s with session and logging interceptors installed.
func (s *DocumentService) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	interceptors := connect.WithInterceptors(
		middleware.RequireSession(s.authn, OptionalSessionProcedures...),
		middleware.LoggingInterceptor(s.logger, s.metrics),
	)
	return protoconnect.NewDocumentServiceHandler(s, append([]connect.HandlerOption{interceptors}, opts...)...)
}

// Users returns the ids of every stored user.
func (s *DocumentService) Users(ctx context.Context) ([]string, error) {
	return s.registry.Users(ctx)
}

// Documents returns the history of userID.
func (s *DocumentService) Documents(ctx context.Context, userID string) ([]*models.Document, error) {
	return s.history.ListAll(ctx, userID)
}

// Export renders the document at index of userID's history.
func (s *DocumentService) Export(ctx context.Context, userID string, index int, format string) (*render.Artifact, error) {
	doc, err := s.history.Get(ctx, userID, index)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(doc, format)
}

// sessionUser returns the user bound to the request by the session interceptor.
func sessionUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// toConnectError maps domain errors onto Connect codes.
func (s *DocumentService) toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	var validation *models.ValidationError
	switch {
	case errors.As(err, &validation):
		s.metrics.ValidationFailed(validation.Field)
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrSchemaVersion):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, account.ErrStaleStamp):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// Login opens the local session and issues a token bound to it.
func (s *DocumentService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error) {
	session, err := s.identity.Login(ctx, req.Msg.GetId(), req.Msg.GetSecret())
	if err != nil {
		return nil, s.toConnectError(err)
	}

	token, err := s.authn.Issue(session.UserID)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", session.UserID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&pb.LoginResponse{
		UserId:  session.UserID,
		Token:   token,
		Profile: toProtoProfile(session.Profile),
	}), nil
}

// Logout ends the local session; every token issued for it stops working.
func (s *DocumentService) Logout(ctx context.Context, req *connect.Request[pb.LogoutRequest]) (*connect.Response[pb.LogoutResponse], error) {
	if _, err := sessionUser(ctx); err != nil {
		return nil, err
	}
	if err := s.identity.Logout(ctx); err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&pb.LogoutResponse{}), nil
}

// CurrentUser reports the user of the active session, if any.
func (s *DocumentService) CurrentUser(ctx context.Context, req *connect.Request[pb.CurrentUserRequest]) (*connect.Response[pb.CurrentUserResponse], error) {
	userID, ok, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&pb.CurrentUserResponse{UserId: userID, LoggedIn: ok}), nil
}

// GetDocumentType describes the form the client should render.
func (s *DocumentService) GetDocumentType(ctx context.Context, req *connect.Request[pb.GetDocumentTypeRequest]) (*connect.Response[pb.GetDocumentTypeResponse], error) {
	return connect.NewResponse(&pb.GetDocumentTypeResponse{DocumentType: toProtoDocumentType(s.docType)}), nil
}

// GetProfile returns the stored profile of the session user.
func (s *DocumentService) GetProfile(ctx context.Context, req *connect.Request[pb.GetProfileRequest]) (*connect.Response[pb.GetProfileResponse], error) {
	userID, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Load(ctx, userID)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&pb.GetProfileResponse{Profile: toProtoProfile(profile)}), nil
}

// SetProfileField persists one supplier or recipient field. Unknown fields are
// ignored and reported as not applied.
func (s *DocumentService) SetProfileField(ctx context.Context, req *connect.Request[pb.SetProfileFieldRequest]) (*connect.Response[pb.SetProfileFieldResponse], error) {
	userID, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}
	applied, err := s.profiles.SetField(ctx, userID, req.Msg.GetField(), req.Msg.GetValue())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	if !applied {
		s.logger.Debug("Ignoring unknown profile field", "user_id", userID, "field", req.Msg.GetField())
	}
	return connect.NewResponse(&pb.SetProfileFieldResponse{Applied: applied}), nil
}

// UploadStamp replaces the stamp image and waits for the load to finish. If
// the caller goes away first the load still completes in the background.
func (s *DocumentService) UploadStamp(ctx context.Context, req *connect.Request[pb.UploadStampRequest]) (*connect.Response[pb.UploadStampResponse], error) {
	userID, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}
	if !s.docType.Stamp {
		return nil, s.toConnectError(models.NewValidationError("stamp", "not supported by "+s.docType.Key))
	}

	token, done := s.stamps.Load(context.WithoutCancel(ctx), userID, bytes.NewReader(req.Msg.GetImage()))
	select {
	case result := <-done:
		s.recordStamp(result)
		if result.Err != nil {
			return nil, s.toConnectError(result.Err)
		}
		return connect.NewResponse(&pb.UploadStampResponse{Token: token, Applied: result.Applied}), nil
	case <-ctx.Done():
		go func() { s.recordStamp(<-done) }()
		return nil, s.toConnectError(ctx.Err())
	}
}

func (s *DocumentService) recordStamp(result account.StampResult) {
	switch {
	case result.Err == nil:
		s.metrics.StampLoad(metrics.StampApplied)
		s.logger.Info("Stamp updated", "user_id", result.UserID, "token", result.Token)
	case errors.Is(result.Err, account.ErrStaleStamp):
		s.metrics.StampLoad(metrics.StampStale)
		s.logger.Info("Discarding superseded stamp", "user_id", result.UserID, "token", result.Token)
	default:
		s.metrics.StampLoad(metrics.StampRejected)
		s.logger.Warn("Stamp rejected", "user_id", result.UserID, "token", result.Token, "error", result.Err)
	}
}

// ClearStamp removes the stamp and discards loads still in flight.
func (s *DocumentService) ClearStamp(ctx context.Context, req *connect.Request[pb.ClearStampRequest]) (*connect.Response[pb.ClearStampResponse], error) {
	userID, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.stamps.Clear(ctx, userID); err != nil {
		return nil, s.toConnectError(err)
	}
	s.metrics.StampLoad(metrics.StampCleared)
	return connect.NewResponse(&pb.ClearStampResponse{}), nil
}

// PreviewItems computes rows and totals leniently for in-progress input.
func (s *DocumentService) PreviewItems(ctx context.Context, req *connect.Request[pb.PreviewItemsRequest]) (*connect.Response[pb.PreviewItemsResponse], error) {
	rows, totals := calculator.Preview(fromProtoItems(req.Msg.GetItems()))

	out := make([]*pb.Row, len(rows))
	for i, r := range rows {
		out[i] = &pb.Row{SupplyPrice: amount(r.SupplyPrice), Tax: amount(r.Tax)}
	}
	return connect.NewResponse(&pb.PreviewItemsResponse{
		Rows:   out,
		Totals: toProtoTotals(totals.Supply, totals.Tax, totals.Amount),
	}), nil
}

// GenerateDocument builds a document from the form. With a session it is
// appended to the user's history; anonymous documents are returned only.
func (s *DocumentService) GenerateDocument(ctx context.Context, req *connect.Request[pb.GenerateDocumentRequest]) (*connect.Response[pb.GenerateDocumentResponse], error) {
	generated, err := s.assembler.Generate(ctx, middleware.GetUserID(ctx), GenerateInput{
		Header:    req.Msg.GetHeader(),
		Items:     fromProtoItems(req.Msg.GetItems()),
		Supplier:  req.Msg.GetSupplier(),
		Recipient: req.Msg.GetRecipient(),
	})
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&pb.GenerateDocumentResponse{
		Document:  toProtoDocument(generated.Document),
		Persisted: generated.Persisted,
		Index:     int32(generated.Index),
	}), nil
}

// ListDocuments returns the session user's history in generation order.
func (s *DocumentService) ListDocuments(ctx context.Context, req *connect.Request[pb.ListDocumentsRequest]) (*connect.Response[pb.ListDocumentsResponse], error) {
	userID, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.Documents(ctx, userID)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	out := make([]*pb.Document, len(docs))
	for i, d := range docs {
		out[i] = toProtoDocument(d)
	}
	return connect.NewResponse(&pb.ListDocumentsResponse{Documents: out}), nil
}

// ExportDocument renders one stored document as PDF or HTML.
func (s *DocumentService) ExportDocument(ctx context.Context, req *connect.Request[pb.ExportDocumentRequest]) (*connect.Response[pb.ExportDocumentResponse], error) {
	userID, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}
	artifact, err := s.Export(ctx, userID, int(req.Msg.GetIndex()), req.Msg.GetFormat())
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&pb.ExportDocumentResponse{
		Filename:    artifact.Filename,
		ContentType: artifact.ContentType,
		Body:        artifact.Body,
	}), nil
}
