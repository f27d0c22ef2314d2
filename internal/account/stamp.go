package account

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gabriel-vasile/mimetype"

	"github.com/mmynk/docwiser/internal/models"
)

// DefaultMaxStampBytes bounds the size of an uploaded stamp image.
const DefaultMaxStampBytes = 2 << 20

// ErrStaleStamp reports a stamp load that was superseded by a newer request.
var ErrStaleStamp = errors.New("stamp request superseded")

// StampResult is delivered once per Load.
type StampResult struct {
	Token   uint64
	UserID  string
	Applied bool
	Err     error
}

// StampLoader reads stamp images asynchronously. Every Load or Clear issues a
// monotonically increasing token; a completed read is written only if its
// token is still the latest one issued for that user.
type StampLoader struct {
	profiles *Profiles
	maxBytes int64

	seq    atomic.Uint64
	mu     sync.Mutex
	latest map[string]uint64
}

// NewStampLoader creates a loader writing through profiles. maxBytes <= 0 uses DefaultMaxStampBytes.
func NewStampLoader(profiles *Profiles, maxBytes int64) *StampLoader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxStampBytes
	}
	return &StampLoader{
		profiles: profiles,
		maxBytes: maxBytes,
		latest:   make(map[string]uint64),
	}
}

func (l *StampLoader) issue(userID string) uint64 {
	token := l.seq.Add(1)
	l.mu.Lock()
	l.latest[userID] = token
	l.mu.Unlock()
	return token
}

// Load starts reading r in the background and returns the request token and a
// channel that receives exactly one result. Until the result is applied the
// previously stored stamp stays in effect. ctx must outlive the read.
func (l *StampLoader) Load(ctx context.Context, userID string, r io.Reader) (uint64, <-chan StampResult) {
	token := l.issue(userID)
	done := make(chan StampResult, 1)

	go func() {
		result := StampResult{Token: token, UserID: userID}
		ref, err := l.read(r)
		if err == nil {
			err = l.complete(ctx, userID, token, ref)
		}
		result.Applied = err == nil
		result.Err = err
		done <- result
	}()

	return token, done
}

// Clear removes the stamp and discards any load still in flight for the user.
func (l *StampLoader) Clear(ctx context.Context, userID string) error {
	token := l.issue(userID)
	return l.complete(ctx, userID, token, "")
}

func (l *StampLoader) complete(ctx context.Context, userID string, token uint64, ref string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.latest[userID] != token {
		return ErrStaleStamp
	}
	return l.profiles.SetStamp(ctx, userID, ref)
}

func (l *StampLoader) read(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read stamp: %w", err)
	}
	if len(data) == 0 {
		return "", models.NewValidationError("stamp", "empty file")
	}
	if int64(len(data)) > l.maxBytes {
		return "", models.NewValidationError("stamp", fmt.Sprintf("larger than %d bytes", l.maxBytes))
	}

	mime := mimetype.Detect(data).String()
	if !strings.HasPrefix(mime, "image/") {
		return "", models.NewValidationError("stamp", "not an image: "+mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
