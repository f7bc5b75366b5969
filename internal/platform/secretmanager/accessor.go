// Package secretmanager adapts Google Cloud Secret Manager to the
// prompt.SecretAccessor interface. It translates gRPC status codes into the
// prompt package's sentinel errors so the prompt client never sees SDK types.
package secretmanager

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"

	smapi "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/phrazzld/devai/internal/prompt"
)

// ErrChecksumMismatch is returned when a payload does not match the CRC32C
// checksum the service sent alongside it.
var ErrChecksumMismatch = errors.New("secret payload checksum mismatch")

// versionClient is the subset of the Secret Manager client the Accessor uses.
type versionClient interface {
	AccessSecretVersion(
		ctx context.Context,
		req *secretmanagerpb.AccessSecretVersionRequest,
		opts ...gax.CallOption,
	) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

// clientFactory opens a versionClient.
type clientFactory func(ctx context.Context, opts ...option.ClientOption) (versionClient, error)

func newGRPCClient(ctx context.Context, opts ...option.ClientOption) (versionClient, error) {
	c, err := smapi.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Accessor reads secret versions from Secret Manager.
//
// A client is opened for every access and closed afterwards, so a command
// that never looks up a prompt never builds credentials.
type Accessor struct {
	userAgent string
	opts      []option.ClientOption
	newClient clientFactory
}

var _ prompt.SecretAccessor = (*Accessor)(nil)

// NewAccessor creates an Accessor whose requests carry userAgent.
// Extra client options are appended after the user agent.
func NewAccessor(userAgent string, opts ...option.ClientOption) *Accessor {
	return &Accessor{
		userAgent: userAgent,
		opts:      opts,
		newClient: newGRPCClient,
	}
}

// AccessSecretVersion returns the payload of the secret version called name,
// e.g. projects/p/secrets/s/versions/latest.
func (a *Accessor) AccessSecretVersion(ctx context.Context, name string) ([]byte, error) {
	opts := append([]option.ClientOption{option.WithUserAgent(a.userAgent)}, a.opts...)

	client, err := a.newClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret manager client: %w", err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return nil, classify(name, err)
	}

	payload := resp.GetPayload()
	if payload == nil {
		return nil, fmt.Errorf("%w: %s has no payload", prompt.ErrNotFound, name)
	}

	data := payload.GetData()
	if payload.DataCrc32C != nil {
		sum := crc32.Checksum(data, crc32.MakeTable(crc32.Castagnoli))
		if int64(sum) != payload.GetDataCrc32C() {
			return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, name)
		}
	}

	return data, nil
}

// classify maps gRPC status codes onto the prompt package's sentinel errors.
// The original error stays in the chain.
func classify(name string, err error) error {
	switch status.Code(err) {
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s: %w", prompt.ErrPermissionDenied, name, err)
	case codes.NotFound:
		return fmt.Errorf("%w: %s: %w", prompt.ErrNotFound, name, err)
	default:
		return fmt.Errorf("failed to access %s: %w", name, err)
	}
}
