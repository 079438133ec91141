package source

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/kbukum/kthmin/errors"
)

// Opener opens the resource a locator names. The caller closes the stream.
type Opener interface {
	Open(ctx context.Context, locator string) (io.ReadCloser, error)
}

// Supported locator schemes. A locator without "://" is a local path.
const (
	SchemeFile = "file"
	SchemeS3   = "s3"
)

// Scheme returns the lower-cased scheme of locator, or SchemeFile when it
// has none.
func Scheme(locator string) string {
	scheme, _, ok := strings.Cut(locator, "://")
	if !ok || scheme == "" {
		return SchemeFile
	}
	return strings.ToLower(scheme)
}

// Classify maps an open or read failure to a source kind.
func Classify(err error) errors.SourceKind {
	switch {
	case err == nil:
		return errors.SourceIO
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.SourceNotFound
	case stderrors.Is(err, fs.ErrPermission):
		return errors.SourcePermission
	}

	var noKey *types.NoSuchKey
	var noBucket *types.NoSuchBucket
	var notFound *types.NotFound
	if stderrors.As(err, &noKey) || stderrors.As(err, &noBucket) || stderrors.As(err, &notFound) {
		return errors.SourceNotFound
	}

	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return errors.SourceNotFound
		case "AccessDenied", "Forbidden", "InvalidAccessKeyId", "SignatureDoesNotMatch", "AllAccessDisabled":
			return errors.SourcePermission
		}
	}

	var status interface{ HTTPStatusCode() int }
	if stderrors.As(err, &status) {
		switch status.HTTPStatusCode() {
		case 404:
			return errors.SourceNotFound
		case 401, 403:
			return errors.SourcePermission
		}
	}
	return errors.SourceIO
}

// unavailable wraps err as a SOURCE_UNAVAILABLE error for locator.
func unavailable(locator string, err error) *errors.AppError {
	return errors.SourceUnavailable(locator, Classify(err), err)
}
