package catalog

import (
	stderrors "errors"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

// wrapReadError wraps a filesystem error. Missing files map to CodeNotFound,
// everything else to CodeInvalidInput.
func wrapReadError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	code := errors.CodeInvalidInput
	if stderrors.Is(err, core.ErrNotExist) {
		code = errors.CodeNotFound
	}
	return errors.WrapWithContext(err, code, message, ctx)
}

// wrapDecodeError wraps a YAML decoding error with CodeInvalidInput.
func wrapDecodeError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeInvalidInput, message, ctx)
}

// invalidCatalog reports a catalog document that decoded but is not usable.
func invalidCatalog(message string, ctx map[string]interface{}) errors.PlatformError {
	return errors.WithContextMap(errors.New(errors.CodeInvalidInput, message), ctx)
}

// makeContext builds an error context map from alternating keys and values.
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	ctx := make(map[string]interface{}, len(kvPairs)/2)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		if key, ok := kvPairs[i].(string); ok {
			ctx[key] = kvPairs[i+1]
		}
	}
	return ctx
}
