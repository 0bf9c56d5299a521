// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package service

import (
	"errors"

	"github.com/ravenbix/rstools/internal/proxy"
)

// mapProxyError translates the proxy's transport error into a service
// business error. The original error stays in the chain so its message (the
// server's own fault text) survives to the caller.
func mapProxyError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, proxy.ErrItemNotFound):
		return errors.Join(ErrItemNotFound, err)
	case errors.Is(err, proxy.ErrItemAlreadyExists):
		return errors.Join(ErrItemAlreadyExists, err)
	case errors.Is(err, proxy.ErrAccessDenied):
		return errors.Join(ErrAccessDenied, err)
	case errors.Is(err, proxy.ErrInvalidItemPath):
		return errors.Join(ErrInvalidPath, err)
	}

	return err
}
