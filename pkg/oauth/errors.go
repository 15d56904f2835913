package oauth

import "errors"

var (
	ErrUnknownProvider   = errors.New("oauth: unknown provider")
	ErrMissingClientID   = errors.New("oauth: client id is required")
	ErrMissingEndpoint   = errors.New("oauth: endpoint or auth and token urls are required")
	ErrUnknownEndpoint   = errors.New("oauth: unknown well-known endpoint")
	ErrDuplicateProvider = errors.New("oauth: duplicate provider id")
	ErrStateNotFound     = errors.New("oauth: state not found or expired")
	ErrGenerateState     = errors.New("oauth: failed to generate state")
	ErrStoreState        = errors.New("oauth: failed to store state")
)
