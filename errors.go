package mdui

import "errors"

// Sentinel errors returned when rendering or decoding fragments.
var (
	ErrEmptyTag         = errors.New("mdui: element has no tag")
	ErrInvalidTag       = errors.New("mdui: invalid tag name")
	ErrDecryptFailed    = errors.New("mdui: fragment decryption failed")
	ErrSignatureInvalid = errors.New("mdui: fragment signature verification failed")
	ErrInvalidFormat    = errors.New("mdui: invalid fragment format")
)

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// IsFragmentError checks if err came from decoding a fragment token.
func IsFragmentError(err error) bool {
	return IsDecryptionError(err) || errors.Is(err, ErrInvalidFormat)
}
