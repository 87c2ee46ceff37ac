package codec

import errorsmod "cosmossdk.io/errors"

const codespace = "codec"

// codec sentinel errors.
var (
	ErrInvalidEncoding = errorsmod.Register(codespace, 1, "invalid hex encoding")
	ErrInvalidLength   = errorsmod.Register(codespace, 2, "invalid base64 length")
)
