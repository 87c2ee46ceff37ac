package xor

import errorsmod "cosmossdk.io/errors"

const codespace = "xor"

// xor sentinel errors.
var (
	ErrLengthMismatch = errorsmod.Register(codespace, 1, "buffers must have equal length")
	ErrEmptyKey       = errorsmod.Register(codespace, 2, "key must not be empty")
	ErrNotFound       = errorsmod.Register(codespace, 3, "nothing found")
	ErrTooShort       = errorsmod.Register(codespace, 4, "buffer too short")
)
