package cli

import errorsmod "cosmossdk.io/errors"

const codespace = "cli"

// cli sentinel errors.
var (
	ErrInput  = errorsmod.Register(codespace, 1, "input failed")
	ErrConfig = errorsmod.Register(codespace, 2, "invalid configuration")
)
