package errno

import (
	"errors"
)

var (
	// ErrUnreachableRemote marks network or timeout failures talking to the
	// Global API host.
	ErrUnreachableRemote = errors.New("global api unreachable")

	// ErrRemoteRejected marks a non-2xx response from the Global API host.
	ErrRemoteRejected = errors.New("global api rejected request")

	ErrUnknownTool            = errors.New("unknown tool")
	ErrInvalidArguments       = errors.New("invalid tool arguments")
	ErrMalformedToolArguments = errors.New("malformed tool arguments")

	// ErrModelUnavailable is the only taxonomy member that aborts a turn;
	// everything above is encoded into a tool result and fed back to the model.
	ErrModelUnavailable = errors.New("model backend unavailable")

	ErrMaxTurnsExceeded = errors.New("max turns exceeded")
	ErrNoToolsAvailable = errors.New("no tools available")
)
