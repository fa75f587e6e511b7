package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a valid IFF/AIFF stream.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported indicates a valid AIFF file in a sample
	// format other than 16-bit PCM.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout indicates an impossible format geometry in
	// a decoded file.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
