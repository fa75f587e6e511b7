package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid RIFF/WAVE stream.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates an impossible format geometry,
	// either in a decoded file or in WritePCM16 arguments.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrOnlyPCM16bitSupported indicates a valid WAV file in a sample
	// format other than 16-bit PCM.
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
)
