package encode

import "github.com/signadot/keepconf/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}

// EncodeTrailingNewline ends root output with a newline instead of
// stripping the last one.
func EncodeTrailingNewline(v bool) EncodeOption {
	return func(es *EncState) { es.trailingNL = v }
}
