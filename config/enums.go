package config

// OutputFmt specifies what render command produces.
type OutputFmt string

const (
	OutputFmtSelectors  OutputFmt = "selectors"
	OutputFmtStylesheet OutputFmt = "stylesheet"
	OutputFmtTree       OutputFmt = "tree"
)

// OutputFmtNames returns supported output format names.
func OutputFmtNames() []string {
	return []string{string(OutputFmtSelectors), string(OutputFmtStylesheet), string(OutputFmtTree)}
}

// ParseOutputFmt converts name to OutputFmt.
func ParseOutputFmt(name string) (OutputFmt, bool) {
	switch f := OutputFmt(name); f {
	case OutputFmtSelectors, OutputFmtStylesheet, OutputFmtTree:
		return f, true
	default:
		return "", false
	}
}

func (o OutputFmt) String() string {
	return string(o)
}
