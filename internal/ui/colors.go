package ui

// Color accessors read the active theme on every call so that a theme
// change applies to output produced afterwards.

func ColorReset() string     { return GetCurrentTheme().Reset }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
func ColorRed() string       { return GetCurrentTheme().Error }
func ColorGreen() string     { return GetCurrentTheme().Success }
func ColorYellow() string    { return GetCurrentTheme().Warning }
func ColorBlue() string      { return GetCurrentTheme().Primary }
func ColorMagenta() string   { return GetCurrentTheme().Info }
func ColorCyan() string      { return GetCurrentTheme().Info }
func ColorGrey() string      { return GetCurrentTheme().Secondary }
