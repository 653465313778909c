package scan

import "regexp"

// Kind tags a log line by severity marker.
type Kind int

const (
	Other Kind = iota
	Info
	Warn
)

// Lines must start with a "YYYY-MM-DD HH:MM:SS.mmm" timestamp followed by a
// standalone level token. Everything else is free-form text.
var (
	warnRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d+\s+WARN\b[ \t]*`)
	infoRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d+\s+INFO\b[ \t]*`)
)

// Classify tags one log line and returns the text following the level token.
// The WARN check runs first, so a line is never classified as both.
func Classify(line string) (Kind, string) {
	if m := warnRE.FindString(line); m != "" {
		return Warn, line[len(m):]
	}
	if m := infoRE.FindString(line); m != "" {
		return Info, line[len(m):]
	}
	return Other, ""
}
