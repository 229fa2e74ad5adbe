package command

import "strings"

// Kind is the closed set of commands understood by the console.
type Kind int

const (
	Unknown Kind = iota
	CreateTram
	TramsInStop
	StopsInTram
	Trams
	ImportGTFS
	Help
	Quit
)

var keywords = map[string]Kind{
	"CREATE_TRAM":   CreateTram,
	"TRAMS_IN_STOP": TramsInStop,
	"STOPS_IN_TRAM": StopsInTram,
	"TRAMS":         Trams,
	"IMPORT_GTFS":   ImportGTFS,
	"HELP":          Help,
	"QUIT":          Quit,
}

// ParseKind maps a keyword to its Kind. Matching is exact and case
// sensitive; anything else is Unknown.
func ParseKind(keyword string) Kind {
	if kind, ok := keywords[keyword]; ok {
		return kind
	}
	return Unknown
}

func (k Kind) String() string {
	for keyword, kind := range keywords {
		if kind == k {
			return keyword
		}
	}
	return "UNKNOWN"
}

// Command is one tokenized input line.
type Command struct {
	Kind    Kind
	Keyword string
	Args    []string
}

// Parse splits line on whitespace. The first token selects the command and
// the rest become its arguments. It reports false for blank lines.
func Parse(line string) (Command, bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, false
	}

	return Command{
		Kind:    ParseKind(tokens[0]),
		Keyword: tokens[0],
		Args:    tokens[1:],
	}, true
}
