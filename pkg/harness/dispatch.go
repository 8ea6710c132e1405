package harness

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownOperation reports a Call with an operation name outside the
// supported set. It is raised before any engine round-trip.
var ErrUnknownOperation = errors.New("unknown element operation")

// operations is the single registry behind Call: a name dispatches exactly
// when it is registered here, and typo suggestions draw their candidates
// from the same map, so the two can never disagree. Primary dispatch is
// the typed method set; this layer exists for runtime convenience.
var operations = map[string]func(e *Element, args []string) (any, error){
	"click": func(e *Element, _ []string) (any, error) {
		return nil, e.Click()
	},
	"hover": func(e *Element, _ []string) (any, error) {
		return nil, e.Hover()
	},
	"fill": func(e *Element, args []string) (any, error) {
		v, err := firstArg("fill", args)
		if err != nil {
			return nil, err
		}
		return nil, e.Fill(v)
	},
	"type": func(e *Element, args []string) (any, error) {
		v, err := firstArg("type", args)
		if err != nil {
			return nil, err
		}
		return nil, e.Type(v)
	},
	"press": func(e *Element, args []string) (any, error) {
		v, err := firstArg("press", args)
		if err != nil {
			return nil, err
		}
		return nil, e.Press(v)
	},
	"select_option": func(e *Element, args []string) (any, error) {
		v, err := firstArg("select_option", args)
		if err != nil {
			return nil, err
		}
		return nil, e.SelectOption(v)
	},
	"get_text": func(e *Element, _ []string) (any, error) {
		return e.Text()
	},
	"get_attribute": func(e *Element, args []string) (any, error) {
		v, err := firstArg("get_attribute", args)
		if err != nil {
			return nil, err
		}
		return e.Attribute(v)
	},
	"wait_for": func(e *Element, args []string) (any, error) {
		state := StateVisible
		if len(args) > 0 {
			state = ElementState(args[0])
		}
		return nil, e.WaitFor(WaitOptions{State: state})
	},
	"is_visible": func(e *Element, _ []string) (any, error) {
		return e.IsVisible()
	},
	"is_hidden": func(e *Element, _ []string) (any, error) {
		return e.IsHidden()
	},
	"is_enabled": func(e *Element, _ []string) (any, error) {
		return e.IsEnabled()
	},
	"screenshot": func(e *Element, args []string) (any, error) {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return e.Screenshot(ScreenshotOptions{Path: path})
	},
}

// operationNames is derived from the registry once, sorted so suggestion
// tie-breaks are deterministic across runs.
var operationNames = func() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// firstArg pulls the single positional argument an operation requires.
func firstArg(name string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("operation %q requires 1 argument(s), got 0", name)
	}
	return args[0], nil
}

// suggestionDistance is the largest edit distance still considered a typo.
const suggestionDistance = 3

// SuggestOperation returns the supported operation name closest to name, or
// "" when nothing is within suggestionDistance.
func SuggestOperation(name string) string {
	best := ""
	bestDist := suggestionDistance + 1
	for _, candidate := range operationNames {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// Call dispatches an operation by name, the dynamic counterpart to the typed
// method set. Unknown names fail immediately with a typo suggestion and
// never reach the browser. Operations that need arguments take them
// positionally: fill(value), type(text), press(key), select_option(value),
// get_attribute(name), wait_for(state).
func (e *Element) Call(name string, args ...string) (any, error) {
	if op, ok := operations[name]; ok {
		return op(e, args)
	}

	msg := "No similar method found."
	if suggestion := SuggestOperation(name); suggestion != "" {
		msg = fmt.Sprintf("Did you mean %q?", suggestion)
	}
	err := fmt.Errorf("%w: element has no method %q. %s", ErrUnknownOperation, name, msg)
	e.logger.Error().Str("selector", e.selector).Str("op", name).Msg(err.Error())
	return nil, err
}
