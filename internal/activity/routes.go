package activity

import (
	"net/http"
	"strings"
	"unicode"
)

// CRUD action names. These are part of the event-log contract; keep stable.
const (
	ActionList          = "list"
	ActionRetrieve      = "retrieve"
	ActionCreate        = "create"
	ActionUpdate        = "update"
	ActionPartialUpdate = "partial_update"
	ActionDestroy       = "destroy"
)

// Route is the classification of one registered endpoint. The table is
// populated once at route registration; nothing is probed at request time.
type Route struct {
	// Resource is the logical resource name, e.g. "Accommodation".
	Resource string
	// Action is the CRUD action; inferred from method and path shape when not
	// set explicitly at registration.
	Action string
}

// Label is the activity label sent to the event log:
// resource plus the capitalized action, e.g. "Accommodation List".
func (r Route) Label() string {
	if r.Action == "" {
		return r.Resource
	}
	return r.Resource + " " + capitalize(r.Action)
}

// Table maps method+path to a Route. Only endpoints registered here are
// classified; every other request skips activity logging entirely.
type Table struct {
	routes map[string]Route
}

func NewTable() *Table {
	return &Table{routes: make(map[string]Route)}
}

// Register opts a route in with the action inferred from the HTTP method and
// whether the path carries a parameter.
func (t *Table) Register(method, path, resource string) {
	t.RegisterAction(method, path, resource, InferAction(method, strings.Contains(path, ":")))
}

// RegisterAction opts a route in with an explicit action, for endpoints whose
// action cannot be inferred (e.g. price calculation).
func (t *Table) RegisterAction(method, path, resource, action string) {
	t.routes[routeKey(method, path)] = Route{Resource: resource, Action: action}
}

// Lookup classifies a request by its matched route pattern. The second return
// is false for routes that never opted in.
func (t *Table) Lookup(method, path string) (Route, bool) {
	r, ok := t.routes[routeKey(method, path)]
	return r, ok
}

// InferAction maps an HTTP method to a CRUD action. hasID distinguishes
// GET-one from GET-many.
func InferAction(method string, hasID bool) string {
	switch method {
	case http.MethodGet:
		if hasID {
			return ActionRetrieve
		}
		return ActionList
	case http.MethodPost:
		return ActionCreate
	case http.MethodPut:
		return ActionUpdate
	case http.MethodPatch:
		return ActionPartialUpdate
	case http.MethodDelete:
		return ActionDestroy
	default:
		return ""
	}
}

func routeKey(method, path string) string {
	return method + " " + path
}

// capitalize upper-cases the first rune and lower-cases the rest, so
// "list" becomes "List" and "partial_update" becomes "Partial_update".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
