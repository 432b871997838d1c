package auth

// Visibility says whether a route may be reached without authentication.
type Visibility uint8

const (
	Protected Visibility = iota
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "public"
	}
	return "protected"
}

// Strategy names how a protected route authenticates its caller.
type Strategy uint8

const (
	StrategyToken      Strategy = iota // Authorization: Bearer <token>
	StrategyCredential                 // email + password in the JSON body
)

func (s Strategy) String() string {
	if s == StrategyCredential {
		return "credential"
	}
	return "token"
}

// Rule is the classification of a single route.
type Rule struct {
	Visibility Visibility
	Strategy   Strategy
}

// DefaultRule applies to every route not listed in the table.
var DefaultRule = Rule{Visibility: Protected, Strategy: StrategyToken}

type routeKey struct {
	method string
	path   string
}

// RouteTable maps routes, identified by method and gin route pattern
// (e.g. "/users/:id"), to their Rule. It is filled at startup and only read
// afterwards.
type RouteTable struct {
	rules map[routeKey]Rule
}

func NewRouteTable() *RouteTable {
	return &RouteTable{rules: make(map[routeKey]Rule)}
}

// Public marks a route as reachable without authentication.
func (t *RouteTable) Public(method, path string) *RouteTable {
	t.rules[routeKey{method, path}] = Rule{Visibility: Public}
	return t
}

// Credential marks a route as requiring an email/password pair in the body.
func (t *RouteTable) Credential(method, path string) *RouteTable {
	t.rules[routeKey{method, path}] = Rule{Visibility: Protected, Strategy: StrategyCredential}
	return t
}

// Lookup returns the rule for a route, DefaultRule if none was registered.
func (t *RouteTable) Lookup(method, path string) Rule {
	if rule, ok := t.rules[routeKey{method, path}]; ok {
		return rule
	}
	return DefaultRule
}
