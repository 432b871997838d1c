// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - CredentialStore: user lookup and creation for authentication (internal/auth/store.go)
//   - UserStore: user management behind the /users endpoints (internal/http/stores.go)
//
// Both are implemented by users.Repository (internal/database/users).
//
// ## Authentication Interfaces
//
//   - PasswordScheme: how passwords are stored and compared (internal/auth/password.go)
//
// # Adding a New Password Scheme
//
//  1. Implement PasswordScheme in internal/auth/
//
//     type Argon2Scheme struct{ Time, Memory uint32 }
//
//     func (s Argon2Scheme) Hash(password string) (string, error)
//     func (s Argon2Scheme) Matches(stored, supplied string) bool
//
//  2. Add a config.PasswordScheme value and select it in auth.NewPasswordScheme
//
// # Protecting a New Route
//
// Routes are protected by default. A controller registers its handlers and
// marks the exceptions on the route table it is given:
//
//	func (c *MyController) RegisterRoutes(router gin.IRoutes, routes *auth.RouteTable) {
//	    router.GET("/things", c.List)
//	    router.POST("/things", c.Create)
//	    routes.Public(http.MethodGet, "/things")
//	}
//
// POST /things above needs a bearer token. Handlers read the caller with
// auth.GetIdentity.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the checks in this codebase.
package interfaces
