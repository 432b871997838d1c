// Package auth authenticates requests with email/password credentials and
// signed bearer tokens.
//
// Every route is protected unless the RouteTable marks it public. Protected
// routes use the token strategy unless marked as credential routes (login).
//
// # Configuration
//
//	AUTH_JWT_SECRET=<secret>         # HMAC signing secret, generated if empty
//	AUTH_PASSWORD_SCHEME=plain       # plain | bcrypt
//	AUTH_BCRYPT_COST=12              # bcrypt cost factor
//
// Tokens expire 60 minutes after issuance.
//
// # Usage
//
//	issuer, _ := auth.NewTokenIssuer(secret, config.DefaultTokenLifetime)
//	verifier, _ := auth.NewTokenVerifier(secret, usersRepo)
//	service := auth.NewService(usersRepo, scheme, issuer)
//
//	routes := auth.NewRouteTable().
//		Public(http.MethodGet, "/pokemons").
//		Credential(http.MethodPost, "/auth/login")
//	router.Use(auth.NewGuard(routes, service.Validator(), verifier).Handler())
//
// Extract the identity in handlers:
//
//	identity, ok := auth.GetIdentity(c)
package auth
