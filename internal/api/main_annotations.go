// @title           LinkVentory API
// @version         1.0
// @description     Personal link-bookmarking service. Sign up or log in to obtain a bearer token.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and your access token.
package api
