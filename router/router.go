package router

import (
	"net/http"
	_ "recipe-api/docs"
	"recipe-api/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Options carries the cross-cutting settings of the HTTP surface.
type Options struct {
	AllowedOrigins []string
}

func NewRouter(authHandler *handler.AuthHandler, recipeHandler *handler.RecipeHandler, tokens handler.TokenVerifier, opts Options) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(authHandler.Login))

	protected := handler.AuthMiddleware(tokens)
	mux.Handle("GET /api/recipes", protected(handler.ErrorHandlingMiddleware(recipeHandler.ListRecipes)))
	mux.Handle("POST /api/recipes", protected(handler.ErrorHandlingMiddleware(recipeHandler.CreateRecipe)))
	mux.Handle("PUT /api/recipes/{id}", protected(handler.ErrorHandlingMiddleware(recipeHandler.UpdateRecipe)))
	mux.Handle("DELETE /api/recipes/{id}", protected(handler.ErrorHandlingMiddleware(recipeHandler.DeleteRecipe)))
	mux.Handle("PATCH /api/recipes/{id}/favorite", protected(handler.ErrorHandlingMiddleware(recipeHandler.ToggleFavorite)))

	return handler.LoggingMiddleware(handler.CORSMiddleware(opts.AllowedOrigins)(mux))
}
