// Package core contains the business logic for the Cocktails API.
// It is framework-agnostic and can be used without the HTTP server.
//
// The core package is organized into several sub-packages:
//
// - domain: The Cocktail model with its fixed ingredient and measure slots
// - cocktaildb: Client for TheCocktailDB lookup endpoints
// - filter: Conjunctive substring filtering over a result set
// - present: Display projections such as the joined ingredient list
// - results: The full/displayed result store that drives a view
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, view)
//
// # Usage Example
//
//	import (
//	    "cocktails-app-api/core/cocktaildb"
//	    "cocktails-app-api/core/interfaces"
//	    "cocktails-app-api/core/results"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	client := cocktaildb.NewClient(deps, cocktaildb.Config{CacheTTL: time.Hour})
//	store := results.NewStore(myView, myLogger)
//
//	err := store.Load(ctx, func(ctx context.Context) ([]domain.Cocktail, error) {
//	    return client.SearchByName(ctx, "a")
//	})
//	store.SetField(filter.FieldCategory, "cocktail")
//
package core
