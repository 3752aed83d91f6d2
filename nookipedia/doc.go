// Package nookipedia provides a client for the Nookipedia API.
//
// Nookipedia is the community encyclopedia for the Animal Crossing
// series; its REST API serves villager, critter, item, and event data.
// This package implements a typed Go client over that API.
//
// # Architecture
//
// Every convenience method funnels through a single request path that
// resolves path templates, assembles the final URL against the
// configured base, encodes query parameters, injects the mandatory
// Accept-Version and X-API-KEY headers, and classifies non-success
// responses into typed errors.
//
// # Usage
//
// Create a client with your API key (request one at
// https://api.nookipedia.com):
//
//	client, err := nookipedia.NewClient("your-api-key",
//		nookipedia.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	fish, err := client.GetFishByMonth(ctx, "current", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Non-success responses are returned as *APIError with a Kind tag
// (KindBadRequest, KindUnauthorized, KindNotFound, KindServerError, or
// KindUnknown) alongside the raw status code and the API's error body:
//
//	var apiErr *nookipedia.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// resource does not exist
//	}
//
// Transport-level failures (DNS, connect, cancellation) propagate
// unmodified; the client never retries.
package nookipedia
