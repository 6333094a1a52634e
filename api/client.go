package api

// Dogechain query API client.
//
// Files:
//   config.go     - base URL and chain identifier defaults
//   endpoints.go  - endpoint table (one entry per q/ query)
//   base.go       - Client struct, options and the shared request dispatcher
//   errors.go     - validation and remote error types
//   dogecoin.go   - one completion-handler method per endpoint
//   decode.go     - optional parsers for callers that want typed values
//
// Usage:
//   client := api.NewClient()
//   client.AddressBalance(addr, func(err error, balance string) { ... })
//   body, err := client.Do(ctx, api.EndpointNetHash, "")
