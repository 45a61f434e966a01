// Package sdk is the Go client for the Roost managed cache and vector
// index service.
//
// Two clients cover the service: CacheClient for caches (scalar values
// plus dictionary, list and set containers) and VectorIndexClient for
// similarity search. Both are constructed once, shared between
// goroutines, and closed when the process is done with them:
//
//	provider, err := sdk.NewCredentialProviderFromEnvVar("ROOST_API_KEY")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := sdk.NewCacheClient(sdk.DefaultConfig(), provider, 60*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
// Every operation returns a sealed response interface rather than a
// (value, error) pair. The possible variants are fixed per operation
// and discriminated with a type switch; absent data is a Miss variant,
// not an error:
//
//	switch r := client.Get(ctx, "my-cache", sdk.String("user:42")).(type) {
//	case *sdk.CacheGetHit:
//	    profile, _ := r.ValueString()
//	    fmt.Println(profile)
//	case *sdk.CacheGetMiss:
//	    // load from the source of truth and backfill
//	case *sdk.CacheGetError:
//	    if r.ErrorCode() == sdk.NotFoundError {
//	        // the cache itself is missing
//	    }
//	}
//
// Failures carry an ErrorCode from a closed taxonomy plus the original
// cause, reachable through errors.Unwrap. Transient failures of
// idempotent operations are retried per the configured RetryStrategy.
package sdk
