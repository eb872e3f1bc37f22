// Package client is the HTTP client of a remote number theory server.
//
// Requests go through resty on top of a retryablehttp transport, so
// connection failures and 5xx responses are retried with backoff while
// 4xx responses return at once. JSON is encoded with sonic, decoding
// integers as int64.
//
// Example Usage:
//
//	c := client.New(client.DefaultConfig("http://localhost:8000"))
//	result, err := c.Execute(ctx, "ntp.goldbach", map[string]interface{}{"n": 100}, nil)
package client
