// Package common holds helpers shared by the number theory operation groups:
// result envelopes, integer parameter extraction and per-tool input limits.
//
// Integers arrive as JSON numbers (float64), json.Number or native ints.
// Anything that is not an exact integer within ±(2^53 − 1) is rejected.
//
// Example Usage:
//
//	n, err := common.RequireInteger(params, "n", ops.Limits.Factorize)
//	if err != nil {
//	    return common.Failure(err.Error())
//	}
package common
