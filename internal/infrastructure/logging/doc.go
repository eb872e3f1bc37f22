// Package logging provides structured logging using uber/zap.
//
// Production writes JSON, development writes coloured console lines. Tool
// calls are logged with a common set of fields (tool, request_id, source)
// built by Call and ForCall.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "info"})
//	log := logger.ForCall("ntp.twoSquare", appCtx)
//	log.Error("calculation failed", zap.Error(err))
package logging
