// Package logger provides structured JSON logging for the colbertgate
// service, backed by Uber's Zap.
//
// All packages log through the map-based wrapper API:
//
//	log.Info("document indexed", nil, map[string]interface{}{
//	    "doc_id": id,
//	})
//
// The log level is read from LOG_LEVEL (debug, info, warning, error;
// default info). Every entry carries the service name and process id.
package logger
