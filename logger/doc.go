// Package logger provides structured logging for seqkit programs on top of
// zerolog.
//
// Loggers are scoped to a service and optionally a component; pipeline runs
// attach a run ID so every line a run produces can be correlated. The cursor
// package itself never logs: logging happens in the programs that drive
// pipelines (the CLI, the HTTP server).
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  components:
//	    server: "warn"
//
// # Usage
//
//	log := logger.Get("wordcount")
//	log.Info("pipeline finished", logger.Fields(logger.FieldItems, 13))
package logger
