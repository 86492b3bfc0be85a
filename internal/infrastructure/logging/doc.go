// Package logging builds the service's zap loggers.
//
// Production mode writes JSON for machine parsing; development mode writes
// colored console output. Components take a named child:
//
//	log := logging.NewDefault()
//	desk := log.Named("desktop")
//	desk.Info("window launched", zap.String("id", "finder"))
package logging
