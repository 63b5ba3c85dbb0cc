// Package server wraps http.Server with graceful shutdown and environment
// driven configuration.
//
// # Usage
//
//	srv := server.New(":8080",
//		server.WithLogger(log),
//		server.WithShutdownTimeout(10*time.Second),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	if err := g.Wait(); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Configuration
//
// Config is filled by core/config from SERVER_* variables:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//
// When both SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE are set the server
// serves HTTPS with TLS 1.2 as the minimum version.
package server
