// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/tiny-erm/config"
	"github.com/ariebrainware/tiny-erm/endpoint"
	"github.com/ariebrainware/tiny-erm/metrics"
	"github.com/ariebrainware/tiny-erm/middleware"
	"github.com/ariebrainware/tiny-erm/model"
	"github.com/ariebrainware/tiny-erm/registration"
	"github.com/ariebrainware/tiny-erm/repository"
	"github.com/ariebrainware/tiny-erm/util"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tiny-erm",
		Short: "Clinic patient registry",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(nextNumberCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, initializes logging and opens the database.
func setup() (*config.Config, *gorm.DB, error) {
	cfg := config.LoadConfig()
	util.InitLogger(cfg.LogLevel, cfg.AppEnv, os.Stdout)

	db, err := config.ConnectMySQL()
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(&model.Hospital{}, &model.Patient{}); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return cfg, db, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := setup()
			if err != nil {
				return err
			}
			if err := util.RegisterValidators(); err != nil {
				return err
			}
			if _, err := config.ConnectRedis(); err != nil {
				// The rate limiter falls back to in-process buckets.
				log.Warn().Err(err).Msg("redis unavailable")
			}

			m := metrics.New()
			router := newRouter(cfg, db, newRegistrar(cfg, db, m), m)

			srv := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.AppPort),
				Handler: router,
			}
			go func() {
				log.Info().Str("addr", srv.Addr).Str("app", cfg.AppName).Msg("starting server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("error starting server")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			log.Info().Msg("shutting down server")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the hospitals and patients tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := setup(); err != nil {
				return err
			}
			log.Info().Msg("migration complete")
			return nil
		},
	}
}

func nextNumberCmd() *cobra.Command {
	var hospitalID uint
	cmd := &cobra.Command{
		Use:   "next-number",
		Short: "Print the registration number the next patient of a hospital would get",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := setup()
			if err != nil {
				return err
			}
			number, err := newRegistrar(cfg, db, nil).PeekRegistrationNumber(cmd.Context(), hospitalID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), number)
			return nil
		},
	}
	cmd.Flags().UintVar(&hospitalID, "hospital", 0, "hospital id")
	_ = cmd.MarkFlagRequired("hospital")
	return cmd
}

func newRegistrar(cfg *config.Config, db *gorm.DB, m *metrics.Metrics) *registration.Registrar {
	patients := repository.NewPatientRepository(db)
	hospitals := repository.NewCachedHospitalLookup(repository.NewHospitalRepository(db), cfg.HospitalCacheTTL)
	allocator := registration.NewAllocator(patients, registration.AllocatorConfig{
		YearRollover: cfg.RegNoYearRollover,
	})
	return registration.NewRegistrar(hospitals, patients, allocator, registration.RegistrarConfig{
		MaxAttempts: cfg.RegNoMaxAttempts,
		Metrics:     m,
	})
}

func newRouter(cfg *config.Config, db *gorm.DB, reg *registration.Registrar, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.EndpointCallLogger())
	router.Use(middleware.HTTPMetrics(m))
	router.Use(middleware.CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})
	router.GET("/health", endpoint.Health(db))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/", middleware.RegistrarMiddleware(reg))
	api.GET("/hospital/:id", endpoint.GetHospital)
	api.GET("/patient", endpoint.ListPatients)
	api.GET("/patient/:id", endpoint.GetPatient)

	writes := api.Group("/", middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.RateLimit,
		Window: cfg.RateWindow,
	}))
	writes.POST("/patient", endpoint.CreatePatient)
	writes.PATCH("/patient/:id", endpoint.UpdatePatient)
	writes.PUT("/patient/:id", endpoint.ReplacePatient)

	return router
}
