// main.go
package main

import (
	"log"

	"vertex-leisure/cmd"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/usecase"
	"vertex-leisure/internal/wire"
	"vertex-leisure/pkg/database"
	"vertex-leisure/pkg/gateway"
	"vertex-leisure/pkg/mailer"
	"vertex-leisure/pkg/password"
	"vertex-leisure/pkg/token"
	"vertex-leisure/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Run pending migrations
	if err := database.Migrate(config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Payment gateway client
	gw, err := gateway.NewOmiseGateway(config.Gateway.PublicKey, config.Gateway.SecretKey)
	if err != nil {
		logger.Fatal("Failed to init payment gateway", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(usecase.Deps{
		Repo:    repos,
		Config:  config,
		Hasher:  password.NewHasher(password.DefaultParams),
		Tokens:  token.NewManager(config.Token.Secret),
		Mailer:  mailer.NewMailer(config.Email),
		Gateway: gw,
	}, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
