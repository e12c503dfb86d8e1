package main

import (
	"asset-tracker/config"
	"asset-tracker/controllers/idgen"
	"asset-tracker/database"
	"asset-tracker/migration"
	"asset-tracker/routes"
	"asset-tracker/services"
	"asset-tracker/storage"
	"asset-tracker/utils"
	"context"
	"log"
)

func main() {
	config.LoadConfig()
	config.SetupLogger()
	logger := config.GetLogger()

	if err := database.EnsureDatabaseExists(config.DBName); err != nil {
		log.Fatalf("Failed to ensure database: %v", err)
	}

	db, err := database.OpenDatabaseConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init(config.SnowflakeNode)
	database.RunSeeders(db)

	invoices, err := storage.NewInvoiceStore(context.Background())
	if err != nil {
		log.Fatalf("Failed to init invoice storage: %v", err)
	}

	var mailer services.MailSender
	if config.SMTPEnabled() {
		mailer = utils.NewMailerFromConfig()
	}

	app := routes.NewApp(routes.Dependencies{
		DB:         db,
		Invoices:   invoices,
		Mailer:     mailer,
		Recipients: config.NotifyEmails,
	})

	logger.WithField("port", config.APP_PORT).Info("server starting")
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal(err)
	}
}
