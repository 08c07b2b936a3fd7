package main

import (
	"os"

	_ "doctor_app/docs"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           Doctor App API
// @version         1.0
// @description     Patients, dictated reports, templates and user accounts backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	rootCmd := &cobra.Command{
		Use:          "doctor-app",
		Short:        "Doctor App records API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(lambdaCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API as a local HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func lambdaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Run under the AWS Lambda runtime",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLambda(cmd.Context())
		},
	}
}
