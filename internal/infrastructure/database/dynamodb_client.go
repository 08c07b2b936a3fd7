package database

import (
	"context"

	appconfig "doctor_app/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// NewDynamoDBClient creates a DynamoDB client from the application config.
//
// When DYNAMODB_ENDPOINT is set (e.g. http://dynamodb:8000) requests go to
// DynamoDB Local with static credentials. Without an endpoint the SDK default
// chain is used, which in Lambda carries the execution role's session token.
func NewDynamoDBClient(ctx context.Context, cfg appconfig.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.Endpoint != "" {
		key, secret := cfg.AccessKeyID, cfg.SecretAccessKey
		if key == "" {
			// DynamoDB Local does not validate credentials, but the SDK requires them.
			key, secret = "local", "local"
		}
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	log.Info().
		Str("component", "database").
		Str("region", cfg.Region).
		Str("endpoint", cfg.Endpoint).
		Msg("loading aws config")

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
