package database

import (
	"context"

	"kasra-bnpl/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoClient builds the DynamoDB client backing the agreement store
// when STORE_BACKEND=dynamodb. Credentials and region come from the
// service config; with DynamoEndpoint set the client targets a local
// DynamoDB instead of AWS.
func NewDynamoClient(ctx context.Context, cfg config.AWS) (*dynamodb.Client, error) {
	base, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(base, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	}), nil
}
