package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"mbg_outreach/internal/config"
)

// ConnectDynamoDB creates a DynamoDB client from the aws and dynamodb config
// sections. Local endpoints get static "local" credentials when none are set.
func ConnectDynamoDB(ctx context.Context, awsCfg config.AWSConfig, ddbCfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, awsCfg, ddbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfig(ctx context.Context, awsCfg config.AWSConfig, ddbCfg config.DynamoDBConfig) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(awsCfg.Region),
	}

	keyID, secret := awsCfg.AccessKeyID, awsCfg.SecretAccessKey
	if ddbCfg.Endpoint != "" && keyID == "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		keyID, secret = "local", "local"
	}
	if keyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(keyID, secret, ""),
		))
	}

	if endpoint := ddbCfg.Endpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// EnsureTables creates the leads and messages tables when they are missing.
// The messages table carries the lead_id-index GSI sorted by sent_at.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, leadsTable, messagesTable, messagesByLeadIndex string) error {
	tables := []*dynamodb.CreateTableInput{
		{
			TableName:   aws.String(leadsTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		},
		{
			TableName:   aws.String(messagesTable),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("lead_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("sent_at"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String(messagesByLeadIndex),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("lead_id"), KeyType: types.KeyTypeHash},
						{AttributeName: aws.String("sent_at"), KeyType: types.KeyTypeRange},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
		},
	}

	for _, in := range tables {
		if _, err := ddb.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
		}
	}
	return nil
}
