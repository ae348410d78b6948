package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"kasra-bnpl/internal/domain/entities"
	"kasra-bnpl/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAgreementsTableName = "agreements"

// One item per buyer. The agreement list is stored as the same JSON payload
// the file store writes, so both backends stay byte-compatible.
type buyerAgreementsItem struct {
	BuyerAccountID string `dynamodbav:"buyer_account_id"`
	Agreements     string `dynamodbav:"agreements"`
}

// AgreementDynamoRepository persists buyer agreement lists in DynamoDB.
//
// Table requirements:
//   - PK: buyer_account_id (string)

type AgreementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb *dynamodb.Client, tableName string) *AgreementDynamoRepository {
	if tableName == "" {
		tableName = defaultAgreementsTableName
	}
	return &AgreementDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AgreementDynamoRepository) ListByBuyer(ctx context.Context, buyerAccountID string) ([]entities.Agreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"buyer_account_id": &types.AttributeValueMemberS{Value: buyerAccountID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return []entities.Agreement{}, nil
	}

	var it buyerAgreementsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return decodeAgreements(it.Agreements)
}

func (r *AgreementDynamoRepository) PutBuyer(ctx context.Context, buyerAccountID string, agreements []entities.Agreement) error {
	raw, err := json.Marshal(agreements)
	if err != nil {
		return fmt.Errorf("encode agreements for buyer %s: %w", buyerAccountID, err)
	}

	av, err := attributevalue.MarshalMap(buyerAgreementsItem{
		BuyerAccountID: buyerAccountID,
		Agreements:     string(raw),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *AgreementDynamoRepository) ReadAll(ctx context.Context) (map[string][]entities.Agreement, error) {
	doc := map[string][]entities.Agreement{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it buyerAgreementsItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			agreements, err := decodeAgreements(it.Agreements)
			if err != nil {
				return nil, err
			}
			doc[it.BuyerAccountID] = agreements
		}

		if len(out.LastEvaluatedKey) == 0 {
			return doc, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func decodeAgreements(raw string) ([]entities.Agreement, error) {
	if raw == "" {
		return []entities.Agreement{}, nil
	}
	var agreements []entities.Agreement
	if err := json.Unmarshal([]byte(raw), &agreements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return agreements, nil
}
