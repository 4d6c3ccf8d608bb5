package repository

import (
	"context"
	"strings"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultMessagesTableName = "messages"
	MessagesByLeadIndex      = "lead_id-index"
)

type messageItem struct {
	ID        string `dynamodbav:"id"`
	LeadID    string `dynamodbav:"lead_id"`
	Content   string `dynamodbav:"content"`
	Direction string `dynamodbav:"direction"`
	Status    string `dynamodbav:"status"`
	SentAt    string `dynamodbav:"sent_at"`
}

// MessageDynamoRepository is the append-only message log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI lead_id-index: PK lead_id, SK sent_at
type MessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMessageRepository = (*MessageDynamoRepository)(nil)

func NewMessageDynamoRepository(ddb *dynamodb.Client, tableName string) *MessageDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultMessagesTableName
	}
	return &MessageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MessageDynamoRepository) Append(ctx context.Context, msg entities.Message) (entities.Message, error) {
	av, err := attributevalue.MarshalMap(toMessageItem(msg))
	if err != nil {
		return entities.Message{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Message{}, err
	}
	return msg, nil
}

func (r *MessageDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Message, error) {
	out := []entities.Message{}
	p := dynamodb.NewQueryPaginator(r.ddb, r.byLeadQuery(leadID, nil))
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		msgs, err := unmarshalMessages(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, msgs...)
	}
	return out, nil
}

func (r *MessageDynamoRepository) LatestOutgoing(ctx context.Context, leadID string) (entities.Message, error) {
	in := r.byLeadQuery(leadID, aws.String("#direction = :direction"))
	in.ExpressionAttributeNames["#direction"] = "direction"
	in.ExpressionAttributeValues[":direction"] = &types.AttributeValueMemberS{Value: string(entities.MessageDirectionOutgoing)}

	// Limit applies before the filter, so keep paging until a match shows up.
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return entities.Message{}, err
		}
		msgs, err := unmarshalMessages(page.Items)
		if err != nil {
			return entities.Message{}, err
		}
		if len(msgs) > 0 {
			return msgs[0], nil
		}
	}
	return entities.Message{}, nil
}

func (r *MessageDynamoRepository) byLeadQuery(leadID string, filter *string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(MessagesByLeadIndex),
		KeyConditionExpression: aws.String("#lead_id = :lead_id"),
		FilterExpression:       filter,
		ExpressionAttributeNames: map[string]string{
			"#lead_id": "lead_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lead_id": &types.AttributeValueMemberS{Value: leadID},
		},
		ScanIndexForward: aws.Bool(false),
	}
}

func unmarshalMessages(items []map[string]types.AttributeValue) ([]entities.Message, error) {
	var its []messageItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Message, 0, len(its))
	for _, it := range its {
		out = append(out, fromMessageItem(it))
	}
	return out, nil
}

func toMessageItem(m entities.Message) messageItem {
	return messageItem{
		ID:        m.ID,
		LeadID:    m.LeadID,
		Content:   m.Content,
		Direction: string(m.Direction),
		Status:    string(m.Status),
		SentAt:    formatTime(m.SentAt),
	}
}

func fromMessageItem(it messageItem) entities.Message {
	return entities.Message{
		ID:        it.ID,
		LeadID:    it.LeadID,
		Content:   it.Content,
		Direction: entities.MessageDirection(it.Direction),
		Status:    entities.MessageStatus(it.Status),
		SentAt:    parseTime(it.SentAt),
	}
}
