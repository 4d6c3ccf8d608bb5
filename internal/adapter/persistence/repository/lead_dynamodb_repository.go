package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultLeadsTableName = "leads"

	dedupKeyPrefix = "dedup#"
	kindDedup      = "dedup"
)

type leadItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"nama_sppg"`
	Address         string `dynamodbav:"alamat"`
	Province        string `dynamodbav:"provinsi"`
	City            string `dynamodbav:"kab_kota"`
	District        string `dynamodbav:"kecamatan"`
	Village         string `dynamodbav:"desa"`
	Phone           string `dynamodbav:"phone"`
	ConfidenceScore string `dynamodbav:"confidence_score"`
	OutreachMessage string `dynamodbav:"pesan_penawaran"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	SentAt          string `dynamodbav:"sent_at,omitempty"`
}

// dedupItem reserves a (name, city) pair. It lives in the leads table next to
// the lead it points at and is written in the same transaction.
type dedupItem struct {
	ID     string `dynamodbav:"id"`
	Kind   string `dynamodbav:"kind"`
	LeadID string `dynamodbav:"lead_id"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Uniqueness of (name, city) is enforced with a marker item whose id is
// "dedup#" + lower(name) + "|" + lower(city). Scans skip marker items.
type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client, tableName string) *LeadDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultLeadsTableName
	}
	return &LeadDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	leadAV, err := attributevalue.MarshalMap(toLeadItem(lead))
	if err != nil {
		return entities.Lead{}, err
	}
	dedupAV, err := attributevalue.MarshalMap(dedupItem{
		ID:     dedupKeyPrefix + lead.DedupKey(),
		Kind:   kindDedup,
		LeadID: lead.ID,
	})
	if err != nil {
		return entities.Lead{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: dedupAV, ConditionExpression: notExists, ExpressionAttributeNames: names}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: leadAV, ConditionExpression: notExists, ExpressionAttributeNames: names}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return entities.Lead{}, interfaces.ErrDuplicateLead
				}
			}
		}
		return entities.Lead{}, err
	}
	return lead, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	if strings.HasPrefix(id, dedupKeyPrefix) {
		return entities.Lead{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) FindByNameCity(ctx context.Context, name, city string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: dedupKeyPrefix + entities.DedupKey(name, city)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}
	var marker dedupItem
	if err := attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return entities.Lead{}, err
	}
	return r.GetByID(ctx, marker.LeadID)
}

func (r *LeadDynamoRepository) List(ctx context.Context, filter interfaces.LeadFilter) ([]entities.Lead, error) {
	expr := "attribute_not_exists(#kind)"
	names := map[string]string{"#kind": "kind"}
	values := map[string]types.AttributeValue{}
	if filter.Status != nil {
		expr += " AND #status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*filter.Status)}
	}

	leads, err := r.scan(ctx, expr, names, values)
	if err != nil {
		return nil, err
	}
	out := leads[:0]
	for _, l := range leads {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *LeadDynamoRepository) Update(ctx context.Context, id string, upd interfaces.LeadUpdate) (entities.Lead, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{"#updated_at": "updated_at"}

		add := func(attr, value string) {
			sets = append(sets, "#"+attr+" = :"+attr)
			names["#"+attr] = attr
			vals[":"+attr] = &types.AttributeValueMemberS{Value: value}
		}
		if upd.Phone != nil {
			add("phone", *upd.Phone)
		}
		if upd.OutreachMessage != nil {
			add("pesan_penawaran", *upd.OutreachMessage)
		}
		if upd.Status != nil {
			add("status", string(*upd.Status))
		}
		if upd.SentAt != nil {
			add("sent_at", formatTime(*upd.SentAt))
		}
		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

func (r *LeadDynamoRepository) FindByPhoneSuffix(ctx context.Context, suffix string) (entities.Lead, error) {
	if suffix == "" {
		return entities.Lead{}, nil
	}
	leads, err := r.scan(ctx, "attribute_not_exists(#kind) AND #phone <> :empty",
		map[string]string{"#kind": "kind", "#phone": "phone"},
		map[string]types.AttributeValue{":empty": &types.AttributeValueMemberS{Value: ""}})
	if err != nil {
		return entities.Lead{}, err
	}
	var best entities.Lead
	for _, l := range leads {
		if l.PhoneSuffixMatches(suffix) && (best.ID == "" || l.CreatedAt.After(best.CreatedAt)) {
			best = l
		}
	}
	return best, nil
}

func (r *LeadDynamoRepository) CountByStatus(ctx context.Context) (map[entities.LeadStatus]int, error) {
	leads, err := r.scan(ctx, "attribute_not_exists(#kind)", map[string]string{"#kind": "kind"}, nil)
	if err != nil {
		return nil, err
	}
	out := make(map[entities.LeadStatus]int)
	for _, l := range leads {
		out[l.Status]++
	}
	return out, nil
}

func (r *LeadDynamoRepository) CountSentSince(ctx context.Context, since time.Time) (int, error) {
	leads, err := r.scan(ctx, "attribute_not_exists(#kind) AND #sent_at >= :since",
		map[string]string{"#kind": "kind", "#sent_at": "sent_at"},
		map[string]types.AttributeValue{":since": &types.AttributeValueMemberS{Value: formatTime(since)}})
	if err != nil {
		return 0, err
	}
	return len(leads), nil
}

func (r *LeadDynamoRepository) Ping(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	return err
}

func (r *LeadDynamoRepository) scan(
	ctx context.Context,
	filterExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.Lead, error) {
	in := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String(filterExpr),
		ExpressionAttributeNames: names,
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}

	out := []entities.Lead{}
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []leadItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromLeadItem(it))
		}
	}
	return out, nil
}

func (r *LeadDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Lead, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:              l.ID,
		Name:            l.Name,
		Address:         l.Address,
		Province:        l.Province,
		City:            l.City,
		District:        l.District,
		Village:         l.Village,
		Phone:           l.Phone,
		ConfidenceScore: floatToString(l.ConfidenceScore),
		OutreachMessage: l.OutreachMessage,
		Status:          string(l.Status),
		CreatedAt:       formatTime(l.CreatedAt),
		UpdatedAt:       formatTime(l.UpdatedAt),
		SentAt:          formatTimePtr(l.SentAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:              it.ID,
		Name:            it.Name,
		Address:         it.Address,
		Province:        it.Province,
		City:            it.City,
		District:        it.District,
		Village:         it.Village,
		Phone:           it.Phone,
		ConfidenceScore: parseFloat(it.ConfidenceScore),
		OutreachMessage: it.OutreachMessage,
		Status:          entities.LeadStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		SentAt:          parseTimePtr(it.SentAt),
	}
}
