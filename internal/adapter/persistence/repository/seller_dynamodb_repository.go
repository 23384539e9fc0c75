package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSellersTableName = "sellers"

type quotaUsageItem struct {
	LeadID   string  `dynamodbav:"lead_id"`
	SqftUsed float64 `dynamodbav:"sqft_used"`
	Date     string  `dynamodbav:"date"`
}

type sellerItem struct {
	ID                string           `dynamodbav:"id"`
	CompanyName       string           `dynamodbav:"company_name"`
	City              string           `dynamodbav:"city"`
	Brand             string           `dynamodbav:"brand"`
	Status            string           `dynamodbav:"status"`
	IsActive          bool             `dynamodbav:"is_active"`
	CurrentMonthQuota float64          `dynamodbav:"current_month_quota"`
	UsedQuota         float64          `dynamodbav:"used_quota"`
	NextResetDate     string           `dynamodbav:"next_reset_date"`
	QuotaUsage        []quotaUsageItem `dynamodbav:"quota_usage"`
	Leads             []string         `dynamodbav:"leads"`
	Version           int64            `dynamodbav:"version"`
	CreatedAt         string           `dynamodbav:"created_at"`
	UpdatedAt         string           `dynamodbav:"updated_at"`
}

// SellerDynamoRepository persists Seller records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// next_reset_date is stored second-precision RFC3339 so the reset sweep
// can compare it lexicographically in a filter expression.

type SellerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISellerRepository = (*SellerDynamoRepository)(nil)

func NewSellerDynamoRepository(ddb *dynamodb.Client) *SellerDynamoRepository {
	return &SellerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SELLERS_TABLE", defaultSellersTableName),
	}
}

func (r *SellerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Seller, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Seller{}, err
	}
	if len(out.Item) == 0 {
		return entities.Seller{}, nil
	}

	var it sellerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Seller{}, err
	}
	return fromSellerItem(it), nil
}

// Update writes the seller back conditioned on the version it was read at
// and bumps it.
func (r *SellerDynamoRepository) Update(ctx context.Context, s entities.Seller) (entities.Seller, error) {
	readVersion := s.Version
	s.Version++
	av, err := attributevalue.MarshalMap(toSellerItem(s))
	if err != nil {
		return entities.Seller{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(readVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Seller{}, interfaces.ErrVersionConflict
		}
		return entities.Seller{}, err
	}
	return s, nil
}

func (r *SellerDynamoRepository) ListActiveByCity(ctx context.Context, city string) ([]entities.Seller, error) {
	return r.scanSellers(ctx,
		aws.String("city = :city AND #status = :status AND is_active = :active"),
		map[string]types.AttributeValue{
			":city":   &types.AttributeValueMemberS{Value: city},
			":status": &types.AttributeValueMemberS{Value: entities.SellerStatusApproved},
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{"#status": "status"},
	)
}

func (r *SellerDynamoRepository) ListQuotaResetDue(ctx context.Context, now time.Time) ([]entities.Seller, error) {
	return r.scanSellers(ctx,
		aws.String("next_reset_date <> :zero AND next_reset_date <= :now"),
		map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberS{Value: ""},
			":now":  &types.AttributeValueMemberS{Value: resetDateToString(now)},
		},
		nil,
	)
}

func (r *SellerDynamoRepository) scanSellers(
	ctx context.Context,
	filterExpr *string,
	values map[string]types.AttributeValue,
	names map[string]string,
) ([]entities.Seller, error) {
	sellers := []entities.Seller{}
	var startKey map[string]types.AttributeValue
	for {
		in := &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          filterExpr,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		}
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it sellerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			sellers = append(sellers, fromSellerItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return sellers, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func resetDateToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func resetDateFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func toSellerItem(s entities.Seller) sellerItem {
	usage := make([]quotaUsageItem, 0, len(s.QuotaUsage))
	for _, u := range s.QuotaUsage {
		usage = append(usage, quotaUsageItem{
			LeadID:   u.LeadID,
			SqftUsed: u.SqftUsed,
			Date:     timeToString(u.Date),
		})
	}
	return sellerItem{
		ID:                s.ID,
		CompanyName:       s.CompanyName,
		City:              s.City,
		Brand:             s.Brand,
		Status:            s.Status,
		IsActive:          s.IsActive,
		CurrentMonthQuota: s.FreeQuota.CurrentMonthQuota,
		UsedQuota:         s.FreeQuota.UsedQuota,
		NextResetDate:     resetDateToString(s.FreeQuota.NextResetDate),
		QuotaUsage:        usage,
		Leads:             s.Leads,
		Version:           s.Version,
		CreatedAt:         timeToString(s.CreatedAt),
		UpdatedAt:         timeToString(s.UpdatedAt),
	}
}

func fromSellerItem(it sellerItem) entities.Seller {
	usage := make([]entities.QuotaUsageEntry, 0, len(it.QuotaUsage))
	for _, u := range it.QuotaUsage {
		usage = append(usage, entities.QuotaUsageEntry{
			LeadID:   u.LeadID,
			SqftUsed: u.SqftUsed,
			Date:     timeFromString(u.Date),
		})
	}
	return entities.Seller{
		ID:          it.ID,
		CompanyName: it.CompanyName,
		City:        it.City,
		Brand:       it.Brand,
		Status:      it.Status,
		IsActive:    it.IsActive,
		FreeQuota: entities.FreeQuota{
			CurrentMonthQuota: it.CurrentMonthQuota,
			UsedQuota:         it.UsedQuota,
			NextResetDate:     resetDateFromString(it.NextResetDate),
		},
		QuotaUsage: usage,
		Leads:      it.Leads,
		Version:    it.Version,
		CreatedAt:  timeFromString(it.CreatedAt),
		UpdatedAt:  timeFromString(it.UpdatedAt),
	}
}
