package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLeadsTableName = "leads"
	leadsBuyerIDIndex     = "buyer_id-index"
)

type quoteItem struct {
	ProductID            string  `dynamodbav:"product_id"`
	Color                string  `dynamodbav:"color"`
	InstallationLocation string  `dynamodbav:"installation_location"`
	Height               float64 `dynamodbav:"height"`
	Width                float64 `dynamodbav:"width"`
	Quantity             int     `dynamodbav:"quantity"`
	Sqft                 float64 `dynamodbav:"sqft"`
	Remark               string  `dynamodbav:"remark"`
	IsGenerated          bool    `dynamodbav:"is_generated"`
}

type purchaseRecordItem struct {
	SellerID      string  `dynamodbav:"seller_id"`
	PurchasedAt   string  `dynamodbav:"purchased_at"`
	PricePaid     string  `dynamodbav:"price_paid"`
	FreeQuotaUsed float64 `dynamodbav:"free_quota_used"`
}

type contactInfoItem struct {
	Name  string `dynamodbav:"name"`
	Phone string `dynamodbav:"phone"`
	Email string `dynamodbav:"email"`
}

type addressItem struct {
	Line1   string `dynamodbav:"line1"`
	City    string `dynamodbav:"city"`
	State   string `dynamodbav:"state"`
	Pincode string `dynamodbav:"pincode"`
}

type projectInfoItem struct {
	Address addressItem `dynamodbav:"address"`
}

type leadItem struct {
	ID               string               `dynamodbav:"id"`
	BuyerID          string               `dynamodbav:"buyer_id"`
	CategoryID       string               `dynamodbav:"category_id"`
	Quotes           []quoteItem          `dynamodbav:"quotes"`
	ContactInfo      contactInfoItem      `dynamodbav:"contact_info"`
	ProjectInfo      projectInfoItem      `dynamodbav:"project_info"`
	TotalSqft        float64              `dynamodbav:"total_sqft"`
	TotalQuantity    int                  `dynamodbav:"total_quantity"`
	BasePricePerSqft string               `dynamodbav:"base_price_per_sqft"`
	MaxSlots         int                  `dynamodbav:"max_slots"`
	AvailableSlots   int                  `dynamodbav:"available_slots"`
	DynamicSlotPrice string               `dynamodbav:"dynamic_slot_price"`
	OverProfit       bool                 `dynamodbav:"over_profit"`
	NegotiatedPrice  string               `dynamodbav:"negotiated_price"`
	Sellers          []purchaseRecordItem `dynamodbav:"sellers"`
	Status           string               `dynamodbav:"status"`
	Version          int64                `dynamodbav:"version"`
	CreatedAt        string               `dynamodbav:"created_at"`
	UpdatedAt        string               `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (buyer_id-index): buyer_id
//
// Every write other than Create is conditioned on the version attribute
// the aggregate was read at; a conditional failure surfaces as
// interfaces.ErrVersionConflict so callers re-read and retry.

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	it := toLeadItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
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

// List narrows by buyer through the GSI when possible and scans otherwise.
// Status and seller filters run client-side after the legacy-status repair:
// a stored synonym like "active" must still match a filter on
// "in-progress", which no server-side expression can do.
func (r *LeadDynamoRepository) List(ctx context.Context, filter interfaces.LeadFilter) ([]entities.Lead, int, error) {
	var raws []map[string]types.AttributeValue
	var err error
	if filter.BuyerID != "" {
		raws, err = r.queryByBuyer(ctx, filter.BuyerID)
	} else {
		raws, err = r.scanAll(ctx)
	}
	if err != nil {
		return nil, 0, err
	}

	leads := make([]entities.Lead, 0, len(raws))
	for _, raw := range raws {
		var it leadItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, 0, err
		}
		l := fromLeadItem(it)
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.CategoryID != "" && l.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SellerID != "" && !l.HasSeller(filter.SellerID) {
			continue
		}
		leads = append(leads, l)
	}

	sort.Slice(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})

	total := len(leads)
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return []entities.Lead{}, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return leads[start:end], total, nil
}

func (r *LeadDynamoRepository) queryByBuyer(ctx context.Context, buyerID string) ([]map[string]types.AttributeValue, error) {
	var raws []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(leadsBuyerIDIndex),
			KeyConditionExpression: aws.String("buyer_id = :bid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":bid": &types.AttributeValueMemberS{Value: buyerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		raws = append(raws, out.Items...)
		if out.LastEvaluatedKey == nil {
			return raws, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *LeadDynamoRepository) scanAll(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	var raws []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		raws = append(raws, out.Items...)
		if out.LastEvaluatedKey == nil {
			return raws, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *LeadDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus, expectedVersion int64) (entities.Lead, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #version = :next, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":expected":   &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			":next":       &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(timeNow())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#version":    "version",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, interfaces.ErrVersionConflict
		}
		return entities.Lead{}, err
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	quotes := make([]quoteItem, 0, len(l.Quotes))
	for _, q := range l.Quotes {
		quotes = append(quotes, quoteItem{
			ProductID:            q.ProductID,
			Color:                q.Color,
			InstallationLocation: q.InstallationLocation,
			Height:               q.Height,
			Width:                q.Width,
			Quantity:             q.Quantity,
			Sqft:                 q.Sqft,
			Remark:               q.Remark,
			IsGenerated:          q.IsGenerated,
		})
	}
	sellers := make([]purchaseRecordItem, 0, len(l.Sellers))
	for _, s := range l.Sellers {
		sellers = append(sellers, purchaseRecordItem{
			SellerID:      s.SellerID,
			PurchasedAt:   timeToString(s.PurchasedAt),
			PricePaid:     decimalToString(s.PricePaid),
			FreeQuotaUsed: s.FreeQuotaUsed,
		})
	}
	return leadItem{
		ID:         l.ID,
		BuyerID:    l.BuyerID,
		CategoryID: l.CategoryID,
		Quotes:     quotes,
		ContactInfo: contactInfoItem{
			Name:  l.ContactInfo.Name,
			Phone: l.ContactInfo.Phone,
			Email: l.ContactInfo.Email,
		},
		ProjectInfo: projectInfoItem{
			Address: addressItem{
				Line1:   l.ProjectInfo.Address.Line1,
				City:    l.ProjectInfo.Address.City,
				State:   l.ProjectInfo.Address.State,
				Pincode: l.ProjectInfo.Address.Pincode,
			},
		},
		TotalSqft:        l.TotalSqft,
		TotalQuantity:    l.TotalQuantity,
		BasePricePerSqft: decimalToString(l.BasePricePerSqft),
		MaxSlots:         l.MaxSlots,
		AvailableSlots:   l.AvailableSlots,
		DynamicSlotPrice: decimalToString(l.DynamicSlotPrice),
		OverProfit:       l.OverProfit,
		NegotiatedPrice:  decimalToString(l.NegotiatedPrice),
		Sellers:          sellers,
		Status:           string(l.Status),
		Version:          l.Version,
		CreatedAt:        timeToString(l.CreatedAt),
		UpdatedAt:        timeToString(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	quotes := make([]entities.QuoteItem, 0, len(it.Quotes))
	for _, q := range it.Quotes {
		quotes = append(quotes, entities.QuoteItem{
			ProductID:            q.ProductID,
			Color:                q.Color,
			InstallationLocation: q.InstallationLocation,
			Height:               q.Height,
			Width:                q.Width,
			Quantity:             q.Quantity,
			Sqft:                 q.Sqft,
			Remark:               q.Remark,
			IsGenerated:          q.IsGenerated,
		})
	}
	sellers := make([]entities.PurchaseRecord, 0, len(it.Sellers))
	for _, s := range it.Sellers {
		sellers = append(sellers, entities.PurchaseRecord{
			SellerID:      s.SellerID,
			PurchasedAt:   timeFromString(s.PurchasedAt),
			PricePaid:     decimalFromString(s.PricePaid),
			FreeQuotaUsed: s.FreeQuotaUsed,
		})
	}
	return entities.Lead{
		ID:         it.ID,
		BuyerID:    it.BuyerID,
		CategoryID: it.CategoryID,
		Quotes:     quotes,
		ContactInfo: entities.ContactInfo{
			Name:  it.ContactInfo.Name,
			Phone: it.ContactInfo.Phone,
			Email: it.ContactInfo.Email,
		},
		ProjectInfo: entities.ProjectInfo{
			Address: entities.Address{
				Line1:   it.ProjectInfo.Address.Line1,
				City:    it.ProjectInfo.Address.City,
				State:   it.ProjectInfo.Address.State,
				Pincode: it.ProjectInfo.Address.Pincode,
			},
		},
		TotalSqft:        it.TotalSqft,
		TotalQuantity:    it.TotalQuantity,
		BasePricePerSqft: decimalFromString(it.BasePricePerSqft),
		MaxSlots:         it.MaxSlots,
		AvailableSlots:   it.AvailableSlots,
		DynamicSlotPrice: decimalFromString(it.DynamicSlotPrice),
		OverProfit:       it.OverProfit,
		NegotiatedPrice:  decimalFromString(it.NegotiatedPrice),
		Sellers:          sellers,
		// Legacy rows may still hold synonym statuses; repair on read.
		Status:    entities.RepairStatus(it.Status),
		Version:   it.Version,
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}
