package repository

import (
	"context"
	"errors"
	"strconv"

	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SettlementDynamoRepository commits a purchase across the leads and
// sellers tables in a single TransactWriteItems. Each element is
// conditioned on the version its aggregate was read at, so a concurrent
// purchase touching either side cancels the whole transaction and nothing
// partial is ever visible.

type SettlementDynamoRepository struct {
	ddb              *dynamodb.Client
	leadsTableName   string
	sellersTableName string
}

var _ interfaces.ISettlementRepository = (*SettlementDynamoRepository)(nil)

func NewSettlementDynamoRepository(ddb *dynamodb.Client) *SettlementDynamoRepository {
	return &SettlementDynamoRepository{
		ddb:              ddb,
		leadsTableName:   getenvDefault("LEADS_TABLE", defaultLeadsTableName),
		sellersTableName: getenvDefault("SELLERS_TABLE", defaultSellersTableName),
	}
}

func (r *SettlementDynamoRepository) CommitPurchase(ctx context.Context, lead entities.Lead, seller entities.Seller) error {
	leadReadVersion := lead.Version
	sellerReadVersion := seller.Version
	lead.Version++
	seller.Version++

	leadAV, err := attributevalue.MarshalMap(toLeadItem(lead))
	if err != nil {
		return err
	}
	sellerAV, err := attributevalue.MarshalMap(toSellerItem(seller))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.leadsTableName),
					Item:                leadAV,
					ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
					ExpressionAttributeNames: map[string]string{
						"#id":      "id",
						"#version": "version",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(leadReadVersion, 10)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.sellersTableName),
					Item:                sellerAV,
					ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
					ExpressionAttributeNames: map[string]string{
						"#id":      "id",
						"#version": "version",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(sellerReadVersion, 10)},
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return interfaces.ErrVersionConflict
		}
		return err
	}
	return nil
}

// isTransactionConditionFailure reports whether a cancelled transaction
// failed on a condition check (someone else committed first) as opposed to
// an infrastructure error.
func isTransactionConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
