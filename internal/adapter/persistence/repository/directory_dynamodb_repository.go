package repository

import (
	"context"

	"upvc_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBuyersTableName     = "buyers"
	defaultCategoriesTableName = "categories"
	defaultProductsTableName   = "products"
)

// DynamoDirectory is a read-only existence check against a collaborator
// table keyed by id. Buyers, categories and catalog products are owned by
// other services; this one only validates references.
type DynamoDirectory struct {
	ddb       *dynamodb.Client
	tableName string
}

var (
	_ interfaces.IBuyerDirectory    = (*DynamoDirectory)(nil)
	_ interfaces.ICategoryDirectory = (*DynamoDirectory)(nil)
	_ interfaces.IProductDirectory  = (*DynamoDirectory)(nil)
)

func NewBuyerDynamoDirectory(ddb *dynamodb.Client) *DynamoDirectory {
	return &DynamoDirectory{ddb: ddb, tableName: getenvDefault("BUYERS_TABLE", defaultBuyersTableName)}
}

func NewCategoryDynamoDirectory(ddb *dynamodb.Client) *DynamoDirectory {
	return &DynamoDirectory{ddb: ddb, tableName: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName)}
}

func NewProductDynamoDirectory(ddb *dynamodb.Client) *DynamoDirectory {
	return &DynamoDirectory{ddb: ddb, tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName)}
}

func (d *DynamoDirectory) Exists(ctx context.Context, id string) (bool, error) {
	out, err := d.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ProjectionExpression: aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}
