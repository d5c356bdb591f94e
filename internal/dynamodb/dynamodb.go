package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type AttributeValue struct {
	types.AttributeValue
}

func NumberValue(n string) AttributeValue {
	return AttributeValue{AttributeValue: &types.AttributeValueMemberN{Value: n}}
}

type Client interface {
	GetItem(ctx context.Context, tableName string, key map[string]AttributeValue) (map[string]interface{}, error)
	UpdateItem(ctx context.Context, tableName string, key map[string]AttributeValue, expressionAttributeValues map[string]AttributeValue, updateExpression string) error
}

func NewClient(ctx context.Context, region string) (Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &dynamodbClientImpl{
		client: dynamodb.NewFromConfig(cfg),
	}, nil
}

type dynamodbClientImpl struct {
	client *dynamodb.Client
}

func (d *dynamodbClientImpl) GetItem(ctx context.Context, tableName string, key map[string]AttributeValue) (map[string]interface{}, error) {
	params := &dynamodb.GetItemInput{
		Key:       convertAttributes(key),
		TableName: aws.String(tableName),
	}

	res, err := d.client.GetItem(ctx, params)
	if err != nil {
		return nil, err
	}

	resConv := make(map[string]interface{})
	for k, v := range res.Item {
		resConv[k] = convertType(v)
	}

	return resConv, nil
}

func (d *dynamodbClientImpl) UpdateItem(ctx context.Context, tableName string, key map[string]AttributeValue, expressionAttributeValues map[string]AttributeValue, updateExpression string) error {
	params := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(tableName),
		Key:                       convertAttributes(key),
		ExpressionAttributeValues: convertAttributes(expressionAttributeValues),
		UpdateExpression:          aws.String(updateExpression),
	}

	_, err := d.client.UpdateItem(ctx, params)
	return err
}

func convertAttributes(values map[string]AttributeValue) map[string]types.AttributeValue {
	conv := make(map[string]types.AttributeValue, len(values))
	for k, v := range values {
		conv[k] = v.AttributeValue
	}

	return conv
}

func convertType(i interface{}) interface{} {
	var value interface{}

	switch j := i.(type) {
	case *types.AttributeValueMemberS:
		value = j.Value
	case *types.AttributeValueMemberN:
		value = j.Value
	case *types.AttributeValueMemberB:
		value = j.Value
	case *types.AttributeValueMemberBOOL:
		value = j.Value
	case *types.AttributeValueMemberNULL:
		value = j.Value
	default:
		value = "invalid"
	}

	return value
}
