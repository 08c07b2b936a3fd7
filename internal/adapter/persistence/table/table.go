package table

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client used by Table.
// *dynamodb.Client satisfies it, and so do the generated mocks.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Table is a thin client over a single named DynamoDB table.
//
// All keys in this service are single string attributes, so Key is a
// name/value pair instead of a full attribute map.
type Table struct {
	api  DynamoAPI
	name string
}

func New(api DynamoAPI, name string) *Table {
	return &Table{api: api, name: name}
}

func (t *Table) Name() string {
	return t.name
}

type Key struct {
	Name  string
	Value string
}

func (k Key) attributes() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		k.Name: &types.AttributeValueMemberS{Value: k.Value},
	}
}

// Filter is an equality condition on a non-key attribute.
type Filter struct {
	Name  string
	Value string
}

// Put writes the whole item. Last write wins.
func (t *Table) Put(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return wrapError("PutItem", t.name, err)
	}

	_, err = t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	})
	if err != nil {
		return wrapError("PutItem", t.name, err)
	}
	return nil
}

// Get loads the item for key into out. found is false when no item exists.
func (t *Table) Get(ctx context.Context, key Key, out any) (bool, error) {
	res, err := t.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key:       key.attributes(),
	})
	if err != nil {
		return false, wrapError("GetItem", t.name, err)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, wrapError("GetItem", t.name, err)
	}
	return true, nil
}

// UpdateInput describes a guarded SET update on an existing item.
type UpdateInput struct {
	Key Key
	// Set maps attribute names to their new values.
	Set map[string]any
	// Conditions must all hold, in addition to the item existing.
	Conditions []Filter
}

// Update applies in.Set to the item identified by in.Key. The item must exist
// and satisfy in.Conditions; otherwise found is false and nothing is written.
// When out is non-nil it receives the updated item.
func (t *Table) Update(ctx context.Context, in UpdateInput, out any) (bool, error) {
	if len(in.Set) == 0 {
		return false, wrapError("UpdateItem", t.name, errors.New("no attributes to set"))
	}

	names := map[string]string{"#pk": in.Key.Name}
	values := map[string]types.AttributeValue{}

	attrs := make([]string, 0, len(in.Set))
	for a := range in.Set {
		attrs = append(attrs, a)
	}
	sort.Strings(attrs)

	updateExpr := "SET "
	for i, a := range attrs {
		av, err := attributevalue.Marshal(in.Set[a])
		if err != nil {
			return false, wrapError("UpdateItem", t.name, err)
		}
		n, v := fmt.Sprintf("#s%d", i), fmt.Sprintf(":s%d", i)
		names[n] = a
		values[v] = av
		if i > 0 {
			updateExpr += ", "
		}
		updateExpr += n + " = " + v
	}

	condExpr := "attribute_exists(#pk)"
	for i, c := range in.Conditions {
		n, v := fmt.Sprintf("#c%d", i), fmt.Sprintf(":c%d", i)
		names[n] = c.Name
		values[v] = &types.AttributeValueMemberS{Value: c.Value}
		condExpr += " AND " + n + " = " + v
	}

	res, err := t.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       in.Key.attributes(),
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String(condExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, wrapError("UpdateItem", t.name, err)
	}
	if out != nil && len(res.Attributes) > 0 {
		if err := attributevalue.UnmarshalMap(res.Attributes, out); err != nil {
			return false, wrapError("UpdateItem", t.name, err)
		}
	}
	return true, nil
}
