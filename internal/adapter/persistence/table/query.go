package table

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	// batchGetLimit is the BatchGetItem per-request key limit.
	batchGetLimit = 100
	// maxUnprocessedRounds bounds the UnprocessedKeys retry loop.
	maxUnprocessedRounds = 10
)

// QueryInput selects items sharing one partition key value, on the base
// table or on a secondary index.
type QueryInput struct {
	IndexName string
	KeyName   string
	KeyValue  string
	// Filter is applied after the key condition, so Limit counts items read
	// before filtering.
	Filter     *Filter
	Descending bool
	Limit      int32
	Cursor     string
}

// Page carries the continuation token of a single query page. NextCursor is
// empty when there are no more items.
type Page struct {
	NextCursor string
}

func (p Page) HasMore() bool {
	return p.NextCursor != ""
}

func (t *Table) buildQuery(in QueryInput) (*dynamodb.QueryInput, error) {
	q := &dynamodb.QueryInput{
		TableName:              aws.String(t.name),
		KeyConditionExpression: aws.String("#k = :k"),
		ExpressionAttributeNames: map[string]string{
			"#k": in.KeyName,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: in.KeyValue},
		},
		ScanIndexForward: aws.Bool(!in.Descending),
	}
	if in.IndexName != "" {
		q.IndexName = aws.String(in.IndexName)
	}
	if in.Filter != nil {
		q.FilterExpression = aws.String("#f = :f")
		q.ExpressionAttributeNames["#f"] = in.Filter.Name
		q.ExpressionAttributeValues[":f"] = &types.AttributeValueMemberS{Value: in.Filter.Value}
	}
	if in.Limit > 0 {
		q.Limit = aws.Int32(in.Limit)
	}
	if in.Cursor != "" {
		startKey, err := DecodeCursor(in.Cursor)
		if err != nil {
			return nil, err
		}
		q.ExclusiveStartKey = startKey
	}
	return q, nil
}

// Query reads a single page into out, which must be a pointer to a slice.
func (t *Table) Query(ctx context.Context, in QueryInput, out any) (Page, error) {
	q, err := t.buildQuery(in)
	if err != nil {
		return Page{}, err
	}

	res, err := t.api.Query(ctx, q)
	if err != nil {
		return Page{}, wrapError("Query", t.name, err)
	}
	if err := attributevalue.UnmarshalListOfMaps(res.Items, out); err != nil {
		return Page{}, wrapError("Query", t.name, err)
	}

	var page Page
	if len(res.LastEvaluatedKey) > 0 {
		page.NextCursor, err = EncodeCursor(res.LastEvaluatedKey)
		if err != nil {
			return Page{}, wrapError("Query", t.name, err)
		}
	}
	return page, nil
}

// QueryAll follows LastEvaluatedKey until the query is exhausted. in.Limit is
// used as the page size.
func (t *Table) QueryAll(ctx context.Context, in QueryInput, out any) error {
	q, err := t.buildQuery(in)
	if err != nil {
		return err
	}

	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(t.api, q)
	for p.HasMorePages() {
		res, err := p.NextPage(ctx)
		if err != nil {
			return wrapError("Query", t.name, err)
		}
		items = append(items, res.Items...)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return wrapError("Query", t.name, err)
	}
	return nil
}

// Scan reads the whole table, optionally filtered.
func (t *Table) Scan(ctx context.Context, filter *Filter, out any) error {
	s := &dynamodb.ScanInput{TableName: aws.String(t.name)}
	if filter != nil {
		s.FilterExpression = aws.String("#f = :f")
		s.ExpressionAttributeNames = map[string]string{"#f": filter.Name}
		s.ExpressionAttributeValues = map[string]types.AttributeValue{
			":f": &types.AttributeValueMemberS{Value: filter.Value},
		}
	}

	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(t.api, s)
	for p.HasMorePages() {
		res, err := p.NextPage(ctx)
		if err != nil {
			return wrapError("Scan", t.name, err)
		}
		items = append(items, res.Items...)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return wrapError("Scan", t.name, err)
	}
	return nil
}

// BatchGet loads the items whose keyName attribute equals one of values.
// Duplicates are requested once; missing items are simply absent from out.
func (t *Table) BatchGet(ctx context.Context, keyName string, values []string, out any) error {
	seen := make(map[string]struct{}, len(values))
	keys := make([]map[string]types.AttributeValue, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		keys = append(keys, Key{Name: keyName, Value: v}.attributes())
	}

	var items []map[string]types.AttributeValue
	for start := 0; start < len(keys); start += batchGetLimit {
		end := min(start+batchGetLimit, len(keys))
		got, err := t.batchGetChunk(ctx, keys[start:end])
		if err != nil {
			return err
		}
		items = append(items, got...)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return wrapError("BatchGetItem", t.name, err)
	}
	return nil
}

func (t *Table) batchGetChunk(ctx context.Context, keys []map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	request := map[string]types.KeysAndAttributes{
		t.name: {Keys: keys},
	}

	for round := 0; len(request) > 0; round++ {
		if round == maxUnprocessedRounds {
			return nil, wrapError("BatchGetItem", t.name, errors.New("unprocessed keys remain after retries"))
		}
		res, err := t.api.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return nil, wrapError("BatchGetItem", t.name, err)
		}
		items = append(items, res.Responses[t.name]...)
		request = res.UnprocessedKeys
	}
	return items, nil
}
